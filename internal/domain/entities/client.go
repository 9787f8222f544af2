package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Dimension names accepted by the analytics group-by endpoints.
const (
	DimensionIndustry        = "industry"
	DimensionSentiment       = "sentiment"
	DimensionUrgencyLevel    = "urgencyLevel"
	DimensionDiscoverySource = "discoverySource"
	DimensionOperationSize   = "operationSize"
)

// Client represents one uploaded client-meeting record
type Client struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_clients_email_meeting" json:"email"`
	Phone          *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	AssignedSeller *string   `gorm:"type:varchar(255)" json:"assigned_seller,omitempty"`
	MeetingDate    time.Time `gorm:"not null;index;uniqueIndex:idx_clients_email_meeting" json:"meeting_date"`
	Closed         bool      `gorm:"not null;default:false;index" json:"closed"`
	Transcription  string    `gorm:"type:text;not null" json:"transcription"`

	// Derived fields, populated by categorization when the record is processed.
	Industry          *string `gorm:"type:varchar(100);index" json:"industry,omitempty"`
	Sentiment         *string `gorm:"type:varchar(50)" json:"sentiment,omitempty"`
	UrgencyLevel      *string `gorm:"type:varchar(50)" json:"urgency_level,omitempty"`
	DiscoverySource   *string `gorm:"type:varchar(100)" json:"discovery_source,omitempty"`
	OperationSize     *string `gorm:"type:varchar(50)" json:"operation_size,omitempty"`
	MainMotivation    *string `gorm:"type:text" json:"main_motivation,omitempty"`
	InteractionVolume *int    `gorm:"check:interaction_volume IS NULL OR interaction_volume >= 0" json:"interaction_volume,omitempty"`

	PainPoints            datatypes.JSONSlice[string] `gorm:"type:jsonb;default:'[]'" json:"pain_points"`
	TechnicalRequirements datatypes.JSONSlice[string] `gorm:"type:jsonb;default:'[]'" json:"technical_requirements"`

	Processed   bool       `gorm:"not null;default:false;index" json:"processed"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Client
func (Client) TableName() string {
	return "clients"
}

// Categorization holds the derived fields assigned when a record is processed.
// Any field left nil stays null on the record.
type Categorization struct {
	Industry              *string
	Sentiment             *string
	UrgencyLevel          *string
	DiscoverySource       *string
	OperationSize         *string
	MainMotivation        *string
	InteractionVolume     *int
	PainPoints            []string
	TechnicalRequirements []string
}

// ApplyCategorization transitions the record from unprocessed to processed.
// It is the only mutation of the derived fields; records are never
// re-categorized.
func (c *Client) ApplyCategorization(cat Categorization) {
	now := time.Now().UTC()
	c.Industry = cat.Industry
	c.Sentiment = cat.Sentiment
	c.UrgencyLevel = cat.UrgencyLevel
	c.DiscoverySource = cat.DiscoverySource
	c.OperationSize = cat.OperationSize
	c.MainMotivation = cat.MainMotivation
	c.InteractionVolume = cat.InteractionVolume
	if cat.PainPoints != nil {
		c.PainPoints = datatypes.NewJSONSlice(cat.PainPoints)
	}
	if cat.TechnicalRequirements != nil {
		c.TechnicalRequirements = datatypes.NewJSONSlice(cat.TechnicalRequirements)
	}
	c.Processed = true
	c.ProcessedAt = &now
}

// HasTranscription reports whether the transcription is non-blank after trimming.
func (c *Client) HasTranscription() bool {
	return strings.TrimSpace(c.Transcription) != ""
}

// DimensionValue returns the value of the named categorical dimension,
// or nil when the dimension is unset. Unknown names return (nil, false).
func (c *Client) DimensionValue(dimension string) (*string, bool) {
	switch dimension {
	case DimensionIndustry:
		return c.Industry, true
	case DimensionSentiment:
		return c.Sentiment, true
	case DimensionUrgencyLevel:
		return c.UrgencyLevel, true
	case DimensionDiscoverySource:
		return c.DiscoverySource, true
	case DimensionOperationSize:
		return c.OperationSize, true
	default:
		return nil, false
	}
}

// ValidDimension reports whether the given name is a known group-by dimension.
func ValidDimension(dimension string) bool {
	_, ok := (&Client{}).DimensionValue(dimension)
	return ok
}
