package analytics

// OverviewResponse holds the global dashboard totals
type OverviewResponse struct {
	TotalClients       int64   `json:"total_clients"`
	TotalClosed        int64   `json:"total_closed"`
	TotalOpen          int64   `json:"total_open"`
	ConversionRate     float64 `json:"conversion_rate"`
	ProcessedClients   int64   `json:"processed_clients"`
	UnprocessedClients int64   `json:"unprocessed_clients"`
}

// DimensionMetric is one group in a by-dimension breakdown
type DimensionMetric struct {
	Value          string  `json:"value"`
	Count          int     `json:"count"`
	Closed         int     `json:"closed"`
	ConversionRate float64 `json:"conversion_rate"`
	// TotalInteractionVolume is populated for the industry dimension only.
	TotalInteractionVolume *int `json:"total_interaction_volume,omitempty"`
}

// ConversionAnalysisResponse aggregates the five dimension breakdowns
type ConversionAnalysisResponse struct {
	Industry        []DimensionMetric `json:"industry"`
	Sentiment       []DimensionMetric `json:"sentiment"`
	UrgencyLevel    []DimensionMetric `json:"urgency_level"`
	DiscoverySource []DimensionMetric `json:"discovery_source"`
	OperationSize   []DimensionMetric `json:"operation_size"`
}

// PainPointAggregate is one normalized pain-point group
type PainPointAggregate struct {
	PainPoint      string  `json:"pain_point"`
	Count          int     `json:"count"`
	ConversionRate float64 `json:"conversion_rate"`
}

// TechnicalRequirementAggregate is one exact-match requirement group
type TechnicalRequirementAggregate struct {
	Requirement string `json:"requirement"`
	Count       int    `json:"count"`
}

// VolumeBucket is one fixed interaction-volume range
type VolumeBucket struct {
	Range          string  `json:"range"`
	Count          int     `json:"count"`
	Closed         int     `json:"closed"`
	ConversionRate float64 `json:"conversion_rate"`
}

// IndustryRanking is one row of the detailed per-industry ranking
type IndustryRanking struct {
	Industry               string  `json:"industry"`
	Clients                int     `json:"clients"`
	Closed                 int     `json:"closed"`
	ConversionRate         float64 `json:"conversion_rate"`
	TotalInteractionVolume int     `json:"total_interaction_volume"`
	AvgInteractionVolume   float64 `json:"avg_interaction_volume"`
}

// NewIndustry is an industry whose first meeting falls in the last month
type NewIndustry struct {
	Industry         string `json:"industry"`
	Clients          int    `json:"clients"`
	FirstMeetingDate string `json:"first_meeting_date"`
}

// WatchedIndustry is one industry flagged by the opportunity analyzer
type WatchedIndustry struct {
	Industry       string  `json:"industry"`
	Clients        int     `json:"clients"`
	Closed         int     `json:"closed"`
	ConversionRate float64 `json:"conversion_rate"`
}

// IndustriesToWatchResponse holds both threshold-based segments
type IndustriesToWatchResponse struct {
	ExpansionOpportunities []WatchedIndustry `json:"expansion_opportunities"`
	StrategyNeeded         []WatchedIndustry `json:"strategy_needed"`
}

// TimelinePoint is one calendar day of the daily timeline
type TimelinePoint struct {
	Date   string `json:"date"`
	Total  int    `json:"total"`
	Closed int    `json:"closed"`
}

// MonthlyIndustry is one of a month's top industries
type MonthlyIndustry struct {
	Industry          string `json:"industry"`
	Count             int    `json:"count"`
	DominantSentiment string `json:"dominant_sentiment"`
}

// MonthlyTimelineBucket is one calendar month of the timeline summary
type MonthlyTimelineBucket struct {
	Month             string            `json:"month"`
	TotalMeetings     int               `json:"total_meetings"`
	TotalClosed       int               `json:"total_closed"`
	ConversionRate    float64           `json:"conversion_rate"`
	DominantSentiment string            `json:"dominant_sentiment"`
	TopIndustries     []MonthlyIndustry `json:"top_industries"`
}
