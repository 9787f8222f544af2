package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/minhtran-dev/sales-insights/internal/domain/entities"
	"github.com/minhtran-dev/sales-insights/internal/domain/repositories"
)

// fakeClientRepo is an in-memory ClientRepository for service tests.
type fakeClientRepo struct {
	clients []*entities.Client
	err     error
}

func (f *fakeClientRepo) Create(ctx context.Context, c *entities.Client) error {
	f.clients = append(f.clients, c)
	return f.err
}

func (f *fakeClientRepo) CreateBatch(ctx context.Context, cs []*entities.Client) (int64, error) {
	f.clients = append(f.clients, cs...)
	return int64(len(cs)), f.err
}

func (f *fakeClientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			return c, f.err
		}
	}
	return nil, f.err
}

func (f *fakeClientRepo) Update(ctx context.Context, c *entities.Client) error { return f.err }

func (f *fakeClientRepo) DeleteAll(ctx context.Context) error {
	f.clients = nil
	return f.err
}

func (f *fakeClientRepo) List(ctx context.Context, filters repositories.ClientFilters) ([]*entities.Client, int64, error) {
	return f.clients, int64(len(f.clients)), f.err
}

func (f *fakeClientRepo) CountTotal(ctx context.Context) (int64, error) {
	return int64(len(f.clients)), f.err
}

func (f *fakeClientRepo) CountClosed(ctx context.Context) (int64, error) {
	var n int64
	for _, c := range f.clients {
		if c.Closed {
			n++
		}
	}
	return n, f.err
}

func (f *fakeClientRepo) CountProcessed(ctx context.Context) (int64, error) {
	var n int64
	for _, c := range f.clients {
		if c.Processed {
			n++
		}
	}
	return n, f.err
}

func (f *fakeClientRepo) FindProcessed(ctx context.Context) ([]*entities.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entities.Client, 0)
	for _, c := range f.clients {
		if c.Processed {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeetingDate.After(out[j].MeetingDate)
	})
	return out, nil
}

func (f *fakeClientRepo) FindUnprocessed(ctx context.Context, limit int) ([]*entities.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entities.Client, 0)
	for _, c := range f.clients {
		if !c.Processed {
			out = append(out, c)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeClientRepo) FindAllByMeetingDate(ctx context.Context) ([]*entities.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entities.Client, len(f.clients))
	copy(out, f.clients)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeetingDate.Before(out[j].MeetingDate)
	})
	return out, nil
}

// record builds a processed test client.
type record struct {
	industry   string
	sentiment  string
	urgency    string
	source     string
	size       string
	closed     bool
	volume     *int
	date       time.Time
	painPoints []string
	techReqs   []string
	processed  bool
}

func buildClient(r record) *entities.Client {
	c := &entities.Client{
		ID:            uuid.New(),
		Name:          "Test Client",
		Email:         uuid.NewString() + "@example.com",
		MeetingDate:   r.date,
		Closed:        r.closed,
		Transcription: "transcription",
		Processed:     r.processed,
	}
	if r.date.IsZero() {
		c.MeetingDate = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	if r.industry != "" {
		c.Industry = &r.industry
	}
	if r.sentiment != "" {
		c.Sentiment = &r.sentiment
	}
	if r.urgency != "" {
		c.UrgencyLevel = &r.urgency
	}
	if r.source != "" {
		c.DiscoverySource = &r.source
	}
	if r.size != "" {
		c.OperationSize = &r.size
	}
	c.InteractionVolume = r.volume
	if r.painPoints != nil {
		c.PainPoints = datatypes.NewJSONSlice(r.painPoints)
	}
	if r.techReqs != nil {
		c.TechnicalRequirements = datatypes.NewJSONSlice(r.techReqs)
	}
	return c
}

func intPtr(v int) *int { return &v }
