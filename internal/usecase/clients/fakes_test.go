package clients

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/minhtran-dev/sales-insights/errors"
	"github.com/minhtran-dev/sales-insights/internal/domain/entities"
	"github.com/minhtran-dev/sales-insights/internal/domain/repositories"
)

// fakeRepo is an in-memory ClientRepository with the same duplicate-skip
// semantics as the Postgres implementation.
type fakeRepo struct {
	records  []*entities.Client
	batchErr error
	findErr  error
}

var _ repositories.ClientRepository = (*fakeRepo)(nil)

func (f *fakeRepo) dupKey(c *entities.Client) string {
	return c.Email + "|" + c.MeetingDate.UTC().Format(time.RFC3339)
}

func (f *fakeRepo) Create(ctx context.Context, client *entities.Client) error {
	f.records = append(f.records, client)
	return nil
}

func (f *fakeRepo) CreateBatch(ctx context.Context, clients []*entities.Client) (int64, error) {
	if f.batchErr != nil {
		return 0, f.batchErr
	}
	existing := make(map[string]bool, len(f.records))
	for _, r := range f.records {
		existing[f.dupKey(r)] = true
	}
	var inserted int64
	for _, c := range clients {
		if existing[f.dupKey(c)] {
			continue
		}
		existing[f.dupKey(c)] = true
		f.records = append(f.records, c)
		inserted++
	}
	return inserted, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.ErrClientNotFound(id.String())
}

func (f *fakeRepo) Update(ctx context.Context, client *entities.Client) error {
	for i, r := range f.records {
		if r.ID == client.ID {
			f.records[i] = client
			return nil
		}
	}
	return errors.ErrClientNotFound(client.ID.String())
}

func (f *fakeRepo) DeleteAll(ctx context.Context) error {
	f.records = nil
	return nil
}

func (f *fakeRepo) List(ctx context.Context, filters repositories.ClientFilters) ([]*entities.Client, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakeRepo) CountTotal(ctx context.Context) (int64, error) {
	return int64(len(f.records)), nil
}

func (f *fakeRepo) CountClosed(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeRepo) CountProcessed(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeRepo) FindProcessed(ctx context.Context) ([]*entities.Client, error) {
	var out []*entities.Client
	for _, r := range f.records {
		if r.Processed {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindUnprocessed(ctx context.Context, limit int) ([]*entities.Client, error) {
	var out []*entities.Client
	for _, r := range f.records {
		if !r.Processed {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeetingDate.Before(out[j].MeetingDate)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) FindAllByMeetingDate(ctx context.Context) ([]*entities.Client, error) {
	return f.records, nil
}

// scriptedGenerator returns canned responses per call, erroring where the
// script says so.
type scriptedGenerator struct {
	responses []string
	errs      []error
	calls     int
}

func (g *scriptedGenerator) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	i := g.calls
	g.calls++
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	if len(g.responses) > 0 {
		return g.responses[len(g.responses)-1], nil
	}
	return "", context.Canceled
}

type fakeArchiver struct {
	key   string
	err   error
	calls int
}

func (a *fakeArchiver) ArchiveCSV(ctx context.Context, filename string, data []byte) (string, error) {
	a.calls++
	if a.err != nil {
		return "", a.err
	}
	return a.key, nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateCache(ctx context.Context) {
	f.calls++
}
