package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/minhtran-dev/sales-insights/internal/domain/entities"
)

// ClientFilters holds filters for listing client records
type ClientFilters struct {
	Search    string
	Processed *bool
	Industry  *string
	Closed    *bool
	Limit     int
	Offset    int
}

// ClientRepository defines persistence operations for client-meeting records
type ClientRepository interface {
	Create(ctx context.Context, client *entities.Client) error
	// CreateBatch bulk-inserts records, silently skipping rows that collide
	// with the (email, meeting_date) unique index. Returns the number of
	// rows actually inserted.
	CreateBatch(ctx context.Context, clients []*entities.Client) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Client, error)
	Update(ctx context.Context, client *entities.Client) error
	// DeleteAll removes every record. Individual deletes are intentionally
	// not supported.
	DeleteAll(ctx context.Context) error

	List(ctx context.Context, filters ClientFilters) ([]*entities.Client, int64, error)

	CountTotal(ctx context.Context) (int64, error)
	CountClosed(ctx context.Context) (int64, error)
	CountProcessed(ctx context.Context) (int64, error)

	// FindProcessed returns processed records ordered by meeting date
	// descending (most recent first).
	FindProcessed(ctx context.Context) ([]*entities.Client, error)
	// FindUnprocessed returns up to limit unprocessed records, oldest first.
	FindUnprocessed(ctx context.Context, limit int) ([]*entities.Client, error)
	// FindAllByMeetingDate returns every record ordered by meeting date
	// ascending.
	FindAllByMeetingDate(ctx context.Context) ([]*entities.Client, error)
}
