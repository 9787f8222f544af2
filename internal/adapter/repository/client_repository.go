package repository

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minhtran-dev/sales-insights/errors"
	"github.com/minhtran-dev/sales-insights/internal/domain/entities"
	"github.com/minhtran-dev/sales-insights/internal/domain/repositories"
)

// clientRepository implements the ClientRepository interface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository backed by GORM
func NewClientRepository(db *gorm.DB) repositories.ClientRepository {
	return &clientRepository{db: db}
}

// Create inserts a single client record
func (r *clientRepository) Create(ctx context.Context, client *entities.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// CreateBatch bulk-inserts records with duplicate-skip semantics.
// Rows colliding with the (email, meeting_date) unique index are ignored.
func (r *clientRepository) CreateBatch(ctx context.Context, clients []*entities.Client) (int64, error) {
	if len(clients) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(clients, 100)
	return res.RowsAffected, res.Error
}

// FindByID retrieves a client record by its ID
func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	var client entities.Client
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&client).Error
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrClientNotFound(id.String())
		}
		return nil, err
	}
	return &client, nil
}

// Update persists changes to an existing client record
func (r *clientRepository) Update(ctx context.Context, client *entities.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// DeleteAll removes every client record
func (r *clientRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entities.Client{}).Error
}

// List retrieves client records with filters and pagination
func (r *clientRepository) List(ctx context.Context, filters repositories.ClientFilters) ([]*entities.Client, int64, error) {
	var clients []*entities.Client
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Client{})

	if filters.Processed != nil {
		query = query.Where("processed = ?", *filters.Processed)
	}
	if filters.Closed != nil {
		query = query.Where("closed = ?", *filters.Closed)
	}
	if filters.Industry != nil {
		query = query.Where("industry = ?", *filters.Industry)
	}
	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("name ILIKE ? OR email ILIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("meeting_date DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&clients).Error
	return clients, total, err
}

// CountTotal returns the total number of client records
func (r *clientRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Client{}).Count(&count).Error
	return count, err
}

// CountClosed returns the number of closed client records
func (r *clientRepository) CountClosed(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Client{}).
		Where("closed = ?", true).
		Count(&count).Error
	return count, err
}

// CountProcessed returns the number of processed client records
func (r *clientRepository) CountProcessed(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Client{}).
		Where("processed = ?", true).
		Count(&count).Error
	return count, err
}

// FindProcessed retrieves processed records, most recent meeting first
func (r *clientRepository) FindProcessed(ctx context.Context) ([]*entities.Client, error) {
	var clients []*entities.Client
	err := r.db.WithContext(ctx).
		Where("processed = ?", true).
		Order("meeting_date DESC").
		Find(&clients).Error
	return clients, err
}

// FindUnprocessed retrieves up to limit unprocessed records, oldest first
func (r *clientRepository) FindUnprocessed(ctx context.Context, limit int) ([]*entities.Client, error) {
	var clients []*entities.Client
	query := r.db.WithContext(ctx).
		Where("processed = ?", false).
		Order("meeting_date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&clients).Error
	return clients, err
}

// FindAllByMeetingDate retrieves every record in chronological order
func (r *clientRepository) FindAllByMeetingDate(ctx context.Context) ([]*entities.Client, error) {
	var clients []*entities.Client
	err := r.db.WithContext(ctx).
		Order("meeting_date ASC").
		Find(&clients).Error
	return clients, err
}
