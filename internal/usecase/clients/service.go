package clients

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dtoclient "github.com/minhtran-dev/sales-insights/internal/adapter/dto/client"
	"github.com/minhtran-dev/sales-insights/internal/domain/entities"
	"github.com/minhtran-dev/sales-insights/internal/domain/repositories"
)

// DefaultPageSize is the page size used when a list request does not set one.
const DefaultPageSize = 50

// TextGenerator is the external model used to categorize transcriptions.
type TextGenerator interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Archiver stores uploaded CSV files before they are parsed. Archiving is
// best-effort; import proceeds when it fails.
type Archiver interface {
	ArchiveCSV(ctx context.Context, filename string, data []byte) (string, error)
}

// InsightInvalidator drops cached insights after a data mutation.
type InsightInvalidator interface {
	InvalidateCache(ctx context.Context)
}

// Service manages the client-meeting record lifecycle: CRUD, bulk CSV import
// and AI categorization.
type Service interface {
	Create(ctx context.Context, req *dtoclient.CreateClientRequest) (*entities.Client, error)
	List(ctx context.Context, req *dtoclient.ListClientsRequest) ([]*entities.Client, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Client, error)
	Update(ctx context.Context, id uuid.UUID, req *dtoclient.UpdateClientRequest) (*entities.Client, error)
	DeleteAll(ctx context.Context) error

	ImportCSV(ctx context.Context, filename string, data []byte) (*dtoclient.ImportReport, error)

	Process(ctx context.Context, id uuid.UUID) (*entities.Client, error)
	ProcessPending(ctx context.Context, limit int) (*dtoclient.ProcessReport, error)
}

type service struct {
	repo        repositories.ClientRepository
	generator   TextGenerator
	archiver    Archiver
	invalidator InsightInvalidator
	logger      *zap.Logger
}

// NewService constructs the client record service. archiver and invalidator
// may be nil to disable CSV archiving and insight cache invalidation.
func NewService(
	repo repositories.ClientRepository,
	generator TextGenerator,
	archiver Archiver,
	invalidator InsightInvalidator,
	logger *zap.Logger,
) Service {
	return &service{
		repo:        repo,
		generator:   generator,
		archiver:    archiver,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (s *service) Create(ctx context.Context, req *dtoclient.CreateClientRequest) (*entities.Client, error) {
	record := &entities.Client{
		ID:             uuid.New(),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		AssignedSeller: req.AssignedSeller,
		MeetingDate:    req.MeetingDate.UTC(),
		Closed:         req.Closed,
		Transcription:  req.Transcription,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return record, nil
}

func (s *service) List(ctx context.Context, req *dtoclient.ListClientsRequest) ([]*entities.Client, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	filters := repositories.ClientFilters{
		Search:    req.Search,
		Processed: req.Processed,
		Closed:    req.Closed,
		Industry:  req.Industry,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	}
	return s.repo.List(ctx, filters)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *dtoclient.UpdateClientRequest) (*entities.Client, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.Email != nil {
		record.Email = *req.Email
	}
	if req.Phone != nil {
		record.Phone = req.Phone
	}
	if req.AssignedSeller != nil {
		record.AssignedSeller = req.AssignedSeller
	}
	if req.MeetingDate != nil {
		record.MeetingDate = req.MeetingDate.UTC()
	}
	if req.Closed != nil {
		record.Closed = *req.Closed
	}
	if req.Transcription != nil {
		record.Transcription = *req.Transcription
	}
	record.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return record, nil
}

func (s *service) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	s.invalidator.InvalidateCache(ctx)
}
