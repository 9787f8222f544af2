package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dtoclient "github.com/minhtran-dev/sales-insights/internal/adapter/dto/client"
	"github.com/minhtran-dev/sales-insights/internal/domain/entities"
	clientsUsecase "github.com/minhtran-dev/sales-insights/internal/usecase/clients"
	"github.com/minhtran-dev/sales-insights/pkg/validator"
)

// stubClientService records the last list request and serves canned records.
type stubClientService struct {
	records []*entities.Client
	total   int64
	lastReq *dtoclient.ListClientsRequest
}

var _ clientsUsecase.Service = (*stubClientService)(nil)

func (s *stubClientService) Create(ctx context.Context, req *dtoclient.CreateClientRequest) (*entities.Client, error) {
	return nil, nil
}

func (s *stubClientService) List(ctx context.Context, req *dtoclient.ListClientsRequest) ([]*entities.Client, int64, error) {
	s.lastReq = req
	return s.records, s.total, nil
}

func (s *stubClientService) GetByID(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	return nil, nil
}

func (s *stubClientService) Update(ctx context.Context, id uuid.UUID, req *dtoclient.UpdateClientRequest) (*entities.Client, error) {
	return nil, nil
}

func (s *stubClientService) DeleteAll(ctx context.Context) error { return nil }

func (s *stubClientService) ImportCSV(ctx context.Context, filename string, data []byte) (*dtoclient.ImportReport, error) {
	return nil, nil
}

func (s *stubClientService) Process(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	return nil, nil
}

func (s *stubClientService) ProcessPending(ctx context.Context, limit int) (*dtoclient.ProcessReport, error) {
	return nil, nil
}

func newListContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestList_OmittedPageSizeReportsDefault(t *testing.T) {
	svc := &stubClientService{
		records: []*entities.Client{{ID: uuid.New(), Name: "Acme"}},
		total:   120,
	}
	h := NewClientsHandler(svc, nil, zap.NewNop())

	c, rec := newListContext(t, "/v1/clients")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"page_size":50`) {
		t.Fatalf("body = %s", body)
	}
	if !strings.Contains(body, `"page":1`) {
		t.Fatalf("body = %s", body)
	}
}

func TestList_ExplicitPageSizeEchoedBack(t *testing.T) {
	svc := &stubClientService{total: 5}
	h := NewClientsHandler(svc, nil, zap.NewNop())

	c, rec := newListContext(t, "/v1/clients?page=2&page_size=10")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"page_size":10`) {
		t.Fatalf("body = %s", body)
	}
	if !strings.Contains(body, `"page":2`) {
		t.Fatalf("body = %s", body)
	}
	if svc.lastReq == nil || svc.lastReq.PageSize != 10 || svc.lastReq.Page != 2 {
		t.Fatalf("lastReq = %+v", svc.lastReq)
	}
}
