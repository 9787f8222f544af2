package handler

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/minhtran-dev/sales-insights/errors"
	dtoclient "github.com/minhtran-dev/sales-insights/internal/adapter/dto/client"
	clientsUsecase "github.com/minhtran-dev/sales-insights/internal/usecase/clients"
)

// maxCSVBytes caps uploaded CSV files at 20 MiB.
const maxCSVBytes = 20 << 20

// ArchiveLister exposes the archived CSV uploads.
type ArchiveLister interface {
	ListArchives(ctx context.Context, prefix string) ([]string, error)
}

// Clients handles the client-record lifecycle endpoints
type Clients struct {
	service  clientsUsecase.Service
	archives ArchiveLister
	logger   *zap.Logger
}

// NewClientsHandler creates a new clients handler. archives may be nil when
// object storage is disabled.
func NewClientsHandler(service clientsUsecase.Service, archives ArchiveLister, logger *zap.Logger) *Clients {
	return &Clients{
		service:  service,
		archives: archives,
		logger:   logger,
	}
}

// Create handles POST /clients
// @Summary      Create a single client record
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        request  body      client.CreateClientRequest  true  "Client record"
// @Success      200      {object}  entities.Client
// @Failure      400      {object}  map[string]interface{}
// @Failure      500      {object}  map[string]interface{}
// @Router       /clients [post]
func (h *Clients) Create(c echo.Context) error {
	var req dtoclient.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	record, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, record)
}

// List handles GET /clients
// @Summary      List client records
// @Tags         Clients
// @Produce      json
// @Param        search     query     string  false  "Match against name and email"
// @Param        processed  query     bool    false  "Filter by processed state"
// @Param        closed     query     bool    false  "Filter by deal outcome"
// @Param        industry   query     string  false  "Filter by categorized industry"
// @Param        page       query     int     false  "Page number (1-based)"
// @Param        page_size  query     int     false  "Page size, max 200"
// @Success      200        {object}  client.ListClientsResponse
// @Failure      500        {object}  map[string]interface{}
// @Router       /clients [get]
func (h *Clients) List(c echo.Context) error {
	var req dtoclient.ListClientsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	records, total, err := h.service.List(c.Request().Context(), &req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = clientsUsecase.DefaultPageSize
	}

	return HandleSuccess(h.logger, c, dtoclient.ListClientsResponse{
		Data:     records,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

// Get handles GET /clients/:id
// @Summary      Get one client record
// @Tags         Clients
// @Produce      json
// @Param        id   path      string  true  "Client ID (UUID)"
// @Success      200  {object}  entities.Client
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /clients/{id} [get]
func (h *Clients) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid client id"))
	}

	record, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, record)
}

// Update handles PATCH /clients/:id
// @Summary      Update a client record
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Client ID (UUID)"
// @Param        request  body      client.UpdateClientRequest  true  "Fields to update"
// @Success      200      {object}  entities.Client
// @Failure      400      {object}  map[string]interface{}
// @Failure      404      {object}  map[string]interface{}
// @Router       /clients/{id} [patch]
func (h *Clients) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid client id"))
	}

	var req dtoclient.UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	record, err := h.service.Update(c.Request().Context(), id, &req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, record)
}

// DeleteAll handles DELETE /clients
// @Summary      Delete every client record
// @Description  Clears the dataset. Individual deletes are not supported.
// @Tags         Clients
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /clients [delete]
func (h *Clients) DeleteAll(c echo.Context) error {
	if err := h.service.DeleteAll(c.Request().Context()); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"deleted": true})
}

// UploadCSV handles POST /clients/upload-csv
// @Summary      Bulk import client records from a CSV file
// @Description  Parses a multipart CSV upload, skipping duplicate (email, meeting_date) pairs and reporting per-row errors
// @Tags         Clients
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV file"
// @Success      200   {object}  client.ImportReport
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /clients/upload-csv [post]
func (h *Clients) UploadCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("missing file field"))
	}
	if fileHeader.Size > maxCSVBytes {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("file exceeds 20MB limit"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrCSVInvalidFile(err))
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxCSVBytes+1))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrCSVInvalidFile(err))
	}

	report, err := h.service.ImportCSV(c.Request().Context(), fileHeader.Filename, data)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, report)
}

// ListUploads handles GET /clients/uploads
// @Summary      List archived CSV uploads
// @Tags         Clients
// @Produce      json
// @Param        prefix  query     string  false  "Object key prefix"
// @Success      200     {array}   string
// @Failure      500     {object}  map[string]interface{}
// @Router       /clients/uploads [get]
func (h *Clients) ListUploads(c echo.Context) error {
	if h.archives == nil {
		return HandleSuccess(h.logger, c, []string{})
	}

	keys, err := h.archives.ListArchives(c.Request().Context(), c.QueryParam("prefix"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list archives", err))
	}
	if keys == nil {
		keys = []string{}
	}
	return HandleSuccess(h.logger, c, keys)
}

// Process handles POST /clients/:id/process
// @Summary      Categorize one client record
// @Description  Runs AI categorization over the transcription and marks the record processed
// @Tags         Clients
// @Produce      json
// @Param        id   path      string  true  "Client ID (UUID)"
// @Success      200  {object}  entities.Client
// @Failure      404  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}  "Record already processed"
// @Failure      500  {object}  map[string]interface{}
// @Router       /clients/{id}/process [post]
func (h *Clients) Process(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid client id"))
	}

	record, err := h.service.Process(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, record)
}

// ProcessPending handles POST /clients/process-pending
// @Summary      Categorize pending records in a batch
// @Description  Processes up to limit unprocessed records, oldest first; per-record failures are reported and skipped
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        request  body      client.ProcessPendingRequest  false  "Batch options"
// @Success      200      {object}  client.ProcessReport
// @Failure      500      {object}  map[string]interface{}
// @Router       /clients/process-pending [post]
func (h *Clients) ProcessPending(c echo.Context) error {
	var req dtoclient.ProcessPendingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	report, err := h.service.ProcessPending(c.Request().Context(), req.Limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, report)
}
