package clients

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minhtran-dev/sales-insights/errors"
	dtoclient "github.com/minhtran-dev/sales-insights/internal/adapter/dto/client"
	"github.com/minhtran-dev/sales-insights/internal/domain/entities"
)

// csvColumns are the expected header names, in any order. phone and
// assigned_seller are optional columns.
var csvRequiredColumns = []string{"name", "email", "meeting_date", "closed", "transcription"}

var meetingDateLayouts = []string{"2006-01-02", time.RFC3339}

// ImportCSV archives the uploaded file, parses it and bulk-inserts the valid
// rows. Rows that fail validation are collected into the report; rows that
// collide with an existing (email, meeting_date) pair are counted as
// duplicates. The import only errors as a whole when the file itself is
// unreadable or the insert fails.
func (s *service) ImportCSV(ctx context.Context, filename string, data []byte) (*dtoclient.ImportReport, error) {
	report := &dtoclient.ImportReport{}

	if s.archiver != nil {
		key, err := s.archiver.ArchiveCSV(ctx, filename, data)
		if err != nil {
			s.logger.Warn("csv archive failed, continuing with import",
				zap.String("filename", filename), zap.Error(err))
		} else {
			report.ArchiveKey = key
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.ErrCSVInvalidFile(fmt.Errorf("read header: %w", err))
	}
	columns, err := mapColumns(header)
	if err != nil {
		return nil, errors.ErrCSVInvalidFile(err)
	}

	var records []*entities.Client
	for row := 2; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.TotalRows++
			report.Failed++
			report.Errors = append(report.Errors, dtoclient.RowError{Row: row, Reason: err.Error()})
			continue
		}
		report.TotalRows++

		record, err := parseRow(columns, fields)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, dtoclient.RowError{Row: row, Reason: err.Error()})
			continue
		}
		records = append(records, record)
	}

	if len(records) > 0 {
		inserted, err := s.repo.CreateBatch(ctx, records)
		if err != nil {
			return nil, errors.ErrCSVImportFailed(err)
		}
		report.Imported = int(inserted)
		report.Duplicates = len(records) - int(inserted)
	}

	s.logger.Info("csv import finished",
		zap.String("filename", filename),
		zap.Int("total_rows", report.TotalRows),
		zap.Int("imported", report.Imported),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("failed", report.Failed))

	if report.Imported > 0 {
		s.invalidate(ctx)
	}
	return report, nil
}

// mapColumns resolves header names to field indexes, case-insensitively.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range csvRequiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	return columns, nil
}

func parseRow(columns map[string]int, fields []string) (*entities.Client, error) {
	get := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[idx])
	}

	name := get("name")
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email := get("email")
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email %q", email)
	}
	transcription := get("transcription")
	if transcription == "" {
		return nil, fmt.Errorf("transcription is required")
	}

	meetingDate, err := parseMeetingDate(get("meeting_date"))
	if err != nil {
		return nil, err
	}
	closed, err := parseClosed(get("closed"))
	if err != nil {
		return nil, err
	}

	record := &entities.Client{
		ID:            uuid.New(),
		Name:          name,
		Email:         strings.ToLower(email),
		MeetingDate:   meetingDate,
		Closed:        closed,
		Transcription: transcription,
	}
	if phone := get("phone"); phone != "" {
		record.Phone = &phone
	}
	if seller := get("assigned_seller"); seller != "" {
		record.AssignedSeller = &seller
	}
	return record, nil
}

func parseMeetingDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("meeting_date is required")
	}
	for _, layout := range meetingDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid meeting_date %q", raw)
}

func parseClosed(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "y":
		return true, nil
	case "false", "0", "no", "n", "":
		return false, nil
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		return v, nil
	}
	return false, fmt.Errorf("invalid closed value %q", raw)
}
