package clients

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minhtran-dev/sales-insights/errors"
	dtoclient "github.com/minhtran-dev/sales-insights/internal/adapter/dto/client"
	"github.com/minhtran-dev/sales-insights/internal/domain/entities"
)

func seedRecord(name, email, transcription string) *entities.Client {
	return &entities.Client{
		ID:            uuid.New(),
		Name:          name,
		Email:         email,
		MeetingDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Transcription: transcription,
	}
}

func TestCreate_PersistsAndInvalidates(t *testing.T) {
	repo := &fakeRepo{}
	inv := &fakeInvalidator{}
	svc := NewService(repo, &scriptedGenerator{}, nil, inv, zap.NewNop())

	phone := "+34 600 000 000"
	loc := time.FixedZone("CET", 3600)
	created, err := svc.Create(context.Background(), &dtoclient.CreateClientRequest{
		Name:          "Maria Lopez",
		Email:         "maria@acme.io",
		Phone:         &phone,
		MeetingDate:   time.Date(2024, 3, 5, 10, 0, 0, 0, loc),
		Closed:        true,
		Transcription: "We discussed onboarding timelines.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if created.MeetingDate.Location() != time.UTC {
		t.Fatalf("meeting date not normalized to UTC: %v", created.MeetingDate)
	}
	if len(repo.records) != 1 {
		t.Fatalf("records = %d, want 1", len(repo.records))
	}
	if inv.calls != 1 {
		t.Fatalf("invalidator calls = %d, want 1", inv.calls)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, &scriptedGenerator{}, nil, nil, zap.NewNop())

	_, err := svc.GetByID(context.Background(), uuid.New())
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.HTTPCode != 404 {
		t.Fatalf("HTTPCode = %d, want 404", appErr.HTTPCode)
	}
}

func TestUpdate_AppliesOnlyProvidedFields(t *testing.T) {
	record := seedRecord("Old Name", "old@acme.io", "Some transcription.")
	repo := &fakeRepo{records: []*entities.Client{record}}
	inv := &fakeInvalidator{}
	svc := NewService(repo, &scriptedGenerator{}, nil, inv, zap.NewNop())

	closed := true
	name := "New Name"
	updated, err := svc.Update(context.Background(), record.ID, &dtoclient.UpdateClientRequest{
		Name:   &name,
		Closed: &closed,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "New Name" {
		t.Fatalf("Name = %q", updated.Name)
	}
	if !updated.Closed {
		t.Fatal("Closed not applied")
	}
	if updated.Email != "old@acme.io" {
		t.Fatalf("Email changed unexpectedly: %q", updated.Email)
	}
	if updated.Transcription != "Some transcription." {
		t.Fatalf("Transcription changed unexpectedly: %q", updated.Transcription)
	}
	if inv.calls != 1 {
		t.Fatalf("invalidator calls = %d, want 1", inv.calls)
	}
}

func TestUpdate_UnknownIDPropagatesNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, &scriptedGenerator{}, nil, &fakeInvalidator{}, zap.NewNop())

	name := "Whoever"
	_, err := svc.Update(context.Background(), uuid.New(), &dtoclient.UpdateClientRequest{Name: &name})
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.HTTPCode != 404 {
		t.Fatalf("expected 404 AppError, got %v", err)
	}
}

func TestList_DefaultsPageSize(t *testing.T) {
	repo := &fakeRepo{records: []*entities.Client{seedRecord("A", "a@b.io", "t")}}
	svc := NewService(repo, &scriptedGenerator{}, nil, nil, zap.NewNop())

	records, total, err := svc.List(context.Background(), &dtoclient.ListClientsRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(records) != 1 {
		t.Fatalf("total = %d, records = %d", total, len(records))
	}
}

func TestDeleteAll_ClearsAndInvalidates(t *testing.T) {
	repo := &fakeRepo{records: []*entities.Client{seedRecord("A", "a@b.io", "t")}}
	inv := &fakeInvalidator{}
	svc := NewService(repo, &scriptedGenerator{}, nil, inv, zap.NewNop())

	if err := svc.DeleteAll(context.Background()); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatalf("records = %d, want 0", len(repo.records))
	}
	if inv.calls != 1 {
		t.Fatalf("invalidator calls = %d, want 1", inv.calls)
	}
}
