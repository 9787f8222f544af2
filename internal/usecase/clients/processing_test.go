package clients

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minhtran-dev/sales-insights/errors"
	"github.com/minhtran-dev/sales-insights/internal/domain/entities"
)

const categorizationJSON = `{
  "industry": "Healthcare",
  "sentiment": "positive",
  "urgency_level": "high",
  "discovery_source": "referral",
  "operation_size": "medium",
  "main_motivation": "Reduce patient no-shows",
  "interaction_volume": 120,
  "pain_points": ["High no-show rate", "Manual scheduling"],
  "technical_requirements": ["HL7 integration"]
}`

func unprocessedRecord(date time.Time) *entities.Client {
	return &entities.Client{
		ID:            uuid.New(),
		Name:          "Acme",
		Email:         "ana@acme.com",
		MeetingDate:   date,
		Transcription: "We talked about scheduling",
	}
}

func TestProcess_AppliesCategorization(t *testing.T) {
	record := unprocessedRecord(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	repo := &fakeRepo{records: []*entities.Client{record}}
	gen := &scriptedGenerator{responses: []string{"```json\n" + categorizationJSON + "\n```"}}
	inv := &fakeInvalidator{}
	svc := NewService(repo, gen, nil, inv, zap.NewNop())

	got, err := svc.Process(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !got.Processed || got.ProcessedAt == nil {
		t.Fatal("record not marked processed")
	}
	if got.Industry == nil || *got.Industry != "Healthcare" {
		t.Fatalf("Industry = %v", got.Industry)
	}
	if got.InteractionVolume == nil || *got.InteractionVolume != 120 {
		t.Fatalf("InteractionVolume = %v", got.InteractionVolume)
	}
	if len(got.PainPoints) != 2 || len(got.TechnicalRequirements) != 1 {
		t.Fatalf("lists = %v / %v", got.PainPoints, got.TechnicalRequirements)
	}
	if inv.calls != 1 {
		t.Fatalf("invalidator calls = %d, want 1", inv.calls)
	}
}

func TestProcess_AlreadyProcessedRejected(t *testing.T) {
	record := unprocessedRecord(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	record.Processed = true
	repo := &fakeRepo{records: []*entities.Client{record}}
	gen := &scriptedGenerator{responses: []string{categorizationJSON}}
	svc := NewService(repo, gen, nil, nil, zap.NewNop())

	_, err := svc.Process(context.Background(), record.ID)
	if err == nil {
		t.Fatal("expected rejection for an already processed record")
	}
	var appErr errors.AppError
	if !stderrors.As(err, &appErr) {
		t.Fatalf("error type = %T", err)
	}
	if appErr.HTTPCode != 409 {
		t.Fatalf("HTTPCode = %d, want 409", appErr.HTTPCode)
	}
	if gen.calls != 0 {
		t.Fatal("generator must not run for processed records")
	}
}

func TestProcess_BlankTranscriptionRejected(t *testing.T) {
	record := unprocessedRecord(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	record.Transcription = "   "
	repo := &fakeRepo{records: []*entities.Client{record}}
	gen := &scriptedGenerator{responses: []string{categorizationJSON}}
	svc := NewService(repo, gen, nil, nil, zap.NewNop())

	_, err := svc.Process(context.Background(), record.ID)
	if err == nil {
		t.Fatal("expected rejection for a blank transcription")
	}
	if gen.calls != 0 {
		t.Fatal("generator must not run without a transcription")
	}
}

func TestProcess_RetriesTransientFailure(t *testing.T) {
	record := unprocessedRecord(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	repo := &fakeRepo{records: []*entities.Client{record}}
	gen := &scriptedGenerator{
		errs:      []error{stderrors.New("rate limited"), nil},
		responses: []string{"", categorizationJSON},
	}
	svc := NewService(repo, gen, nil, nil, zap.NewNop())

	got, err := svc.Process(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !got.Processed {
		t.Fatal("record not marked processed")
	}
	if gen.calls != 2 {
		t.Fatalf("generator calls = %d, want 2", gen.calls)
	}
}

func TestProcess_PersistentFailureSurfaces(t *testing.T) {
	record := unprocessedRecord(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	repo := &fakeRepo{records: []*entities.Client{record}}
	gen := &scriptedGenerator{errs: []error{
		stderrors.New("down"), stderrors.New("down"),
		stderrors.New("down"), stderrors.New("down"),
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	svc := NewService(repo, gen, nil, nil, zap.NewNop())
	_, err := svc.Process(ctx, record.ID)
	if err == nil {
		t.Fatal("expected error after persistent generator failure")
	}
	var appErr errors.AppError
	if !stderrors.As(err, &appErr) {
		t.Fatalf("error type = %T", err)
	}
	if appErr.Code != errors.ErrorCode_AI_CATEGORIZATION_FAILED {
		t.Fatalf("Code = %v", appErr.Code)
	}
	if record.Processed {
		t.Fatal("record must stay unprocessed after a failed categorization")
	}
}

func TestProcessPending_ContinuesPastFailures(t *testing.T) {
	old := unprocessedRecord(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	old.Email = "old@x.com"
	mid := unprocessedRecord(time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC))
	mid.Email = "mid@x.com"
	blank := unprocessedRecord(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC))
	blank.Email = "blank@x.com"
	blank.Transcription = ""
	done := unprocessedRecord(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	done.Email = "done@x.com"
	done.Processed = true

	repo := &fakeRepo{records: []*entities.Client{mid, old, blank, done}}
	gen := &scriptedGenerator{responses: []string{categorizationJSON}}
	inv := &fakeInvalidator{}
	svc := NewService(repo, gen, nil, inv, zap.NewNop())

	report, err := svc.ProcessPending(context.Background(), 10)
	if err != nil {
		t.Fatalf("ProcessPending: %v", err)
	}
	if report.Requested != 3 {
		t.Fatalf("Requested = %d, want 3 pending records", report.Requested)
	}
	if report.Processed != 2 || report.Failed != 1 {
		t.Fatalf("report = %+v", report)
	}
	if len(report.FailedIDs) != 1 || report.FailedIDs[0] != blank.ID.String() {
		t.Fatalf("FailedIDs = %v", report.FailedIDs)
	}
	if inv.calls != 1 {
		t.Fatalf("invalidator calls = %d, want 1", inv.calls)
	}
}

func TestProcessPending_NothingPending(t *testing.T) {
	done := unprocessedRecord(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	done.Processed = true
	repo := &fakeRepo{records: []*entities.Client{done}}
	gen := &scriptedGenerator{responses: []string{categorizationJSON}}
	inv := &fakeInvalidator{}
	svc := NewService(repo, gen, nil, inv, zap.NewNop())

	report, err := svc.ProcessPending(context.Background(), 0)
	if err != nil {
		t.Fatalf("ProcessPending: %v", err)
	}
	if report.Requested != 0 || report.Processed != 0 || report.Failed != 0 {
		t.Fatalf("report = %+v", report)
	}
	if gen.calls != 0 {
		t.Fatal("generator must not run with nothing pending")
	}
	if inv.calls != 0 {
		t.Fatal("cache must not be flushed with nothing processed")
	}
}

func TestParseCategorization(t *testing.T) {
	got, err := parseCategorization(categorizationJSON)
	if err != nil {
		t.Fatalf("parseCategorization: %v", err)
	}
	if got.Sentiment == nil || *got.Sentiment != "positive" {
		t.Fatalf("Sentiment = %v", got.Sentiment)
	}
	if got.InteractionVolume == nil || *got.InteractionVolume != 120 {
		t.Fatalf("InteractionVolume = %v", got.InteractionVolume)
	}
}

func TestParseCategorization_NullsAndNoise(t *testing.T) {
	got, err := parseCategorization(`{
	  "industry": "null",
	  "sentiment": "  ",
	  "urgency_level": null,
	  "interaction_volume": -5,
	  "pain_points": ["  ", "real pain", ""],
	  "technical_requirements": null
	}`)
	if err != nil {
		t.Fatalf("parseCategorization: %v", err)
	}
	if got.Industry != nil {
		t.Fatalf("Industry = %v, literal \"null\" must map to nil", got.Industry)
	}
	if got.Sentiment != nil {
		t.Fatalf("Sentiment = %v, blank must map to nil", got.Sentiment)
	}
	if got.InteractionVolume != nil {
		t.Fatalf("InteractionVolume = %v, negative must be dropped", got.InteractionVolume)
	}
	if len(got.PainPoints) != 1 || got.PainPoints[0] != "real pain" {
		t.Fatalf("PainPoints = %v", got.PainPoints)
	}
}

func TestParseCategorization_Malformed(t *testing.T) {
	if _, err := parseCategorization("the client works in healthcare"); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
	if _, err := parseCategorization(""); err == nil {
		t.Fatal("expected error for empty output")
	}
}
