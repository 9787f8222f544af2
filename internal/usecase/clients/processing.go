package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minhtran-dev/sales-insights/errors"
	dtoclient "github.com/minhtran-dev/sales-insights/internal/adapter/dto/client"
	"github.com/minhtran-dev/sales-insights/internal/domain/entities"
	"github.com/minhtran-dev/sales-insights/pkg/ai"
	"github.com/minhtran-dev/sales-insights/pkg/jobcontext"
)

const (
	categorizationMaxRetries   = 3
	defaultProcessPendingLimit = 50
	processPendingTimeout      = 10 * time.Minute
)

const categorizationSystemPrompt = `You are a sales meeting analyst. You receive the transcription of a client meeting. Extract structured attributes of the client and the conversation.

Answer ONLY with a JSON object in this exact shape:
{
  "industry": "the client's industry, e.g. Healthcare, Fintech, Retail, or null if unclear",
  "sentiment": "positive|neutral|negative",
  "urgency_level": "low|medium|high",
  "discovery_source": "how the client found us, or null if not mentioned",
  "operation_size": "small|medium|large, or null if unclear",
  "main_motivation": "one sentence on why the client is interested, or null",
  "interaction_volume": estimated monthly customer interactions as a number, or null,
  "pain_points": ["short pain point", "..."],
  "technical_requirements": ["short requirement", "..."]
}
Use null for anything the transcription does not support. Do not include markdown, explanations, or any text outside the JSON object.`

// categorizationResult mirrors the JSON the model is asked to produce.
type categorizationResult struct {
	Industry              *string  `json:"industry"`
	Sentiment             *string  `json:"sentiment"`
	UrgencyLevel          *string  `json:"urgency_level"`
	DiscoverySource       *string  `json:"discovery_source"`
	OperationSize         *string  `json:"operation_size"`
	MainMotivation        *string  `json:"main_motivation"`
	InteractionVolume     *float64 `json:"interaction_volume"`
	PainPoints            []string `json:"pain_points"`
	TechnicalRequirements []string `json:"technical_requirements"`
}

// Process categorizes a single record. Already-processed records are rejected;
// records are never re-categorized.
func (s *service) Process(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Processed {
		return nil, errors.ErrClientAlreadyProcessed(id.String())
	}
	if !record.HasTranscription() {
		return nil, errors.ErrInvalidArgument("record has no transcription to categorize")
	}

	cat, err := s.categorize(ctx, record.Transcription)
	if err != nil {
		s.logger.Error("categorization failed",
			zap.String("client_id", id.String()), zap.Error(err))
		return nil, errors.ErrCategorizationFailed(err)
	}

	record.ApplyCategorization(*cat)
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("client record processed", zap.String("client_id", id.String()))
	s.invalidate(ctx)
	return record, nil
}

// ProcessPending categorizes up to limit unprocessed records, oldest first.
// Per-record failures are reported and the batch keeps going.
func (s *service) ProcessPending(ctx context.Context, limit int) (*dtoclient.ProcessReport, error) {
	if limit < 1 {
		limit = defaultProcessPendingLimit
	}

	ctx, cancel := jobcontext.JobBegin(ctx, "process-pending", processPendingTimeout)
	defer cancel()
	if jobID, ok := jobcontext.GetJobID(ctx); ok {
		s.logger.Info("starting pending batch",
			zap.String("job_id", jobID.String()), zap.Int("limit", limit))
	}

	pending, err := s.repo.FindUnprocessed(ctx, limit)
	if err != nil {
		return nil, err
	}

	report := &dtoclient.ProcessReport{Requested: len(pending)}
	for _, record := range pending {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !record.HasTranscription() {
			report.Failed++
			report.FailedIDs = append(report.FailedIDs, record.ID.String())
			continue
		}

		cat, err := s.categorize(ctx, record.Transcription)
		if err != nil {
			s.logger.Warn("skipping record after categorization failure",
				zap.String("client_id", record.ID.String()), zap.Error(err))
			report.Failed++
			report.FailedIDs = append(report.FailedIDs, record.ID.String())
			continue
		}

		record.ApplyCategorization(*cat)
		if err := s.repo.Update(ctx, record); err != nil {
			s.logger.Warn("skipping record after update failure",
				zap.String("client_id", record.ID.String()), zap.Error(err))
			report.Failed++
			report.FailedIDs = append(report.FailedIDs, record.ID.String())
			continue
		}
		report.Processed++
	}

	s.logger.Info("pending batch processed",
		zap.Int("requested", report.Requested),
		zap.Int("processed", report.Processed),
		zap.Int("failed", report.Failed))

	if report.Processed > 0 {
		s.invalidate(ctx)
	}
	return report, nil
}

// categorize asks the model for a categorization, retrying transient failures
// with exponential backoff.
func (s *service) categorize(ctx context.Context, transcription string) (*entities.Categorization, error) {
	var content string
	operation := func() error {
		var err error
		content, err = s.generator.Chat(ctx, categorizationSystemPrompt, transcription)
		if err != nil && !jobcontext.IsRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), categorizationMaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return parseCategorization(content)
}

// parseCategorization decodes the model output into a Categorization.
func parseCategorization(content string) (*entities.Categorization, error) {
	cleaned := ai.ExtractJSON(content)
	if cleaned == "" {
		return nil, fmt.Errorf("categorization response contains no JSON")
	}

	var result categorizationResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("decode categorization response: %w", err)
	}

	cat := &entities.Categorization{
		Industry:              normalizeField(result.Industry),
		Sentiment:             normalizeField(result.Sentiment),
		UrgencyLevel:          normalizeField(result.UrgencyLevel),
		DiscoverySource:       normalizeField(result.DiscoverySource),
		OperationSize:         normalizeField(result.OperationSize),
		MainMotivation:        normalizeField(result.MainMotivation),
		PainPoints:            cleanList(result.PainPoints),
		TechnicalRequirements: cleanList(result.TechnicalRequirements),
	}
	if result.InteractionVolume != nil && *result.InteractionVolume >= 0 {
		v := int(*result.InteractionVolume)
		cat.InteractionVolume = &v
	}
	return cat, nil
}

// normalizeField trims a model-produced string and maps blanks and the literal
// "null" to nil.
func normalizeField(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return nil
	}
	return &trimmed
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
