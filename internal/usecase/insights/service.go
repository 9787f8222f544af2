package insights

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/minhtran-dev/sales-insights/internal/adapter/dto/insight"
	"github.com/minhtran-dev/sales-insights/internal/domain/repositories"
	"github.com/minhtran-dev/sales-insights/internal/usecase/analytics"
)

// Fallback copy returned when an insight cannot be produced. The insight
// endpoints always answer 200 with one of these instead of erroring out.
const (
	msgNoData      = "Not enough data to generate this insight yet. Upload and process client meetings to get started."
	msgUnavailable = "Unable to generate this insight right now. Please try again later."

	perceptionSampleSize = 20
	solutionsSampleSize  = 30
)

// TextGenerator is the external text-generation capability. It fails by
// returning an error; the caller decides what to do with that.
type TextGenerator interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Cache stores rendered insights between uploads. Implementations must not
// fail loudly; a miss and an error look the same to this service.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

// Service produces the five narrative insights for the dashboard. Failures are
// absorbed: every method returns a usable DTO, never an error.
type Service interface {
	VolumeVsConversion(ctx context.Context) *insight.VolumeConversionInsight
	PainPoints(ctx context.Context) *insight.PainPointsInsight
	ClientPerception(ctx context.Context) *insight.ClientPerceptionInsight
	ClientSolutions(ctx context.Context) *insight.ClientSolutionsInsight
	Timeline(ctx context.Context) *insight.TimelineInsight
	// InvalidateCache drops cached insights after data mutations.
	InvalidateCache(ctx context.Context)
}

type service struct {
	analytics analytics.Service
	repo      repositories.ClientRepository
	generator TextGenerator
	cache     Cache
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewService constructs a new insight service. cache may be nil to disable
// caching entirely.
func NewService(
	analyticsSvc analytics.Service,
	repo repositories.ClientRepository,
	generator TextGenerator,
	cache Cache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) Service {
	return &service{
		analytics: analyticsSvc,
		repo:      repo,
		generator: generator,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

var cacheKeys = []string{
	"insight:volume-vs-conversion",
	"insight:pain-points",
	"insight:client-perception",
	"insight:client-solutions",
	"insight:timeline",
}

// VolumeVsConversion narrates the relation between interaction volume and
// closing rate.
func (s *service) VolumeVsConversion(ctx context.Context) *insight.VolumeConversionInsight {
	const key = "insight:volume-vs-conversion"
	out := &insight.VolumeConversionInsight{}
	if s.cachedInto(ctx, key, out) {
		return out
	}

	buckets, err := s.analytics.GetVolumeVsConversion(ctx)
	if err != nil {
		s.logger.Error("volume insight aggregation failed", zap.Error(err))
		return &insight.VolumeConversionInsight{Analysis: msgUnavailable}
	}
	populated := 0
	for _, b := range buckets {
		populated += b.Count
	}
	if populated == 0 {
		return &insight.VolumeConversionInsight{Analysis: msgNoData}
	}

	content, err := s.generate(ctx, volumeConversionSystemPrompt, buckets)
	if err != nil {
		s.logger.Error("volume insight generation failed", zap.Error(err))
		return &insight.VolumeConversionInsight{Analysis: msgUnavailable}
	}
	parsed, err := ParseVolumeConversionInsight(content)
	if err != nil {
		s.logger.Error("volume insight parse failed", zap.Error(err))
		return &insight.VolumeConversionInsight{Analysis: msgUnavailable}
	}
	s.store(ctx, key, parsed)
	return parsed
}

// PainPoints narrates the dominant pain-point themes.
func (s *service) PainPoints(ctx context.Context) *insight.PainPointsInsight {
	const key = "insight:pain-points"
	out := &insight.PainPointsInsight{}
	if s.cachedInto(ctx, key, out) {
		return out
	}

	aggregates, err := s.analytics.GetTopPainPoints(ctx)
	if err != nil {
		s.logger.Error("pain point insight aggregation failed", zap.Error(err))
		return &insight.PainPointsInsight{Summary: msgUnavailable}
	}
	if len(aggregates) == 0 {
		return &insight.PainPointsInsight{Summary: msgNoData}
	}

	content, err := s.generate(ctx, painPointsSystemPrompt, aggregates)
	if err != nil {
		s.logger.Error("pain point insight generation failed", zap.Error(err))
		return &insight.PainPointsInsight{Summary: msgUnavailable}
	}
	parsed, err := ParsePainPointsInsight(content)
	if err != nil {
		s.logger.Error("pain point insight parse failed", zap.Error(err))
		return &insight.PainPointsInsight{Summary: msgUnavailable}
	}
	s.store(ctx, key, parsed)
	return parsed
}

// perceptionSample is the record projection fed to the perception prompt.
type perceptionSample struct {
	Transcription string  `json:"transcription"`
	Closed        bool    `json:"closed"`
	Sentiment     *string `json:"sentiment"`
}

// ClientPerception summarizes how clients talk in their most recent meetings.
func (s *service) ClientPerception(ctx context.Context) *insight.ClientPerceptionInsight {
	const key = "insight:client-perception"
	out := &insight.ClientPerceptionInsight{}
	if s.cachedInto(ctx, key, out) {
		return out
	}

	records, err := s.repo.FindProcessed(ctx)
	if err != nil {
		s.logger.Error("perception insight fetch failed", zap.Error(err))
		return &insight.ClientPerceptionInsight{OverallPerception: msgUnavailable}
	}

	samples := make([]perceptionSample, 0, perceptionSampleSize)
	for _, r := range records {
		if !r.HasTranscription() {
			continue
		}
		samples = append(samples, perceptionSample{
			Transcription: r.Transcription,
			Closed:        r.Closed,
			Sentiment:     r.Sentiment,
		})
		if len(samples) == perceptionSampleSize {
			break
		}
	}
	if len(samples) == 0 {
		return &insight.ClientPerceptionInsight{OverallPerception: msgNoData}
	}

	content, err := s.generate(ctx, clientPerceptionSystemPrompt, samples)
	if err != nil {
		s.logger.Error("perception insight generation failed", zap.Error(err))
		return &insight.ClientPerceptionInsight{OverallPerception: msgUnavailable}
	}
	parsed, err := ParseClientPerceptionInsight(content)
	if err != nil {
		s.logger.Error("perception insight parse failed", zap.Error(err))
		return &insight.ClientPerceptionInsight{OverallPerception: msgUnavailable}
	}
	s.store(ctx, key, parsed)
	return parsed
}

// solutionSample is the record projection fed to the solutions prompt.
type solutionSample struct {
	Transcription         string   `json:"transcription"`
	Closed                bool     `json:"closed"`
	MainMotivation        *string  `json:"main_motivation"`
	TechnicalRequirements []string `json:"technical_requirements"`
}

// ClientSolutions suggests solution angles from motivations and requirements.
func (s *service) ClientSolutions(ctx context.Context) *insight.ClientSolutionsInsight {
	const key = "insight:client-solutions"
	out := &insight.ClientSolutionsInsight{}
	if s.cachedInto(ctx, key, out) {
		return out
	}

	records, err := s.repo.FindProcessed(ctx)
	if err != nil {
		s.logger.Error("solutions insight fetch failed", zap.Error(err))
		return &insight.ClientSolutionsInsight{Summary: msgUnavailable}
	}

	samples := make([]solutionSample, 0, solutionsSampleSize)
	for _, r := range records {
		samples = append(samples, solutionSample{
			Transcription:         r.Transcription,
			Closed:                r.Closed,
			MainMotivation:        r.MainMotivation,
			TechnicalRequirements: r.TechnicalRequirements,
		})
		if len(samples) == solutionsSampleSize {
			break
		}
	}
	if len(samples) == 0 {
		return &insight.ClientSolutionsInsight{Summary: msgNoData}
	}

	content, err := s.generate(ctx, clientSolutionsSystemPrompt, samples)
	if err != nil {
		s.logger.Error("solutions insight generation failed", zap.Error(err))
		return &insight.ClientSolutionsInsight{Summary: msgUnavailable}
	}
	parsed, err := ParseClientSolutionsInsight(content)
	if err != nil {
		s.logger.Error("solutions insight parse failed", zap.Error(err))
		return &insight.ClientSolutionsInsight{Summary: msgUnavailable}
	}
	s.store(ctx, key, parsed)
	return parsed
}

// Timeline narrates the monthly conversion trend.
func (s *service) Timeline(ctx context.Context) *insight.TimelineInsight {
	const key = "insight:timeline"
	out := &insight.TimelineInsight{}
	if s.cachedInto(ctx, key, out) {
		return out
	}

	months, err := s.analytics.GetMonthlyTimeline(ctx)
	if err != nil {
		s.logger.Error("timeline insight aggregation failed", zap.Error(err))
		return &insight.TimelineInsight{Narrative: msgUnavailable}
	}
	if len(months) == 0 {
		return &insight.TimelineInsight{Narrative: msgNoData}
	}

	content, err := s.generate(ctx, timelineSystemPrompt, months)
	if err != nil {
		s.logger.Error("timeline insight generation failed", zap.Error(err))
		return &insight.TimelineInsight{Narrative: msgUnavailable}
	}
	parsed, err := ParseTimelineInsight(content)
	if err != nil {
		s.logger.Error("timeline insight parse failed", zap.Error(err))
		return &insight.TimelineInsight{Narrative: msgUnavailable}
	}
	s.store(ctx, key, parsed)
	return parsed
}

// InvalidateCache drops every cached insight.
func (s *service) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, cacheKeys...)
}

// generate marshals the payload and sends it with the given system prompt.
func (s *service) generate(ctx context.Context, systemPrompt string, payload interface{}) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return s.generator.Chat(ctx, systemPrompt, string(b))
}

// cachedInto loads a cached insight into dest, reporting whether it hit.
func (s *service) cachedInto(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.Warn("dropping unreadable cached insight", zap.String("key", key), zap.Error(err))
		s.cache.Delete(ctx, key)
		return false
	}
	return true
}

// store caches a freshly generated insight, best effort.
func (s *service) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, string(b), s.cacheTTL)
}
