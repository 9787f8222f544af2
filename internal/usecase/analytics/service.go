package analytics

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/minhtran-dev/sales-insights/errors"
	"github.com/minhtran-dev/sales-insights/internal/adapter/dto/analytics"
	"github.com/minhtran-dev/sales-insights/internal/domain/entities"
	"github.com/minhtran-dev/sales-insights/internal/domain/repositories"
)

// Service defines the aggregation methods backing the analytics endpoints.
// All methods are read-only; storage errors are logged and propagated
// unchanged so the HTTP layer can turn them into 5xx responses.
type Service interface {
	GetOverview(ctx context.Context) (*analytics.OverviewResponse, error)
	GetMetricsByDimension(ctx context.Context, dimension string) ([]analytics.DimensionMetric, error)
	GetConversionAnalysis(ctx context.Context) (*analytics.ConversionAnalysisResponse, error)
	GetTopPainPoints(ctx context.Context) ([]analytics.PainPointAggregate, error)
	GetTopTechnicalRequirements(ctx context.Context) ([]analytics.TechnicalRequirementAggregate, error)
	GetVolumeVsConversion(ctx context.Context) ([]analytics.VolumeBucket, error)
	GetIndustriesDetailedRanking(ctx context.Context) ([]analytics.IndustryRanking, error)
	GetNewIndustriesLastMonth(ctx context.Context) ([]analytics.NewIndustry, error)
	GetIndustriesToWatch(ctx context.Context) (*analytics.IndustriesToWatchResponse, error)
	GetTimelineMetrics(ctx context.Context) ([]analytics.TimelinePoint, error)
	GetMonthlyTimeline(ctx context.Context) ([]analytics.MonthlyTimelineBucket, error)
}

type service struct {
	repo   repositories.ClientRepository
	logger *zap.Logger
}

// NewService constructs a new analytics service
func NewService(repo repositories.ClientRepository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// GetOverview computes global totals and conversion rate. The three counts
// are independent reads issued concurrently and awaited jointly.
func (s *service) GetOverview(ctx context.Context) (*analytics.OverviewResponse, error) {
	var total, closed, processed int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.CountTotal(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		closed, err = s.repo.CountClosed(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		processed, err = s.repo.CountProcessed(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("overview counts failed", zap.Error(err))
		return nil, err
	}

	return &analytics.OverviewResponse{
		TotalClients:       total,
		TotalClosed:        closed,
		TotalOpen:          total - closed,
		ConversionRate:     conversionRate2(int(closed), int(total)),
		ProcessedClients:   processed,
		UnprocessedClients: total - processed,
	}, nil
}

// GetMetricsByDimension groups processed records with a non-null value of the
// given dimension and computes per-group counts and conversion rate. The
// industry dimension additionally sums interaction volume per group.
func (s *service) GetMetricsByDimension(ctx context.Context, dimension string) ([]analytics.DimensionMetric, error) {
	if !entities.ValidDimension(dimension) {
		return nil, errors.ErrInvalidDimension(dimension)
	}

	records, err := s.repo.FindProcessed(ctx)
	if err != nil {
		s.logger.Error("dimension metrics fetch failed",
			zap.String("dimension", dimension), zap.Error(err))
		return nil, err
	}

	type group struct {
		count, closed, volume int
		hasVolume             bool
	}
	groups := make(map[string]*group)
	order := make([]string, 0)

	for _, r := range records {
		value, _ := r.DimensionValue(dimension)
		if value == nil {
			continue
		}
		g, ok := groups[*value]
		if !ok {
			g = &group{}
			groups[*value] = g
			order = append(order, *value)
		}
		g.count++
		if r.Closed {
			g.closed++
		}
		if r.InteractionVolume != nil {
			g.volume += *r.InteractionVolume
			g.hasVolume = true
		}
	}

	metrics := make([]analytics.DimensionMetric, 0, len(groups))
	for _, value := range order {
		g := groups[value]
		m := analytics.DimensionMetric{
			Value:          value,
			Count:          g.count,
			Closed:         g.closed,
			ConversionRate: conversionRate2(g.closed, g.count),
		}
		if dimension == entities.DimensionIndustry {
			volume := g.volume
			m.TotalInteractionVolume = &volume
		}
		metrics = append(metrics, m)
	}

	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Count > metrics[j].Count
	})
	return metrics, nil
}

// GetConversionAnalysis runs the five dimension breakdowns concurrently and
// returns them as one response. Any failing branch fails the whole call.
func (s *service) GetConversionAnalysis(ctx context.Context) (*analytics.ConversionAnalysisResponse, error) {
	var resp analytics.ConversionAnalysisResponse

	g, gctx := errgroup.WithContext(ctx)
	for _, d := range []struct {
		dimension string
		dest      *[]analytics.DimensionMetric
	}{
		{entities.DimensionIndustry, &resp.Industry},
		{entities.DimensionSentiment, &resp.Sentiment},
		{entities.DimensionUrgencyLevel, &resp.UrgencyLevel},
		{entities.DimensionDiscoverySource, &resp.DiscoverySource},
		{entities.DimensionOperationSize, &resp.OperationSize},
	} {
		d := d
		g.Go(func() error {
			metrics, err := s.GetMetricsByDimension(gctx, d.dimension)
			if err != nil {
				return err
			}
			*d.dest = metrics
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("conversion analysis failed", zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

// conversionRate2 returns closed/total*100 rounded to two decimals, 0 when
// total is zero.
func conversionRate2(closed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(closed)/float64(total)*100*100) / 100
}

// conversionRate1 rounds to one decimal. The monthly timeline summary keeps
// this coarser rounding; everything else uses two decimals.
func conversionRate1(closed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(closed)/float64(total)*100*10) / 10
}
