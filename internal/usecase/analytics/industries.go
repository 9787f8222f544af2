package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/minhtran-dev/sales-insights/internal/adapter/dto/analytics"
)

const (
	// minClientsForReliability excludes industries too small to rank.
	minClientsForReliability = 3
	// minQualifyingIndustries is the floor below which no percentile
	// segmentation is attempted at all.
	minQualifyingIndustries = 3
	// topIndustries caps both opportunity lists.
	topIndustries = 5

	percentileLow  = 0.33
	percentileHigh = 0.67
)

type industryStat struct {
	industry       string
	clients        int
	closed         int
	volume         int
	conversionRate float64
}

// collectIndustryStats folds processed records with a known industry into
// per-industry totals, preserving first-seen order.
func (s *service) collectIndustryStats(ctx context.Context) ([]*industryStat, error) {
	records, err := s.repo.FindProcessed(ctx)
	if err != nil {
		return nil, err
	}

	byIndustry := make(map[string]*industryStat)
	order := make([]string, 0)
	for _, r := range records {
		if r.Industry == nil {
			continue
		}
		st, ok := byIndustry[*r.Industry]
		if !ok {
			st = &industryStat{industry: *r.Industry}
			byIndustry[*r.Industry] = st
			order = append(order, *r.Industry)
		}
		st.clients++
		if r.Closed {
			st.closed++
		}
		if r.InteractionVolume != nil {
			st.volume += *r.InteractionVolume
		}
	}

	stats := make([]*industryStat, 0, len(order))
	for _, name := range order {
		st := byIndustry[name]
		st.conversionRate = conversionRate2(st.closed, st.clients)
		stats = append(stats, st)
	}
	return stats, nil
}

// GetIndustriesDetailedRanking returns per-industry totals sorted by client
// count descending.
func (s *service) GetIndustriesDetailedRanking(ctx context.Context) ([]analytics.IndustryRanking, error) {
	stats, err := s.collectIndustryStats(ctx)
	if err != nil {
		s.logger.Error("industry ranking fetch failed", zap.Error(err))
		return nil, err
	}

	ranking := make([]analytics.IndustryRanking, 0, len(stats))
	for _, st := range stats {
		avg := 0.0
		if st.clients > 0 {
			avg = math.Round(float64(st.volume)/float64(st.clients)*100) / 100
		}
		ranking = append(ranking, analytics.IndustryRanking{
			Industry:               st.industry,
			Clients:                st.clients,
			Closed:                 st.closed,
			ConversionRate:         st.conversionRate,
			TotalInteractionVolume: st.volume,
			AvgInteractionVolume:   avg,
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Clients > ranking[j].Clients
	})
	return ranking, nil
}

// GetNewIndustriesLastMonth returns industries whose earliest meeting falls
// within the last 30 days, meaning the industry has no older record at all.
func (s *service) GetNewIndustriesLastMonth(ctx context.Context) ([]analytics.NewIndustry, error) {
	records, err := s.repo.FindAllByMeetingDate(ctx)
	if err != nil {
		s.logger.Error("new industries fetch failed", zap.Error(err))
		return nil, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -30)

	type firstSeen struct {
		first time.Time
		count int
	}
	byIndustry := make(map[string]*firstSeen)
	order := make([]string, 0)

	for _, r := range records {
		if r.Industry == nil {
			continue
		}
		fs, ok := byIndustry[*r.Industry]
		if !ok {
			// records arrive in chronological order, so the first hit
			// is the industry's earliest meeting
			fs = &firstSeen{first: r.MeetingDate}
			byIndustry[*r.Industry] = fs
			order = append(order, *r.Industry)
		}
		fs.count++
	}

	result := make([]analytics.NewIndustry, 0)
	for _, name := range order {
		fs := byIndustry[name]
		if fs.first.Before(cutoff) {
			continue
		}
		result = append(result, analytics.NewIndustry{
			Industry:         name,
			Clients:          fs.count,
			FirstMeetingDate: fs.first.UTC().Format("2006-01-02"),
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Clients > result[j].Clients
	})
	return result, nil
}

// GetIndustriesToWatch segments reliable industries by percentile-based
// volume and conversion thresholds. The segments are threshold-based, not
// mutually exclusive: an industry can land in both lists or in neither.
func (s *service) GetIndustriesToWatch(ctx context.Context) (*analytics.IndustriesToWatchResponse, error) {
	stats, err := s.collectIndustryStats(ctx)
	if err != nil {
		s.logger.Error("industries to watch fetch failed", zap.Error(err))
		return nil, err
	}

	qualified := make([]*industryStat, 0, len(stats))
	for _, st := range stats {
		if st.clients >= minClientsForReliability {
			qualified = append(qualified, st)
		}
	}

	resp := &analytics.IndustriesToWatchResponse{
		ExpansionOpportunities: []analytics.WatchedIndustry{},
		StrategyNeeded:         []analytics.WatchedIndustry{},
	}
	if len(qualified) < minQualifyingIndustries {
		return resp, nil
	}

	clientCounts := make([]float64, 0, len(qualified))
	rates := make([]float64, 0, len(qualified))
	for _, st := range qualified {
		clientCounts = append(clientCounts, float64(st.clients))
		rates = append(rates, st.conversionRate)
	}
	sort.Float64s(clientCounts)
	sort.Float64s(rates)

	lowVolumeThreshold := percentileValue(clientCounts, percentileLow)
	highVolumeThreshold := percentileValue(clientCounts, percentileHigh)
	highConversionThreshold := conversionThreshold(rates, percentileHigh, true)
	lowConversionThreshold := conversionThreshold(rates, percentileLow, false)

	for _, st := range qualified {
		if float64(st.clients) <= lowVolumeThreshold && st.conversionRate >= highConversionThreshold {
			resp.ExpansionOpportunities = append(resp.ExpansionOpportunities, watched(st))
		}
		if float64(st.clients) >= highVolumeThreshold && st.conversionRate <= lowConversionThreshold {
			resp.StrategyNeeded = append(resp.StrategyNeeded, watched(st))
		}
	}

	sort.SliceStable(resp.ExpansionOpportunities, func(i, j int) bool {
		return resp.ExpansionOpportunities[i].ConversionRate > resp.ExpansionOpportunities[j].ConversionRate
	})
	sort.SliceStable(resp.StrategyNeeded, func(i, j int) bool {
		return resp.StrategyNeeded[i].Clients > resp.StrategyNeeded[j].Clients
	})
	if len(resp.ExpansionOpportunities) > topIndustries {
		resp.ExpansionOpportunities = resp.ExpansionOpportunities[:topIndustries]
	}
	if len(resp.StrategyNeeded) > topIndustries {
		resp.StrategyNeeded = resp.StrategyNeeded[:topIndustries]
	}
	return resp, nil
}

func watched(st *industryStat) analytics.WatchedIndustry {
	return analytics.WatchedIndustry{
		Industry:       st.industry,
		Clients:        st.clients,
		Closed:         st.closed,
		ConversionRate: st.conversionRate,
	}
}

// percentileValue indexes a sorted slice at floor(len*p).
func percentileValue(sorted []float64, p float64) float64 {
	idx := int(math.Floor(float64(len(sorted)) * p))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// conversionThreshold is percentileValue with a defensive fallback for an
// empty rate list: average plus/minus 5 clamped to [60,100] for the high
// threshold and [0,40] for the low one. Unreachable while callers guard on
// at least one qualifying industry, but kept in case that guard changes.
func conversionThreshold(sortedRates []float64, p float64, high bool) float64 {
	if len(sortedRates) == 0 {
		avg := 0.0
		if high {
			return clamp(avg+5, 60, 100)
		}
		return clamp(avg-5, 0, 40)
	}
	return percentileValue(sortedRates, p)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
