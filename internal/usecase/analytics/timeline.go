package analytics

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/minhtran-dev/sales-insights/internal/adapter/dto/analytics"
)

// GetTimelineMetrics groups every record by UTC calendar day. The source is
// ordered by meeting date, so the buckets come out chronological without a
// final sort.
func (s *service) GetTimelineMetrics(ctx context.Context) ([]analytics.TimelinePoint, error) {
	records, err := s.repo.FindAllByMeetingDate(ctx)
	if err != nil {
		s.logger.Error("timeline metrics fetch failed", zap.Error(err))
		return nil, err
	}

	points := make([]analytics.TimelinePoint, 0)
	index := make(map[string]int)

	for _, r := range records {
		day := r.MeetingDate.UTC().Format("2006-01-02")
		i, ok := index[day]
		if !ok {
			i = len(points)
			index[day] = i
			points = append(points, analytics.TimelinePoint{Date: day})
		}
		points[i].Total++
		if r.Closed {
			points[i].Closed++
		}
	}
	return points, nil
}

// monthBucket accumulates one calendar month of processed records.
type monthBucket struct {
	total          int
	closed         int
	sentiments     *modeCounter
	industryCounts map[string]int
	industryOrder  []string
	// sentiment mode per industry within the month
	industrySentiments map[string]*modeCounter
}

// GetMonthlyTimeline groups processed records by UTC calendar month and
// computes per-month totals, a one-decimal conversion rate, the dominant
// sentiment and the three largest industries. Months are ascending.
func (s *service) GetMonthlyTimeline(ctx context.Context) ([]analytics.MonthlyTimelineBucket, error) {
	records, err := s.repo.FindProcessed(ctx)
	if err != nil {
		s.logger.Error("monthly timeline fetch failed", zap.Error(err))
		return nil, err
	}

	buckets := make(map[string]*monthBucket)
	months := make([]string, 0)

	for _, r := range records {
		month := r.MeetingDate.UTC().Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &monthBucket{
				sentiments:         newModeCounter(),
				industryCounts:     make(map[string]int),
				industrySentiments: make(map[string]*modeCounter),
			}
			buckets[month] = b
			months = append(months, month)
		}
		b.total++
		if r.Closed {
			b.closed++
		}
		if r.Sentiment != nil {
			b.sentiments.add(*r.Sentiment)
		}
		if r.Industry != nil {
			if _, known := b.industryCounts[*r.Industry]; !known {
				b.industryOrder = append(b.industryOrder, *r.Industry)
				b.industrySentiments[*r.Industry] = newModeCounter()
			}
			b.industryCounts[*r.Industry]++
			if r.Sentiment != nil {
				b.industrySentiments[*r.Industry].add(*r.Sentiment)
			}
		}
	}

	sort.Strings(months)

	result := make([]analytics.MonthlyTimelineBucket, 0, len(months))
	for _, month := range months {
		b := buckets[month]

		top := make([]analytics.MonthlyIndustry, 0, len(b.industryOrder))
		for _, name := range b.industryOrder {
			top = append(top, analytics.MonthlyIndustry{
				Industry:          name,
				Count:             b.industryCounts[name],
				DominantSentiment: b.industrySentiments[name].mode(),
			})
		}
		sort.SliceStable(top, func(i, j int) bool {
			return top[i].Count > top[j].Count
		})
		if len(top) > 3 {
			top = top[:3]
		}

		result = append(result, analytics.MonthlyTimelineBucket{
			Month:             month,
			TotalMeetings:     b.total,
			TotalClosed:       b.closed,
			ConversionRate:    conversionRate1(b.closed, b.total),
			DominantSentiment: b.sentiments.mode(),
			TopIndustries:     top,
		})
	}
	return result, nil
}

// modeCounter tracks the statistical mode of a string stream, first-seen
// winning ties, defaulting to "neutral" when nothing was observed.
type modeCounter struct {
	counts map[string]int
	order  []string
}

func newModeCounter() *modeCounter {
	return &modeCounter{counts: make(map[string]int)}
}

func (m *modeCounter) add(v string) {
	if _, ok := m.counts[v]; !ok {
		m.order = append(m.order, v)
	}
	m.counts[v]++
}

func (m *modeCounter) mode() string {
	best := ""
	bestCount := 0
	for _, v := range m.order {
		if m.counts[v] > bestCount {
			best = v
			bestCount = m.counts[v]
		}
	}
	if best == "" {
		return "neutral"
	}
	return best
}
