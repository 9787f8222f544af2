package analytics

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/minhtran-dev/sales-insights/internal/adapter/dto/analytics"
)

// volumeRange is one fixed, inclusive interaction-volume range.
type volumeRange struct {
	label    string
	min, max int
}

var volumeRanges = []volumeRange{
	{"0-50", 0, 50},
	{"51-100", 51, 100},
	{"101-200", 101, 200},
	{"201-300", 201, 300},
	{"301+", 301, math.MaxInt},
}

// GetVolumeVsConversion partitions processed records with a known interaction
// volume into the fixed ranges and computes a conversion rate per range. All
// five ranges are always returned, empty ones with a zero rate.
func (s *service) GetVolumeVsConversion(ctx context.Context) ([]analytics.VolumeBucket, error) {
	records, err := s.repo.FindProcessed(ctx)
	if err != nil {
		s.logger.Error("volume buckets fetch failed", zap.Error(err))
		return nil, err
	}

	counts := make([]int, len(volumeRanges))
	closed := make([]int, len(volumeRanges))

	for _, r := range records {
		if r.InteractionVolume == nil {
			continue
		}
		v := *r.InteractionVolume
		for i, rng := range volumeRanges {
			if v >= rng.min && v <= rng.max {
				counts[i]++
				if r.Closed {
					closed[i]++
				}
				break
			}
		}
	}

	buckets := make([]analytics.VolumeBucket, len(volumeRanges))
	for i, rng := range volumeRanges {
		buckets[i] = analytics.VolumeBucket{
			Range:          rng.label,
			Count:          counts[i],
			Closed:         closed[i],
			ConversionRate: conversionRate2(closed[i], counts[i]),
		}
	}
	return buckets, nil
}
