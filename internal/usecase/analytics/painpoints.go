package analytics

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/minhtran-dev/sales-insights/internal/adapter/dto/analytics"
)

const topAggregates = 10

// painGroup accumulates one normalization-equivalence class of pain points.
type painGroup struct {
	count    int
	closed   int
	variants map[string]int // trimmed raw form -> occurrences
	seen     []string       // first-seen order of variants, for tie-breaks
}

// GetTopPainPoints groups pain points of processed records by their normalized
// form, picks a canonical display spelling per group and returns the ten most
// frequent groups with their conversion rate.
func (s *service) GetTopPainPoints(ctx context.Context) ([]analytics.PainPointAggregate, error) {
	records, err := s.repo.FindProcessed(ctx)
	if err != nil {
		s.logger.Error("pain points fetch failed", zap.Error(err))
		return nil, err
	}

	groups := make(map[string]*painGroup)
	order := make([]string, 0)

	for _, r := range records {
		for _, raw := range r.PainPoints {
			key := normalizePainPoint(raw)
			if key == "" {
				continue
			}
			g, ok := groups[key]
			if !ok {
				g = &painGroup{variants: make(map[string]int)}
				groups[key] = g
				order = append(order, key)
			}
			variant := strings.TrimSpace(raw)
			if _, known := g.variants[variant]; !known {
				g.seen = append(g.seen, variant)
			}
			g.variants[variant]++
			g.count++
			if r.Closed {
				g.closed++
			}
		}
	}

	aggregates := make([]analytics.PainPointAggregate, 0, len(groups))
	for _, key := range order {
		g := groups[key]
		aggregates = append(aggregates, analytics.PainPointAggregate{
			PainPoint:      g.canonical(),
			Count:          g.count,
			ConversionRate: conversionRate2(g.closed, g.count),
		})
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].Count > aggregates[j].Count
	})
	if len(aggregates) > topAggregates {
		aggregates = aggregates[:topAggregates]
	}
	return aggregates, nil
}

// GetTopTechnicalRequirements groups requirement strings by exact match and
// returns the ten most frequent. Requirements are not outcome-linked, so no
// conversion rate is computed here.
func (s *service) GetTopTechnicalRequirements(ctx context.Context) ([]analytics.TechnicalRequirementAggregate, error) {
	records, err := s.repo.FindProcessed(ctx)
	if err != nil {
		s.logger.Error("technical requirements fetch failed", zap.Error(err))
		return nil, err
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range records {
		for _, req := range r.TechnicalRequirements {
			if _, ok := counts[req]; !ok {
				order = append(order, req)
			}
			counts[req]++
		}
	}

	aggregates := make([]analytics.TechnicalRequirementAggregate, 0, len(counts))
	for _, req := range order {
		aggregates = append(aggregates, analytics.TechnicalRequirementAggregate{
			Requirement: req,
			Count:       counts[req],
		})
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].Count > aggregates[j].Count
	})
	if len(aggregates) > topAggregates {
		aggregates = aggregates[:topAggregates]
	}
	return aggregates, nil
}

// canonical returns the display form of the group: the most frequent raw
// variant, first-seen winning ties, with the first letter upper-cased.
// Upper-casing is applied even when the winning variant already carries
// internal capitalization ("slow CRM" renders as "Slow CRM"), so the result
// is not always byte-identical to the raw mode. Intentional; keeps display
// forms consistent across groups.
func (g *painGroup) canonical() string {
	best := ""
	bestCount := 0
	for _, variant := range g.seen {
		if g.variants[variant] > bestCount {
			best = variant
			bestCount = g.variants[variant]
		}
	}
	return capitalizeFirst(best)
}

// normalizePainPoint builds the grouping key: lowercase, trimmed, punctuation
// stripped and whitespace runs collapsed to a single space.
func normalizePainPoint(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
