package insights

import (
	"encoding/json"
	"fmt"

	"github.com/minhtran-dev/sales-insights/internal/adapter/dto/insight"
	"github.com/minhtran-dev/sales-insights/pkg/ai"
)

// ParseVolumeConversionInsight decodes the model output for the
// volume-vs-conversion insight.
func ParseVolumeConversionInsight(content string) (*insight.VolumeConversionInsight, error) {
	var out insight.VolumeConversionInsight
	if err := decodeInto(content, &out); err != nil {
		return nil, err
	}
	if out.Analysis == "" {
		return nil, fmt.Errorf("insight response missing analysis")
	}
	out.Generated = true
	return &out, nil
}

// ParsePainPointsInsight decodes the model output for the pain-point insight.
func ParsePainPointsInsight(content string) (*insight.PainPointsInsight, error) {
	var out insight.PainPointsInsight
	if err := decodeInto(content, &out); err != nil {
		return nil, err
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("insight response missing summary")
	}
	out.Generated = true
	return &out, nil
}

// ParseClientPerceptionInsight decodes the model output for the perception
// insight.
func ParseClientPerceptionInsight(content string) (*insight.ClientPerceptionInsight, error) {
	var out insight.ClientPerceptionInsight
	if err := decodeInto(content, &out); err != nil {
		return nil, err
	}
	if out.OverallPerception == "" {
		return nil, fmt.Errorf("insight response missing overall_perception")
	}
	out.Generated = true
	return &out, nil
}

// ParseClientSolutionsInsight decodes the model output for the solutions
// insight.
func ParseClientSolutionsInsight(content string) (*insight.ClientSolutionsInsight, error) {
	var out insight.ClientSolutionsInsight
	if err := decodeInto(content, &out); err != nil {
		return nil, err
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("insight response missing summary")
	}
	out.Generated = true
	return &out, nil
}

// ParseTimelineInsight decodes the model output for the timeline insight.
func ParseTimelineInsight(content string) (*insight.TimelineInsight, error) {
	var out insight.TimelineInsight
	if err := decodeInto(content, &out); err != nil {
		return nil, err
	}
	if out.Narrative == "" {
		return nil, fmt.Errorf("insight response missing narrative")
	}
	out.Generated = true
	return &out, nil
}

func decodeInto(content string, dest interface{}) error {
	cleaned := ai.ExtractJSON(content)
	if cleaned == "" {
		return fmt.Errorf("insight response contains no JSON")
	}
	if err := json.Unmarshal([]byte(cleaned), dest); err != nil {
		return fmt.Errorf("decode insight response: %w", err)
	}
	return nil
}
