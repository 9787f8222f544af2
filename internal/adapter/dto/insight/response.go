package insight

// VolumeConversionInsight is the narrative for the volume-vs-conversion chart
type VolumeConversionInsight struct {
	Analysis        string   `json:"analysis"`
	BestPerforming  string   `json:"best_performing_range,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Generated       bool     `json:"generated"`
}

// PainPointsInsight is the narrative for the pain-point frequency chart
type PainPointsInsight struct {
	Summary         string   `json:"summary"`
	KeyThemes       []string `json:"key_themes,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Generated       bool     `json:"generated"`
}

// ClientPerceptionInsight summarizes how clients talk about the product
type ClientPerceptionInsight struct {
	OverallPerception string   `json:"overall_perception"`
	PositiveSignals   []string `json:"positive_signals,omitempty"`
	Concerns          []string `json:"concerns,omitempty"`
	Generated         bool     `json:"generated"`
}

// ClientSolutionsInsight suggests solutions based on motivations and requirements
type ClientSolutionsInsight struct {
	Summary            string   `json:"summary"`
	SuggestedSolutions []string `json:"suggested_solutions,omitempty"`
	Generated          bool     `json:"generated"`
}

// TimelineInsight is the narrative for monthly conversion trends
type TimelineInsight struct {
	Narrative  string   `json:"narrative"`
	Trend      string   `json:"trend,omitempty"` // improving, declining, stable
	Highlights []string `json:"highlights,omitempty"`
	Generated  bool     `json:"generated"`
}
