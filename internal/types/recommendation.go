package types

// RecommendationCategory groups recommendations by urgency.
type RecommendationCategory string

const (
	RecImmediateAction RecommendationCategory = "immediate_action"
	RecWellness        RecommendationCategory = "wellness"
	RecLearning        RecommendationCategory = "learning"
)

var recCategoryRank = map[RecommendationCategory]int{
	RecImmediateAction: 0,
	RecWellness:        1,
	RecLearning:        2,
}

// Rank orders categories immediate_action < wellness < learning for
// tie-breaking; lower ranks sort first.
func (c RecommendationCategory) Rank() int {
	return recCategoryRank[c]
}

// Recommendation is one actionable suggestion keyed off a wellness state.
// ID is stable and deterministic for identical inputs.
type Recommendation struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Detail   string                 `json:"detail"`
	Category RecommendationCategory `json:"category"`
	Action   string                 `json:"action,omitempty"`
	Priority int                    `json:"priority"`
}
