package recommend

import (
	"sort"

	"github.com/mantra-ai/mindscore/internal/types"
)

// Engine evaluates a rule table against wellness states.
type Engine struct {
	rules []Rule
}

// NewEngine returns an Engine over the given rules; nil means the default
// table.
func NewEngine(rules []Rule) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// Recommend evaluates every rule against the state. All matching rules
// fire; duplicates by ID keep the higher priority; the result is ordered by
// priority descending, then category urgency, then declaration order. An
// empty result is valid.
func (e *Engine) Recommend(state types.WellnessState) []types.Recommendation {
	fired := make([]types.Recommendation, 0, len(e.rules))
	byID := make(map[string]int)

	for _, rule := range e.rules {
		if !rule.Matches(state) {
			continue
		}
		rec := types.Recommendation{
			ID:       rule.ID,
			Title:    rule.Title,
			Detail:   rule.Detail,
			Category: rule.Category,
			Action:   rule.Action,
			Priority: rule.Priority,
		}
		if i, ok := byID[rec.ID]; ok {
			if rec.Priority > fired[i].Priority {
				fired[i] = rec
			}
			continue
		}
		byID[rec.ID] = len(fired)
		fired = append(fired, rec)
	}

	// Stable sort preserves declaration order on full ties.
	sort.SliceStable(fired, func(i, j int) bool {
		if fired[i].Priority != fired[j].Priority {
			return fired[i].Priority > fired[j].Priority
		}
		return fired[i].Category.Rank() < fired[j].Category.Rank()
	})
	return fired
}
