// Package recommend maps a fused wellness state to a prioritized,
// deduplicated set of recommendations via a declarative rule table.
package recommend

import "github.com/mantra-ai/mindscore/internal/types"

// Rule pairs a predicate over the wellness state with a recommendation
// template. Every matching rule fires; deduplication and ordering happen
// afterwards.
type Rule struct {
	ID       string
	Title    string
	Detail   string
	Category types.RecommendationCategory
	Action   string
	Priority int
	Matches  func(types.WellnessState) bool
}

// DefaultRules returns the canonical rule table. Declaration order is the
// final tie-breaker, so the order here is load-bearing.
//
// Stress predicates use AtLeast so that raising the stress level can only
// add immediate actions, never remove them.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:       "reach-out",
			Title:    "Reach out to someone you trust",
			Detail:   "Talking to a friend, mentor, or family member can take real weight off. You don't have to handle this alone.",
			Category: types.RecImmediateAction,
			Action:   "Message someone you trust",
			Priority: 100,
			Matches: func(s types.WellnessState) bool {
				return s.Category == types.CategoryCritical || s.Stress.StressLevel.AtLeast(types.StressCritical)
			},
		},
		{
			ID:       "longer-break",
			Title:    "Take a longer break",
			Detail:   "Step away from studying for 15-30 minutes. Your focus will come back stronger after a real pause.",
			Category: types.RecImmediateAction,
			Action:   "Set a 20-minute timer and step away",
			Priority: 95,
			Matches: func(s types.WellnessState) bool {
				return s.Stress.StressLevel.AtLeast(types.StressCritical)
			},
		},
		{
			ID:       "breathing-exercise",
			Title:    "Try a breathing exercise",
			Detail:   "The 4-7-8 technique: breathe in for 4 seconds, hold for 7, out for 8. A few rounds lower stress quickly.",
			Category: types.RecImmediateAction,
			Action:   "Do three rounds of 4-7-8 breathing",
			Priority: 90,
			Matches: func(s types.WellnessState) bool {
				return s.Stress.StressLevel.AtLeast(types.StressHigh)
			},
		},
		{
			ID:       "professional-support",
			Title:    "Consider professional support",
			Detail:   "If feelings like these persist, talking with a counselor or mental health professional is a strong step, not a last resort.",
			Category: types.RecImmediateAction,
			Priority: 85,
			Matches: func(s types.WellnessState) bool {
				return s.Category == types.CategoryCritical
			},
		},
		{
			ID:       "grounding-exercise",
			Title:    "Practice a grounding technique",
			Detail:   "The 5-4-3-2-1 method: name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste.",
			Category: types.RecImmediateAction,
			Action:   "Run through the 5-4-3-2-1 exercise",
			Priority: 80,
			Matches: func(s types.WellnessState) bool {
				return s.Emotion.DominantEmotion == types.EmotionFear
			},
		},
		{
			ID:       "physical-reset",
			Title:    "Move before you study",
			Detail:   "A brief walk or some stretches will help clear frustration before you continue.",
			Category: types.RecImmediateAction,
			Action:   "Take a 5-minute walk",
			Priority: 75,
			Matches: func(s types.WellnessState) bool {
				return s.Emotion.DominantEmotion == types.EmotionAnger
			},
		},
		{
			ID:       "mixed-signals-checkin",
			Title:    "Check in with yourself",
			Detail:   "Your words and your expression are telling different stories. Pause for a moment and name what you actually feel.",
			Category: types.RecWellness,
			Priority: 65,
			Matches: func(s types.WellnessState) bool {
				return s.AlignmentVerdict() == types.AlignmentMisaligned
			},
		},
		{
			ID:       "self-compassion",
			Title:    "Be gentle with yourself",
			Detail:   "It's okay to feel down. Small progress is still progress; treat yourself the way you'd treat a friend.",
			Category: types.RecWellness,
			Priority: 60,
			Matches: func(s types.WellnessState) bool {
				return s.Emotion.DominantEmotion == types.EmotionSadness
			},
		},
		{
			ID:       "mindfulness-session",
			Title:    "Try a short mindfulness session",
			Detail:   "Two minutes of focused breathing or a guided meditation can reset a scattered state of mind.",
			Category: types.RecWellness,
			Priority: 55,
			Matches: func(s types.WellnessState) bool {
				return s.Category.AtMost(types.CategoryFair) && s.Stress.StressLevel.AtLeast(types.StressModerate)
			},
		},
		{
			ID:       "sleep-hygiene",
			Title:    "Protect your sleep tonight",
			Detail:   "Low wellness scores often track poor rest. Aim for a full night's sleep and limit screens before bed.",
			Category: types.RecWellness,
			Priority: 50,
			Matches: func(s types.WellnessState) bool {
				return s.Category.AtMost(types.CategoryPoor)
			},
		},
		{
			ID:       "sunlight-break",
			Title:    "Get some light and air",
			Detail:   "Sunlight or bright light exposure and a change of scenery reliably lift a low mood.",
			Category: types.RecWellness,
			Priority: 45,
			Matches: func(s types.WellnessState) bool {
				return s.Emotion.DominantEmotion == types.EmotionSadness
			},
		},
		{
			ID:       "journal-tension",
			Title:    "Write down what's bothering you",
			Detail:   "Journaling the source of frustration gets it out of your head and makes it easier to act on.",
			Category: types.RecWellness,
			Priority: 40,
			Matches: func(s types.WellnessState) bool {
				return s.Emotion.DominantEmotion == types.EmotionAnger
			},
		},
		{
			ID:       "gentle-review",
			Title:    "Switch to gentle review",
			Detail:   "Review familiar material instead of pushing into new topics. Consolidating what you know builds momentum.",
			Category: types.RecLearning,
			Priority: 35,
			Matches: func(s types.WellnessState) bool {
				return s.Stress.StressLevel.AtLeast(types.StressHigh) || s.Category.AtMost(types.CategoryPoor)
			},
		},
		{
			ID:       "pomodoro-intervals",
			Title:    "Break your session into intervals",
			Detail:   "Study in 25-minute blocks with short breaks between. One topic at a time keeps moderate stress from building.",
			Category: types.RecLearning,
			Priority: 30,
			Matches: func(s types.WellnessState) bool {
				return s.Stress.StressLevel == types.StressModerate
			},
		},
		{
			ID:       "confidence-review",
			Title:    "Start with what you know",
			Detail:   "Begin with familiar topics to build confidence, then break new goals into very small steps.",
			Category: types.RecLearning,
			Priority: 28,
			Matches: func(s types.WellnessState) bool {
				return s.Emotion.DominantEmotion == types.EmotionFear
			},
		},
		{
			ID:       "challenge-mode",
			Title:    "Tackle something challenging",
			Detail:   "You're in a strong state for learning. This is the time for the difficult concepts you've been putting off.",
			Category: types.RecLearning,
			Priority: 25,
			Matches: func(s types.WellnessState) bool {
				return s.Category.AtLeast(types.CategoryGood) &&
					s.Stress.StressLevel == types.StressLow &&
					s.Emotion.Valence > 0
			},
		},
		{
			ID:       "maintain-habits",
			Title:    "Keep doing what you're doing",
			Detail:   "Your current habits are working. Maintain the routine that got you here.",
			Category: types.RecWellness,
			Priority: 10,
			Matches: func(s types.WellnessState) bool {
				return s.Category == types.CategoryExcellent && s.Stress.StressLevel == types.StressLow
			},
		},
	}
}
