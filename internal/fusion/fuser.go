// Package fusion combines emotion and stress estimates into the bounded
// MindScore and compares cross-modal emotion signals.
package fusion

import (
	"math"

	"github.com/mantra-ai/mindscore/internal/types"
)

// Equal halves; the score is the mean of the emotion and stress components.
const (
	emotionWeight = 0.5
	stressWeight  = 0.5
)

// categoryBucket maps a score floor to its category and glyph. Buckets are
// half-open with [80,100] closed at the top.
type categoryBucket struct {
	floor    float64
	category types.Category
	emoji    string
}

var categoryBuckets = []categoryBucket{
	{80, types.CategoryExcellent, "🌟"},
	{60, types.CategoryGood, "😊"},
	{40, types.CategoryFair, "😐"},
	{20, types.CategoryPoor, "😔"},
	{0, types.CategoryCritical, "😰"},
}

// Fuse combines an emotion signal and a stress signal into a complete
// WellnessState. Total over valid inputs.
func Fuse(emotion types.EmotionSignal, stress types.StressSignal) types.WellnessState {
	emotionComponent := (emotion.Valence + 1) / 2 * 100
	stressComponent := (1 - stress.StressScore) * 100

	score := math.Round(emotionWeight*emotionComponent + stressWeight*stressComponent)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	category, emoji := Categorize(score)
	return types.WellnessState{
		MindScore: score,
		Category:  category,
		Emoji:     emoji,
		Emotion:   emotion,
		Stress:    stress,
	}
}

// Categorize buckets a mind score into its category and glyph.
func Categorize(score float64) (types.Category, string) {
	for _, b := range categoryBuckets {
		if score >= b.floor {
			return b.category, b.emoji
		}
	}
	return types.CategoryCritical, "😰"
}
