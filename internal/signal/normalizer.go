// Package signal normalizes raw classifier outputs into canonical emotion
// signals.
package signal

import (
	"errors"
	"fmt"

	"github.com/mantra-ai/mindscore/internal/types"
)

// Epsilon is the floating tolerance for distribution sums.
const Epsilon = 1e-3

// ErrDegenerateDistribution reports a score vector whose sum is too small
// to renormalize.
var ErrDegenerateDistribution = errors.New("degenerate emotion distribution")

// tieBreak orders emotions most-concerning first; when scores tie, the
// earlier emotion wins so a worrying state is flagged over a benign one.
var tieBreak = []types.Emotion{
	types.EmotionFear,
	types.EmotionSadness,
	types.EmotionAnger,
	types.EmotionDisgust,
	types.EmotionSurprise,
	types.EmotionJoy,
	types.EmotionLove,
	types.EmotionNeutral,
}

// Config carries the tables the normalizer depends on.
type Config struct {
	Valence types.ValenceTable
}

// DefaultConfig returns the canonical normalizer tables.
func DefaultConfig() Config {
	return Config{Valence: types.DefaultValence()}
}

// Normalizer converts raw label scores into EmotionSignals.
type Normalizer struct {
	valence types.ValenceTable
}

// NewNormalizer returns a Normalizer using the given tables.
func NewNormalizer(cfg Config) *Normalizer {
	if cfg.Valence == nil {
		cfg.Valence = types.DefaultValence()
	}
	return &Normalizer{valence: cfg.Valence}
}

// Normalize converts a raw label→score map into a canonical EmotionSignal.
// Unknown labels fail, negative scores fail, and scores that do not sum to
// one are renormalized.
func (n *Normalizer) Normalize(labels map[string]float64, modality types.Modality) (types.EmotionSignal, error) {
	if len(labels) == 0 {
		return types.EmotionSignal{}, fmt.Errorf("%w: no labels", ErrDegenerateDistribution)
	}

	scores := make(map[types.Emotion]float64, len(labels))
	for label, score := range labels {
		emotion, err := types.ParseEmotion(label)
		if err != nil {
			return types.EmotionSignal{}, err
		}
		if score < 0 {
			return types.EmotionSignal{}, fmt.Errorf("%w: negative score %v for %s", ErrDegenerateDistribution, score, emotion)
		}
		scores[emotion] += score
	}

	// Accumulate in the fixed emotion order so identical inputs always sum
	// in the same sequence; map iteration order would make the float result
	// vary across calls.
	sum := 0.0
	for _, emotion := range tieBreak {
		sum += scores[emotion]
	}
	if sum <= Epsilon {
		return types.EmotionSignal{}, fmt.Errorf("%w: score sum %v", ErrDegenerateDistribution, sum)
	}

	distribution := make(map[types.Emotion]float64, len(scores))
	valence := 0.0
	for _, emotion := range tieBreak {
		score, ok := scores[emotion]
		if !ok {
			continue
		}
		weight := score / sum
		distribution[emotion] = weight
		valence += weight * n.valence[emotion]
	}

	dominant := dominantEmotion(distribution)

	return types.EmotionSignal{
		DominantEmotion: dominant,
		Confidence:      distribution[dominant],
		Distribution:    distribution,
		Valence:         valence,
		SourceModality:  modality,
	}, nil
}

// dominantEmotion returns the argmax of the distribution, resolving ties in
// the fixed concern-first order.
func dominantEmotion(distribution map[types.Emotion]float64) types.Emotion {
	best := types.EmotionNeutral
	bestScore := -1.0
	for _, emotion := range tieBreak {
		score, ok := distribution[emotion]
		if !ok {
			continue
		}
		if score > bestScore {
			best = emotion
			bestScore = score
		}
	}
	return best
}

// facialToEmotion maps FER-style facial labels onto the canonical set.
var facialToEmotion = map[string]string{
	"Happy":    "joy",
	"Sad":      "sadness",
	"Angry":    "anger",
	"Fear":     "fear",
	"Surprise": "surprise",
	"Disgust":  "disgust",
	"Neutral":  "neutral",
}

// MapFacialLabels converts facial classifier scores keyed by FER labels
// into canonical emotion labels, so image-derived signals can be normalized.
func MapFacialLabels(labels map[string]float64) map[string]float64 {
	mapped := make(map[string]float64, len(labels))
	for label, score := range labels {
		key, ok := facialToEmotion[label]
		if !ok {
			// Pass through unmapped labels; Normalize rejects them.
			key = label
		}
		mapped[key] += score
	}
	return mapped
}
