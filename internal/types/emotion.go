// Package types holds the shared domain types for the MindScore engine.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// Emotion is one of the closed set of emotion labels the engine understands.
type Emotion string

const (
	EmotionJoy      Emotion = "joy"
	EmotionSadness  Emotion = "sadness"
	EmotionAnger    Emotion = "anger"
	EmotionFear     Emotion = "fear"
	EmotionSurprise Emotion = "surprise"
	EmotionLove     Emotion = "love"
	EmotionDisgust  Emotion = "disgust"
	EmotionNeutral  Emotion = "neutral"
)

// Emotions lists every supported emotion in canonical order. Distribution
// vectors are laid out in this order.
var Emotions = []Emotion{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionFear,
	EmotionSurprise,
	EmotionLove,
	EmotionDisgust,
	EmotionNeutral,
}

// ErrUnsupportedEmotionLabel reports a label outside the supported set.
var ErrUnsupportedEmotionLabel = errors.New("unsupported emotion label")

// ParseEmotion maps a raw label string to an Emotion.
func ParseEmotion(label string) (Emotion, error) {
	e := Emotion(strings.ToLower(strings.TrimSpace(label)))
	for _, known := range Emotions {
		if e == known {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEmotionLabel, label)
}

// ValenceTable assigns each emotion a signed valence in [-1,1].
type ValenceTable map[Emotion]float64

// DefaultValence returns the fixed per-emotion valence table. Identical
// values are required across deployments for reproducible scores.
func DefaultValence() ValenceTable {
	return ValenceTable{
		EmotionJoy:      0.8,
		EmotionLove:     0.7,
		EmotionSurprise: 0.2,
		EmotionNeutral:  0.0,
		EmotionDisgust:  -0.4,
		EmotionAnger:    -0.5,
		EmotionFear:     -0.6,
		EmotionSadness:  -0.7,
	}
}

// ValenceSign buckets an emotion as positive, negative, or neutral under
// the given table.
func (t ValenceTable) ValenceSign(e Emotion) int {
	v := t[e]
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Modality identifies where a signal was derived from.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
)
