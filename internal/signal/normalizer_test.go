package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/mantra-ai/mindscore/internal/types"
)

func TestNormalizeRenormalizesScores(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	got, err := n.Normalize(map[string]float64{"joy": 2, "sadness": 2}, types.ModalityText)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(got.Distribution[types.EmotionJoy]-0.5) > 1e-9 {
		t.Fatalf("expected joy weight 0.5, got %v", got.Distribution[types.EmotionJoy])
	}
	if math.Abs(got.Distribution[types.EmotionSadness]-0.5) > 1e-9 {
		t.Fatalf("expected sadness weight 0.5, got %v", got.Distribution[types.EmotionSadness])
	}
	// 0.5*0.8 + 0.5*(-0.7)
	if math.Abs(got.Valence-0.05) > 1e-9 {
		t.Fatalf("expected valence 0.05, got %v", got.Valence)
	}
	if got.SourceModality != types.ModalityText {
		t.Fatalf("expected text modality, got %s", got.SourceModality)
	}
}

func TestNormalizeTieBreaksConcerningFirst(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	got, err := n.Normalize(map[string]float64{"joy": 0.5, "fear": 0.5}, types.ModalityText)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.DominantEmotion != types.EmotionFear {
		t.Fatalf("expected fear to win the tie, got %s", got.DominantEmotion)
	}
	if math.Abs(got.Confidence-0.5) > 1e-9 {
		t.Fatalf("expected confidence 0.5, got %v", got.Confidence)
	}
}

func TestNormalizeRejectsUnknownLabel(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	_, err := n.Normalize(map[string]float64{"ecstatic": 1}, types.ModalityText)
	if !errors.Is(err, types.ErrUnsupportedEmotionLabel) {
		t.Fatalf("expected unsupported label error, got %v", err)
	}
}

func TestNormalizeRejectsDegenerateDistribution(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	if _, err := n.Normalize(map[string]float64{"joy": 0.0005, "sadness": 0.0004}, types.ModalityText); !errors.Is(err, ErrDegenerateDistribution) {
		t.Fatalf("expected degenerate distribution error for tiny sum, got %v", err)
	}
	if _, err := n.Normalize(nil, types.ModalityText); !errors.Is(err, ErrDegenerateDistribution) {
		t.Fatalf("expected degenerate distribution error for empty labels, got %v", err)
	}
	if _, err := n.Normalize(map[string]float64{"joy": -1, "sadness": 2}, types.ModalityText); !errors.Is(err, ErrDegenerateDistribution) {
		t.Fatalf("expected degenerate distribution error for negative score, got %v", err)
	}
}

func TestNormalizeValenceStaysInTableRange(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	cases := []map[string]float64{
		{"joy": 1},
		{"sadness": 1},
		{"joy": 0.3, "fear": 0.3, "neutral": 0.4},
		{"love": 0.25, "anger": 0.25, "disgust": 0.25, "surprise": 0.25},
	}
	for _, labels := range cases {
		got, err := n.Normalize(labels, types.ModalityText)
		if err != nil {
			t.Fatalf("expected no error for %v, got %v", labels, err)
		}
		if got.Valence < -0.7 || got.Valence > 0.8 {
			t.Fatalf("valence %v out of table range for %v", got.Valence, labels)
		}
	}
}

func TestNormalizeIsBitwiseDeterministic(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	// All eight labels with uneven scores, so any accumulation-order change
	// would show up in the float result.
	labels := map[string]float64{
		"joy": 0.13, "sadness": 0.11, "anger": 0.07, "fear": 0.23,
		"surprise": 0.05, "love": 0.17, "disgust": 0.03, "neutral": 0.21,
	}

	first, err := n.Normalize(labels, types.ModalityText)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i := 0; i < 10000; i++ {
		got, err := n.Normalize(labels, types.ModalityText)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if math.Float64bits(got.Valence) != math.Float64bits(first.Valence) {
			t.Fatalf("valence drifted on repeat: %v vs %v", got.Valence, first.Valence)
		}
		for _, emotion := range types.Emotions {
			if math.Float64bits(got.Distribution[emotion]) != math.Float64bits(first.Distribution[emotion]) {
				t.Fatalf("%s weight drifted on repeat: %v vs %v", emotion, got.Distribution[emotion], first.Distribution[emotion])
			}
		}
	}
}

func TestMapFacialLabels(t *testing.T) {
	mapped := MapFacialLabels(map[string]float64{"Happy": 0.7, "Sad": 0.2, "Neutral": 0.1})

	if math.Abs(mapped["joy"]-0.7) > 1e-9 {
		t.Fatalf("expected Happy mapped to joy 0.7, got %v", mapped["joy"])
	}
	if math.Abs(mapped["sadness"]-0.2) > 1e-9 {
		t.Fatalf("expected Sad mapped to sadness 0.2, got %v", mapped["sadness"])
	}
	if math.Abs(mapped["neutral"]-0.1) > 1e-9 {
		t.Fatalf("expected Neutral mapped to neutral 0.1, got %v", mapped["neutral"])
	}
}

func TestMapFacialLabelsPassesUnknownThrough(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	mapped := MapFacialLabels(map[string]float64{"Contempt": 1})
	if _, err := n.Normalize(mapped, types.ModalityImage); !errors.Is(err, types.ErrUnsupportedEmotionLabel) {
		t.Fatalf("expected unmapped facial label to be rejected, got %v", err)
	}
}
