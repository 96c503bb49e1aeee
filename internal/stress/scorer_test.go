package stress

import (
	"errors"
	"math"
	"testing"

	"github.com/mantra-ai/mindscore/internal/types"
)

func TestCombineWeightsComponents(t *testing.T) {
	// Saturated keywords, polarity -0.6 sentiment, linguistic 0.3.
	got := Combine(types.StressComponents{Sentiment: 0.8, Keyword: 1.0, Linguistic: 0.3})

	if math.Abs(got.StressScore-0.78) > 1e-9 {
		t.Fatalf("expected stress score 0.78, got %v", got.StressScore)
	}
	if got.StressLevel != types.StressCritical {
		t.Fatalf("expected critical level, got %s", got.StressLevel)
	}
}

func TestCombineBucketBoundaries(t *testing.T) {
	cases := []struct {
		value float64
		want  types.StressLevel
	}{
		{0, types.StressLow},
		{0.24, types.StressLow},
		{0.25, types.StressModerate},
		{0.49, types.StressModerate},
		{0.5, types.StressHigh},
		{0.74, types.StressHigh},
		{0.75, types.StressCritical},
		{1.0, types.StressCritical},
	}
	for _, c := range cases {
		got := Combine(types.StressComponents{Sentiment: c.value, Keyword: c.value, Linguistic: c.value})
		if got.StressLevel != c.want {
			t.Fatalf("score %v: expected %s, got %s", c.value, c.want, got.StressLevel)
		}
	}
}

func TestScorerUsesInjectedFusionWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = FusionWeights{Sentiment: 1.0}

	s := NewScorer(cfg)
	got, err := s.Score(Input{
		Text:      "Reviewing my notes for tomorrow.",
		Sentiment: &types.SentimentSignal{Polarity: -0.6, Confidence: 0.9},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// Sentiment-only weighting: score equals the sentiment component.
	if math.Abs(got.StressScore-0.8) > 1e-9 {
		t.Fatalf("expected stress score 0.8 under sentiment-only weights, got %v", got.StressScore)
	}

	// Zero-value weights fall back to the 0.4/0.4/0.2 defaults.
	d := NewScorer(Config{})
	if d.weights != defaultFusionWeights() {
		t.Fatalf("expected default fusion weights, got %+v", d.weights)
	}
}

func TestScoreMapsSentimentPolarity(t *testing.T) {
	s := NewScorer(DefaultConfig())

	got, err := s.Score(Input{
		Text:      "Reviewing my notes for tomorrow.",
		Sentiment: &types.SentimentSignal{Polarity: -0.6, Confidence: 0.9},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(got.Components.Sentiment-0.8) > 1e-9 {
		t.Fatalf("expected sentiment component 0.8, got %v", got.Components.Sentiment)
	}
}

func TestScoreMissingSentimentIsNeutral(t *testing.T) {
	s := NewScorer(DefaultConfig())

	got, err := s.Score(Input{Text: "Reviewing my notes for tomorrow."})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(got.Components.Sentiment-0.5) > 1e-9 {
		t.Fatalf("expected neutral sentiment component 0.5, got %v", got.Components.Sentiment)
	}
}

func TestScoreKeywordSaturation(t *testing.T) {
	s := NewScorer(DefaultConfig())

	got, err := s.Score(Input{
		Text: "I'm stressed and overwhelmed, anxious and exhausted, the deadline has me in a panic and worried sick.",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Components.Keyword != 1.0 {
		t.Fatalf("expected saturated keyword component, got %v", got.Components.Keyword)
	}
}

func TestScoreKeywordCountsDistinctTerms(t *testing.T) {
	s := NewScorer(DefaultConfig())

	// "deadline" repeated still counts once.
	got, err := s.Score(Input{Text: "deadline deadline deadline deadline deadline deadline"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(got.Components.Keyword-0.2) > 1e-9 {
		t.Fatalf("expected one distinct hit (0.2), got %v", got.Components.Keyword)
	}
}

func TestScoreEmptyInput(t *testing.T) {
	s := NewScorer(DefaultConfig())

	for _, text := range []string{"", "   ", "!!! ... ???"} {
		if _, err := s.Score(Input{Text: text}); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("expected empty input error for %q, got %v", text, err)
		}
	}
}

func TestLinguisticFeatures(t *testing.T) {
	w := defaultLinguisticWeights()

	calm := "Today I reviewed the chapter on integrals and it went reasonably well overall."
	agitated := "I CANT DO THIS!!! Nothing works! Never enough! HELP!"

	calmScore := w.score(calm, tokenize(calm))
	agitatedScore := w.score(agitated, tokenize(agitated))

	if calmScore >= agitatedScore {
		t.Fatalf("expected agitated text to score higher: calm=%v agitated=%v", calmScore, agitatedScore)
	}
	if calmScore < 0 || calmScore > 1 || agitatedScore < 0 || agitatedScore > 1 {
		t.Fatalf("linguistic scores out of range: %v %v", calmScore, agitatedScore)
	}
}

func TestTokenizeDropsApostrophes(t *testing.T) {
	tokens := tokenize("I can't won't don't")
	want := map[string]bool{"i": true, "cant": true, "wont": true, "dont": true}
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %v", tokens)
	}
	for _, token := range tokens {
		if !want[token] {
			t.Fatalf("unexpected token %q", token)
		}
	}
}
