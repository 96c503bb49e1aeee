// Package stress estimates a bounded stress score from text evidence and an
// optional sentiment signal.
package stress

import (
	"errors"

	"github.com/mantra-ai/mindscore/internal/types"
)

// ErrEmptyInput reports text with no usable tokens. The scorer never
// defaults a score; a silent default would corrupt downstream fusion.
var ErrEmptyInput = errors.New("no usable text tokens")

// keywordSaturation is the distinct lexicon hit count at which the keyword
// component reaches 1.0.
const keywordSaturation = 5

// Input is one stress scoring request.
type Input struct {
	Text      string
	Sentiment *types.SentimentSignal
}

// FusionWeights blends the three evidence components. Changing them changes
// every MindScore ever produced.
type FusionWeights struct {
	Sentiment  float64
	Keyword    float64
	Linguistic float64
}

func defaultFusionWeights() FusionWeights {
	return FusionWeights{Sentiment: 0.4, Keyword: 0.4, Linguistic: 0.2}
}

// Config carries the lexicon and weight tables the scorer depends on.
type Config struct {
	Lexicon    []string
	Linguistic LinguisticWeights
	Weights    FusionWeights
}

// DefaultConfig returns the canonical scorer tables.
func DefaultConfig() Config {
	return Config{
		Lexicon:    defaultLexicon(),
		Linguistic: defaultLinguisticWeights(),
		Weights:    defaultFusionWeights(),
	}
}

// Scorer combines lexical, sentiment, and linguistic evidence into a
// stress estimate.
type Scorer struct {
	lexicon    map[string]struct{}
	linguistic LinguisticWeights
	weights    FusionWeights
}

// NewScorer returns a Scorer using the given tables.
func NewScorer(cfg Config) *Scorer {
	if len(cfg.Lexicon) == 0 {
		cfg.Lexicon = defaultLexicon()
	}
	if cfg.Linguistic == (LinguisticWeights{}) {
		cfg.Linguistic = defaultLinguisticWeights()
	}
	if cfg.Weights == (FusionWeights{}) {
		cfg.Weights = defaultFusionWeights()
	}
	lexicon := make(map[string]struct{}, len(cfg.Lexicon))
	for _, term := range cfg.Lexicon {
		lexicon[term] = struct{}{}
	}
	return &Scorer{lexicon: lexicon, linguistic: cfg.Linguistic, weights: cfg.Weights}
}

// Score computes the stress estimate for the input text.
func (s *Scorer) Score(in Input) (types.StressSignal, error) {
	tokens := tokenize(in.Text)
	if len(tokens) == 0 {
		return types.StressSignal{}, ErrEmptyInput
	}

	components := types.StressComponents{
		Sentiment:  sentimentComponent(in.Sentiment),
		Keyword:    s.keywordComponent(tokens),
		Linguistic: s.linguistic.score(in.Text, tokens),
	}
	return s.weights.Combine(components), nil
}

// Combine applies the weighting and buckets the result.
func (w FusionWeights) Combine(c types.StressComponents) types.StressSignal {
	score := w.Sentiment*c.Sentiment + w.Keyword*c.Keyword + w.Linguistic*c.Linguistic
	return types.StressSignal{
		StressScore: score,
		StressLevel: bucket(score),
		Components:  c,
	}
}

// Combine blends components with the default 0.4/0.4/0.2 weighting.
func Combine(c types.StressComponents) types.StressSignal {
	return defaultFusionWeights().Combine(c)
}

// sentimentComponent maps a signed polarity in [-1,1] to [0,1]. A missing
// sentiment signal counts as neutral; the keyword and linguistic evidence
// still carry the estimate.
func sentimentComponent(sentiment *types.SentimentSignal) float64 {
	if sentiment == nil {
		return 0.5
	}
	return (1 - sentiment.Polarity) / 2
}

// keywordComponent is the saturating fraction of distinct lexicon terms
// present in the text.
func (s *Scorer) keywordComponent(tokens []string) float64 {
	seen := make(map[string]struct{})
	for _, token := range tokens {
		if _, ok := s.lexicon[token]; ok {
			seen[token] = struct{}{}
		}
	}
	hits := len(seen)
	if hits >= keywordSaturation {
		return 1.0
	}
	return float64(hits) / keywordSaturation
}

// bucket maps a stress score to its level. Intervals are half-open with the
// final bucket closed at 1.0.
func bucket(score float64) types.StressLevel {
	switch {
	case score < 0.25:
		return types.StressLow
	case score < 0.5:
		return types.StressModerate
	case score < 0.75:
		return types.StressHigh
	default:
		return types.StressCritical
	}
}
