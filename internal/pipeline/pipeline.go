// Package pipeline composes the normalizer, stress scorer, fuser, alignment
// detector, and recommendation engine into one deterministic pass.
package pipeline

import (
	"fmt"

	"github.com/mantra-ai/mindscore/internal/fusion"
	"github.com/mantra-ai/mindscore/internal/recommend"
	"github.com/mantra-ai/mindscore/internal/signal"
	"github.com/mantra-ai/mindscore/internal/stress"
	"github.com/mantra-ai/mindscore/internal/types"
)

// Input is one end-to-end analysis request. TextLabels are raw emotion
// scores from an upstream text classifier; ImageLabels, when present, are
// already mapped to the canonical emotion set.
type Input struct {
	Text        string
	Sentiment   *types.SentimentSignal
	TextLabels  map[string]float64
	ImageLabels map[string]float64
}

// Result is the complete output of one pipeline pass.
type Result struct {
	State           types.WellnessState    `json:"state"`
	Recommendations []types.Recommendation `json:"recommendations"`
	Summary         string                 `json:"wellness_summary"`
}

// Engine runs the full pipeline. All stages are pure; an Engine is safe for
// unsynchronized concurrent use.
type Engine struct {
	normalizer  *signal.Normalizer
	scorer      *stress.Scorer
	detector    *fusion.Detector
	recommender *recommend.Engine
}

// New returns an Engine wired with the canonical tables.
func New() *Engine {
	return &Engine{
		normalizer:  signal.NewNormalizer(signal.DefaultConfig()),
		scorer:      stress.NewScorer(stress.DefaultConfig()),
		detector:    fusion.NewDetector(),
		recommender: recommend.NewEngine(nil),
	}
}

// Analyze runs the full pipeline over one input. Either a complete,
// internally consistent result is returned or an error; never a partial
// state.
func (e *Engine) Analyze(in Input) (Result, error) {
	emotion, err := e.normalizer.Normalize(in.TextLabels, types.ModalityText)
	if err != nil {
		return Result{}, fmt.Errorf("normalize text signal: %w", err)
	}

	stressSignal, err := e.scorer.Score(stress.Input{Text: in.Text, Sentiment: in.Sentiment})
	if err != nil {
		return Result{}, fmt.Errorf("score stress: %w", err)
	}

	state := fusion.Fuse(emotion, stressSignal)

	if len(in.ImageLabels) > 0 {
		imageSignal, err := e.normalizer.Normalize(in.ImageLabels, types.ModalityImage)
		if err != nil {
			return Result{}, fmt.Errorf("normalize image signal: %w", err)
		}
		insights := e.detector.Detect(emotion, imageSignal)
		state.Insights = &insights
	}

	return Result{
		State:           state,
		Recommendations: e.recommender.Recommend(state),
		Summary:         Summarize(state),
	}, nil
}

// Summarize renders a one-sentence human-readable wellness summary.
func Summarize(state types.WellnessState) string {
	return fmt.Sprintf("MindScore %.0f/100 (%s %s): dominant emotion %s with %s stress.",
		state.MindScore, state.Category, state.Emoji,
		state.Emotion.DominantEmotion, state.Stress.StressLevel)
}
