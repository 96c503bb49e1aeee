// Package analyzer produces the raw emotion and sentiment signals the
// pipeline consumes, using an LLM classifier.
package analyzer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

const classifierSystemPrompt = `You are an emotion and sentiment classifier for student journal entries.
Given a text, respond with ONLY a JSON object, no prose, in this exact shape:
{"emotion_scores":{"joy":0,"sadness":0,"anger":0,"fear":0,"surprise":0,"love":0,"disgust":0,"neutral":0},"sentiment_polarity":0,"sentiment_confidence":0}
Each emotion score is in [0,1] and the scores should roughly sum to 1.
sentiment_polarity is in [-1,1], negative for negative sentiment.
sentiment_confidence is in [0,1].`

// Observation is the classifier's structured output: raw emotion scores
// plus a signed sentiment estimate.
type Observation struct {
	EmotionScores       map[string]float64 `json:"emotion_scores"`
	SentimentPolarity   float64            `json:"sentiment_polarity"`
	SentimentConfidence float64            `json:"sentiment_confidence"`
}

// Analyzer classifies text into emotion scores and sentiment.
type Analyzer struct {
	model model.LLM
}

// New returns an Analyzer backed by the given model.
func New(m model.LLM) *Analyzer {
	return &Analyzer{model: m}
}

// Classify returns the emotion and sentiment observation for text.
func (a *Analyzer) Classify(ctx context.Context, text string) (Observation, error) {
	if a == nil || a.model == nil {
		return Observation{}, fmt.Errorf("analyzer not configured")
	}
	if strings.TrimSpace(text) == "" {
		return Observation{}, fmt.Errorf("empty input text")
	}

	req := &model.LLMRequest{
		Contents: []*genai.Content{
			genai.NewContentFromText(classifierSystemPrompt, "system"),
			genai.NewContentFromText(text, "user"),
		},
	}

	seq := a.model.GenerateContent(ctx, req, false)
	var resp *model.LLMResponse
	var err error
	seq(func(r *model.LLMResponse, e error) bool {
		resp = r
		err = e
		return false
	})
	if err != nil {
		return Observation{}, fmt.Errorf("classifier call failed: %w", err)
	}

	return ParseObservation(responseText(resp))
}

func responseText(resp *model.LLMResponse) string {
	if resp == nil || resp.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
