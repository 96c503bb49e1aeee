// Package service runs the end-to-end check-in flow: classify, score,
// record, and enrich with history.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mantra-ai/mindscore/internal/analyzer"
	"github.com/mantra-ai/mindscore/internal/pipeline"
	"github.com/mantra-ai/mindscore/internal/signal"
	"github.com/mantra-ai/mindscore/internal/trend"
	"github.com/mantra-ai/mindscore/internal/types"
)

// Classifier produces raw emotion and sentiment signals from text.
type Classifier interface {
	Classify(ctx context.Context, text string) (analyzer.Observation, error)
}

// CheckInRepo defines check-in persistence and retrieval behavior.
type CheckInRepo interface {
	Add(ctx context.Context, checkin types.CheckIn) error
	GetRecent(ctx context.Context, userID string, limit int) ([]types.CheckIn, error)
	SearchSimilar(ctx context.Context, userID string, embedding []float32, topK int, threshold float64) ([]types.SimilarMoment, error)
}

// TrendSummary aggregates a user's recent history.
type TrendSummary struct {
	AverageMindScore float64 `json:"average_mind_score"`
	DailyStreak      int     `json:"daily_streak"`
	ImprovementPct   float64 `json:"improvement_pct"`
	CheckIns         int     `json:"check_ins"`
}

// Report is the full response for one check-in.
type Report struct {
	pipeline.Result
	SimilarMoments []types.SimilarMoment `json:"similar_moments,omitempty"`
	Trend          *TrendSummary         `json:"trend,omitempty"`
}

// Service analyzes check-ins and records them.
type Service struct {
	classifier Classifier
	engine     *pipeline.Engine
	checkins   CheckInRepo
	historyLim int
	topK       int
	threshold  float64
	now        func() time.Time
}

// NewService returns a check-in service. A nil repo disables persistence
// and history enrichment.
func NewService(classifier Classifier, checkins CheckInRepo, historyLimit, topK int, threshold float64) *Service {
	if historyLimit <= 0 {
		historyLimit = 30
	}
	if topK <= 0 {
		topK = 3
	}
	if threshold <= 0 {
		threshold = 0.7
	}
	return &Service{
		classifier: classifier,
		engine:     pipeline.New(),
		checkins:   checkins,
		historyLim: historyLimit,
		topK:       topK,
		threshold:  threshold,
		now:        time.Now,
	}
}

// CheckIn classifies the text (and optional facial classifier scores), runs
// the scoring pipeline, records the result, and enriches it with similar
// past moments and trend analytics.
func (s *Service) CheckIn(ctx context.Context, userID, text string, facialLabels map[string]float64) (Report, error) {
	if s == nil || s.classifier == nil {
		return Report{}, fmt.Errorf("service not configured")
	}

	obs, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return Report{}, fmt.Errorf("failed to classify text: %w", err)
	}

	in := pipeline.Input{
		Text:       text,
		TextLabels: obs.EmotionScores,
		Sentiment: &types.SentimentSignal{
			Polarity:   obs.SentimentPolarity,
			Confidence: obs.SentimentConfidence,
		},
	}
	if len(facialLabels) > 0 {
		in.ImageLabels = signal.MapFacialLabels(facialLabels)
	}

	result, err := s.engine.Analyze(in)
	if err != nil {
		return Report{}, err
	}

	report := Report{Result: result}
	if s.checkins == nil {
		return report, nil
	}

	embedding := distributionEmbedding(result.State.Emotion)

	moments, err := s.checkins.SearchSimilar(ctx, userID, embedding, s.topK, s.threshold)
	if err != nil {
		slog.Warn("similar moment search failed", "error", err.Error())
	} else {
		report.SimilarMoments = moments
	}

	if err := s.checkins.Add(ctx, types.CheckIn{
		UserID:          userID,
		Text:            text,
		MindScore:       result.State.MindScore,
		Category:        result.State.Category,
		DominantEmotion: result.State.Emotion.DominantEmotion,
		Valence:         result.State.Emotion.Valence,
		StressScore:     result.State.Stress.StressScore,
		StressLevel:     result.State.Stress.StressLevel,
		Embedding:       embedding,
		CreatedAt:       s.now(),
	}); err != nil {
		return Report{}, fmt.Errorf("failed to record checkin: %w", err)
	}

	history, err := s.checkins.GetRecent(ctx, userID, s.historyLim)
	if err != nil {
		slog.Warn("history fetch failed", "error", err.Error())
		return report, nil
	}
	report.Trend = summarizeTrend(history, s.now())
	return report, nil
}

func summarizeTrend(history []types.CheckIn, now time.Time) *TrendSummary {
	if len(history) == 0 {
		return nil
	}
	summary := &TrendSummary{
		DailyStreak: trend.DailyStreak(history, now),
		CheckIns:    len(history),
	}
	if avg, ok := trend.AverageMindScore(history, 7*24*time.Hour, now); ok {
		summary.AverageMindScore = avg
	}
	if pct, ok := trend.Improvement(history); ok {
		summary.ImprovementPct = pct
	}
	return summary
}

// distributionEmbedding lays the distribution out in canonical order for
// vector storage.
func distributionEmbedding(emotion types.EmotionSignal) []float32 {
	vec := emotion.Vector()
	out := make([]float32, len(vec))
	for i, v := range vec {
		out[i] = float32(v)
	}
	return out
}
