package types

import "time"

// CheckIn is one analyzed journal entry persisted for trend analysis.
type CheckIn struct {
	ID              int
	UserID          string
	Text            string
	MindScore       float64
	Category        Category
	DominantEmotion Emotion
	Valence         float64
	StressScore     float64
	StressLevel     StressLevel
	// Embedding is the emotion distribution in canonical order, stored as a
	// vector for similar-moment retrieval.
	Embedding []float32
	CreatedAt time.Time
}

// SimilarMoment is a past check-in retrieved by distribution similarity.
type SimilarMoment struct {
	Text            string    `json:"text"`
	MindScore       float64   `json:"mind_score"`
	DominantEmotion Emotion   `json:"dominant_emotion"`
	Similarity      float64   `json:"similarity"`
	CreatedAt       time.Time `json:"created_at"`
}
