package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/mantra-ai/mindscore/internal/types"
)

// checkinModel maps to the checkins table.
type checkinModel struct {
	ID              int
	UserID          string
	Text            string
	MindScore       float64
	Category        string
	DominantEmotion string
	Valence         float64
	StressScore     float64
	StressLevel     string
	// Embedding stores the emotion distribution for similarity search.
	Embedding *pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time
}

func (checkinModel) TableName() string {
	return "checkins"
}

// CheckInRepo accesses check-in data.
type CheckInRepo struct {
	db *gorm.DB
}

// NewCheckInRepo returns a CheckInRepo.
func NewCheckInRepo(db *gorm.DB) *CheckInRepo {
	return &CheckInRepo{db: db}
}

// Add inserts one analyzed check-in.
func (r *CheckInRepo) Add(ctx context.Context, checkin types.CheckIn) error {
	var vector *pgvector.Vector
	if len(checkin.Embedding) > 0 {
		v := pgvector.NewVector(checkin.Embedding)
		vector = &v
	}
	record := checkinModel{
		UserID:          checkin.UserID,
		Text:            checkin.Text,
		MindScore:       checkin.MindScore,
		Category:        string(checkin.Category),
		DominantEmotion: string(checkin.DominantEmotion),
		Valence:         checkin.Valence,
		StressScore:     checkin.StressScore,
		StressLevel:     string(checkin.StressLevel),
		Embedding:       vector,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert checkin: %w", err)
	}
	return nil
}

// GetRecent returns up to limit check-ins for a user, oldest first.
func (r *CheckInRepo) GetRecent(ctx context.Context, userID string, limit int) ([]types.CheckIn, error) {
	var records []checkinModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query checkins: %w", err)
	}

	results := make([]types.CheckIn, 0, len(records))
	for _, record := range records {
		results = append(results, checkinFromModel(record))
	}

	// Oldest -> newest
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}

// SearchSimilar returns past check-ins whose emotion distributions are
// closest to the given one, by cosine similarity above the threshold.
func (r *CheckInRepo) SearchSimilar(ctx context.Context, userID string, embedding []float32, topK int, threshold float64) ([]types.SimilarMoment, error) {
	if len(embedding) == 0 {
		return nil, nil
	}

	query := `
		SELECT text, mind_score, dominant_emotion, created_at,
		       1 - (embedding <=> $1) AS similarity
		FROM checkins
		WHERE embedding IS NOT NULL AND user_id = $2 AND 1 - (embedding <=> $1) > $3
		ORDER BY similarity DESC
		LIMIT $4`

	var results []types.SimilarMoment
	if err := r.db.WithContext(ctx).
		Raw(query, pgvector.NewVector(embedding), userID, threshold, topK).
		Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to search similar checkins: %w", err)
	}
	return results, nil
}

// checkinFromModel converts the database model to the domain struct.
func checkinFromModel(model checkinModel) types.CheckIn {
	var embedding []float32
	if model.Embedding != nil {
		embedding = model.Embedding.Slice()
	}
	return types.CheckIn{
		ID:              model.ID,
		UserID:          model.UserID,
		Text:            model.Text,
		MindScore:       model.MindScore,
		Category:        types.Category(model.Category),
		DominantEmotion: types.Emotion(model.DominantEmotion),
		Valence:         model.Valence,
		StressScore:     model.StressScore,
		StressLevel:     types.StressLevel(model.StressLevel),
		Embedding:       embedding,
		CreatedAt:       model.CreatedAt,
	}
}
