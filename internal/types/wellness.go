package types

// EmotionSignal is a normalized emotion estimate from one modality.
type EmotionSignal struct {
	DominantEmotion Emotion             `json:"dominant_emotion"`
	Confidence      float64             `json:"confidence"`
	Distribution    map[Emotion]float64 `json:"distribution"`
	Valence         float64             `json:"valence"`
	SourceModality  Modality            `json:"source_modality"`
}

// Vector lays the distribution out over the canonical emotion order.
func (s EmotionSignal) Vector() []float64 {
	vec := make([]float64, len(Emotions))
	for i, e := range Emotions {
		vec[i] = s.Distribution[e]
	}
	return vec
}

// StressLevel is the bucketed stress severity.
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
	StressCritical StressLevel = "critical"
)

var stressLevelRank = map[StressLevel]int{
	StressLow:      0,
	StressModerate: 1,
	StressHigh:     2,
	StressCritical: 3,
}

// AtLeast reports whether l is as severe as other.
func (l StressLevel) AtLeast(other StressLevel) bool {
	return stressLevelRank[l] >= stressLevelRank[other]
}

// StressComponents are the explainability sub-scores behind a stress estimate.
type StressComponents struct {
	Sentiment  float64 `json:"sentiment"`
	Keyword    float64 `json:"keyword"`
	Linguistic float64 `json:"linguistic"`
}

// StressSignal is a normalized stress estimate with its sub-scores retained.
type StressSignal struct {
	StressScore float64          `json:"stress_score"`
	StressLevel StressLevel      `json:"stress_level"`
	Components  StressComponents `json:"components"`
}

// SentimentSignal is a signed sentiment estimate from an upstream classifier.
type SentimentSignal struct {
	Polarity   float64 `json:"polarity"`
	Confidence float64 `json:"confidence"`
}

// Category is the bounded wellness category derived from the MindScore.
type Category string

const (
	CategoryCritical  Category = "Critical"
	CategoryPoor      Category = "Poor"
	CategoryFair      Category = "Fair"
	CategoryGood      Category = "Good"
	CategoryExcellent Category = "Excellent"
)

var categoryRank = map[Category]int{
	CategoryCritical:  0,
	CategoryPoor:      1,
	CategoryFair:      2,
	CategoryGood:      3,
	CategoryExcellent: 4,
}

// AtMost reports whether c is no better than other.
func (c Category) AtMost(other Category) bool {
	return categoryRank[c] <= categoryRank[other]
}

// AtLeast reports whether c is at least as good as other.
func (c Category) AtLeast(other Category) bool {
	return categoryRank[c] >= categoryRank[other]
}

// Alignment classifies agreement between two independently derived
// emotion estimates.
type Alignment string

const (
	AlignmentAligned    Alignment = "aligned"
	AlignmentMisaligned Alignment = "misaligned"
	AlignmentUnknown    Alignment = "unknown"
)

// Insights carries cross-modal findings; present only when two emotion
// signals were available.
type Insights struct {
	Alignment      Alignment `json:"alignment"`
	Interpretation string    `json:"interpretation,omitempty"`
}

// WellnessState is the fused, internally consistent output of the pipeline.
type WellnessState struct {
	MindScore float64       `json:"mind_score"`
	Category  Category      `json:"category"`
	Emoji     string        `json:"emoji"`
	Emotion   EmotionSignal `json:"emotion_analysis"`
	Stress    StressSignal  `json:"stress_analysis"`
	Insights  *Insights     `json:"combined_insights,omitempty"`
}

// AlignmentVerdict returns the cross-modal verdict, or unknown for
// single-modality states.
func (s WellnessState) AlignmentVerdict() Alignment {
	if s.Insights == nil {
		return AlignmentUnknown
	}
	return s.Insights.Alignment
}
