package fusion

import (
	"fmt"
	"math"

	"github.com/mantra-ai/mindscore/internal/types"
)

// AlignmentThreshold is the minimum cosine similarity between two
// distribution vectors for an aligned verdict.
const AlignmentThreshold = 0.6

// Detector classifies the relationship between two emotion signals from
// distinct modalities.
type Detector struct {
	threshold float64
	valence   types.ValenceTable
}

// NewDetector returns a Detector with the canonical threshold and valence
// table.
func NewDetector() *Detector {
	return &Detector{threshold: AlignmentThreshold, valence: types.DefaultValence()}
}

// Detect compares two emotion signals. Aligned requires similar
// distributions and agreeing dominant emotions or at least matching
// valence sign.
func (d *Detector) Detect(a, b types.EmotionSignal) types.Insights {
	similarity := cosineSimilarity(a.Vector(), b.Vector())

	sameDominant := a.DominantEmotion == b.DominantEmotion
	sameSign := d.valence.ValenceSign(a.DominantEmotion) == d.valence.ValenceSign(b.DominantEmotion)

	verdict := types.AlignmentMisaligned
	if similarity >= d.threshold && (sameDominant || sameSign) {
		verdict = types.AlignmentAligned
	}

	return types.Insights{
		Alignment:      verdict,
		Interpretation: interpret(a, b, verdict),
	}
}

func interpret(a, b types.EmotionSignal, verdict types.Alignment) string {
	if verdict == types.AlignmentAligned {
		return fmt.Sprintf("Your %s signal and %s signal both point to %s, confirming your emotional state.",
			a.SourceModality, b.SourceModality, a.DominantEmotion)
	}
	return fmt.Sprintf("Your %s signal shows %s while your %s signal shows %s, suggesting complexity in your emotional state.",
		a.SourceModality, a.DominantEmotion, b.SourceModality, b.DominantEmotion)
}

// cosineSimilarity over equal-length vectors; zero vectors compare as 0.
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
