package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// observationSchema validates the classifier's JSON before it reaches the
// normalizer, so malformed model output fails here with a clear error.
var observationSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"emotion_scores", "sentiment_polarity"},
		Properties: map[string]*jsonschema.Schema{
			"emotion_scores": {
				Type: "object",
				AdditionalProperties: &jsonschema.Schema{
					Type:    "number",
					Minimum: ptr(0.0),
					Maximum: ptr(1.0),
				},
			},
			"sentiment_polarity": {
				Type:    "number",
				Minimum: ptr(-1.0),
				Maximum: ptr(1.0),
			},
			"sentiment_confidence": {
				Type:    "number",
				Minimum: ptr(0.0),
				Maximum: ptr(1.0),
			},
		},
	}
	return schema.Resolve(nil)
})

// ParseObservation extracts and validates the structured classifier output.
func ParseObservation(raw string) (Observation, error) {
	clean := strings.TrimSpace(raw)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}

	var decoded any
	if err := json.Unmarshal([]byte(clean), &decoded); err != nil {
		return Observation{}, fmt.Errorf("failed to parse classifier output: %w", err)
	}

	resolved, err := observationSchema()
	if err != nil {
		return Observation{}, fmt.Errorf("failed to build observation schema: %w", err)
	}
	if err := resolved.Validate(decoded); err != nil {
		return Observation{}, fmt.Errorf("classifier output failed validation: %w", err)
	}

	var obs Observation
	if err := json.Unmarshal([]byte(clean), &obs); err != nil {
		return Observation{}, fmt.Errorf("failed to decode classifier output: %w", err)
	}
	if len(obs.EmotionScores) == 0 {
		return Observation{}, fmt.Errorf("classifier output has no emotion scores")
	}
	return obs, nil
}

func ptr(f float64) *float64 {
	return &f
}
