package stress

import (
	"strings"
	"unicode"
)

// LinguisticWeights weight the surface features inside the linguistic
// component. They must sum to 1.0 so the component stays in [0,1].
type LinguisticWeights struct {
	Exclamation   float64
	AllCaps       float64
	Negation      float64
	Fragmentation float64
}

func defaultLinguisticWeights() LinguisticWeights {
	return LinguisticWeights{
		Exclamation:   0.3,
		AllCaps:       0.2,
		Negation:      0.25,
		Fragmentation: 0.25,
	}
}

// exclamation and negation counts saturate at this many occurrences.
const featureSaturation = 3

// score computes the linguistic component from surface features of the raw
// text. Caps detection needs the raw text; the other features use the
// cleaned tokens.
func (w LinguisticWeights) score(raw string, tokens []string) float64 {
	return w.Exclamation*exclamationDensity(raw) +
		w.AllCaps*allCapsRatio(raw) +
		w.Negation*negationDensity(tokens) +
		w.Fragmentation*fragmentation(raw)
}

func exclamationDensity(raw string) float64 {
	count := strings.Count(raw, "!")
	if count >= featureSaturation {
		return 1.0
	}
	return float64(count) / featureSaturation
}

// allCapsRatio is the fraction of multi-letter words written fully in
// upper case.
func allCapsRatio(raw string) float64 {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return 0
	}
	caps := 0
	for _, word := range words {
		letters := 0
		upper := 0
		for _, r := range word {
			if unicode.IsLetter(r) {
				letters++
				if unicode.IsUpper(r) {
					upper++
				}
			}
		}
		if letters > 1 && upper == letters {
			caps++
		}
	}
	return float64(caps) / float64(len(words))
}

func negationDensity(tokens []string) float64 {
	count := 0
	for _, token := range tokens {
		if _, ok := negationWords[token]; ok {
			count++
		}
	}
	if count >= featureSaturation {
		return 1.0
	}
	return float64(count) / featureSaturation
}

// fragmentation is the fraction of sentences shorter than four words,
// a marker of terse, agitated writing.
func fragmentation(raw string) float64 {
	sentences := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	total := 0
	short := 0
	for _, sentence := range sentences {
		words := strings.Fields(sentence)
		if len(words) == 0 {
			continue
		}
		total++
		if len(words) < 4 {
			short++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(short) / float64(total)
}

// tokenize lowercases the text, strips punctuation, and splits on
// whitespace. Apostrophes are dropped so "can't" matches "cant".
func tokenize(text string) []string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == '\'' || r == '’':
			// drop
		default:
			sb.WriteRune(' ')
		}
	}
	return strings.Fields(sb.String())
}
