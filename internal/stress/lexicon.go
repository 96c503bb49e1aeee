package stress

// defaultLexicon lists stress-indicative terms matched against cleaned
// tokens. Terms are single lowercase words.
func defaultLexicon() []string {
	return []string{
		"stressed",
		"stress",
		"overwhelmed",
		"overwhelming",
		"anxious",
		"anxiety",
		"panic",
		"panicking",
		"worried",
		"worry",
		"scared",
		"afraid",
		"exhausted",
		"exhausting",
		"tired",
		"drained",
		"burnout",
		"pressure",
		"deadline",
		"deadlines",
		"cram",
		"cramming",
		"behind",
		"failing",
		"fail",
		"hopeless",
		"helpless",
		"struggling",
		"struggle",
		"confused",
		"stuck",
		"frustrated",
		"frustrating",
		"nervous",
		"dread",
		"impossible",
		"cant",
		"overloaded",
	}
}

// negationWords mark negated phrasing for the linguistic component.
var negationWords = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"nothing": {},
	"nobody":  {},
	"cant":    {},
	"cannot":  {},
	"dont":    {},
	"wont":    {},
	"isnt":    {},
	"didnt":   {},
}
