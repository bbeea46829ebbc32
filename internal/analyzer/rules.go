package analyzer

import "regexp"

// indicator is one entry of a detection table: the surface form reported
// in findings plus its precompiled word-boundary matcher.
type indicator struct {
	word string
	re   *regexp.Regexp
}

// compileIndicators builds case-insensitive, word-bounded matchers for a
// word list. Boundary anchoring matters: short pronouns like "it" must not
// fire inside "with" or "submit".
func compileIndicators(words []string) []indicator {
	out := make([]indicator, 0, len(words))
	for _, w := range words {
		out = append(out, indicator{
			word: w,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`),
		})
	}
	return out
}

// The four detection tables. These are process-wide constants: the slices
// are built once at init and never mutated.

// contextIndicators are pronouns, demonstratives, and generic nouns that
// need an antecedent established earlier in the sentence.
var contextIndicators = compileIndicators([]string{
	"it",
	"this",
	"that",
	"they",
	"them",
	"these",
	"those",
	"the system",
	"the application",
	"the process",
	"the data",
})

// ambiguityIndicators are modal verbs and vague qualifiers that leave a
// requirement open to interpretation.
var ambiguityIndicators = compileIndicators([]string{
	"should",
	"could",
	"might",
	"maybe",
	"possibly",
	"good",
	"better",
	"best",
	"nice",
	"fast",
	"quickly",
	"easily",
	"some",
	"several",
	"various",
	"appropriate",
	"reasonable",
	"efficient",
	"optimal",
	"flexible",
	"robust",
	"simple",
	"user-friendly",
})

// outputIndicators are vague nouns that describe a deliverable without
// saying what it actually is.
var outputIndicators = compileIndicators([]string{
	"something",
	"stuff",
	"things",
	"data",
	"information",
	"content",
	"results",
	"output",
	"report",
	"analysis",
	"details",
})

// constraintIndicators are unbounded quantifiers that hint at a missing
// limit or scope.
var constraintIndicators = compileIndicators([]string{
	"any",
	"all",
	"every",
	"unlimited",
	"maximum",
	"minimum",
	"as many",
	"whatever",
	"everything",
})

// sentenceDelims splits text into sentences for the per-sentence
// missing-context rule.
var sentenceDelims = regexp.MustCompile(`[.!?]+`)
