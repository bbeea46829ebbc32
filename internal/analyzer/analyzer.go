// Package analyzer detects clarity gaps in free-form prompt text.
//
// Detection is purely lexical: the input is scanned against four fixed
// indicator tables (missing context, ambiguous requirements, unclear
// outputs, missing constraints) and each hit becomes a categorized
// Finding. An overall 0-100 clarity score is derived from the finding
// set and the text length.
//
// The score is a rough proxy for prompt quality, not a calibrated
// metric — its constants exist to keep behavior stable across versions,
// not because they were statistically validated.
//
// Every function here is a pure function of its input string and the
// tables in rules.go; there is no shared mutable state, so Analyze is
// safe to call from any number of goroutines.
package analyzer

import (
	"fmt"
	"strings"
)

// Category classifies a detected clarity gap.
type Category string

const (
	CategoryMissingContext       Category = "missing_context"
	CategoryAmbiguousRequirement Category = "ambiguous_requirement"
	CategoryUnclearOutput        Category = "unclear_output"
	CategoryMissingConstraints   Category = "missing_constraints"
)

// Severity ranks how much a gap hurts clarity.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Finding is a single detected clarity issue. Findings are created fresh
// per Analyze call and never persisted.
type Finding struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion"`
	Severity    Severity `json:"severity"`
}

// Report is the result of analyzing one text.
type Report struct {
	Gaps                []Finding `json:"gaps"`
	OverallClarityScore int       `json:"overall_clarity_score"`
}

// Scoring constants. Preserved exactly — downstream consumers compare
// scores across versions.
const (
	findingPenalty      = 15
	highSeverityPenalty = 10
	shortTextBonus      = 5  // more than 20 tokens
	longTextBonus       = 10 // more than 50 tokens, on top of shortTextBonus
)

// antecedentWindow is how many characters may precede a context
// indicator before we assume an antecedent was established. The value
// is a deliberately crude heuristic kept for compatibility.
const antecedentWindow = 10

// Analyze scans text against all four detection rules and derives the
// overall clarity score. It never fails: a text with zero matches yields
// an empty gap list and the length-adjusted maximum score.
func Analyze(text string) Report {
	var gaps []Finding
	gaps = append(gaps, detectMissingContext(text)...)
	gaps = append(gaps, detectAmbiguity(text)...)
	gaps = append(gaps, detectUnclearOutput(text)...)
	gaps = append(gaps, detectMissingConstraints(text)...)
	gaps = dedupe(gaps)

	return Report{
		Gaps:                gaps,
		OverallClarityScore: score(gaps, text),
	}
}

// detectMissingContext runs per sentence: an indicator with fewer than
// antecedentWindow characters before its first occurrence is assumed to
// have no antecedent established yet.
func detectMissingContext(text string) []Finding {
	var findings []Finding
	for i, sentence := range splitSentences(text) {
		for _, ind := range contextIndicators {
			loc := ind.re.FindStringIndex(sentence)
			if loc == nil || loc[0] >= antecedentWindow {
				continue
			}
			findings = append(findings, Finding{
				Category: CategoryMissingContext,
				Description: fmt.Sprintf(
					"Sentence %d uses %q without establishing what it refers to", i+1, ind.word),
				Suggestion: fmt.Sprintf(
					"Name the specific system, object, or concept instead of %q", ind.word),
				Severity: SeverityMedium,
			})
		}
	}
	return findings
}

// detectAmbiguity scans the whole text once per indicator, so a vague
// term that repeats still yields a single finding.
func detectAmbiguity(text string) []Finding {
	var findings []Finding
	for _, ind := range ambiguityIndicators {
		if !ind.re.MatchString(text) {
			continue
		}
		findings = append(findings, Finding{
			Category: CategoryAmbiguousRequirement,
			Description: fmt.Sprintf(
				"Vague term %q leaves the requirement open to interpretation", ind.word),
			Suggestion: fmt.Sprintf(
				"Replace %q with a concrete, measurable criterion", ind.word),
			Severity: SeverityHigh,
		})
	}
	return findings
}

func detectUnclearOutput(text string) []Finding {
	var findings []Finding
	for _, ind := range outputIndicators {
		if !ind.re.MatchString(text) {
			continue
		}
		findings = append(findings, Finding{
			Category: CategoryUnclearOutput,
			Description: fmt.Sprintf(
				"The expected output is described only as %q", ind.word),
			Suggestion: "Specify the exact deliverable, its fields, and its format",
			Severity:   SeverityMedium,
		})
	}
	return findings
}

func detectMissingConstraints(text string) []Finding {
	var findings []Finding
	for _, ind := range constraintIndicators {
		if !ind.re.MatchString(text) {
			continue
		}
		findings = append(findings, Finding{
			Category: CategoryMissingConstraints,
			Description: fmt.Sprintf(
				"Unbounded quantifier %q appears with no explicit limit", ind.word),
			Suggestion: "State the bound explicitly: a count, size, range, or time budget",
			Severity:   SeverityMedium,
		})
	}
	return findings
}

// dedupe drops findings whose description already appeared, preserving
// first-occurrence order. No two findings in a report share a description.
func dedupe(findings []Finding) []Finding {
	seen := make(map[string]bool, len(findings))
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if seen[f.Description] {
			continue
		}
		seen[f.Description] = true
		out = append(out, f)
	}
	return out
}

// score derives the 0-100 clarity score: start at 100, subtract per
// finding and per high-severity finding, add back a small bonus for
// longer texts (more words usually means more established context),
// then clamp.
func score(gaps []Finding, text string) int {
	s := 100
	s -= findingPenalty * len(gaps)
	for _, g := range gaps {
		if g.Severity == SeverityHigh {
			s -= highSeverityPenalty
		}
	}

	words := len(strings.Fields(text))
	if words > 20 {
		s += shortTextBonus
	}
	if words > 50 {
		s += longTextBonus
	}

	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return s
}

// splitSentences breaks text on sentence punctuation, dropping empty
// fragments. Indexing is 1-based at the call site.
func splitSentences(text string) []string {
	parts := sentenceDelims.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
