package extractor

import (
	"regexp"

	"github.com/avillar/promptlens/internal/analyzer"
)

// Improvement records one refinement step: the kind of change, what was
// done, and the text immediately before and after that single step.
// Before/After are per-step snapshots, not a cumulative diff against the
// original prompt.
type Improvement struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Before      string `json:"before"`
	After       string `json:"after"`
}

// Improvement types. Each refinement step produces exactly one of these.
const (
	ImprovementClarity      = "clarity"
	ImprovementSpecificity  = "specificity"
	ImprovementStructure    = "structure"
	ImprovementCompleteness = "completeness"
)

// RefineResult pairs the original prompt with its refined form and the
// log of applied changes.
type RefineResult struct {
	OriginalPrompt string        `json:"original_prompt"`
	RefinedPrompt  string        `json:"refined_prompt"`
	Improvements   []Improvement `json:"improvements"`
}

// Template text applied by the refinement steps.
const (
	contextPreamble     = "Context: [describe the system, domain, and background this request applies to]. "
	outputAddendum      = " The output must name its exact deliverable, the fields it contains, and the delivery format."
	constraintsAddendum = " Constraints: [state limits on scope, size, time, and acceptance criteria]."
)

// vagueAdjectives are the qualifiers rewritten by the ambiguity step.
// This is a narrower set than the analyzer's ambiguity table: modals
// like "should" are flagged but cannot be mechanically rewritten.
var vagueAdjectives = regexp.MustCompile(`(?i)\b(good|better|best|nice|pretty|cool)\b`)

const measurableReplacement = "specific and measurable"

// Refine analyzes text once and applies up to four textual
// transformations, each gated on a gap category being present in the
// analysis. Steps run in a fixed order — context, ambiguity, output,
// constraints — and each operates on the text as transformed so far.
// A step that leaves the text unchanged is not logged, so the refined
// prompt differs from the original exactly when Improvements is
// non-empty.
func Refine(text string) RefineResult {
	report := analyzer.Analyze(text)
	present := make(map[analyzer.Category]bool, len(report.Gaps))
	for _, g := range report.Gaps {
		present[g.Category] = true
	}

	result := RefineResult{
		OriginalPrompt: text,
		Improvements:   []Improvement{},
	}
	current := text

	if present[analyzer.CategoryMissingContext] {
		before := current
		current = contextPreamble + current
		result.Improvements = append(result.Improvements, Improvement{
			Type:        ImprovementCompleteness,
			Description: "Prepended a context placeholder so references have an antecedent",
			Before:      before,
			After:       current,
		})
	}

	if present[analyzer.CategoryAmbiguousRequirement] {
		before := current
		current = vagueAdjectives.ReplaceAllString(current, measurableReplacement)
		if current != before {
			result.Improvements = append(result.Improvements, Improvement{
				Type:        ImprovementSpecificity,
				Description: `Replaced vague adjectives with "specific and measurable"`,
				Before:      before,
				After:       current,
			})
		}
	}

	if present[analyzer.CategoryUnclearOutput] {
		before := current
		current += outputAddendum
		result.Improvements = append(result.Improvements, Improvement{
			Type:        ImprovementClarity,
			Description: "Appended an explicit output-requirements sentence",
			Before:      before,
			After:       current,
		})
	}

	if present[analyzer.CategoryMissingConstraints] {
		before := current
		current += constraintsAddendum
		result.Improvements = append(result.Improvements, Improvement{
			Type:        ImprovementStructure,
			Description: "Appended an explicit constraints sentence",
			Before:      before,
			After:       current,
		})
	}

	result.RefinedPrompt = current
	return result
}
