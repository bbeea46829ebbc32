// Package extractor derives structured prompt records from free-form
// text and produces refined rewrites of it.
//
// Like the analyzer, everything here is rule-based string work: fixed
// verb and connective tables, eager regex scans, and fixed fallback
// strings when nothing matches. Extraction never does I/O and holds no
// state between calls.
package extractor

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/avillar/promptlens/internal/analyzer"
)

// Inputs describes what the prompt expects to receive.
type Inputs struct {
	Required    []string `json:"required"`
	Optional    []string `json:"optional"`
	Constraints []string `json:"constraints"`
}

// Outputs describes what the prompt expects to produce.
type Outputs struct {
	Primary   string   `json:"primary"`
	Secondary []string `json:"secondary"`
	Format    string   `json:"format"`
}

// PromptRecord is the fixed-shape structured form of a prompt.
type PromptRecord struct {
	Task        string   `json:"task"`
	Intent      string   `json:"intent"`
	Inputs      Inputs   `json:"inputs"`
	Outputs     Outputs  `json:"outputs"`
	ClarityGaps []string `json:"clarity_gaps"`
}

// ConvertResult is the envelope returned by Convert. On success Data is
// set; on failure Error carries the fault message. ProcessingTimeMs is
// informational wall-clock time and is reported on both paths.
type ConvertResult struct {
	Success          bool          `json:"success"`
	Data             *PromptRecord `json:"data,omitempty"`
	Error            string        `json:"error,omitempty"`
	ProcessingTimeMs int64         `json:"processing_time_ms"`
}

// Convert builds a PromptRecord from text. Extraction is pure string
// work and is not expected to fail, but any panic during it is caught
// here and reported as a failed result rather than crashing the host.
func Convert(text string) (result ConvertResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result = ConvertResult{Success: false, Error: fmt.Sprint(r)}
		}
		result.ProcessingTimeMs = time.Since(start).Milliseconds()
	}()

	record := extract(text)
	return ConvertResult{Success: true, Data: &record}
}

func extract(text string) PromptRecord {
	report := analyzer.Analyze(text)
	gaps := make([]string, 0, len(report.Gaps))
	for _, g := range report.Gaps {
		gaps = append(gaps, g.Description)
	}

	return PromptRecord{
		Task:   extractTask(text),
		Intent: extractIntent(text),
		Inputs: Inputs{
			Required:    extractRequiredInputs(text),
			Optional:    extractOptionalInputs(text),
			Constraints: extractConstraints(text),
		},
		Outputs:     extractOutputs(text),
		ClarityGaps: gaps,
	}
}

// actionVerbs mark a sentence as the task statement when it opens with
// one of them.
var actionVerbs = []string{
	"generate", "create", "build", "write", "make", "develop", "design",
	"implement", "produce", "analyze", "convert", "transform", "extract",
	"summarize", "compile", "list",
}

// extractTask returns the first sentence that begins with an action
// verb, or the first sentence verbatim when none does.
func extractTask(text string) string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return strings.TrimSpace(text)
	}
	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, v := range actionVerbs {
			if lower == v || strings.HasPrefix(lower, v+" ") {
				return s
			}
		}
	}
	return sentences[0]
}

// purposeConnectives introduce the "why" of a prompt. Longer phrases
// come first so "in order to" is not swallowed by "to".
var purposeConnectives = []string{"in order to", "so that", "because", "to", "for"}

// defaultIntent is returned when no sentence carries a connective.
const defaultIntent = "To fulfill the specified requirements and deliver the requested output"

// extractIntent scans sentences in order and returns the text after the
// first purpose connective found, trimmed.
func extractIntent(text string) string {
	for _, s := range splitSentences(text) {
		lower := strings.ToLower(s)
		for _, conn := range purposeConnectives {
			idx := strings.Index(lower, " "+conn+" ")
			if idx < 0 {
				continue
			}
			after := strings.TrimSpace(s[idx+len(conn)+2:])
			if after != "" {
				return after
			}
		}
	}
	return defaultIntent
}

var requiredInputPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\w+)\s+(data|information|details|specifications)`),
	regexp.MustCompile(`(?i)(\w+)\s+(parameters|criteria|requirements)`),
}

// genericRequiredInputs is the fallback when no input pattern matched.
// Unlike optional inputs and constraints, these are NOT appended
// unconditionally — the asymmetry is intentional and load-bearing.
var genericRequiredInputs = []string{
	"Input text or prompt",
	"Context or background information",
}

func extractRequiredInputs(text string) []string {
	var inputs []string
	for _, re := range requiredInputPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			inputs = append(inputs, capitalize(strings.ToLower(m[1])+" "+strings.ToLower(m[2])))
		}
	}
	if len(inputs) == 0 {
		return append([]string(nil), genericRequiredInputs...)
	}
	return inputs
}

var optionalInputPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)optional\s+(\w+)`),
	regexp.MustCompile(`(?i)if\s+available\s+(\w+)`),
	regexp.MustCompile(`(?i)(\w+)\s+\(optional\)`),
}

var genericOptionalInputs = []string{
	"Additional context or examples",
	"Formatting preferences",
}

// extractOptionalInputs collects every pattern match and then appends
// the generic entries regardless of what matched.
func extractOptionalInputs(text string) []string {
	var inputs []string
	for _, re := range optionalInputPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			inputs = append(inputs, capitalize(strings.ToLower(m[1])))
		}
	}
	return append(inputs, genericOptionalInputs...)
}

var constraintPattern = regexp.MustCompile(`(?i)(within|limit|maximum|minimum|only|must|should)\s+(\w+)`)

var genericConstraints = []string{
	"Output must be valid and well-formed",
	"Response should be complete and accurate",
}

// extractConstraints collects every bound-word match and then appends
// the generic entries regardless of what matched.
func extractConstraints(text string) []string {
	var constraints []string
	for _, m := range constraintPattern.FindAllStringSubmatch(text, -1) {
		constraints = append(constraints, capitalize(strings.ToLower(m[1])+" "+strings.ToLower(m[2])))
	}
	return append(constraints, genericConstraints...)
}

var outputFormatPattern = regexp.MustCompile(`(?i)(\w+)\s+(format|file|output)`)

// outputTypeVocabulary lists recognized deliverable kinds, checked in
// this order; the first one present in the text wins.
var outputTypeVocabulary = []string{
	"report", "catalog", "dashboard", "summary", "table", "document",
	"plan", "schema", "specification", "chart", "api",
}

type outputType struct {
	word string
	re   *regexp.Regexp
}

var outputTypeMatchers = func() []outputType {
	out := make([]outputType, 0, len(outputTypeVocabulary))
	for _, w := range outputTypeVocabulary {
		out = append(out, outputType{word: w, re: regexp.MustCompile(`(?i)\b` + w + `\b`)})
	}
	return out
}()

const fallbackPrimaryOutput = "Structured data or information"

var genericSecondaryOutputs = []string{
	"Processing metadata",
	"Validation notes",
}

func extractOutputs(text string) Outputs {
	out := Outputs{
		Format:    "JSON",
		Primary:   fallbackPrimaryOutput,
		Secondary: append([]string(nil), genericSecondaryOutputs...),
	}

	if m := outputFormatPattern.FindStringSubmatch(text); m != nil {
		out.Format = capitalize(strings.ToLower(m[1]))
	}

	for _, t := range outputTypeMatchers {
		if t.re.MatchString(text) {
			out.Primary = capitalize(t.word)
			break
		}
	}
	return out
}

var sentenceDelims = regexp.MustCompile(`[.!?]+`)

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

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
