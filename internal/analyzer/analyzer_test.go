package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

// --- Analyze: clean text ---

func TestAnalyze_CleanTextHasNoGaps(t *testing.T) {
	report := Analyze("Refactor the billing module in Go")

	if len(report.Gaps) != 0 {
		t.Fatalf("Analyze(clean text) found %d gaps, want 0: %+v", len(report.Gaps), report.Gaps)
	}
	if report.OverallClarityScore != 100 {
		t.Errorf("score = %d, want 100", report.OverallClarityScore)
	}
}

func TestAnalyze_GapsNeverNil(t *testing.T) {
	report := Analyze("Refactor the billing module in Go")
	if report.Gaps == nil {
		t.Error("Gaps is nil, want empty slice so it serializes as []")
	}
}

// --- Analyze: detection rules ---

func TestAnalyze_VagueRequestFlagsAmbiguityAndOutput(t *testing.T) {
	report := Analyze("Make something good")

	var haveAmbiguous, haveUnclear bool
	for _, g := range report.Gaps {
		switch g.Category {
		case CategoryAmbiguousRequirement:
			haveAmbiguous = true
			if g.Severity != SeverityHigh {
				t.Errorf("ambiguous finding severity = %s, want high", g.Severity)
			}
		case CategoryUnclearOutput:
			haveUnclear = true
			if g.Severity != SeverityMedium {
				t.Errorf("unclear output finding severity = %s, want medium", g.Severity)
			}
		}
	}

	if !haveAmbiguous {
		t.Error("no ambiguous_requirement finding for \"good\"")
	}
	if !haveUnclear {
		t.Error("no unclear_output finding for \"something\"")
	}
	if report.OverallClarityScore >= 100 {
		t.Errorf("score = %d, want < 100", report.OverallClarityScore)
	}
}

func TestAnalyze_EarlyPronounFlagsMissingContext(t *testing.T) {
	report := Analyze("It needs a faster parser")

	if len(report.Gaps) != 1 {
		t.Fatalf("got %d gaps, want 1: %+v", len(report.Gaps), report.Gaps)
	}
	g := report.Gaps[0]
	if g.Category != CategoryMissingContext {
		t.Errorf("category = %s, want missing_context", g.Category)
	}
	if !strings.Contains(g.Description, `"it"`) {
		t.Errorf("description %q does not name the indicator", g.Description)
	}
	if !strings.Contains(g.Description, "Sentence 1") {
		t.Errorf("description %q does not name the sentence", g.Description)
	}
}

func TestAnalyze_LatePronounNotFlagged(t *testing.T) {
	report := Analyze("The billing exporter writes files before it rotates logs")

	for _, g := range report.Gaps {
		if g.Category == CategoryMissingContext {
			t.Errorf("unexpected missing_context finding: %q", g.Description)
		}
	}
}

func TestAnalyze_SentenceIndexIsOneBased(t *testing.T) {
	report := Analyze("The exporter is stable. It fails on restart.")

	var found bool
	for _, g := range report.Gaps {
		if g.Category == CategoryMissingContext && strings.Contains(g.Description, "Sentence 2") {
			found = true
		}
	}
	if !found {
		t.Errorf("no missing_context finding for sentence 2 in %+v", report.Gaps)
	}
}

func TestAnalyze_IndicatorsMatchWholeWordsOnly(t *testing.T) {
	// "it" must not fire inside "with", "fast" not inside "faster",
	// "all" not inside "install".
	report := Analyze("Install the exporter with a faster parser")

	if len(report.Gaps) != 0 {
		t.Errorf("got %d gaps, want 0: %+v", len(report.Gaps), report.Gaps)
	}
}

func TestAnalyze_RepeatedVagueTermFiresOnce(t *testing.T) {
	report := Analyze("A good parser and a good linter")

	count := 0
	for _, g := range report.Gaps {
		if g.Category == CategoryAmbiguousRequirement && strings.Contains(g.Description, `"good"`) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("got %d findings for repeated \"good\", want 1", count)
	}
}

func TestAnalyze_UnboundedQuantifierFlagged(t *testing.T) {
	report := Analyze("Export every record in the table")

	var found bool
	for _, g := range report.Gaps {
		if g.Category == CategoryMissingConstraints {
			found = true
			if g.Severity != SeverityMedium {
				t.Errorf("severity = %s, want medium", g.Severity)
			}
		}
	}
	if !found {
		t.Errorf("no missing_constraints finding for \"every\" in %+v", report.Gaps)
	}
}

// --- Analyze: invariants ---

func TestAnalyze_Idempotent(t *testing.T) {
	text := "It should quickly produce a good report for any team"

	first := Analyze(text)
	second := Analyze(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Analyze not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyze_DescriptionsAreUnique(t *testing.T) {
	text := "It should be good. It should be nice. This might work for any data."

	report := Analyze(text)
	seen := map[string]bool{}
	for _, g := range report.Gaps {
		if seen[g.Description] {
			t.Errorf("duplicate description: %q", g.Description)
		}
		seen[g.Description] = true
	}
}

func TestAnalyze_ScoreWithinBounds(t *testing.T) {
	texts := []string{
		"",
		"Go",
		"Refactor the billing module in Go",
		"It should quickly make something good, nice, simple, flexible, robust and optimal for any and all data.",
		strings.Repeat("word ", 200),
	}

	for _, text := range texts {
		score := Analyze(text).OverallClarityScore
		if score < 0 || score > 100 {
			t.Errorf("Analyze(%.30q) score = %d, want within [0,100]", text, score)
		}
	}
}

// --- score derivation ---

func TestScore_PenaltiesAndSeverity(t *testing.T) {
	// One high ambiguity finding plus one medium output finding:
	// 100 - 2*15 - 10 = 60. Three words, no length bonus.
	report := Analyze("Make something good")
	if report.OverallClarityScore != 60 {
		t.Errorf("score = %d, want 60", report.OverallClarityScore)
	}
}

func TestScore_LengthBonusOver20Words(t *testing.T) {
	short := Analyze("Send the report") // one medium finding, 3 words: 85
	long := Analyze("Produce the quarterly revenue report covering January through March for the finance team, broken down by region, product line, and sales channel, in spreadsheet form.")

	if short.OverallClarityScore != 85 {
		t.Errorf("short score = %d, want 85", short.OverallClarityScore)
	}
	// Same single finding, more than 20 words: 85 + 5.
	if long.OverallClarityScore != 90 {
		t.Errorf("long score = %d, want 90", long.OverallClarityScore)
	}
}

func TestScore_ClampsAtZero(t *testing.T) {
	report := Analyze("It should quickly make something good, nice, simple, flexible, robust and optimal for any and all data.")
	if report.OverallClarityScore != 0 {
		t.Errorf("score = %d, want 0 (clamped)", report.OverallClarityScore)
	}
}

// --- dedupe ---

func TestDedupe_PreservesFirstOccurrenceOrder(t *testing.T) {
	in := []Finding{
		{Description: "a"},
		{Description: "b"},
		{Description: "a"},
		{Description: "c"},
		{Description: "b"},
	}

	got := dedupe(in)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %d findings, want %d", len(got), len(want))
	}
	for i, f := range got {
		if f.Description != want[i] {
			t.Errorf("position %d: got %q, want %q", i, f.Description, want[i])
		}
	}
}

// --- splitSentences ---

func TestSplitSentences_DropsEmptyFragments(t *testing.T) {
	got := splitSentences("First. Second!  Third?   ")
	want := []string{"First", "Second", "Third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSentences = %v, want %v", got, want)
	}
}
