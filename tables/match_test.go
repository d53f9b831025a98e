package tables

import (
	"regexp"
	"testing"

	"github.com/pagegrid/pagegrid/model"
)

func TestPatternSearchesNotFullMatch(t *testing.T) {
	m, err := Pattern(`Unit Price`)
	if err != nil {
		t.Fatalf("Pattern() failed: %v", err)
	}

	if !m.MatchText("Unit Price (USD)") {
		t.Error("MatchText() = false for text containing the pattern")
	}
	if m.MatchText("Quantity") {
		t.Error("MatchText() = true for unrelated text")
	}
}

func TestPatternBadExpression(t *testing.T) {
	if _, err := Pattern(`([`); err == nil {
		t.Error("Pattern() accepted an invalid expression")
	}
}

func TestRegexpMatcher(t *testing.T) {
	m := Regexp(regexp.MustCompile(`^Total\b`))
	if !m.MatchText("Total Due") {
		t.Error("MatchText() = false, want true")
	}
	if m.MatchText("Subtotal") {
		t.Error("MatchText() = true, want false")
	}
}

func TestSubstringMatcher(t *testing.T) {
	m := Substring("Amount")
	if !m.MatchText("Net Amount") {
		t.Error(`MatchText("Net Amount") = false, want true`)
	}
	if m.MatchText("amount") {
		t.Error("MatchText() matched despite case difference")
	}
}

func TestMatcherNormalizesCompatibilityForms(t *testing.T) {
	// "ﬁ" (U+FB01) normalizes to "fi" under NFKC; extracted PDF text
	// regularly contains such ligatures.
	m := MustPattern(`file`)
	if !m.MatchText("ﬁle") {
		t.Error("MatchText() = false for ligature text, want true after NFKC")
	}

	s := Substring("file")
	if !s.MatchText("ﬁle") {
		t.Error("Substring MatchText() = false for ligature text, want true")
	}
}

func TestPatterns(t *testing.T) {
	ms, err := Patterns(`Name`, `Qty`, `Price`)
	if err != nil {
		t.Fatalf("Patterns() failed: %v", err)
	}
	if len(ms) != 3 {
		t.Errorf("Patterns() returned %d matchers, want 3", len(ms))
	}

	if _, err := Patterns(`Name`, `([`); err == nil {
		t.Error("Patterns() accepted an invalid expression")
	}
}

func TestFindMatching(t *testing.T) {
	fragments := []model.TextFragment{
		frag("Invoice 1042", 0, 0, 10, 1),
		frag("Date", 0, 2, 10, 3),
		frag("Invoice total", 0, 4, 10, 5),
	}

	found := FindMatching(MustPattern(`Invoice`), fragments)
	if len(found) != 2 {
		t.Fatalf("FindMatching() returned %d fragments, want 2", len(found))
	}
	if found[0].Text != "Invoice 1042" || found[1].Text != "Invoice total" {
		t.Errorf("FindMatching() = %v, want input order preserved", found)
	}
}
