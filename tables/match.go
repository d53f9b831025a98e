package tables

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pagegrid/pagegrid/model"
)

// Matcher is a predicate over fragment text. Header patterns are
// expressed as matchers so callers can supply a compiled regular
// expression, a plain substring, or their own implementation.
type Matcher interface {
	// MatchText reports whether the text satisfies the pattern. This is
	// a search, not a full match: a header cell "Unit Price (USD)"
	// satisfies the pattern "Unit Price".
	MatchText(text string) bool
}

// normalize puts extracted text into NFKC form before matching. PDF
// producers frequently emit ligatures and fullwidth compatibility
// characters, which would make literal patterns miss otherwise.
func normalize(s string) string {
	return norm.NFKC.String(s)
}

type regexpMatcher struct {
	re *regexp.Regexp
}

func (m regexpMatcher) MatchText(text string) bool {
	return m.re.MatchString(normalize(text))
}

// Pattern compiles a regular expression into a Matcher.
func Pattern(expr string) (Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return regexpMatcher{re: re}, nil
}

// MustPattern is like Pattern but panics on a bad expression. Intended
// for patterns known at compile time.
func MustPattern(expr string) Matcher {
	return regexpMatcher{re: regexp.MustCompile(expr)}
}

// Regexp wraps an already-compiled regular expression as a Matcher.
func Regexp(re *regexp.Regexp) Matcher {
	return regexpMatcher{re: re}
}

type substringMatcher struct {
	substr string
}

func (m substringMatcher) MatchText(text string) bool {
	return strings.Contains(normalize(text), m.substr)
}

// Substring returns a Matcher that searches for a literal substring.
func Substring(s string) Matcher {
	return substringMatcher{substr: normalize(s)}
}

// Patterns compiles a list of regular expressions. It stops at the
// first bad expression.
func Patterns(exprs ...string) ([]Matcher, error) {
	matchers := make([]Matcher, 0, len(exprs))
	for _, expr := range exprs {
		m, err := Pattern(expr)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// FindMatching returns the fragments whose text satisfies the matcher,
// in input order.
func FindMatching(m Matcher, fragments []model.TextFragment) []model.TextFragment {
	var found []model.TextFragment
	for _, frag := range fragments {
		if m.MatchText(frag.Text) {
			found = append(found, frag)
		}
	}
	return found
}
