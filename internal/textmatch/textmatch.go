// Package textmatch hides the pattern-matching engine behind a small
// capability interface so detection logic never touches regexp directly.
package textmatch

import (
	"fmt"
	"regexp"
)

// Matcher tests one keyword pattern against message text. A match anywhere
// in the text counts; patterns are never anchored implicitly.
type Matcher interface {
	// Keyword returns the original pattern source.
	Keyword() string
	// Matches reports whether the text contains the pattern.
	Matches(text string) bool
	// FindAll returns the start offset of every non-overlapping match.
	FindAll(text string) []int
}

type regexMatcher struct {
	keyword string
	re      *regexp.Regexp
}

func (m regexMatcher) Keyword() string { return m.keyword }

func (m regexMatcher) Matches(text string) bool { return m.re.MatchString(text) }

func (m regexMatcher) FindAll(text string) []int {
	idx := m.re.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}
	starts := make([]int, len(idx))
	for i, pair := range idx {
		starts[i] = pair[0]
	}
	return starts
}

// Compile builds a Matcher for one pattern. Matching is case-insensitive
// unless caseSensitive is set.
func Compile(pattern string, caseSensitive bool) (Matcher, error) {
	src := pattern
	if !caseSensitive {
		src = "(?i)" + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("keyword %q: %w", pattern, err)
	}
	return regexMatcher{keyword: pattern, re: re}, nil
}

// CompileSet compiles every pattern, preserving order. Compilation happens
// once per keyword set; callers reuse the matchers across all records.
func CompileSet(patterns []string, caseSensitive bool) ([]Matcher, error) {
	matchers := make([]Matcher, 0, len(patterns))
	for _, p := range patterns {
		m, err := Compile(p, caseSensitive)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}
