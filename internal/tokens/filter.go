package tokens

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// PatternFilter builds a token predicate from config-declared patterns.
// Include patterns are doublestar globs matched against the slash-joined
// token path (for example "color/**"); exclude lines use gitignore
// semantics, so negations and trailing-slash rules behave as in a
// .gitignore file. Empty include means everything is in.
type PatternFilter struct {
	include []string
	exclude *ignore.GitIgnore
}

// NewPatternFilter compiles the pattern lists.
func NewPatternFilter(include, exclude []string) (*PatternFilter, error) {
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern %q", pattern)
		}
	}
	f := &PatternFilter{include: include}
	if len(exclude) > 0 {
		f.exclude = ignore.CompileIgnoreLines(exclude...)
	}
	return f, nil
}

// Predicate returns the compiled predicate: a token is kept when its path
// matches an include pattern (or none are declared) and no exclude line
// throws it back out.
func (f *PatternFilter) Predicate() Predicate {
	return func(t *Token) bool {
		path := strings.Join(t.Path, "/")
		if len(f.include) > 0 && !f.matchesAnyPattern(path) {
			return false
		}
		if f.exclude != nil && f.exclude.MatchesPath(path) {
			return false
		}
		return true
	}
}

func (f *PatternFilter) matchesAnyPattern(path string) bool {
	for _, pattern := range f.include {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}
