package tokens

import (
	"regexp"
	"strings"
)

// referencePattern matches "{path.to.token}" occurrences inside a value.
var referencePattern = regexp.MustCompile(`\{([^}]+)\}`)

// UsesReference reports whether the value contains token reference syntax
// such as "{color.base.red}". Only string values can carry references.
func UsesReference(value any) bool {
	s, ok := value.(string)
	return ok && referencePattern.MatchString(s)
}

// GetReferences resolves each reference inside value against the unfiltered
// tree, so a format can substitute names even for targets the active filter
// dropped from this view; every such dropped target is also reported
// through the OnLostReference hook. References that resolve to nothing are
// skipped, leaving the format to emit them verbatim.
func (d *Dictionary) GetReferences(value any) []*Token {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	var refs []*Token
	for _, m := range referencePattern.FindAllStringSubmatch(s, -1) {
		if tok, ok := d.resolveReference(m[1]); ok {
			refs = append(refs, tok)
		}
	}
	return refs
}

// SubstituteReferences rewrites every resolvable reference in value through
// repl and leaves unresolvable references verbatim. It reports false when
// no reference resolved, so callers can fall back to the resolved value.
// Resolution matches GetReferences exactly, lost-reference reporting
// included.
func (d *Dictionary) SubstituteReferences(value string, repl func(*Token) string) (string, bool) {
	resolved := false
	out := referencePattern.ReplaceAllStringFunc(value, func(match string) string {
		body := referencePattern.FindStringSubmatch(match)[1]
		tok, ok := d.resolveReference(body)
		if !ok {
			return match
		}
		resolved = true
		return repl(tok)
	})
	return out, resolved
}

// resolveReference looks up one reference body in the unfiltered tree.
// Surrounding whitespace and a trailing ".value" segment are tolerated. A
// target missing from this filtered view fires the OnLostReference hook.
func (d *Dictionary) resolveReference(body string) (*Token, bool) {
	path := strings.Split(strings.TrimSpace(body), ".")
	if n := len(path); n > 1 && path[n-1] == "value" {
		path = path[:n-1]
	}
	tok, ok := d.base().lookup(path)
	if !ok {
		return nil, false
	}
	if _, kept := d.Tokens.lookup(tok.Path); !kept && d.onLost != nil {
		d.onLost(tok.DottedPath())
	}
	return tok, true
}
