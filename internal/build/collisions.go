package build

import (
	"fmt"
	"strings"

	"github.com/isaccanedo/style-dictionary/internal/tokens"
)

// collision is one emitted name produced by more than one token in a file's
// filtered set.
type collision struct {
	name   string
	tokens []*tokens.Token
}

// detectCollisions groups the flat view by emitted name and returns the
// names with more than one contributor. Names appear in first-seen order
// and so do their contributors, keeping messages stable across runs.
func detectCollisions(all []*tokens.Token) []collision {
	order := make([]string, 0, len(all))
	groups := make(map[string][]*tokens.Token, len(all))
	for _, t := range all {
		if _, ok := groups[t.Name]; !ok {
			order = append(order, t.Name)
		}
		groups[t.Name] = append(groups[t.Name], t)
	}
	var out []collision
	for _, name := range order {
		if len(groups[name]) > 1 {
			out = append(out, collision{name: name, tokens: groups[name]})
		}
	}
	return out
}

// message renders the collision the way the report prints it, one
// contributor per line with its source path and resolved value.
func (c collision) message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Output name %s was generated by:", c.name)
	for _, t := range c.tokens {
		fmt.Fprintf(&b, "\n        %s   %v", t.DottedPath(), t.Value)
	}
	return b.String()
}
