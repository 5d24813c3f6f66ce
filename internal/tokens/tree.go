package tokens

import (
	"fmt"
	"strings"
)

// Tree is the nested half of a dictionary: branches are Trees and leaves
// are *Token, keyed by path segment.
type Tree map[string]any

func dotted(path []string) string { return strings.Join(path, ".") }

// insert places the token at its path, growing branches as needed. A path
// that collides with an existing token or runs through one is an error.
func (tr Tree) insert(t *Token) error {
	node := tr
	for i, seg := range t.Path[:len(t.Path)-1] {
		child, ok := node[seg]
		if !ok {
			next := Tree{}
			node[seg] = next
			node = next
			continue
		}
		branch, ok := child.(Tree)
		if !ok {
			return fmt.Errorf("token path %s: segment %s already holds a token", dotted(t.Path), dotted(t.Path[:i+1]))
		}
		node = branch
	}
	leaf := t.Path[len(t.Path)-1]
	if prev, ok := node[leaf]; ok {
		if _, isBranch := prev.(Tree); isBranch {
			return fmt.Errorf("token path %s already holds a group", dotted(t.Path))
		}
		return fmt.Errorf("duplicate token path %s", dotted(t.Path))
	}
	node[leaf] = t
	return nil
}

// lookup returns the token at the exact path, if any.
func (tr Tree) lookup(path []string) (*Token, bool) {
	var node any = tr
	for _, seg := range path {
		branch, ok := node.(Tree)
		if !ok {
			return nil, false
		}
		node, ok = branch[seg]
		if !ok {
			return nil, false
		}
	}
	tok, ok := node.(*Token)
	return tok, ok
}
