package tokens

import "fmt"

// Dictionary is the full resolved token set for one build: the nested
// Tokens tree and AllTokens, the same tokens flat in source order. Views
// produced by Filtered keep a reference to the unfiltered tree so
// cross-token references still resolve against the whole build.
type Dictionary struct {
	Tokens    Tree
	AllTokens []*Token

	unfiltered Tree
	onLost     func(ref string)
}

// New builds a dictionary from a flat token list. Order is preserved in
// AllTokens and the tree is grown from each token's path. Tokens must carry
// a path, a name, and a value; paths must not collide.
func New(all []*Token) (*Dictionary, error) {
	tree := Tree{}
	for i, t := range all {
		if t == nil {
			return nil, fmt.Errorf("token %d is nil", i)
		}
		if len(t.Path) == 0 {
			return nil, fmt.Errorf("token %d has an empty path", i)
		}
		for _, seg := range t.Path {
			if seg == "" {
				return nil, fmt.Errorf("token %s has an empty path segment", dotted(t.Path))
			}
		}
		if t.Name == "" {
			return nil, fmt.Errorf("token %s has no name", dotted(t.Path))
		}
		if t.Value == nil {
			return nil, fmt.Errorf("token %s has no value", dotted(t.Path))
		}
		if err := tree.insert(t); err != nil {
			return nil, err
		}
	}
	return &Dictionary{Tokens: tree, AllTokens: all}, nil
}

// IsEmpty reports whether the dictionary holds no tokens. Emission uses it
// to skip files whose filter kept nothing.
func (d *Dictionary) IsEmpty() bool { return len(d.AllTokens) == 0 }

// Predicate selects tokens for one output file.
type Predicate func(*Token) bool

// Filtered derives the view of d containing only tokens the predicate
// keeps; nil keeps everything. AllTokens order is preserved and branches
// left without tokens are pruned from the tree. The view resolves
// references against the original tree, and d itself is not modified.
func (d *Dictionary) Filtered(pred Predicate) *Dictionary {
	if pred == nil {
		pred = func(*Token) bool { return true }
	}
	kept := make([]*Token, 0, len(d.AllTokens))
	tree := Tree{}
	for _, t := range d.AllTokens {
		if !pred(t) {
			continue
		}
		kept = append(kept, t)
		_ = tree.insert(t) // paths were validated when d was built
	}
	return &Dictionary{Tokens: tree, AllTokens: kept, unfiltered: d.base()}
}

// base returns the tree references resolve against.
func (d *Dictionary) base() Tree {
	if d.unfiltered != nil {
		return d.unfiltered
	}
	return d.Tokens
}

// OnLostReference arranges for fn to be called with a dotted token path
// whenever GetReferences resolves a token the active filter dropped from
// this view.
func (d *Dictionary) OnLostReference(fn func(ref string)) { d.onLost = fn }
