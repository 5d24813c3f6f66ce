package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/isaccanedo/style-dictionary/internal/tokens"
)

// JSONTokens emits the nested tree with complete token objects, the
// closest analog of the dictionary itself.
func JSONTokens(args Args) (string, error) {
	return marshalIndented(args.Dictionary.Tokens)
}

// JSONNested emits the tree shape with bare values at the leaves.
func JSONNested(args Args) (string, error) {
	return marshalIndented(rawTree(args.Dictionary.Tokens))
}

// JSONFlat emits a single object keyed by emitted name. Keys appear in
// first-seen order; when names collide the last token wins, which is
// exactly the ambiguity the collision warnings point at.
func JSONFlat(args Args) (string, error) {
	all := args.Dictionary.AllTokens
	names := make([]string, 0, len(all))
	values := make(map[string]any, len(all))
	for _, t := range all {
		if _, seen := values[t.Name]; !seen {
			names = append(names, t.Name)
		}
		values[t.Name] = t.Value
	}

	var b strings.Builder
	b.WriteString("{\n")
	for i, name := range names {
		key, _ := json.Marshal(name)
		val, err := json.Marshal(values[name])
		if err != nil {
			return "", fmt.Errorf("failed to marshal value of %s: %w", name, err)
		}
		b.WriteString("  ")
		b.Write(key)
		b.WriteString(": ")
		b.Write(val)
		if i < len(names)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String(), nil
}

func marshalIndented(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal tokens: %w", err)
	}
	return string(out) + "\n", nil
}

// rawTree mirrors the token tree with plain values at the leaves.
func rawTree(tr tokens.Tree) map[string]any {
	out := make(map[string]any, len(tr))
	for key, node := range tr {
		switch n := node.(type) {
		case tokens.Tree:
			out[key] = rawTree(n)
		case *tokens.Token:
			out[key] = n.Value
		}
	}
	return out
}
