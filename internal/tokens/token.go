// Package tokens models the resolved design-token dictionary the build
// pipeline consumes: a nested tree of tokens plus a flat view in source
// order, with filtering and cross-token reference lookup over both.
package tokens

import "strings"

// Token is a single resolved design value. By the time a token reaches this
// package every alias has been resolved and the emitted name derived, so
// Value and Name are treated as opaque.
type Token struct {
	// Path locates the token in the nested tree; it is unique per token.
	Path []string `json:"path" yaml:"path"`
	// Name is the emitted identifier. Names are not required to be unique;
	// duplicates are what collision detection reports.
	Name string `json:"name" yaml:"name"`
	// Value is the final value after all upstream transforms.
	Value any `json:"value" yaml:"value"`
	// Comment is carried into outputs whose format has a place for it.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
	// Original preserves the pre-transform fields, notably the value with
	// its reference syntax intact.
	Original map[string]any `json:"original,omitempty" yaml:"original,omitempty"`
	// Attributes is free-form metadata for filters and custom formats.
	Attributes map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// DottedPath returns the path joined with dots, the spelling diagnostics
// and references use.
func (t *Token) DottedPath() string { return strings.Join(t.Path, ".") }

// OriginalValue returns the value as it stood before transforms, falling
// back to the resolved value when no original was recorded. Formats that
// output references inspect it for reference syntax the transforms have
// already replaced.
func (t *Token) OriginalValue() any {
	if t.Original != nil {
		if v, ok := t.Original["value"]; ok {
			return v
		}
	}
	return t.Value
}
