// Package format defines the contract for rendering one output file from a
// filtered dictionary, and a registry of named formats with the built-ins
// pre-registered.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/isaccanedo/style-dictionary/internal/config"
	"github.com/isaccanedo/style-dictionary/internal/tokens"
)

// Args is the bundle handed to a format function: the filtered dictionary
// plus the platform and file being built.
type Args struct {
	Dictionary *tokens.Dictionary
	Platform   config.Platform
	File       config.File
}

// Func renders the body of one output file. It must not touch the
// filesystem; writing is the emitter's job.
type Func func(Args) (string, error)

// Format couples a format function with its registry name. Nested marks
// formats whose output keeps the tree shape; repeated leaf names are
// meaningful there, so name-collision warnings are suppressed for them.
type Format struct {
	Name   string
	Nested bool
	Fn     Func
}

// Registry maps format names to implementations.
type Registry struct {
	formats map[string]Format
}

// NewRegistry returns a registry with the built-in formats registered.
func NewRegistry() *Registry {
	r := &Registry{formats: make(map[string]Format)}
	for _, f := range builtins() {
		r.formats[f.Name] = f
	}
	return r
}

// Register adds a format. The name must be non-empty and unused, and the
// function non-nil.
func (r *Registry) Register(f Format) error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("format name must not be empty")
	}
	if f.Fn == nil {
		return fmt.Errorf("format %s has no format function", f.Name)
	}
	if _, ok := r.formats[f.Name]; ok {
		return fmt.Errorf("format %s is already registered", f.Name)
	}
	r.formats[f.Name] = f
	return nil
}

// Lookup returns the named format.
func (r *Registry) Lookup(name string) (Format, bool) {
	f, ok := r.formats[name]
	return f, ok
}

// Names returns the registered format names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func builtins() []Format {
	return []Format{
		{Name: "css/variables", Fn: CSSVariables},
		{Name: "scss/variables", Fn: SCSSVariables},
		{Name: "json", Nested: true, Fn: JSONTokens},
		{Name: "json/nested", Nested: true, Fn: JSONNested},
		{Name: "json/flat", Fn: JSONFlat},
		{Name: "yaml", Nested: true, Fn: YAMLTokens},
	}
}
