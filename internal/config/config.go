// Package config declares the build configuration for a run: which
// platforms exist, where their files land, and how each file is formatted
// and filtered. It is pure data; format and filter names are bound to
// implementations by the build package.
package config

import (
	"fmt"
	"sort"
	"strings"
)

// Config is the top-level configuration document.
type Config struct {
	// Tokens points at the resolved-dictionary document, relative to the
	// config file. Optional for callers that construct the dictionary
	// themselves.
	Tokens    string              `json:"tokens,omitempty" yaml:"tokens,omitempty" toml:"tokens,omitempty"`
	Platforms map[string]Platform `json:"platforms" yaml:"platforms" toml:"platforms"`
}

// Platform groups the files built under one destination prefix.
type Platform struct {
	// Name is the key the platform was declared under; Normalize fills it.
	Name string `json:"-" yaml:"-" toml:"-"`
	// BuildPath is prepended verbatim to every file destination, so it
	// usually ends with a slash.
	BuildPath string `json:"buildPath,omitempty" yaml:"buildPath,omitempty" toml:"buildPath,omitempty"`
	// Options are inherited by every file of the platform.
	Options Options `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
	Files   []File  `json:"files" yaml:"files" toml:"files"`
}

// File describes one output artifact.
type File struct {
	Destination string      `json:"destination" yaml:"destination" toml:"destination"`
	Format      string      `json:"format" yaml:"format" toml:"format"`
	Filter      *FilterSpec `json:"filter,omitempty" yaml:"filter,omitempty" toml:"filter,omitempty"`
	Options     Options     `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// FilterSpec selects the tokens for one file: either the name of a filter
// registered through the library, or include/exclude pattern lists. The
// two styles are mutually exclusive.
type FilterSpec struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Include []string `json:"include,omitempty" yaml:"include,omitempty" toml:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`
}

// Options are the format-facing knobs. Unset fields inherit the platform
// value, with the file winning when both are set.
type Options struct {
	// OutputReferences asks formats to emit references to other tokens
	// instead of resolved values where the format supports it.
	OutputReferences *bool `json:"outputReferences,omitempty" yaml:"outputReferences,omitempty" toml:"outputReferences,omitempty"`
	// ShowFileHeader controls the generated-file comment; nil means show.
	ShowFileHeader *bool `json:"showFileHeader,omitempty" yaml:"showFileHeader,omitempty" toml:"showFileHeader,omitempty"`
}

// merged returns o with unset fields filled in from parent.
func (o Options) merged(parent Options) Options {
	if o.OutputReferences == nil {
		o.OutputReferences = parent.OutputReferences
	}
	if o.ShowFileHeader == nil {
		o.ShowFileHeader = parent.ShowFileHeader
	}
	return o
}

// WantsReferences reports whether reference output was requested.
func (o Options) WantsReferences() bool {
	return o.OutputReferences != nil && *o.OutputReferences
}

// WantsFileHeader reports whether formats should emit the generated-file
// header. The default is yes.
func (o Options) WantsFileHeader() bool {
	return o.ShowFileHeader == nil || *o.ShowFileHeader
}

// Platform returns the named platform.
func (c *Config) Platform(name string) (Platform, bool) {
	p, ok := c.Platforms[name]
	return p, ok
}

// PlatformNames returns the configured platform names, sorted.
func (c *Config) PlatformNames() []string {
	names := make([]string, 0, len(c.Platforms))
	for name := range c.Platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize fills in platform names and applies option inheritance. It
// rejects platforms with no files; per-file validation is left to the
// build, which knows the registered formats and filters.
func (c *Config) Normalize() error {
	for name, p := range c.Platforms {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("platform with an empty name")
		}
		if len(p.Files) == 0 {
			return fmt.Errorf("platform %s declares no files", name)
		}
		p.Name = name
		for i := range p.Files {
			p.Files[i].Options = p.Files[i].Options.merged(p.Options)
		}
		c.Platforms[name] = p
	}
	return nil
}
