package styledictionary

import (
	"github.com/isaccanedo/style-dictionary/internal/build"
	"github.com/isaccanedo/style-dictionary/internal/config"
	"github.com/isaccanedo/style-dictionary/internal/format"
	"github.com/isaccanedo/style-dictionary/internal/tokens"
)

// The pipeline types live in internal packages; these aliases are their
// public names.
type (
	// Token is a single resolved design value.
	Token = tokens.Token
	// Dictionary is the resolved token set a build runs against.
	Dictionary = tokens.Dictionary
	// Predicate selects tokens for one output file.
	Predicate = tokens.Predicate
	// Config is the top-level configuration document.
	Config = config.Config
	// Platform groups the files built under one destination prefix.
	Platform = config.Platform
	// File describes one output artifact.
	File = config.File
	// FilterSpec selects tokens by filter name or by patterns.
	FilterSpec = config.FilterSpec
	// Options are the format-facing file options.
	Options = config.Options
	// Format couples a format function with its registry name.
	Format = format.Format
	// FormatArgs is the bundle handed to a format function.
	FormatArgs = format.Args
	// Summary aggregates the results of a build.
	Summary = build.Summary
)

// Error kinds returned by builds. Match them with errors.Is.
var (
	ErrInvalidFileSpec = build.ErrInvalidFileSpec
	ErrFormatFailed    = build.ErrFormatFailed
	ErrWriteFailed     = build.ErrWriteFailed
)

// NewDictionary builds a dictionary from a flat, ordered token list.
func NewDictionary(all []*Token) (*Dictionary, error) {
	return tokens.New(all)
}

// LoadDictionary reads a resolved-dictionary document (.json, .yaml, .yml).
func LoadDictionary(path string) (*Dictionary, error) {
	return tokens.Load(path)
}

// LoadConfig reads a configuration document (.json, .yaml, .yml, .toml)
// without touching tokens, for callers that construct the dictionary
// themselves.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// NewPatternFilter compiles include and exclude patterns into a Predicate:
// doublestar globs over the slash-joined token path to include, gitignore
// lines to exclude.
func NewPatternFilter(include, exclude []string) (Predicate, error) {
	f, err := tokens.NewPatternFilter(include, exclude)
	if err != nil {
		return nil, err
	}
	return f.Predicate(), nil
}
