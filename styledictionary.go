// Package styledictionary builds design-token artifacts. It consumes a
// resolved token dictionary together with a platform configuration and
// emits one file per configured output: CSS custom properties, SCSS
// variables, JSON and YAML trees, or any custom format registered through
// the options. Colliding output names and references to filtered-out
// tokens are reported as warnings on the diagnostic stream without failing
// the build.
//
// The import path ends in style-dictionary; the package name is
// styledictionary.
package styledictionary

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/isaccanedo/style-dictionary/internal/build"
	"github.com/isaccanedo/style-dictionary/internal/config"
	"github.com/isaccanedo/style-dictionary/internal/tokens"
)

// StyleDictionary couples a configuration with a resolved dictionary and
// the registries that bind the config's format and filter names.
type StyleDictionary struct {
	Config     *config.Config
	Dictionary *tokens.Dictionary

	builder *build.Builder
	err     error
}

// Option adjusts a StyleDictionary before its config is checked.
type Option func(*StyleDictionary)

// WithOutput redirects the diagnostic stream, which defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(sd *StyleDictionary) { sd.builder.Out = w }
}

// WithJobs allows up to n concurrent file emissions per platform. Values
// below two keep builds serial, the default.
func WithJobs(n int) Option {
	return func(sd *StyleDictionary) { sd.builder.Jobs = n }
}

// WithFormat registers an additional output format under f.Name.
func WithFormat(f Format) Option {
	return func(sd *StyleDictionary) {
		if err := sd.builder.Formats.Register(f); err != nil && sd.err == nil {
			sd.err = err
		}
	}
}

// WithFilter registers a named token filter that file specs can reference.
func WithFilter(name string, pred Predicate) Option {
	return func(sd *StyleDictionary) {
		if strings.TrimSpace(name) == "" {
			if sd.err == nil {
				sd.err = fmt.Errorf("filter name must not be empty")
			}
			return
		}
		sd.builder.Filters[name] = pred
	}
}

// New binds a configuration to a dictionary. The config is normalized and
// every file spec is checked against the registered formats and filters,
// so a bad config fails here instead of halfway through a build.
func New(cfg *config.Config, dict *tokens.Dictionary, opts ...Option) (*StyleDictionary, error) {
	if cfg == nil {
		return nil, fmt.Errorf("missing config")
	}
	if dict == nil {
		return nil, fmt.Errorf("missing dictionary")
	}
	sd := &StyleDictionary{
		Config:     cfg,
		Dictionary: dict,
		builder:    build.New(),
	}
	for _, opt := range opts {
		opt(sd)
	}
	if sd.err != nil {
		return nil, sd.err
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if err := sd.builder.CheckConfig(cfg); err != nil {
		return nil, err
	}
	return sd, nil
}

// Load reads the config document at path and the resolved-dictionary
// document it names, resolved relative to the config file.
func Load(path string, opts ...Option) (*StyleDictionary, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.Tokens == "" {
		return nil, fmt.Errorf("config %s names no tokens document", path)
	}
	tokensPath := cfg.Tokens
	if !filepath.IsAbs(tokensPath) {
		tokensPath = filepath.Join(filepath.Dir(path), tokensPath)
	}
	dict, err := tokens.Load(tokensPath)
	if err != nil {
		return nil, err
	}
	return New(cfg, dict, opts...)
}

// BuildAllPlatforms emits every configured platform in name order.
func (sd *StyleDictionary) BuildAllPlatforms() (Summary, error) {
	return sd.builder.BuildAllPlatforms(sd.Config, sd.Dictionary)
}

// BuildPlatform emits the named platform's files.
func (sd *StyleDictionary) BuildPlatform(name string) (Summary, error) {
	p, ok := sd.Config.Platform(name)
	if !ok {
		return Summary{}, sd.unknownPlatform(name)
	}
	return sd.builder.BuildPlatform(p, sd.Dictionary)
}

// CleanAllPlatforms removes the artifacts of every configured platform and
// prunes the directories the removals left empty.
func (sd *StyleDictionary) CleanAllPlatforms() error {
	return sd.builder.CleanAllPlatforms(sd.Config)
}

// CleanPlatform removes the named platform's artifacts.
func (sd *StyleDictionary) CleanPlatform(name string) error {
	p, ok := sd.Config.Platform(name)
	if !ok {
		return sd.unknownPlatform(name)
	}
	return sd.builder.CleanPlatform(p)
}

// PlatformNames returns the configured platform names, sorted.
func (sd *StyleDictionary) PlatformNames() []string {
	return sd.Config.PlatformNames()
}

func (sd *StyleDictionary) unknownPlatform(name string) error {
	return fmt.Errorf("unknown platform %q (configured: %s)", name, strings.Join(sd.PlatformNames(), ", "))
}
