// Package build turns a resolved token dictionary plus a platform
// configuration into files on disk. Name collisions and filtered-out
// references are reported as warnings on the diagnostic stream; they never
// fail the build.
package build

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/isaccanedo/style-dictionary/internal/config"
	"github.com/isaccanedo/style-dictionary/internal/format"
	"github.com/isaccanedo/style-dictionary/internal/messages"
	"github.com/isaccanedo/style-dictionary/internal/tokens"
)

// Message-group keys. Collision groups are scoped per destination so
// emissions never see each other's findings; lost references accumulate in
// one run-scoped group and are drained when reported.
const (
	collisionGroupPrefix = "token-name-collisions:"
	lostReferenceGroup   = "filtered-output-references"
)

func collisionGroup(destination string) string {
	return collisionGroupPrefix + destination
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgYellow)
)

// Builder runs emissions for one dictionary-and-registries pairing. The
// zero value is not usable; create a Builder with New and adjust its
// fields before the first build.
type Builder struct {
	// Formats resolves the format names used by file specs.
	Formats *format.Registry
	// Filters resolves the filter names used by file specs.
	Filters map[string]tokens.Predicate
	// Messages accumulates warnings between build and report steps.
	Messages *messages.Registry
	// Out receives the diagnostic stream.
	Out io.Writer
	// Jobs caps concurrent file emissions per platform. Values below two
	// mean files build serially.
	Jobs int

	printMu sync.Mutex
}

// New returns a Builder with the built-in formats, no named filters, a
// fresh message registry, and stdout as the diagnostic stream.
func New() *Builder {
	return &Builder{
		Formats:  format.NewRegistry(),
		Filters:  make(map[string]tokens.Predicate),
		Messages: messages.NewRegistry(),
		Out:      os.Stdout,
	}
}

// CheckConfig verifies that every file spec of the config binds cleanly:
// non-empty destinations, known formats, known or compilable filters. It
// lets callers fail before the first platform starts building.
func (b *Builder) CheckConfig(cfg *config.Config) error {
	for _, name := range cfg.PlatformNames() {
		p := cfg.Platforms[name]
		for _, file := range p.Files {
			if strings.TrimSpace(file.Destination) == "" {
				return fmt.Errorf("platform %s: %w", name, invalidSpec("", "missing destination"))
			}
			if _, err := b.lookupFormat(file); err != nil {
				return fmt.Errorf("platform %s: %w", name, err)
			}
			if _, err := b.lookupFilter(file); err != nil {
				return fmt.Errorf("platform %s: %w", name, err)
			}
		}
	}
	return nil
}

func (b *Builder) lookupFormat(file config.File) (format.Format, error) {
	if strings.TrimSpace(file.Format) == "" {
		return format.Format{}, invalidSpec(file.Destination, "missing format")
	}
	f, ok := b.Formats.Lookup(file.Format)
	if !ok {
		return format.Format{}, invalidSpec(file.Destination,
			fmt.Sprintf("unknown format %q (registered: %s)", file.Format, strings.Join(b.Formats.Names(), ", ")))
	}
	return f, nil
}

func (b *Builder) lookupFilter(file config.File) (tokens.Predicate, error) {
	spec := file.Filter
	if spec == nil {
		return nil, nil
	}
	if spec.Name != "" {
		if len(spec.Include) > 0 || len(spec.Exclude) > 0 {
			return nil, invalidSpec(file.Destination, "filter name and patterns are mutually exclusive")
		}
		pred, ok := b.Filters[spec.Name]
		if !ok {
			return nil, invalidSpec(file.Destination, fmt.Sprintf("unknown filter %q", spec.Name))
		}
		return pred, nil
	}
	pf, err := tokens.NewPatternFilter(spec.Include, spec.Exclude)
	if err != nil {
		return nil, invalidSpec(file.Destination, err.Error())
	}
	return pf.Predicate(), nil
}

// print hands the diagnostic stream to fn under a lock, so concurrent
// emissions interleave whole blocks instead of partial lines.
func (b *Builder) print(fn func(io.Writer)) {
	b.printMu.Lock()
	defer b.printMu.Unlock()
	fn(b.Out)
}
