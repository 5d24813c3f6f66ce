package build

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/isaccanedo/style-dictionary/internal/config"
	"github.com/isaccanedo/style-dictionary/internal/tokens"
)

// Summary aggregates emission results so callers can judge build health
// without parsing the diagnostic stream.
type Summary struct {
	Built           int
	Skipped         int
	Collisions      int
	ReferenceLosses int
}

func (s *Summary) add(r *Result) {
	if r == nil {
		return
	}
	if r.Skipped {
		s.Skipped++
		return
	}
	s.Built++
	s.Collisions += r.Collisions
	s.ReferenceLosses += r.ReferenceLosses
}

// Merge folds another summary into s.
func (s *Summary) Merge(other Summary) {
	s.Built += other.Built
	s.Skipped += other.Skipped
	s.Collisions += other.Collisions
	s.ReferenceLosses += other.ReferenceLosses
}

func (s Summary) String() string {
	out := fmt.Sprintf("%d built, %d skipped", s.Built, s.Skipped)
	if w := s.Collisions + s.ReferenceLosses; w > 0 {
		out += fmt.Sprintf(", %d warnings", w)
	}
	return out
}

// BuildPlatform emits every file the platform declares, in declaration
// order. With Jobs above one, files build concurrently and the
// reference-loss report is deferred to a single platform-level block, so
// one file's drain cannot swallow another's pending findings.
func (b *Builder) BuildPlatform(platform config.Platform, dict *tokens.Dictionary) (Summary, error) {
	var sum Summary
	if b.Jobs > 1 && len(platform.Files) > 1 {
		results := make([]*Result, len(platform.Files))
		var g errgroup.Group
		g.SetLimit(b.Jobs)
		for i, file := range platform.Files {
			i, file := i, file
			g.Go(func() error {
				res, err := b.buildFile(file, platform, dict, false)
				if err != nil {
					return err
				}
				results[i] = res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			// Losses recorded by emissions that did succeed must not
			// surface in a later build.
			b.Messages.Clear(lostReferenceGroup)
			return sum, err
		}
		for _, res := range results {
			sum.add(res)
		}
		sum.ReferenceLosses += b.reportLostReferences(platform)
		return sum, nil
	}

	for _, file := range platform.Files {
		res, err := b.buildFile(file, platform, dict, true)
		if err != nil {
			return sum, err
		}
		sum.add(res)
	}
	return sum, nil
}

// BuildAllPlatforms builds every platform of the config in name order.
func (b *Builder) BuildAllPlatforms(cfg *config.Config, dict *tokens.Dictionary) (Summary, error) {
	var sum Summary
	for _, name := range cfg.PlatformNames() {
		ps, err := b.BuildPlatform(cfg.Platforms[name], dict)
		sum.Merge(ps)
		if err != nil {
			return sum, err
		}
	}
	return sum, nil
}
