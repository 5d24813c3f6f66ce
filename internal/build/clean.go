package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/isaccanedo/style-dictionary/internal/config"
)

// CleanFile removes the artifact a file spec would emit. A file that is
// already gone is reported, not an error, so clean stays idempotent.
func (b *Builder) CleanFile(file config.File, platform config.Platform) error {
	if strings.TrimSpace(file.Destination) == "" {
		return invalidSpec("", "missing destination")
	}
	fullDestination := platform.BuildPath + file.Destination
	if _, err := os.Stat(fullDestination); err != nil {
		if os.IsNotExist(err) {
			b.print(func(w io.Writer) {
				infoColor.Fprintf(w, "! %s, does not exist\n", fullDestination)
			})
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", fullDestination, err)
	}
	if err := os.Remove(fullDestination); err != nil {
		return fmt.Errorf("failed to remove %s: %w", fullDestination, err)
	}
	b.print(func(w io.Writer) {
		infoColor.Fprintf(w, "- %s\n", fullDestination)
	})
	return nil
}

// CleanPlatform removes every file the platform declares, then prunes
// directories between each destination and the build path that the removals
// left empty. Directories still holding foreign files stay.
func (b *Builder) CleanPlatform(platform config.Platform) error {
	for _, file := range platform.Files {
		if err := b.CleanFile(file, platform); err != nil {
			return err
		}
	}
	b.cleanEmptyDirs(platform)
	return nil
}

// CleanAllPlatforms cleans every platform of the config in name order.
func (b *Builder) CleanAllPlatforms(cfg *config.Config) error {
	for _, name := range cfg.PlatformNames() {
		if err := b.CleanPlatform(cfg.Platforms[name]); err != nil {
			return err
		}
	}
	return nil
}

// cleanEmptyDirs walks each destination's directory chain bottom-up toward
// the build path, removing directories as they empty out and stopping at
// the first one that is not.
func (b *Builder) cleanEmptyDirs(platform config.Platform) {
	if platform.BuildPath == "" {
		return
	}
	root := filepath.Clean(platform.BuildPath)
	for _, file := range platform.Files {
		dir := filepath.Dir(filepath.Clean(platform.BuildPath + file.Destination))
		for {
			rel, err := filepath.Rel(root, dir)
			if err != nil || strings.HasPrefix(rel, "..") {
				break
			}
			if !removeIfEmpty(dir) {
				break
			}
			if dir == root {
				break
			}
			dir = filepath.Dir(dir)
		}
	}
}

func removeIfEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return false
	}
	return os.Remove(dir) == nil
}
