package build

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/isaccanedo/style-dictionary/internal/config"
	"github.com/isaccanedo/style-dictionary/internal/format"
	"github.com/isaccanedo/style-dictionary/internal/tokens"
)

// Result describes one file emission.
type Result struct {
	// Destination is the full output path, build path included.
	Destination string
	// Skipped is set when the filter kept nothing and no file was written.
	Skipped bool
	// Collisions counts the colliding output names found in the file's
	// token set. Nested formats suppress the warning but still count.
	Collisions int
	// ReferenceLosses counts the filtered-out references reported with
	// this emission. Parallel platform builds defer the count to one
	// platform-level report, leaving it zero here.
	ReferenceLosses int
}

// BuildFile emits one file: validate the file spec, make the directory,
// filter the dictionary, detect collisions, format, write, report. A
// filter that keeps nothing skips the write. Collisions and filtered-out
// references are warnings; the returned error is reserved for file spec,
// format, and write failures.
func (b *Builder) BuildFile(file config.File, platform config.Platform, dict *tokens.Dictionary) (*Result, error) {
	return b.buildFile(file, platform, dict, true)
}

// buildFile implements BuildFile. flushRefs controls whether this
// emission's report drains the reference-loss group; parallel platform
// builds pass false and drain once per platform instead.
func (b *Builder) buildFile(file config.File, platform config.Platform, dict *tokens.Dictionary, flushRefs bool) (*Result, error) {
	if strings.TrimSpace(file.Destination) == "" {
		return nil, invalidSpec("", "missing destination")
	}
	f, err := b.lookupFormat(file)
	if err != nil {
		return nil, err
	}
	pred, err := b.lookupFilter(file)
	if err != nil {
		return nil, err
	}

	fullDestination := platform.BuildPath + file.Destination
	if dir := filepath.Dir(fullDestination); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, writeFailed(fullDestination, err)
		}
	}

	filtered := dict.Filtered(pred)
	filtered.OnLostReference(func(ref string) {
		b.Messages.Add(lostReferenceGroup, ref)
	})

	if filtered.IsEmpty() {
		b.print(func(w io.Writer) {
			infoColor.Fprintf(w, "No properties for %s. File not created.\n", file.Destination)
		})
		return &Result{Destination: fullDestination, Skipped: true}, nil
	}

	group := collisionGroup(file.Destination)
	b.Messages.Clear(group)
	collisions := detectCollisions(filtered.AllTokens)
	for _, c := range collisions {
		b.Messages.Add(group, c.message())
	}

	body, err := f.Fn(format.Args{Dictionary: filtered, Platform: platform, File: file})
	if err != nil {
		// Losses the format recorded before failing must not surface in a
		// later report.
		b.Messages.Clear(lostReferenceGroup)
		return nil, formatFailed(fullDestination, err)
	}

	if err := writeFileAtomic(fullDestination, []byte(body)); err != nil {
		b.Messages.Clear(lostReferenceGroup)
		return nil, writeFailed(fullDestination, err)
	}

	res := &Result{Destination: fullDestination, Collisions: len(collisions)}
	if flushRefs {
		res.ReferenceLosses = b.Messages.Count(lostReferenceGroup)
	}
	b.reportFile(res, file, f.Nested, flushRefs)
	return res, nil
}

// writeFileAtomic writes data through a temp file in the destination's
// directory plus a rename, so a failed write never leaves a truncated
// artifact behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
