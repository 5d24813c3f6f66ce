package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/isaccanedo/style-dictionary/internal/config"
)

func TestCleanFileRemovesArtifact(t *testing.T) {
	b, buf := testBuilder()
	d := mustDict(t, tok("color-black", "#000000", "color", "black"))
	platform := config.Platform{Name: "web", BuildPath: t.TempDir() + "/"}
	file := config.File{Destination: "tokens.json", Format: "json/flat"}

	if _, err := b.BuildFile(file, platform, d); err != nil {
		t.Fatalf("BuildFile() failed: %v", err)
	}
	buf.Reset()

	if err := b.CleanFile(file, platform); err != nil {
		t.Fatalf("CleanFile() failed: %v", err)
	}
	if _, err := os.Stat(platform.BuildPath + "tokens.json"); !os.IsNotExist(err) {
		t.Fatalf("artifact still present after clean")
	}
	if !strings.Contains(buf.String(), "- "+platform.BuildPath+"tokens.json") {
		t.Fatalf("diagnostics = %q, want a removal line", buf.String())
	}
}

func TestCleanFileMissingIsNotAnError(t *testing.T) {
	b, buf := testBuilder()
	platform := config.Platform{Name: "web", BuildPath: t.TempDir() + "/"}
	file := config.File{Destination: "tokens.json"}

	if err := b.CleanFile(file, platform); err != nil {
		t.Fatalf("CleanFile() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "! "+platform.BuildPath+"tokens.json, does not exist") {
		t.Fatalf("diagnostics = %q, want a does-not-exist line", buf.String())
	}
}

func TestCleanPlatformPrunesEmptyDirs(t *testing.T) {
	b, _ := testBuilder()
	d := mustDict(t, tok("color-black", "#000000", "color", "black"))
	base := t.TempDir()
	platform := config.Platform{
		Name:      "web",
		BuildPath: base + "/build/css/",
		Files: []config.File{
			{Destination: "deep/vars.css", Format: "css/variables"},
		},
	}

	if _, err := b.BuildPlatform(platform, d); err != nil {
		t.Fatalf("BuildPlatform() failed: %v", err)
	}
	if err := b.CleanPlatform(platform); err != nil {
		t.Fatalf("CleanPlatform() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "build", "css")); !os.IsNotExist(err) {
		t.Fatalf("emptied build path still present")
	}
	if _, err := os.Stat(filepath.Join(base, "build")); err != nil {
		t.Fatalf("directory above the build path was removed: %v", err)
	}
}

func TestCleanPlatformKeepsDirsWithForeignFiles(t *testing.T) {
	b, _ := testBuilder()
	d := mustDict(t, tok("color-black", "#000000", "color", "black"))
	platform := config.Platform{
		Name:      "web",
		BuildPath: t.TempDir() + "/out/",
		Files: []config.File{
			{Destination: "vars.css", Format: "css/variables"},
		},
	}

	if _, err := b.BuildPlatform(platform, d); err != nil {
		t.Fatalf("BuildPlatform() failed: %v", err)
	}
	foreign := platform.BuildPath + "keep.txt"
	if err := os.WriteFile(foreign, []byte("keep"), 0o644); err != nil {
		t.Fatalf("failed to write foreign file: %v", err)
	}
	if err := b.CleanPlatform(platform); err != nil {
		t.Fatalf("CleanPlatform() failed: %v", err)
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Fatalf("foreign file removed: %v", err)
	}
	if _, err := os.Stat(platform.BuildPath + "vars.css"); !os.IsNotExist(err) {
		t.Fatalf("artifact still present after clean")
	}
}

func TestCleanAllPlatforms(t *testing.T) {
	b, _ := testBuilder()
	d := mustDict(t, tok("color-black", "#000000", "color", "black"))
	base := t.TempDir() + "/"
	cfg := &config.Config{Platforms: map[string]config.Platform{
		"css": {
			BuildPath: base + "css/",
			Files:     []config.File{{Destination: "vars.css", Format: "css/variables"}},
		},
		"web": {
			BuildPath: base + "web/",
			Files:     []config.File{{Destination: "tokens.json", Format: "json/flat"}},
		},
	}}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	if _, err := b.BuildAllPlatforms(cfg, d); err != nil {
		t.Fatalf("BuildAllPlatforms() failed: %v", err)
	}

	if err := b.CleanAllPlatforms(cfg); err != nil {
		t.Fatalf("CleanAllPlatforms() failed: %v", err)
	}
	for _, dir := range []string{base + "css", base + "web"} {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Fatalf("build dir %s still present", dir)
		}
	}
}
