package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("platforms: {}\n"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestResolveConfigPathExplicitWins(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "config.json")
	got, err := resolveConfigPath("custom/settings.yaml", dir)
	if err != nil {
		t.Fatalf("resolveConfigPath() failed: %v", err)
	}
	if got != "custom/settings.yaml" {
		t.Fatalf("resolveConfigPath() = %q, want the explicit path", got)
	}
}

func TestResolveConfigPathDiscoveryOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "config.yml")
	touch(t, dir, "config.toml")
	got, err := resolveConfigPath("", dir)
	if err != nil {
		t.Fatalf("resolveConfigPath() failed: %v", err)
	}
	if got != filepath.Join(dir, "config.yml") {
		t.Fatalf("resolveConfigPath() = %q, want config.yml to win over config.toml", got)
	}
}

func TestResolveConfigPathPrefersJSON(t *testing.T) {
	dir := t.TempDir()
	for _, name := range defaultConfigNames {
		touch(t, dir, name)
	}
	got, err := resolveConfigPath("", dir)
	if err != nil {
		t.Fatalf("resolveConfigPath() failed: %v", err)
	}
	if got != filepath.Join(dir, "config.json") {
		t.Fatalf("resolveConfigPath() = %q, want config.json first", got)
	}
}

func TestResolveConfigPathNotFound(t *testing.T) {
	_, err := resolveConfigPath("", t.TempDir())
	if err == nil {
		t.Fatalf("resolveConfigPath() succeeded in an empty directory")
	}
	if !strings.Contains(err.Error(), "--config") {
		t.Fatalf("error = %q, want it to suggest --config", err)
	}
}
