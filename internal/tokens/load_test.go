package tokens

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadJSONArray(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tokens.json", `[
  {"path": ["color", "base", "red"], "name": "color-base-red", "value": "#ff0000"},
  {"path": ["size", "small"], "name": "size-small", "value": "4px", "comment": "smallest step"}
]`)
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(d.AllTokens) != 2 {
		t.Fatalf("loaded %d tokens, want 2", len(d.AllTokens))
	}
	if d.AllTokens[1].Comment != "smallest step" {
		t.Fatalf("comment = %q, want %q", d.AllTokens[1].Comment, "smallest step")
	}
	if _, ok := d.Tokens.lookup([]string{"color", "base", "red"}); !ok {
		t.Fatalf("tree is missing color.base.red")
	}
}

func TestLoadYAMLTokensKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tokens.yaml", `tokens:
  - path: [color, base, red]
    name: color-base-red
    value: "#ff0000"
    original:
      value: "{color.palette.red}"
`)
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(d.AllTokens) != 1 {
		t.Fatalf("loaded %d tokens, want 1", len(d.AllTokens))
	}
	if got := d.AllTokens[0].OriginalValue(); got != "{color.palette.red}" {
		t.Fatalf("OriginalValue() = %v, want the recorded original", got)
	}
}

func TestLoadDefaultsMissingNames(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tokens.json",
		`[{"path": ["color", "base", "red"], "value": "#ff0000"}]`)
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := d.AllTokens[0].Name; got != "color-base-red" {
		t.Fatalf("defaulted name = %q, want color-base-red", got)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tokens.txt", "not tokens")
	if _, err := Load(path); err == nil {
		t.Fatalf("Load() accepted a .txt file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("Load() succeeded on a missing file")
	}
}

func TestLoadObjectWithoutTokens(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tokens.json", `{"platforms": {}}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("Load() accepted a document without a tokens array")
	}
}
