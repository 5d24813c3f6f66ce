package tokens

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type tokensDocument struct {
	Tokens []*Token `json:"tokens" yaml:"tokens"`
}

// Load reads a resolved-dictionary document: either a bare token array or
// an object with a "tokens" array, in JSON or YAML depending on the file
// extension. Tokens without a name get one derived by joining the path
// with dashes, a convenience for hand-written documents.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokens file: %w", err)
	}

	var all []*Token
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		all, err = decodeTokens(data, json.Unmarshal)
	case ".yaml", ".yml":
		all, err = decodeTokens(data, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("unsupported tokens file extension %q (expected .json, .yaml, or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse tokens file %s: %w", path, err)
	}

	for _, t := range all {
		if t != nil && t.Name == "" && len(t.Path) > 0 {
			t.Name = strings.Join(t.Path, "-")
		}
	}
	return New(all)
}

func decodeTokens(data []byte, unmarshal func([]byte, any) error) ([]*Token, error) {
	var list []*Token
	if err := unmarshal(data, &list); err == nil {
		return list, nil
	}
	var doc tokensDocument
	if err := unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Tokens == nil {
		return nil, fmt.Errorf("no tokens array found")
	}
	return doc.Tokens, nil
}
