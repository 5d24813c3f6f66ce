package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultConfigNames are tried in order when --config is not given.
var defaultConfigNames = []string{"config.json", "config.yaml", "config.yml", "config.toml"}

// resolveConfigPath returns the explicit path when set, otherwise the
// first default config file present in dir.
func resolveConfigPath(explicit, dir string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, name := range defaultConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no config file found (tried %s); pass --config", strings.Join(defaultConfigNames, ", "))
}
