package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const starterConfig = `tokens: tokens.json
platforms:
  css:
    buildPath: build/css/
    options:
      outputReferences: true
    files:
      - destination: variables.css
        format: css/variables
  web:
    buildPath: build/web/
    files:
      - destination: tokens.flat.json
        format: json/flat
`

const starterTokens = `{
  "tokens": [
    {"path": ["color", "base", "white"], "name": "color-base-white", "value": "#ffffff"},
    {"path": ["color", "base", "black"], "name": "color-base-black", "value": "#000000"},
    {"path": ["color", "font", "primary"], "name": "color-font-primary", "value": "#000000",
     "original": {"value": "{color.base.black}"}},
    {"path": ["size", "spacing", "small"], "name": "size-spacing-small", "value": "8px"}
  ]
}
`

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Write a starter config and tokens document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}

		starters := []struct{ name, content string }{
			{"config.yaml", starterConfig},
			{"tokens.json", starterTokens},
		}
		wrote := false
		for _, s := range starters {
			path := filepath.Join(dir, s.name)
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("skipping %s, already exists\n", path)
				continue
			}
			if err := os.WriteFile(path, []byte(s.content), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Printf("wrote %s\n", path)
			wrote = true
		}
		if wrote {
			fmt.Println("\nNext: run style-dictionary build")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
