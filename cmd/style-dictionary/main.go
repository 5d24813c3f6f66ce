// Command style-dictionary builds design-token artifacts from a resolved
// token dictionary and a platform configuration.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// version can be overridden at build time via -ldflags.
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "style-dictionary",
	Short: "Build design token artifacts from a resolved token dictionary",
	Long: `style-dictionary consumes a resolved design-token dictionary and a
platform configuration, and emits one artifact per configured file: CSS
custom properties, SCSS variables, JSON or YAML trees, or any format
registered through the library API. Colliding output names and references
to filtered-out tokens are reported as warnings without failing the build.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to the config file (default: first of "+strings.Join(defaultConfigNames, ", ")+" in the working directory)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
