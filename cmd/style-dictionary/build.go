package main

import (
	"fmt"

	"github.com/spf13/cobra"

	styledictionary "github.com/isaccanedo/style-dictionary"
)

var (
	buildPlatforms []string
	buildJobs      int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build all configured platforms, or a selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath(configPath, ".")
		if err != nil {
			return err
		}
		sd, err := styledictionary.Load(path, styledictionary.WithJobs(buildJobs))
		if err != nil {
			return err
		}

		var sum styledictionary.Summary
		if len(buildPlatforms) == 0 {
			sum, err = sd.BuildAllPlatforms()
		} else {
			for _, name := range buildPlatforms {
				ps, perr := sd.BuildPlatform(name)
				sum.Merge(ps)
				if perr != nil {
					err = perr
					break
				}
			}
		}
		if err != nil {
			return err
		}
		fmt.Printf("\nDone: %s.\n", sum)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringSliceVarP(&buildPlatforms, "platform", "p", nil, "build only the named platforms (repeatable)")
	buildCmd.Flags().IntVarP(&buildJobs, "jobs", "j", 1, "number of files to emit concurrently per platform")
}
