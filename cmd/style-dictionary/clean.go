package main

import (
	"github.com/spf13/cobra"

	styledictionary "github.com/isaccanedo/style-dictionary"
)

var cleanPlatforms []string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove built artifacts and prune emptied directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath(configPath, ".")
		if err != nil {
			return err
		}
		sd, err := styledictionary.Load(path)
		if err != nil {
			return err
		}
		if len(cleanPlatforms) == 0 {
			return sd.CleanAllPlatforms()
		}
		for _, name := range cleanPlatforms {
			if err := sd.CleanPlatform(name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringSliceVarP(&cleanPlatforms, "platform", "p", nil, "clean only the named platforms (repeatable)")
}
