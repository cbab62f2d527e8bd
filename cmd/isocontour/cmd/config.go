package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with
default values.

If FILE is not provided, 'isocontour.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "isocontour.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(marshalYAMLFile(path, defaultSettingsYAML()))
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
