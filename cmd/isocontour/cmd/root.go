package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "isocontour",
	Short: "compute the union contour of axis-aligned rectangles",
	Long: `isocontour is the command-line application accompanying the
isocontour library:
	- build the union contour of a set of rectangles (YAML input),
	- save it to a binary contour file,
	- show info about a previously built contour file.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
