package cmd

import (
	"fmt"
	"os"

	"github.com/arl/isocontour"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info CONTOUR",
	Short: "show info about a contour file",
	Long: `Read a contour from binary file, check the data for
consistency then print information on standard output.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func doInfo(cmd *cobra.Command, args []string) {
	path := args[0]
	check(fileExists(path))

	f, err := os.Open(path)
	check(err)
	defer f.Close()

	contour, err := isocontour.Decode(f)
	check(err)

	fmt.Printf("contour %q: %d cycle(s), total area %g\n", path, len(contour.Cycles), contour.Area())
	if len(contour.Cycles) > 0 {
		b := contour.Bounds()
		fmt.Printf("  bounds: (%g,%g)-(%g,%g)\n", b.XLo, b.YLo, b.XHi, b.YHi)
	}
	for i, c := range contour.Cycles {
		kind := "outer"
		if shoelaceSign(c) < 0 {
			kind = "hole"
		}
		fmt.Printf("  cycle %d: %d vertices, %s\n", i, len(c.Vertices), kind)
	}
}

func shoelaceSign(c isocontour.Cycle) int {
	area := isocontour.Contour{Cycles: []isocontour.Cycle{c}}.Area()
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	default:
		return 0
	}
}
