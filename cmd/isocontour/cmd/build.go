package cmd

import (
	"fmt"
	"os"

	"github.com/arl/isocontour"
	"github.com/spf13/cobra"
)

var (
	buildCfgPath   string
	buildInputPath string
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build OUTFILE",
	Short: "build the union contour of a rectangle set",
	Long: `Build the union contour of the rectangles listed in the input
YAML file. The build is controlled by the provided settings file.
The resulting contour is saved to OUTFILE in binary format, readable
with isocontour.Decode.`,
	Args: cobra.ExactArgs(1),
	Run:  doBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildCfgPath, "config", "isocontour.yml", "build settings")
	buildCmd.Flags().StringVar(&buildInputPath, "input", "", "input rectangle YAML file (required)")
}

func doBuild(cmd *cobra.Command, args []string) {
	outPath := args[0]

	if buildInputPath == "" {
		fmt.Println("error, --input is required")
		os.Exit(-1)
	}
	check(fileExists(buildInputPath))

	var settings settingsYAML
	if err := fileExists(buildCfgPath); err != nil {
		settings = defaultSettingsYAML()
	} else {
		check(unmarshalYAMLFile(buildCfgPath, &settings))
	}

	var rectSet rectSetYAML
	check(unmarshalYAMLFile(buildInputPath, &rectSet))
	rects := rectSet.toRects()
	if len(rects) == 0 {
		fmt.Println("error,", isocontour.ErrNoRectangles)
		os.Exit(-1)
	}

	if ok, err := confirmIfExists(outPath,
		fmt.Sprintf("file name %s already exists, overwrite? [y/N]", outPath)); !ok {
		if err == nil {
			fmt.Println("aborted by user...")
		} else {
			fmt.Println("aborted,", err)
		}
		return
	}

	cfg := settings.toConfig()
	contour := isocontour.Build(rects, &cfg)

	f, err := os.Create(outPath)
	check(err)
	defer f.Close()

	check(isocontour.Encode(f, contour))
	fmt.Printf("contour written to '%s': %d cycle(s), area %g\n", outPath, len(contour.Cycles), contour.Area())
}
