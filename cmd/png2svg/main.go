// Command png2svg traces the dark shapes of a raster image into an SVG of
// outline paths.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"penplot/pkg/cli"
	"penplot/pkg/convert"
	"penplot/pkg/trace"
)

func newCommand() *cobra.Command {
	var opts cli.Options
	cmd := &cobra.Command{
		Use:   "png2svg <input_png> <output_svg>",
		Short: "Trace a raster image into SVG outlines",
		Long: `png2svg converts an image (PNG, JPEG, GIF, BMP, TIFF or WebP) to
grayscale, traces the outlines of its dark areas and writes them as SVG
paths the size of the image.`,
		Args: cli.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cli.Setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return convert.RasterToSVG(args[0], args[1], trace.NewPotrace(c.Trace))
		},
	}
	cli.AddFlags(cmd, &opts)
	return cmd
}

func run(args []string, stdout, stderr io.Writer) int {
	return cli.Run(newCommand(), args, stdout, stderr)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
