// Command svg2gcode converts the visible paths of an SVG file into G-code
// for a servo pen plotter.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"penplot/pkg/cli"
	"penplot/pkg/convert"
	"penplot/pkg/errkind"
	"penplot/pkg/gcode"
)

func newCommand() *cobra.Command {
	var opts cli.Options
	var dumpConfig bool
	cmd := &cobra.Command{
		Use:   "svg2gcode <input_svg> <output_gcode>",
		Short: "Convert SVG paths to pen plotter G-code",
		Long: `svg2gcode flattens the stroked and filled shapes of an SVG file into
pen down moves, scaled from SVG pixels to millimetres for a servo pen plotter.
The plotter settings are built in; --config overrides them and --dump-config
prints them.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if dumpConfig && len(args) == 0 {
				return nil
			}
			return cli.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cli.Setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if dumpConfig {
				return errkind.Wrap(errkind.Output, c.WriteYAML(cmd.OutOrStdout()), "dump config")
			}
			return convert.SVGToGcode(args[0], args[1], gcode.NewGenerator(), c.Plotter)
		},
	}
	cli.AddFlags(cmd, &opts)
	cmd.Flags().BoolVar(&dumpConfig, "dump-config", false, "print the effective settings as YAML and exit")
	return cmd
}

func run(args []string, stdout, stderr io.Writer) int {
	return cli.Run(newCommand(), args, stdout, stderr)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
