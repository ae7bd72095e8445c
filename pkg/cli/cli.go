// Package cli holds what the png2svg and svg2gcode commands share: common
// flags, logger setup and the mapping from errors to exit codes.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"penplot/pkg/cfg"
	"penplot/pkg/errkind"
	"penplot/pkg/logging"
)

// Options are the flags every command takes.
type Options struct {
	ConfigFile string
	Verbose    bool
}

// AddFlags registers the common flags on cmd.
func AddFlags(cmd *cobra.Command, o *Options) {
	cmd.Flags().StringVar(&o.ConfigFile, "config", "", "settings file (yaml, toml or json) overriding the built in defaults")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false, "log progress to standard error")
}

// Setup installs the stderr logger and loads the configuration.
func Setup(o Options, stderr io.Writer) (cfg.Config, error) {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	c, err := cfg.Load(o.ConfigFile)
	if err != nil {
		return cfg.Config{}, errkind.Wrap(errkind.Input, err, "configuration")
	}
	if o.ConfigFile != "" {
		logging.Logger().Debug("loaded config", "path", o.ConfigFile)
	}
	return c, nil
}

// ExactArgs rejects any number of positional arguments other than n with a
// usage error.
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errkind.Errorf(errkind.Usage, "expected %d arguments, got %d", n, len(args))
		}
		return nil
	}
}

// Run executes cmd with args and returns the process exit code. Usage
// errors print the command's usage line on stdout; other errors are
// reported on stderr.
func Run(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errkind.Wrap(errkind.Usage, err, "bad flag")
	})

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if errkind.Of(err) == errkind.Usage {
		fmt.Fprintln(stdout, "Usage: "+cmd.Use)
		return 1
	}
	fmt.Fprintf(stderr, "%s: %s: %v\n", cmd.Name(), errkind.Of(err), err)
	return 1
}
