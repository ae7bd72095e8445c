package cfg

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// Plotter is the fixed configuration handed to the G-code generator on every
// run. It is a value type; callers get their own copy.
type Plotter struct {
	FeedRate float64 `yaml:"feed_rate"`
	PenDown  string  `yaml:"pen_down"`
	PenUp    string  `yaml:"pen_up"`
	Header   string  `yaml:"header"`
	Footer   string  `yaml:"footer"`

	// Scale maps SVG user units to machine millimetres. The default fits the
	// 944px wide B5 trace onto the 210mm machine width; change it together
	// with the paper or the machine.
	Scale float64 `yaml:"scale"`

	// ZUp and ZDown are only emitted when the matching pen command is empty.
	ZUp   float64 `yaml:"z_up"`
	ZDown float64 `yaml:"z_down"`

	// Tolerance is the maximum chord error, in machine units, allowed when
	// flattening curves into G01 moves.
	Tolerance float64 `yaml:"tolerance"`

	// JoinDistance joins paths whose ends lie within this distance of each
	// other into one stroke. Zero disables joining.
	JoinDistance float64 `yaml:"join_distance"`

	FlipY    bool `yaml:"flip_y"`
	Optimize bool `yaml:"optimize"`
	Simplify bool `yaml:"simplify"`
}

// Trace tunes the bitmap tracer.
type Trace struct {
	// Threshold is the luminance below which a pixel counts as ink.
	Threshold int `yaml:"threshold"`
	// TurdSize drops outlines enclosing at most this many pixels.
	TurdSize int `yaml:"turd_size"`
	// AlphaMax is the corner threshold; larger values give rounder output.
	AlphaMax float64 `yaml:"alpha_max"`
	// Epsilon is the polygon simplification tolerance in pixels.
	Epsilon float64 `yaml:"epsilon"`
}

type Config struct {
	Plotter Plotter `yaml:"plotter"`
	Trace   Trace   `yaml:"trace"`
}

func DefaultPlotter() Plotter {
	return Plotter{
		FeedRate:  1200,
		PenDown:   "M03",
		PenUp:     "M05",
		Header:    "G21\nG90\nM05\nG00 F1200.0 X0.0 Y0.0",
		Footer:    "M05\nG00 X0.0 Y0.0",
		Scale:     0.223,
		ZUp:       5,
		ZDown:     0,
		Tolerance: 0.05,

		JoinDistance: 0.01,

		FlipY:    true,
		Optimize: true,
		Simplify: true,
	}
}

func DefaultTrace() Trace {
	return Trace{
		Threshold: 128,
		TurdSize:  2,
		AlphaMax:  1.0,
		Epsilon:   1.0,
	}
}

func Default() Config {
	return Config{
		Plotter: DefaultPlotter(),
		Trace:   DefaultTrace(),
	}
}

// Load returns the defaults overlaid with the settings in the file at path.
// An empty path returns the defaults without touching the filesystem. The
// file format follows its extension (yaml, toml, json, ...).
func Load(path string) (Config, error) {
	def := Default()
	if path == "" {
		return def, nil
	}

	v := viper.New()
	v.SetDefault("plotter.feed_rate", def.Plotter.FeedRate)
	v.SetDefault("plotter.pen_down", def.Plotter.PenDown)
	v.SetDefault("plotter.pen_up", def.Plotter.PenUp)
	v.SetDefault("plotter.header", def.Plotter.Header)
	v.SetDefault("plotter.footer", def.Plotter.Footer)
	v.SetDefault("plotter.scale", def.Plotter.Scale)
	v.SetDefault("plotter.z_up", def.Plotter.ZUp)
	v.SetDefault("plotter.z_down", def.Plotter.ZDown)
	v.SetDefault("plotter.tolerance", def.Plotter.Tolerance)
	v.SetDefault("plotter.join_distance", def.Plotter.JoinDistance)
	v.SetDefault("plotter.flip_y", def.Plotter.FlipY)
	v.SetDefault("plotter.optimize", def.Plotter.Optimize)
	v.SetDefault("plotter.simplify", def.Plotter.Simplify)
	v.SetDefault("trace.threshold", def.Trace.Threshold)
	v.SetDefault("trace.turd_size", def.Trace.TurdSize)
	v.SetDefault("trace.alpha_max", def.Trace.AlphaMax)
	v.SetDefault("trace.epsilon", def.Trace.Epsilon)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrapf(err, "unable to read config file %s", path)
	}

	c := Config{
		Plotter: Plotter{
			FeedRate:  v.GetFloat64("plotter.feed_rate"),
			PenDown:   v.GetString("plotter.pen_down"),
			PenUp:     v.GetString("plotter.pen_up"),
			Header:    v.GetString("plotter.header"),
			Footer:    v.GetString("plotter.footer"),
			Scale:     v.GetFloat64("plotter.scale"),
			ZUp:       v.GetFloat64("plotter.z_up"),
			ZDown:     v.GetFloat64("plotter.z_down"),
			Tolerance: v.GetFloat64("plotter.tolerance"),

			JoinDistance: v.GetFloat64("plotter.join_distance"),

			FlipY:    v.GetBool("plotter.flip_y"),
			Optimize: v.GetBool("plotter.optimize"),
			Simplify: v.GetBool("plotter.simplify"),
		},
		Trace: Trace{
			Threshold: v.GetInt("trace.threshold"),
			TurdSize:  v.GetInt("trace.turd_size"),
			AlphaMax:  v.GetFloat64("trace.alpha_max"),
			Epsilon:   v.GetFloat64("trace.epsilon"),
		},
	}
	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %s", path)
	}
	return c, nil
}

// Validate rejects settings the pipelines cannot work with.
func (c Config) Validate() error {
	if c.Plotter.Scale <= 0 {
		return errors.Errorf("plotter.scale must be positive, got %g", c.Plotter.Scale)
	}
	if c.Plotter.FeedRate <= 0 {
		return errors.Errorf("plotter.feed_rate must be positive, got %g", c.Plotter.FeedRate)
	}
	if c.Plotter.Tolerance <= 0 {
		return errors.Errorf("plotter.tolerance must be positive, got %g", c.Plotter.Tolerance)
	}
	if c.Plotter.JoinDistance < 0 {
		return errors.Errorf("plotter.join_distance must not be negative, got %g", c.Plotter.JoinDistance)
	}
	if c.Trace.Threshold < 1 || c.Trace.Threshold > 256 {
		return errors.Errorf("trace.threshold must be in [1, 256], got %d", c.Trace.Threshold)
	}
	if c.Trace.TurdSize < 0 {
		return errors.Errorf("trace.turd_size must not be negative, got %d", c.Trace.TurdSize)
	}
	if c.Trace.Epsilon < 0 {
		return errors.Errorf("trace.epsilon must not be negative, got %g", c.Trace.Epsilon)
	}
	return nil
}

// WriteYAML writes c in the same layout Load reads.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "unable to encode config")
	}
	return errors.Wrap(enc.Close(), "unable to flush config")
}
