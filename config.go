package main

import (
	"errors"
	"flag"
	"fmt"

	"turtlecode/contour"
	"turtlecode/export"
)

var (
	// ErrInputNotFound indicates the input file does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrInvalidConfig indicates a rejected option value.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnsupportedFormat indicates an input extension that cannot be read.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Config holds the command line options.
type Config struct {
	Input     string
	Output    string
	GridSize  int
	Step      int
	Threshold uint
	Invert    bool
	Order     string
	Format    string
	Scale     float64
	Preview   string
	GridPNG   string
	Show      bool
	Verbose   bool
}

func DefaultConfig() Config {
	return Config{
		Output:    "arduino_commands.txt",
		GridSize:  12,
		Step:      10,
		Threshold: 128,
		Order:     contour.Discovery.String(),
		Format:    string(export.Legacy),
		Scale:     1,
		Show:      true,
	}
}

// RegisterFlags binds c to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "Path to the input image (.png, .jpg, .gif, .svg) or ASCII grid (.txt)")
	fs.StringVar(&c.Output, "output", c.Output, "Path to the output command file")
	fs.IntVar(&c.GridSize, "grid", c.GridSize, "Grid width and height the image is resized to")
	fs.IntVar(&c.Step, "step", c.Step, "Forward distance per grid cell")
	fs.UintVar(&c.Threshold, "threshold", c.Threshold, "Luma threshold (0-255); darker cells are traced")
	fs.BoolVar(&c.Invert, "invert", c.Invert, "Invert luma before thresholding")
	fs.StringVar(&c.Order, "order", c.Order, "Boundary order, either discovery or walk")
	fs.StringVar(&c.Format, "format", c.Format, "Output format: legacy, lines, gcode, jcode or cbor")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "Device units per command unit for gcode and jcode")
	fs.StringVar(&c.Preview, "preview", c.Preview, "Optional PNG path for a rendering of the pen path")
	fs.StringVar(&c.GridPNG, "grid-png", c.GridPNG, "Optional PNG path for the thresholded grid")
	fs.BoolVar(&c.Show, "show", c.Show, "Print the thresholded grid")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "Verbose logging")
}

// Validate reports every invalid option. Each error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}
	if c.Input == "" {
		invalid("an input file is required")
	}
	if c.GridSize <= 0 {
		invalid("grid size must be positive, got %d", c.GridSize)
	}
	if c.Step <= 0 {
		invalid("step length must be positive, got %d", c.Step)
	}
	if c.Threshold > 255 {
		invalid("threshold must be at most 255, got %d", c.Threshold)
	}
	if c.Scale <= 0 {
		invalid("scale must be positive, got %g", c.Scale)
	}
	if _, err := contour.ParseOrder(c.Order); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}
