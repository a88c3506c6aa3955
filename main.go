package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"turtlecode/contour"
	"turtlecode/export"
)

func main() {
	cfg := DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	log := newLogger(os.Stderr, cfg.Verbose)
	if cfg.Input == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg, log, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

// run performs one conversion. The thresholded grid is printed to stdout
// when cfg.Show is set.
func run(cfg Config, log zerolog.Logger, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	order, _ := contour.ParseOrder(cfg.Order)
	format, _ := export.ParseFormat(cfg.Format)

	g, err := LoadGrid(cfg.Input, cfg.GridSize, uint8(cfg.Threshold), cfg.Invert)
	if err != nil {
		return err
	}
	log.Debug().Int("width", g.Width()).Int("height", g.Height()).Int("on", g.Count()).Msg("loaded grid")

	if cfg.GridPNG != "" {
		if err := saveImage(g.Image(), cfg.GridPNG); err != nil {
			return fmt.Errorf("could not save grid image: %w", err)
		}
		log.Debug().Str("path", cfg.GridPNG).Msg("saved grid image")
	}

	res, err := Convert(g, cfg.Step, contour.WithOrder(order))
	if err != nil {
		return err
	}
	for i, r := range res.Regions {
		log.Debug().Int("region", i).Int("cells", len(r.Cells)).Int("boundary", len(r.Boundary)).Int("strokes", len(r.Strokes)).Msg("traced region")
	}

	if err := writeCommands(cfg.Output, format, res, cfg.Scale); err != nil {
		return err
	}

	if cfg.Preview != "" {
		if err := saveImage(export.RenderPreview(res.Commands, 16), cfg.Preview); err != nil {
			return fmt.Errorf("could not save preview: %w", err)
		}
		log.Debug().Str("path", cfg.Preview).Msg("saved preview")
	}

	log.Info().
		Int("regions", len(res.Regions)).
		Int("commands", len(res.Commands)).
		Str("format", string(format)).
		Str("output", cfg.Output).
		Msg("commands written")

	if cfg.Show {
		fmt.Fprint(stdout, g.String())
	}
	return nil
}

func writeCommands(path string, format export.Format, res Result, scale float64) error {
	outFile, err := os.Create(path)
	if err != nil {
		return errors.Join(errors.New("could not create output file"), err)
	}
	defer outFile.Close()

	opts := export.DefaultOptions()
	opts.Scale = scale
	if err := export.Write(outFile, format, res.Commands, opts); err != nil {
		return fmt.Errorf("could not write %s output: %w", format, err)
	}
	return outFile.Close()
}
