// Package config holds the command line configuration of the vislog binary.
package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/arloliu/vislog/export"
	"github.com/arloliu/vislog/internal/options"
	"github.com/arloliu/vislog/loader"
	"github.com/arloliu/vislog/resample"
)

// Options collects the flag values shared by the vislog commands.
type Options struct {
	LogLevel string
	Format   string
	Output   string
	Signals  []string
	Step     float64
	Workers  int64
	Strict   bool
}

// Defaults returns the options used when no flag or environment variable is set.
func Defaults() *Options {
	return &Options{
		LogLevel: "info",
		Format:   string(export.FormatCSV),
		Step:     resample.DefaultStep,
		Workers:  1,
	}
}

// LoaderOptions bundles the loader settings carried by o.
func LoaderOptions(o *Options) loader.Option {
	return options.Join(
		loader.WithStep(o.Step),
		loader.WithWorkers(int(o.Workers)),
		loader.WithStrict(o.Strict),
		loader.WithLogger(Logger(o.LogLevel)),
	)
}

// Logger returns a text logger writing to stderr at the given level. Unknown
// levels fall back to info.
func Logger(level string) *slog.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger is Logger with an explicit destination.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}

// GlobalFlags returns the flags accepted by every command.
func GlobalFlags(o *Options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Category:    "core",
			Name:        "log-level",
			Usage:       "log level, values are (debug,info,warn,error)",
			Value:       o.LogLevel,
			Destination: &o.LogLevel,
			Sources:     cli.EnvVars("VISLOG_LOG_LEVEL"),
		},
	}
}

// ExportFlags returns the flags of the export command.
func ExportFlags(o *Options) []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Category:    "load",
			Name:        "step",
			Usage:       "spacing of the resampled time axis",
			Value:       o.Step,
			Destination: &o.Step,
			Sources:     cli.EnvVars("VISLOG_STEP"),
		},
		&cli.StringSliceFlag{
			Category:    "load",
			Name:        "signal",
			Usage:       "signal to export, matched as a substring of the dataset name (repeatable, default all)",
			Destination: &o.Signals,
			Sources:     cli.EnvVars("VISLOG_SIGNALS"),
		},
		&cli.IntFlag{
			Category:    "load",
			Name:        "workers",
			Usage:       "number of files loaded concurrently",
			Value:       o.Workers,
			Destination: &o.Workers,
			Sources:     cli.EnvVars("VISLOG_WORKERS"),
		},
		&cli.BoolFlag{
			Category:    "load",
			Name:        "strict",
			Usage:       "fail on missing input files instead of skipping them",
			Destination: &o.Strict,
			Sources:     cli.EnvVars("VISLOG_STRICT"),
		},
		&cli.StringFlag{
			Category:    "output",
			Name:        "format",
			Usage:       "output format, values are (csv,parquet)",
			Value:       o.Format,
			Destination: &o.Format,
			Sources:     cli.EnvVars("VISLOG_FORMAT"),
		},
		&cli.StringFlag{
			Category:    "output",
			Name:        "output",
			Usage:       "output file, stdout when empty or -",
			Destination: &o.Output,
			Sources:     cli.EnvVars("VISLOG_OUTPUT"),
		},
	}
}

// Selector turns the --signal values into a loader selector.
func Selector(signals []string) loader.Selector {
	if len(signals) == 0 {
		return loader.All()
	}

	return loader.Names(signals...)
}
