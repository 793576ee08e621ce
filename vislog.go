// Package vislog loads Vision sensor logs and resamples their signals onto a
// uniform time grid.
//
// A log is a container of named float64 datasets. Datasets whose name starts with
// "ts_" hold timestamps; every other dataset holds signal values and references
// the timestamp dataset it was sampled at. Loading a log builds the time axis
// 0, step, 2*step, ... up to ceil(last(ts_group_0)), evaluates each selected
// signal on it with nearest-neighbor interpolation and returns the arrays keyed
// by signal name, with the axis itself under "t".
//
// # Basic Usage
//
// Load every signal of one file:
//
//	rec, err := vislog.Load("run-001.vis", vislog.All(), 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rec["t"], rec["temperature"])
//
// Load two signals from a series of files and concatenate them:
//
//	merged, err := vislog.LoadMany(paths, vislog.Names("temperature", "pressure"), 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(merged.Skipped) // paths that did not exist
//
// # Package Structure
//
// This package wraps the loader package with default settings. Use the loader
// package directly for logging, strict multi-file loads, concurrent loading or a
// custom container opener, and the container package to read or write log files.
package vislog

import (
	"context"

	"github.com/arloliu/vislog/loader"
	"github.com/arloliu/vislog/resample"
)

type (
	// Selector picks the datasets a load outputs.
	Selector = loader.Selector
	// Pair binds an output signal name to the substring used to find its dataset.
	Pair = loader.Pair
	// Record maps signal names to arrays aligned with the time axis under "t".
	Record = loader.Record
	// Merged is the concatenation of several files' records.
	Merged = loader.Merged
)

// All selects every non-timestamp dataset, keyed by its name without namespace.
func All() Selector { return loader.All() }

// Single selects the first dataset whose name contains name.
func Single(name string) Selector { return loader.Single(name) }

// Named selects one dataset per (output name, substring) pair.
func Named(pairs ...Pair) Selector { return loader.Named(pairs...) }

// Names selects one dataset per name, matched as a substring.
func Names(names ...string) Selector { return loader.Names(names...) }

// Load reads the log at path and resamples the selected signals onto a time
// axis of the given step. A step of 0 selects the default step 1.
//
// Parameters:
//   - path: log file, must exist
//   - sel: signals to output
//   - step: axis spacing, 0 for the default
//
// Returns:
//   - Record: the axis under "t" and one array of the axis length per signal
//   - error: errs.ErrInvalidInput for a missing file, errs.ErrInvalidStep for a
//     negative step, or any load error
func Load(path string, sel Selector, step float64) (Record, error) {
	l, err := newLoader(step)
	if err != nil {
		return nil, err
	}

	return l.Load(context.Background(), path, sel)
}

// LoadMany loads every existing path like Load and concatenates the records in
// input order. Missing paths are skipped and reported in Merged.Skipped.
//
// Returns errs.ErrNoInputs when none of the paths exist.
func LoadMany(paths []string, sel Selector, step float64) (*Merged, error) {
	l, err := newLoader(step)
	if err != nil {
		return nil, err
	}

	return l.LoadMany(context.Background(), paths, sel)
}

func newLoader(step float64) (*loader.Loader, error) {
	if step == 0 {
		step = resample.DefaultStep
	}

	return loader.New(loader.WithStep(step))
}
