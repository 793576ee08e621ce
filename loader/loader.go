package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/arloliu/vislog/container"
	"github.com/arloliu/vislog/errs"
	"github.com/arloliu/vislog/internal/options"
	"github.com/arloliu/vislog/resample"
	"golang.org/x/sync/errgroup"
)

// Container is the read access a load needs from an opened log file.
type Container interface {
	// Datasets returns the dataset names in enumeration order.
	Datasets() []string
	// Info returns the metadata of a dataset, including its event reference.
	Info(name string) (container.DatasetInfo, error)
	// Read returns all values of a dataset.
	Read(name string) ([]float64, error)
	// Close releases the container.
	Close() error
}

// Opener opens the container stored at path.
type Opener func(path string) (Container, error)

// OpenContainer opens a vislog container file. It is the default Opener.
func OpenContainer(path string) (Container, error) {
	r, err := container.Open(path)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Loader loads log files into records. A Loader holds no per-load state and is
// safe for concurrent use.
type Loader struct {
	log     *slog.Logger
	open    Opener
	step    float64
	workers int
	strict  bool
}

// New creates a Loader with step 1, sequential multi-file loads, missing files
// skipped and logging discarded.
func New(opts ...Option) (*Loader, error) {
	l := &Loader{
		log:     slog.New(slog.DiscardHandler),
		open:    OpenContainer,
		step:    resample.DefaultStep,
		workers: 1,
	}

	if err := options.Apply(l, opts...); err != nil {
		return nil, err
	}

	return l, nil
}

// Step returns the axis spacing.
func (l *Loader) Step() float64 {
	return l.step
}

// Load reads one file and resamples the selected signals onto its time axis.
//
// The returned record holds the axis under TimeKey and one array of the axis
// length per selected signal. A selected signal the file does not carry is all
// NaN. When two bindings share an output name the later one wins, and a signal
// named TimeKey replaces the axis.
//
// Returns:
//   - errs.ErrInvalidInput if path does not exist
//   - errs.ErrDatasetNotFound if the file has no ReferenceKey dataset
//   - errs.ErrNoEventReference if a selected dataset has no event reference
//   - errs.ErrLengthMismatch or errs.ErrEmptySeries for inconsistent signal data
func (l *Loader) Load(ctx context.Context, path string, sel Selector) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ok, err := exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s does not exist", errs.ErrInvalidInput, path)
	}

	start := time.Now()

	c, err := l.open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer c.Close()

	rec, err := l.load(ctx, c, sel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.log.Debug("loaded file",
		slog.String("path", path),
		slog.Int("points", rec.Len()),
		slog.Int("signals", len(rec)-1),
		slog.Duration("elapsed", time.Since(start)),
	)

	return rec, nil
}

func (l *Loader) load(ctx context.Context, c Container, sel Selector) (Record, error) {
	cache := make(map[string][]float64)
	read := func(name string) ([]float64, error) {
		if values, ok := cache[name]; ok {
			return values, nil
		}
		values, err := c.Read(name)
		if err != nil {
			return nil, err
		}
		cache[name] = values

		return values, nil
	}

	ref, err := read(ReferenceKey)
	if err != nil {
		return nil, fmt.Errorf("reference series: %w", err)
	}

	axis, err := resample.Axis(ref, l.step)
	if err != nil {
		return nil, fmt.Errorf("reference series: %w", err)
	}

	bindings := sel.resolve(c.Datasets())
	rec := make(Record, len(bindings)+1)
	rec[TimeKey] = axis

	for _, b := range bindings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !b.found() {
			l.log.Debug("signal not found", slog.String("signal", b.name))
			rec[b.name] = resample.Missing(len(axis))

			continue
		}

		values, err := resampleDataset(c, read, b.key, axis)
		if err != nil {
			return nil, err
		}
		rec[b.name] = values
	}

	return rec, nil
}

// resampleDataset evaluates dataset key, sampled at the times held by its event
// dataset, on axis.
func resampleDataset(c Container, read func(string) ([]float64, error), key string, axis []float64) ([]float64, error) {
	info, err := c.Info(key)
	if err != nil {
		return nil, err
	}
	if !info.HasEvent() {
		return nil, fmt.Errorf("%w: %q", errs.ErrNoEventReference, key)
	}

	y, err := c.Read(key)
	if err != nil {
		return nil, err
	}

	x, err := read(info.Event)
	if err != nil {
		return nil, fmt.Errorf("event series of %q: %w", key, err)
	}

	out, err := resample.Series(x, y, axis)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", key, err)
	}

	return out, nil
}

// LoadMany loads every existing path with the same selector and step and
// concatenates the results in input order.
//
// Paths that do not exist are skipped, logged and listed in Merged.Skipped,
// unless the Loader is strict, in which case they fail the call with
// errs.ErrInvalidInput. The keys of the first loaded file decide the output.
//
// Returns:
//   - errs.ErrNoInputs if no path exists
//   - errs.ErrSignalMismatch if a later file lacks a key of the first one
//   - any error of Load
func (l *Loader) LoadMany(ctx context.Context, paths []string, sel Selector) (*Merged, error) {
	merged := &Merged{}
	for _, path := range paths {
		ok, err := exists(path)
		if err != nil {
			return nil, err
		}
		if ok {
			merged.Files = append(merged.Files, path)
			continue
		}

		if l.strict {
			return nil, fmt.Errorf("%w: %s does not exist", errs.ErrInvalidInput, path)
		}
		l.log.Warn("skipping missing file", slog.String("path", path))
		merged.Skipped = append(merged.Skipped, path)
	}

	if len(merged.Files) == 0 {
		return nil, fmt.Errorf("%w: none of %d paths exist", errs.ErrNoInputs, len(paths))
	}

	records, err := l.loadAll(ctx, merged.Files, sel)
	if err != nil {
		return nil, err
	}

	merged.Record, err = Concat(records)
	if err != nil {
		return nil, err
	}

	l.log.Info("merged files",
		slog.Int("files", len(merged.Files)),
		slog.Int("skipped", len(merged.Skipped)),
		slog.Int("points", merged.Record.Len()),
	)

	return merged, nil
}

// loadAll loads paths into a slice indexed like paths.
func (l *Loader) loadAll(ctx context.Context, paths []string, sel Selector) ([]Record, error) {
	records := make([]Record, len(paths))

	if l.workers <= 1 || len(paths) == 1 {
		for i, path := range paths {
			rec, err := l.Load(ctx, path, sel)
			if err != nil {
				return nil, err
			}
			records[i] = rec
		}

		return records, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, path := range paths {
		g.Go(func() error {
			rec, err := l.Load(gctx, path, sel)
			if err != nil {
				return err
			}
			records[i] = rec

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// exists reports whether path names an existing file system entry.
func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
