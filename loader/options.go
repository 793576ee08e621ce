package loader

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/arloliu/vislog/errs"
	"github.com/arloliu/vislog/internal/options"
)

// Option configures a Loader.
type Option = options.Option[*Loader]

// WithStep sets the spacing of the time axis. The default is 1.
func WithStep(step float64) Option {
	return options.New(func(l *Loader) error {
		if !(step > 0) || math.IsInf(step, 1) {
			return fmt.Errorf("%w: %v", errs.ErrInvalidStep, step)
		}
		l.step = step

		return nil
	})
}

// WithLogger sets the logger. A nil logger discards everything, which is the default.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(l *Loader) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		l.log = logger.With(slog.String("component", "loader"))
	})
}

// WithStrict makes LoadMany fail with errs.ErrInvalidInput on a missing path
// instead of skipping it.
func WithStrict(strict bool) Option {
	return options.NoError(func(l *Loader) {
		l.strict = strict
	})
}

// WithWorkers lets LoadMany load up to n files concurrently. Values below 2 load
// sequentially.
func WithWorkers(n int) Option {
	return options.NoError(func(l *Loader) {
		l.workers = max(n, 1)
	})
}

// WithOpener replaces the function used to open containers.
func WithOpener(open Opener) Option {
	return options.New(func(l *Loader) error {
		if open == nil {
			return fmt.Errorf("%w: nil opener", errs.ErrInvalidInput)
		}
		l.open = open

		return nil
	})
}
