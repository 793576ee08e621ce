package loader

import (
	"fmt"
	"slices"

	"github.com/arloliu/vislog/errs"
)

// Record maps signal names to arrays aligned with the time axis stored under TimeKey.
type Record map[string][]float64

// Axis returns the time axis, or nil when the record has none.
func (r Record) Axis() []float64 {
	return r[TimeKey]
}

// Signals returns the signal names in sorted order, excluding TimeKey.
func (r Record) Signals() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		if name != TimeKey {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	return names
}

// Len returns the number of axis points.
func (r Record) Len() int {
	return len(r[TimeKey])
}

// Merged is the concatenation of the records of several files.
type Merged struct {
	Record Record
	// Files lists the paths that were loaded, in merge order.
	Files []string
	// Skipped lists the paths that were dropped because they do not exist.
	Skipped []string
}

// Concat joins records key by key in the given order. The keys of the first record
// decide the output; every later record must carry all of them.
//
// Returns errs.ErrNoInputs for no records and errs.ErrSignalMismatch when a later
// record lacks one of the first record's keys.
func Concat(records []Record) (Record, error) {
	if len(records) == 0 {
		return nil, errs.ErrNoInputs
	}

	first := records[0]
	out := make(Record, len(first))
	for key := range first {
		total := 0
		for i, rec := range records {
			arr, ok := rec[key]
			if !ok {
				return nil, fmt.Errorf("%w: record %d has no %q", errs.ErrSignalMismatch, i, key)
			}
			total += len(arr)
		}

		joined := make([]float64, 0, total)
		for _, rec := range records {
			joined = append(joined, rec[key]...)
		}
		out[key] = joined
	}

	return out, nil
}
