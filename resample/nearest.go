package resample

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/vislog/errs"
)

// Nearest evaluates a sampled series at arbitrary points by returning the value
// of the closest sample.
//
// A query exactly halfway between two samples takes the lower one. Queries
// outside [min x, max x], and NaN queries, evaluate to NaN.
type Nearest struct {
	xs []float64
	ys []float64
	// bounds[i] is the midpoint between xs[i] and xs[i+1]
	bounds []float64
}

type sample struct {
	x, y float64
}

// NewNearest builds a nearest-neighbor interpolator from sample positions x and
// values y. x does not have to be sorted; samples are ordered by x with a stable
// sort, so among equal positions the earlier sample wins. Samples with a NaN
// position are dropped.
//
// Returns:
//   - errs.ErrLengthMismatch if len(x) != len(y)
//   - errs.ErrEmptySeries if no sample with a valid position remains
func NewNearest(x, y []float64) (*Nearest, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d positions, %d values", errs.ErrLengthMismatch, len(x), len(y))
	}

	samples := make([]sample, 0, len(x))
	for i, xi := range x {
		if math.IsNaN(xi) {
			continue
		}
		samples = append(samples, sample{x: xi, y: y[i]})
	}

	if len(samples) == 0 {
		return nil, errs.ErrEmptySeries
	}

	slices.SortStableFunc(samples, func(a, b sample) int {
		return cmp.Compare(a.x, b.x)
	})

	n := &Nearest{
		xs:     make([]float64, len(samples)),
		ys:     make([]float64, len(samples)),
		bounds: make([]float64, len(samples)-1),
	}
	for i, s := range samples {
		n.xs[i] = s.x
		n.ys[i] = s.y
	}
	for i := range n.bounds {
		n.bounds[i] = (n.xs[i] + n.xs[i+1]) / 2
	}

	return n, nil
}

// Len returns the number of samples.
func (n *Nearest) Len() int {
	return len(n.xs)
}

// Domain returns the smallest and largest sample position.
func (n *Nearest) Domain() (lo, hi float64) {
	return n.xs[0], n.xs[len(n.xs)-1]
}

// At returns the value of the sample closest to q.
func (n *Nearest) At(q float64) float64 {
	if math.IsNaN(q) || q < n.xs[0] || q > n.xs[len(n.xs)-1] {
		return math.NaN()
	}

	// first bound >= q; a query equal to a bound stays on the lower sample
	idx, _ := slices.BinarySearch(n.bounds, q)

	return n.ys[idx]
}

// Eval evaluates the series at every point of axis.
func (n *Nearest) Eval(axis []float64) []float64 {
	out := make([]float64, len(axis))
	for i, q := range axis {
		out[i] = n.At(q)
	}

	return out
}

// Series resamples the samples (x, y) onto axis in one call.
func Series(x, y, axis []float64) ([]float64, error) {
	n, err := NewNearest(x, y)
	if err != nil {
		return nil, err
	}

	return n.Eval(axis), nil
}
