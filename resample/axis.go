// Package resample builds uniform time axes and evaluates sampled series on them
// with nearest-neighbor interpolation.
package resample

import (
	"fmt"
	"math"

	"github.com/arloliu/vislog/errs"
)

// DefaultStep is the axis spacing used when the caller does not pick one.
const DefaultStep = 1.0

// Axis returns the uniform grid i*step for i = 0..n-1, where
// n = ceil(ceil(last(ref)) / step). The grid covers [0, ceil(last(ref))) and
// is empty when the last reference value is zero or negative.
//
// Returns:
//   - errs.ErrInvalidStep if step is not a positive finite number
//   - errs.ErrEmptySeries if ref is empty
//   - errs.ErrInvalidReference if the last value of ref is NaN or infinite
func Axis(ref []float64, step float64) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 1) {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidStep, step)
	}

	if len(ref) == 0 {
		return nil, errs.ErrEmptySeries
	}

	last := ref[len(ref)-1]
	if math.IsNaN(last) || math.IsInf(last, 0) {
		return nil, fmt.Errorf("%w: last value is %v", errs.ErrInvalidReference, last)
	}

	end := math.Ceil(last)
	if end <= 0 {
		return []float64{}, nil
	}

	n := int(math.Ceil(end / step))
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i) * step
	}

	return axis, nil
}

// Missing returns n NaN values, the stand-in for a signal absent from a file.
func Missing(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	return out
}
