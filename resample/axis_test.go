package resample

import (
	"math"
	"testing"

	"github.com/arloliu/vislog/errs"
	"github.com/stretchr/testify/require"
)

func TestAxis(t *testing.T) {
	tests := []struct {
		name string
		ref  []float64
		step float64
		want []float64
	}{
		{name: "fractional last value", ref: []float64{0, 0.5, 1.0, 2.3}, step: 1, want: []float64{0, 1, 2}},
		{name: "integral last value", ref: []float64{0, 3}, step: 1, want: []float64{0, 1, 2}},
		{name: "half step", ref: []float64{0, 1.2}, step: 0.5, want: []float64{0, 0.5, 1.0, 1.5}},
		{name: "step not dividing end", ref: []float64{5}, step: 2, want: []float64{0, 2, 4}},
		{name: "step larger than range", ref: []float64{0.1}, step: 10, want: []float64{0}},
		{name: "zero last value", ref: []float64{0}, step: 1, want: []float64{}},
		{name: "negative last value", ref: []float64{-3}, step: 1, want: []float64{}},
		{name: "only last value matters", ref: []float64{100, 1.5}, step: 1, want: []float64{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, err := Axis(tt.ref, tt.step)
			require.NoError(t, err)
			require.Equal(t, tt.want, axis)

			last := tt.ref[len(tt.ref)-1]
			wantLen := max(0, int(math.Ceil(math.Ceil(last)/tt.step)))
			require.Len(t, axis, wantLen)
		})
	}
}

func TestAxis_Errors(t *testing.T) {
	for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Axis([]float64{0, 1}, step)
		require.ErrorIs(t, err, errs.ErrInvalidStep)
	}

	_, err := Axis(nil, 1)
	require.ErrorIs(t, err, errs.ErrEmptySeries)

	_, err = Axis([]float64{0, math.NaN()}, 1)
	require.ErrorIs(t, err, errs.ErrInvalidReference)

	_, err = Axis([]float64{0, math.Inf(1)}, 1)
	require.ErrorIs(t, err, errs.ErrInvalidReference)
}

func TestMissing(t *testing.T) {
	out := Missing(4)
	require.Len(t, out, 4)
	for _, v := range out {
		require.True(t, math.IsNaN(v))
	}

	require.Empty(t, Missing(0))
}
