package loader

import (
	"testing"

	"github.com/arloliu/vislog/errs"
	"github.com/stretchr/testify/require"
)

func TestRecord_Helpers(t *testing.T) {
	rec := Record{
		TimeKey: {0, 1, 2},
		"b":     {1, 2, 3},
		"a":     {4, 5, 6},
	}

	require.Equal(t, []float64{0, 1, 2}, rec.Axis())
	require.Equal(t, []string{"a", "b"}, rec.Signals())
	require.Equal(t, 3, rec.Len())

	empty := Record{}
	require.Nil(t, empty.Axis())
	require.Empty(t, empty.Signals())
	require.Zero(t, empty.Len())
}

func TestConcat(t *testing.T) {
	first := Record{TimeKey: {0, 1}, "a": {1, 2}}
	second := Record{TimeKey: {0}, "a": {3}, "extra": {9}}

	out, err := Concat([]Record{first, second})
	require.NoError(t, err)
	require.Equal(t, Record{TimeKey: {0, 1, 0}, "a": {1, 2, 3}}, out)

	// inputs stay untouched
	require.Equal(t, []float64{1, 2}, first["a"])

	_, err = Concat(nil)
	require.ErrorIs(t, err, errs.ErrNoInputs)

	_, err = Concat([]Record{second, first})
	require.ErrorIs(t, err, errs.ErrSignalMismatch)
}
