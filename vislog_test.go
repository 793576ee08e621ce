package vislog

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vislog/container"
	"github.com/arloliu/vislog/errs"
)

func writeLog(t *testing.T, path string, sigValues []float64) {
	t.Helper()

	w, err := container.NewWriter()
	require.NoError(t, err)
	require.NoError(t, w.Add("ts_group_0", []float64{0, 0.5, 1.0, 2.3}, ""))
	require.NoError(t, w.Add("ts_event_1", []float64{0, 1, 2}, ""))
	require.NoError(t, w.Add("grp.sig", sigValues, "ts_event_1"))
	require.NoError(t, w.WriteFile(path))
}

// TestLoad_Example covers the canonical example: a 2.3 s reference series with
// step 1 gives the axis [0,1,2] and the event-aligned signal is returned as-is.
func TestLoad_Example(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.vis")
	writeLog(t, path, []float64{10, 20, 30})

	rec, err := Load(path, All(), 0)
	require.NoError(t, err)
	require.Equal(t, Record{
		"t":   {0, 1, 2},
		"sig": {10, 20, 30},
	}, rec)

	rec, err = Load(path, Single("missing"), 1)
	require.NoError(t, err)
	require.Len(t, rec["missing"], 3)
	for _, v := range rec["missing"] {
		require.True(t, math.IsNaN(v))
	}

	_, err = Load(path, All(), -1)
	require.ErrorIs(t, err, errs.ErrInvalidStep)

	_, err = Load(filepath.Join(t.TempDir(), "nope.vis"), All(), 1)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestLoadMany(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.vis")
	b := filepath.Join(dir, "b.vis")
	writeLog(t, a, []float64{10, 20, 30})
	writeLog(t, b, []float64{40, 50, 60})

	merged, err := LoadMany([]string{a, filepath.Join(dir, "gone.vis"), b}, Names("sig"), 0)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20, 30, 40, 50, 60}, merged.Record["sig"])
	require.Equal(t, []float64{0, 1, 2, 0, 1, 2}, merged.Record["t"])
	require.Len(t, merged.Skipped, 1)

	merged, err = LoadMany([]string{a, b}, Named(Pair{Name: "s", Match: "grp"}), 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2, 0, 2}, merged.Record["t"])
	require.Equal(t, []float64{10, 30, 40, 60}, merged.Record["s"])

	_, err = LoadMany(nil, All(), 1)
	require.ErrorIs(t, err, errs.ErrNoInputs)
}
