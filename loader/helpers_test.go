package loader

import (
	"path/filepath"
	"testing"

	"github.com/arloliu/vislog/container"
	"github.com/arloliu/vislog/format"
	"github.com/stretchr/testify/require"
)

type testDataset struct {
	name   string
	values []float64
	event  string
}

func writeContainer(t *testing.T, dir, file string, datasets ...testDataset) string {
	t.Helper()

	w, err := container.NewWriter(container.WithValueEncoding(format.TypeGorilla), container.WithCompression(format.CompressionS2))
	require.NoError(t, err)

	for _, ds := range datasets {
		require.NoError(t, w.Add(ds.name, ds.values, ds.event))
	}

	path := filepath.Join(dir, file)
	require.NoError(t, w.WriteFile(path))

	return path
}

// visionFile is the canonical two-signal log: axis [0,1,2], grp.sig = [10,20,30].
func visionFile(t *testing.T, dir, file string) string {
	t.Helper()

	return writeContainer(t, dir, file,
		testDataset{name: "ts_group_0", values: []float64{0, 0.5, 1.0, 2.3}},
		testDataset{name: "ts_event_1", values: []float64{0, 1, 2}},
		testDataset{name: "grp.sig", values: []float64{10, 20, 30}, event: "ts_event_1"},
		testDataset{name: "other.level", values: []float64{1, 2, 3, 4}, event: "ts_group_0"},
	)
}

func newLoader(t *testing.T, opts ...Option) *Loader {
	t.Helper()

	l, err := New(opts...)
	require.NoError(t, err)

	return l
}
