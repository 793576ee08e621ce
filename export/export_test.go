package export

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/vislog/errs"
	"github.com/arloliu/vislog/loader"
)

func sampleRecord() loader.Record {
	return loader.Record{
		loader.TimeKey: {0, 1, 2},
		"speed":        {1.5, math.NaN(), 3},
		"alpha":        {10, 20, 30},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("CSV")
	require.NoError(t, err)
	require.Equal(t, FormatCSV, f)

	f, err = ParseFormat("parquet")
	require.NoError(t, err)
	require.Equal(t, FormatParquet, f)

	_, err = ParseFormat("xlsx")
	require.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecord()))

	want := "t,alpha,speed\n" +
		"0,10,1.5\n" +
		"1,20,NaN\n" +
		"2,30,3\n"
	require.Equal(t, want, buf.String())
}

func TestWriteCSV_LengthMismatch(t *testing.T) {
	rec := sampleRecord()
	rec["short"] = []float64{1}

	err := WriteCSV(io.Discard, rec)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	err = WriteParquet(io.Discard, rec)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func readColumn(t *testing.T, chunk parquet.ColumnChunk) []float64 {
	t.Helper()

	pages := chunk.Pages()
	defer pages.Close()

	var out []float64
	for {
		page, err := pages.ReadPage()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		values := make([]parquet.Value, page.NumValues())
		n, err := page.Values().ReadValues(values)
		if err != nil && !errors.Is(err, io.EOF) {
			require.NoError(t, err)
		}
		for _, v := range values[:n] {
			out = append(out, v.Double())
		}
	}

	return out
}

func TestWriteParquet(t *testing.T) {
	rec := sampleRecord()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rec, FormatParquet))

	f, err := parquet.OpenFile(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Equal(t, int64(3), f.NumRows())

	got := map[string][]float64{}
	for _, rg := range f.RowGroups() {
		chunks := rg.ColumnChunks()
		for _, leaf := range f.Schema().Columns() {
			col, ok := f.Schema().Lookup(leaf...)
			require.True(t, ok)
			got[leaf[0]] = append(got[leaf[0]], readColumn(t, chunks[col.ColumnIndex])...)
		}
	}

	require.Len(t, got, 3)
	require.Equal(t, []float64{0, 1, 2}, got[loader.TimeKey])
	require.Equal(t, []float64{10, 20, 30}, got["alpha"])
	require.Len(t, got["speed"], 3)
	require.Equal(t, 1.5, got["speed"][0])
	require.True(t, math.IsNaN(got["speed"][1]))
	require.Equal(t, 3.0, got["speed"][2])
}

func TestWriteParquet_ManyRows(t *testing.T) {
	const rows = rowBatch*2 + 17
	axis := make([]float64, rows)
	for i := range axis {
		axis[i] = float64(i)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteParquet(&buf, loader.Record{loader.TimeKey: axis}))

	f, err := parquet.OpenFile(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Equal(t, int64(rows), f.NumRows())
}

func TestWrite_UnknownFormat(t *testing.T) {
	require.Error(t, Write(io.Discard, sampleRecord(), Format("xml")))
}
