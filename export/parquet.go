package export

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/arloliu/vislog/loader"
)

// rowBatch is the number of rows buffered per WriteRows call.
const rowBatch = 4 << 10

// Schema returns the Parquet schema of rec: one required, zstd-compressed DOUBLE
// column per key.
func Schema(rec loader.Record) *parquet.Schema {
	group := make(parquet.Group, len(rec))
	for name := range rec {
		group[name] = parquet.Compressed(parquet.Leaf(parquet.DoubleType), &parquet.Zstd)
	}

	return parquet.NewSchema("record", group)
}

// WriteParquet writes rec as a Parquet file with one row per axis point.
func WriteParquet(w io.Writer, rec loader.Record) error {
	names, rows, err := columns(rec)
	if err != nil {
		return err
	}

	schema := Schema(rec)
	// column indexes follow the schema's field order, not names
	index := make([]int, len(names))
	for i, name := range names {
		leaf, ok := schema.Lookup(name)
		if !ok {
			return fmt.Errorf("column %q missing from schema", name)
		}
		index[i] = leaf.ColumnIndex
	}

	pw := parquet.NewWriter(w, schema)
	batch := make([]parquet.Row, 0, min(rows, rowBatch))
	for r := range rows {
		row := make(parquet.Row, len(names))
		for i, name := range names {
			row[index[i]] = parquet.DoubleValue(rec[name][r]).Level(0, 0, index[i])
		}
		batch = append(batch, row)

		if len(batch) == cap(batch) {
			if _, err := pw.WriteRows(batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if _, err := pw.WriteRows(batch); err != nil {
			return err
		}
	}

	return pw.Close()
}
