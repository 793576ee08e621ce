package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/arloliu/vislog/loader"
)

// WriteCSV writes rec as comma-separated values with a header row. Values use the
// shortest representation that round-trips; missing values are written as NaN.
func WriteCSV(w io.Writer, rec loader.Record) error {
	names, rows, err := columns(rec)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return err
	}

	line := make([]string, len(names))
	for i := range rows {
		for j, name := range names {
			line[j] = strconv.FormatFloat(rec[name][i], 'g', -1, 64)
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
