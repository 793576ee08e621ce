// Package export writes loaded records as tables: one column per record key, the
// time axis first, one row per axis point.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/vislog/errs"
	"github.com/arloliu/vislog/loader"
)

// Format selects the table encoding.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// ParseFormat converts a case-insensitive name into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatCSV, FormatParquet:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q", name)
	}
}

// Write writes rec to w in the given format.
func Write(w io.Writer, rec loader.Record, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, rec)
	case FormatParquet:
		return WriteParquet(w, rec)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// columns returns the column order, loader.TimeKey first, and the shared row count.
func columns(rec loader.Record) ([]string, int, error) {
	names := rec.Signals()
	if _, ok := rec[loader.TimeKey]; ok {
		names = append([]string{loader.TimeKey}, names...)
	}

	rows := 0
	for i, name := range names {
		n := len(rec[name])
		if i == 0 {
			rows = n
			continue
		}
		if n != rows {
			return nil, 0, fmt.Errorf("%w: column %q has %d rows, %q has %d", errs.ErrLengthMismatch, name, n, names[0], rows)
		}
	}

	return names, rows, nil
}
