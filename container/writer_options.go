package container

import (
	"fmt"
	"time"

	"github.com/arloliu/vislog/format"
	"github.com/arloliu/vislog/internal/options"
)

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithValueEncoding selects the value encoding for every dataset.
//
// Supported encodings are format.TypeRaw (default) and format.TypeGorilla.
func WithValueEncoding(enc format.EncodingType) WriterOption {
	return options.New(func(w *Writer) error {
		if !enc.Valid() {
			return fmt.Errorf("invalid value encoding: %v", enc)
		}
		w.encoding = enc

		return nil
	})
}

// WithCompression selects the payload codec for every dataset.
func WithCompression(ct format.CompressionType) WriterOption {
	return options.New(func(w *Writer) error {
		if !ct.Valid() {
			return fmt.Errorf("invalid compression: %v", ct)
		}
		w.compression = ct

		return nil
	})
}

// WithBigEndian writes all sections after the flag in big-endian order.
func WithBigEndian() WriterOption {
	return options.NoError(func(w *Writer) {
		w.header.Flag.WithBigEndian()
	})
}

// WithLittleEndian writes all sections after the flag in little-endian order. This is the default.
func WithLittleEndian() WriterOption {
	return options.NoError(func(w *Writer) {
		w.header.Flag.WithLittleEndian()
	})
}

// WithCreatedAt overrides the creation timestamp recorded in the header.
func WithCreatedAt(t time.Time) WriterOption {
	return options.NoError(func(w *Writer) {
		w.header.CreatedAt = t.UnixMicro()
	})
}
