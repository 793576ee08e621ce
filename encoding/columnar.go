package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/vislog/errs"
)

// ColumnarEncoder accumulates one column of values into a byte payload.
type ColumnarEncoder[T comparable] interface {
	// Write appends a single value.
	Write(val T)
	// WriteSlice appends all values.
	WriteSlice(values []T)
	// Bytes returns the payload written so far. It is only valid until the next
	// Write, Reset or Finish.
	Bytes() []byte
	// Len returns the number of values written.
	Len() int
	// Size returns the payload size in bytes.
	Size() int
	// Reset drops all written values but keeps the encoder usable.
	Reset()
	// Finish releases internal buffers. The encoder must not be used afterwards.
	Finish()
}

// ColumnarDecoder reads values back from a payload produced by the matching encoder.
type ColumnarDecoder[T comparable] interface {
	// All yields up to count values from data in order.
	All(data []byte, count int) iter.Seq[T]
	// At returns the value at index, or false when index is out of range or data is truncated.
	At(data []byte, index int, count int) (T, bool)
	// MaxCount returns an upper bound on the number of values data can hold.
	MaxCount(data []byte) int
}

// DecodeAll collects count values from data and fails when the payload holds fewer.
//
// count is checked against dec.MaxCount before anything is allocated, so a
// corrupt count cannot trigger an oversized allocation.
func DecodeAll[T comparable](dec ColumnarDecoder[T], data []byte, count int) ([]T, error) {
	if count < 0 || count > dec.MaxCount(data) {
		return nil, fmt.Errorf("%w: payload of %d bytes cannot hold %d values", errs.ErrDataPointCountMismatch, len(data), count)
	}

	out := make([]T, 0, count)
	for v := range dec.All(data, count) {
		out = append(out, v)
	}

	if len(out) != count {
		return nil, fmt.Errorf("%w: decoded %d values, expected %d", errs.ErrDataPointCountMismatch, len(out), count)
	}

	return out, nil
}
