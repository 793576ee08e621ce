package encoding

import (
	"iter"
	"math"

	"github.com/arloliu/vislog/endian"
	"github.com/arloliu/vislog/internal/pool"
)

// NumericRawEncoder writes float64 values as their IEEE 754 bits, 8 bytes each,
// in the byte order of the given engine.
type NumericRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float64] = (*NumericRawEncoder)(nil)

// NewNumericRawEncoder creates a raw encoder backed by a pooled buffer.
func NewNumericRawEncoder(engine endian.EndianEngine) *NumericRawEncoder {
	return &NumericRawEncoder{
		engine: engine,
		buf:    pool.GetPayloadBuffer(),
	}
}

// Write appends one value.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(val))
}

// WriteSlice appends values, growing the buffer once for the whole slice.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(values) == 0 {
		return
	}

	e.count += len(values)
	e.buf.Grow(len(values) * 8)
	for _, v := range values {
		e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))
	}
}

// Bytes returns the encoded payload. The slice aliases the internal buffer.
func (e *NumericRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *NumericRawEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *NumericRawEncoder) Size() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len()
}

// Reset discards the written values.
func (e *NumericRawEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *NumericRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutPayloadBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// NumericRawDecoder reads payloads written by NumericRawEncoder.
type NumericRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = NumericRawDecoder{}

// NewNumericRawDecoder creates a raw decoder for the given byte order.
func NewNumericRawDecoder(engine endian.EndianEngine) NumericRawDecoder {
	return NumericRawDecoder{engine: engine}
}

// All yields count values. Nothing is yielded when data is shorter than count*8 bytes.
func (d NumericRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 || len(data) < count*8 {
			return
		}

		for i := range count {
			start := i * 8
			if !yield(math.Float64frombits(d.engine.Uint64(data[start : start+8]))) {
				return
			}
		}
	}
}

// MaxCount returns the number of whole values in data.
func (d NumericRawDecoder) MaxCount(data []byte) int {
	return len(data) / 8
}

// At returns the value at index in O(1).
func (d NumericRawDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * 8
	if start+8 > len(data) {
		return 0, false
	}

	return math.Float64frombits(d.engine.Uint64(data[start : start+8])), true
}
