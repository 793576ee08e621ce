package encoding

import (
	"encoding/binary"
	"iter"
	"math"
	"math/bits"

	"github.com/arloliu/vislog/internal/pool"
)

// Gorilla field widths.
const (
	gorillaLeadingBits   = 5 // leading zero count, clamped to 31
	gorillaBlockSizeBits = 6 // meaningful bit count minus one
	gorillaMaxLeading    = 1<<gorillaLeadingBits - 1
)

// NumericGorillaEncoder implements Gorilla XOR compression for float64 values.
//
// Stream layout, most significant bit first:
//  1. First value: 64 raw bits
//  2. Each following value is XORed with its predecessor:
//     - XOR == 0: a single 0 bit
//     - otherwise a 1 bit, then
//     a. 0 + meaningful bits, when they fit the previous leading/trailing window
//     b. 1 + 5 bits leading zeros + 6 bits (block size - 1) + meaningful bits
//
// The bit stream is independent of the container byte order.
type NumericGorillaEncoder struct {
	bitBuf        uint64 // pending bits, right aligned
	prevValue     uint64
	bitCount      int // number of pending bits in bitBuf
	count         int
	prevLeading   int
	prevTrailing  int
	prevBlockSize int // 0 until the first window is emitted

	buf *pool.ByteBuffer
}

var _ ColumnarEncoder[float64] = (*NumericGorillaEncoder)(nil)

// NewNumericGorillaEncoder creates a Gorilla encoder backed by a pooled buffer.
func NewNumericGorillaEncoder() *NumericGorillaEncoder {
	return &NumericGorillaEncoder{
		buf: pool.GetPayloadBuffer(),
	}
}

// Write appends one value.
//
// Panics if Finish has been called.
func (e *NumericGorillaEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	valBits := math.Float64bits(val)
	if e.count == 1 {
		e.prevValue = valBits
		e.writeBits(valBits, 64)

		return
	}

	e.writeValue(valBits)
}

// WriteSlice appends all values.
func (e *NumericGorillaEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(values) == 0 {
		return
	}

	// Unchanged values cost one bit, so len(values)/8 is a lower bound worth reserving.
	e.buf.Grow(len(values)/8 + 8)
	for _, v := range values {
		e.Write(v)
	}
}

// Bytes returns the payload including any partially filled final byte.
//
// The trailing pad bits are zero; decoders rely on the value count to stop.
func (e *NumericGorillaEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	e.flushPartial()

	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *NumericGorillaEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes, counting a partially filled byte.
func (e *NumericGorillaEncoder) Size() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len() + (e.bitCount+7)/8
}

// Reset discards the written values and the XOR state.
func (e *NumericGorillaEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.bitBuf, e.bitCount = 0, 0
	e.prevValue, e.count = 0, 0
	e.prevLeading, e.prevTrailing, e.prevBlockSize = 0, 0, 0
}

// Finish returns the buffer to the pool.
func (e *NumericGorillaEncoder) Finish() {
	if e.buf != nil {
		pool.PutPayloadBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

func (e *NumericGorillaEncoder) writeValue(valBits uint64) {
	xor := valBits ^ e.prevValue
	e.prevValue = valBits

	if xor == 0 {
		e.writeBits(0, 1)
		return
	}

	leading := bits.LeadingZeros64(xor)
	trailing := bits.TrailingZeros64(xor)
	if leading > gorillaMaxLeading {
		leading = gorillaMaxLeading
	}

	if e.prevBlockSize > 0 && leading >= e.prevLeading && trailing >= e.prevTrailing {
		// control bits "10"
		e.writeBits(0b10, 2)
		e.writeBits(xor>>e.prevTrailing, e.prevBlockSize)

		return
	}

	blockSize := 64 - leading - trailing
	// control bits "11"
	e.writeBits(0b11, 2)
	e.writeBits(uint64(leading), gorillaLeadingBits)      //nolint:gosec
	e.writeBits(uint64(blockSize-1), gorillaBlockSizeBits) //nolint:gosec
	e.writeBits(xor>>trailing, blockSize)

	e.prevLeading = leading
	e.prevTrailing = trailing
	e.prevBlockSize = blockSize
}

// writeBits appends the low n bits of value, most significant first.
func (e *NumericGorillaEncoder) writeBits(value uint64, n int) {
	for n > 0 {
		take := min(n, 64-e.bitCount)
		chunk := (value >> (n - take)) & (uint64(1)<<take - 1)
		e.bitBuf = e.bitBuf<<take | chunk
		e.bitCount += take
		n -= take

		if e.bitCount == 64 {
			e.buf.B = binary.BigEndian.AppendUint64(e.buf.B, e.bitBuf)
			e.bitBuf, e.bitCount = 0, 0
		}
	}
}

// flushPartial moves whole pending bytes into the buffer and leaves a final
// partial byte zero padded. Further writes continue from a byte boundary only
// after Bytes has been called, which is why Bytes is only valid at the end.
func (e *NumericGorillaEncoder) flushPartial() {
	if e.bitCount == 0 {
		return
	}

	aligned := e.bitBuf << (64 - e.bitCount)
	nbytes := (e.bitCount + 7) / 8
	for i := range nbytes {
		e.buf.B = append(e.buf.B, byte(aligned>>(56-8*i)))
	}
	e.bitBuf, e.bitCount = 0, 0
}

// NumericGorillaDecoder reads payloads written by NumericGorillaEncoder.
type NumericGorillaDecoder struct{}

var _ ColumnarDecoder[float64] = NumericGorillaDecoder{}

// NewNumericGorillaDecoder creates a Gorilla decoder.
func NewNumericGorillaDecoder() NumericGorillaDecoder {
	return NumericGorillaDecoder{}
}

// All yields up to count values and stops early on a truncated stream.
func (d NumericGorillaDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 {
			return
		}

		br := bitReader{data: data}
		var st gorillaState
		for i := range count {
			v, ok := st.next(&br, i == 0)
			if !ok || !yield(math.Float64frombits(v)) {
				return
			}
		}
	}
}

// MaxCount returns how many values data can hold at most: 64 bits for the first
// value and at least one bit for each following one.
func (d NumericGorillaDecoder) MaxCount(data []byte) int {
	nbits := len(data) * 8
	if nbits < 64 {
		return 0
	}

	return 1 + nbits - 64
}

// At decodes sequentially up to index; Gorilla streams have no random access.
func (d NumericGorillaDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	br := bitReader{data: data}
	var st gorillaState
	var v uint64
	for i := 0; i <= index; i++ {
		var ok bool
		if v, ok = st.next(&br, i == 0); !ok {
			return 0, false
		}
	}

	return math.Float64frombits(v), true
}

type gorillaState struct {
	prev      uint64
	leading   int
	blockSize int
}

func (s *gorillaState) next(br *bitReader, first bool) (uint64, bool) {
	if first {
		v, ok := br.readBits(64)
		s.prev = v

		return v, ok
	}

	changed, ok := br.readBits(1)
	if !ok {
		return 0, false
	}
	if changed == 0 {
		return s.prev, true
	}

	newWindow, ok := br.readBits(1)
	if !ok {
		return 0, false
	}

	if newWindow == 1 {
		leading, ok := br.readBits(gorillaLeadingBits)
		if !ok {
			return 0, false
		}
		size, ok := br.readBits(gorillaBlockSizeBits)
		if !ok {
			return 0, false
		}
		s.leading = int(leading)
		s.blockSize = int(size) + 1
	} else if s.blockSize == 0 {
		// a window reuse before any window was emitted
		return 0, false
	}

	meaningful, ok := br.readBits(s.blockSize)
	if !ok {
		return 0, false
	}

	trailing := 64 - s.leading - s.blockSize
	if trailing < 0 {
		// window wider than 64 bits
		return 0, false
	}
	s.prev ^= meaningful << trailing

	return s.prev, true
}

// bitReader reads a big-endian bit stream.
type bitReader struct {
	data []byte
	pos  int // bit position
}

func (r *bitReader) readBits(n int) (uint64, bool) {
	if r.pos+n > len(r.data)*8 {
		return 0, false
	}

	var v uint64
	for n > 0 {
		bitOff := r.pos & 7
		avail := 8 - bitOff
		take := min(avail, n)
		b := uint64(r.data[r.pos>>3]>>(avail-take)) & (uint64(1)<<take - 1)
		v = v<<take | b
		r.pos += take
		n -= take
	}

	return v, true
}
