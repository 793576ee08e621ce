package section

import (
	"time"

	"github.com/arloliu/vislog/errs"
)

// Header is the fixed-size section at the start of a container.
//
// Layout (bytes):
//
//	0-1   Flag.Options (always little-endian)
//	2     Flag.Version
//	3     Flag.Reserved
//	4-7   DatasetCount
//	8-11  IndexOffset
//	12-15 NamesOffset
//	16-23 PayloadOffset
//	24-31 CreatedAt (unix microseconds)
//
// Everything after the flag uses the byte order selected by the flag.
type Header struct {
	Flag Flag
	// DatasetCount is the number of index entries.
	DatasetCount uint32
	// IndexOffset is the byte offset of the first index entry.
	IndexOffset uint32
	// NamesOffset is the byte offset of the names payload, right after the index.
	NamesOffset uint32
	// PayloadOffset is the byte offset of the first dataset payload.
	PayloadOffset uint64
	// CreatedAt is the creation time of the container in unix microseconds.
	CreatedAt int64
}

// NewHeader creates a header stamped with createdAt.
// Counts and offsets are filled in by the writer.
func NewHeader(createdAt time.Time) *Header {
	return &Header{
		Flag:        NewFlag(),
		IndexOffset: IndexOffsetOffset,
		CreatedAt:   createdAt.UnixMicro(),
	}
}

// Parse parses the header from exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Version = data[2]
	h.Flag.Reserved = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.DatasetCount = engine.Uint32(data[4:8])
	h.IndexOffset = engine.Uint32(data[8:12])
	h.NamesOffset = engine.Uint32(data[12:16])
	h.PayloadOffset = engine.Uint64(data[16:24])
	h.CreatedAt = int64(engine.Uint64(data[24:32])) //nolint:gosec

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Version
	b[3] = h.Flag.Reserved
	engine.PutUint32(b[4:8], h.DatasetCount)
	engine.PutUint32(b[8:12], h.IndexOffset)
	engine.PutUint32(b[12:16], h.NamesOffset)
	engine.PutUint64(b[16:24], h.PayloadOffset)
	engine.PutUint64(b[24:32], uint64(h.CreatedAt)) //nolint:gosec

	return b
}

// CreatedTime returns CreatedAt as a UTC time.Time.
func (h *Header) CreatedTime() time.Time {
	return time.UnixMicro(h.CreatedAt).UTC()
}

// ValidateOffsets checks that the sections are ordered and fit a file of size bytes.
func (h *Header) ValidateOffsets(size int) error {
	indexEnd := uint64(h.IndexOffset) + uint64(h.DatasetCount)*IndexEntrySize
	switch {
	case h.IndexOffset < HeaderSize:
		return errs.ErrInvalidIndexOffsets
	case uint64(h.NamesOffset) != indexEnd:
		return errs.ErrInvalidIndexOffsets
	case h.PayloadOffset < uint64(h.NamesOffset) || h.PayloadOffset > uint64(size): //nolint:gosec
		return errs.ErrInvalidPayloadOffset
	}

	return nil
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
