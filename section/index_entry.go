package section

import (
	"fmt"

	"github.com/arloliu/vislog/endian"
	"github.com/arloliu/vislog/errs"
	"github.com/arloliu/vislog/format"
)

// IndexEntry describes one dataset. It is 32 bytes on disk:
//
//	0-7   DatasetID   xxHash64 of the dataset name
//	8-15  EventID     xxHash64 of the event reference name, 0 when absent
//	16-19 Count       number of float64 values
//	20    Encoding    format.EncodingType
//	21    Compression format.CompressionType
//	22-23 reserved
//	24-27 Length      stored (compressed) payload length in bytes
//	28-31 Checksum    CRC-32C of the stored payload
//
// Payloads are laid out back to back in index order, so absolute offsets are
// not stored; the reader reconstructs Offset by accumulating Length.
type IndexEntry struct {
	DatasetID   uint64
	EventID     uint64
	Count       int
	Encoding    format.EncodingType
	Compression format.CompressionType
	Length      int
	Checksum    uint32

	// Offset is the payload offset relative to the payload section start.
	// It is not stored on disk.
	Offset int
}

// HasEvent reports whether the dataset declares an event-time reference.
func (e IndexEntry) HasEvent() bool {
	return e.EventID != 0
}

// AppendTo appends the encoded entry to buf.
func (e *IndexEntry) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint64(buf, e.DatasetID)
	buf = engine.AppendUint64(buf, e.EventID)
	buf = engine.AppendUint32(buf, uint32(e.Count)) //nolint:gosec
	buf = append(buf, byte(e.Encoding), byte(e.Compression), 0, 0)
	buf = engine.AppendUint32(buf, uint32(e.Length)) //nolint:gosec
	buf = engine.AppendUint32(buf, e.Checksum)

	return buf
}

// ParseIndexEntry parses one entry. Offset is left zero.
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	e := IndexEntry{
		DatasetID:   engine.Uint64(data[0:8]),
		EventID:     engine.Uint64(data[8:16]),
		Count:       int(engine.Uint32(data[16:20])),
		Encoding:    format.EncodingType(data[20]),
		Compression: format.CompressionType(data[21]),
		Length:      int(engine.Uint32(data[24:28])),
		Checksum:    engine.Uint32(data[28:32]),
	}

	if !e.Encoding.Valid() {
		return IndexEntry{}, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidEncoding, data[20])
	}
	if !e.Compression.Valid() {
		return IndexEntry{}, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, data[21])
	}

	return e, nil
}

// ParseIndex parses count consecutive entries and fills in their Offset fields.
//
// Returns errs.ErrInvalidPayloadOffset if the accumulated payload lengths exceed payloadSize.
func ParseIndex(data []byte, count int, payloadSize int, engine endian.EndianEngine) ([]IndexEntry, error) {
	if len(data) < count*IndexEntrySize {
		return nil, errs.ErrInvalidIndexEntrySize
	}

	entries := make([]IndexEntry, count)
	offset := 0
	for i := range count {
		e, err := ParseIndexEntry(data[i*IndexEntrySize:], engine)
		if err != nil {
			return nil, fmt.Errorf("index entry %d: %w", i, err)
		}

		e.Offset = offset
		offset += e.Length
		if offset > payloadSize {
			return nil, fmt.Errorf("%w: entry %d ends at %d, payload has %d bytes", errs.ErrInvalidPayloadOffset, i, offset, payloadSize)
		}
		entries[i] = e
	}

	return entries, nil
}
