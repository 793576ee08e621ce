package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/vislog/endian"
	"github.com/arloliu/vislog/errs"
)

// MaxNameLength is the longest dataset or event name that fits the uint16 length prefix.
const MaxNameLength = math.MaxUint16

// EncodeNames encodes names into a length-prefixed payload.
// Format: [Count: uint32] [Len1: uint16][Name1: UTF-8] [Len2: uint16][Name2: UTF-8] ...
//
// Parameters:
//   - names: ordered names; empty strings are allowed and encode as a zero length
//   - engine: byte order for the count and length fields
//
// Returns:
//   - []byte: the encoded payload
//   - error: errs.ErrInvalidDatasetName if a name exceeds MaxNameLength bytes
func EncodeNames(names []string, engine endian.EndianEngine) ([]byte, error) {
	if uint64(len(names)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d names", errs.ErrTooManyDatasets, len(names))
	}

	totalSize := 4
	for _, name := range names {
		if len(name) > MaxNameLength {
			return nil, fmt.Errorf("%w: name of %d bytes exceeds maximum %d", errs.ErrInvalidDatasetName, len(name), MaxNameLength)
		}
		totalSize += 2 + len(name)
	}

	buf := make([]byte, 0, totalSize)
	buf = engine.AppendUint32(buf, uint32(len(names))) //nolint:gosec
	for _, name := range names {
		buf = engine.AppendUint16(buf, uint16(len(name))) //nolint:gosec
		buf = append(buf, name...)
	}

	return buf, nil
}

// DecodeNames decodes a payload produced by EncodeNames.
//
// Returns:
//   - []string: the names in encoded order
//   - int: number of bytes consumed
//   - error: errs.ErrInvalidNamesPayload on truncated input
func DecodeNames(data []byte, engine endian.EndianEngine) ([]string, int, error) {
	if len(data) < 4 {
		return nil, 0, fmt.Errorf("%w: cannot read names count (need 4 bytes, have %d)", errs.ErrInvalidNamesPayload, len(data))
	}

	count := int(engine.Uint32(data))
	offset := 4

	// Each name needs at least its 2-byte prefix; reject counts the payload cannot hold.
	if count > (len(data)-offset)/2 {
		return nil, 0, fmt.Errorf("%w: count %d does not fit %d bytes", errs.ErrInvalidNamesPayload, count, len(data))
	}

	names := make([]string, count)
	for i := range count {
		if len(data) < offset+2 {
			return nil, 0, fmt.Errorf("%w: cannot read length of name %d at offset %d", errs.ErrInvalidNamesPayload, i, offset)
		}
		nameLen := int(engine.Uint16(data[offset:]))
		offset += 2

		if len(data) < offset+nameLen {
			return nil, 0, fmt.Errorf("%w: cannot read name %d (need %d bytes at offset %d, have %d total)",
				errs.ErrInvalidNamesPayload, i, nameLen, offset, len(data))
		}
		names[i] = string(data[offset : offset+nameLen])
		offset += nameLen
	}

	return names, offset, nil
}

// VerifyNameHashes checks that hashFunc(names[i]) == ids[i] for every i.
func VerifyNameHashes(names []string, ids []uint64, hashFunc func(string) uint64) error {
	if len(names) != len(ids) {
		return fmt.Errorf("%w: %d names for %d ids", errs.ErrInvalidNamesPayload, len(names), len(ids))
	}

	for i, name := range names {
		if got := hashFunc(name); got != ids[i] {
			return fmt.Errorf("%w: name %q at index %d: expected hash 0x%016x, got 0x%016x",
				errs.ErrHashMismatch, name, i, ids[i], got)
		}
	}

	return nil
}
