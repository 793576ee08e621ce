package container

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/arloliu/vislog/compress"
	"github.com/arloliu/vislog/encoding"
	"github.com/arloliu/vislog/endian"
	"github.com/arloliu/vislog/errs"
	"github.com/arloliu/vislog/format"
	"github.com/arloliu/vislog/internal/hash"
	"github.com/arloliu/vislog/section"
)

// Reader gives access to the datasets of an encoded container.
//
// The header, index and names are parsed and verified when the Reader is
// created; dataset payloads are only decompressed and decoded by Read.
//
// Note: a Reader is safe for concurrent Read calls, but Close must not race
// with any other method.
type Reader struct {
	data    []byte
	payload []byte
	header  section.Header
	engine  endian.EndianEngine
	entries []section.IndexEntry
	names   []string
	events  []string
	byName  map[string]int
	closed  bool
}

// Open reads the container at path into memory.
func Open(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	r, err := NewReader(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// NewReader parses an encoded container. data is retained, not copied.
//
// Returns:
//   - *Reader: reader over data
//   - error: a format error from errs when the header, index or names are invalid
func NewReader(data []byte) (*Reader, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if err := header.ValidateOffsets(len(data)); err != nil {
		return nil, err
	}

	r := &Reader{
		data:    data,
		payload: data[header.PayloadOffset:],
		header:  header,
		engine:  header.Flag.GetEndianEngine(),
	}

	count := int(header.DatasetCount)
	r.entries, err = section.ParseIndex(data[header.IndexOffset:header.NamesOffset], count, len(r.payload), r.engine)
	if err != nil {
		return nil, err
	}

	if err := r.parseNames(data[header.NamesOffset:header.PayloadOffset], count); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Reader) parseNames(data []byte, count int) error {
	names, _, err := encoding.DecodeNames(data, r.engine)
	if err != nil {
		return err
	}

	if len(names) != count*2 {
		return fmt.Errorf("%w: %d names for %d datasets", errs.ErrInvalidNamesPayload, len(names), count)
	}

	ids := make([]uint64, count)
	eventIDs := make([]uint64, count)
	for i, e := range r.entries {
		ids[i] = e.DatasetID
		eventIDs[i] = e.EventID
	}

	r.names, r.events = names[:count], names[count:]
	if err := encoding.VerifyNameHashes(r.names, ids, hash.ID); err != nil {
		return err
	}
	if err := encoding.VerifyNameHashes(r.events, eventIDs, hash.RefID); err != nil {
		return err
	}

	r.byName = make(map[string]int, count)
	for i, name := range r.names {
		if _, ok := r.byName[name]; ok {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateDataset, name)
		}
		r.byName[name] = i
	}

	return nil
}

// Datasets returns the dataset names in enumeration order. It returns nil after Close.
func (r *Reader) Datasets() []string {
	if r.closed {
		return nil
	}

	return slices.Clone(r.names)
}

// Len returns the number of datasets.
func (r *Reader) Len() int {
	return len(r.names)
}

// CreatedAt returns the creation time recorded in the header.
func (r *Reader) CreatedAt() time.Time {
	return r.header.CreatedTime()
}

// IsBigEndian reports the byte order of the container.
func (r *Reader) IsBigEndian() bool {
	return r.header.Flag.IsBigEndian()
}

// Has reports whether the container holds a dataset named name.
func (r *Reader) Has(name string) bool {
	_, ok := r.byName[name]
	return ok && !r.closed
}

// Info returns the metadata of a dataset.
func (r *Reader) Info(name string) (DatasetInfo, error) {
	idx, err := r.lookup(name)
	if err != nil {
		return DatasetInfo{}, err
	}

	e := r.entries[idx]

	return DatasetInfo{
		Name:        r.names[idx],
		Event:       r.events[idx],
		Count:       e.Count,
		Encoding:    e.Encoding,
		Compression: e.Compression,
		StoredSize:  e.Length,
	}, nil
}

// Read decodes all values of a dataset. The returned slice is owned by the caller.
func (r *Reader) Read(name string) ([]float64, error) {
	idx, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	e := r.entries[idx]
	stored := r.payload[e.Offset : e.Offset+e.Length]
	if sum := checksum(stored); sum != e.Checksum {
		return nil, fmt.Errorf("%w: dataset %q: expected 0x%08x, got 0x%08x", errs.ErrChecksumMismatch, name, e.Checksum, sum)
	}

	codec, err := compress.GetCodec(e.Compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", name, err)
	}

	var dec encoding.ColumnarDecoder[float64]
	switch e.Encoding { //nolint:exhaustive
	case format.TypeGorilla:
		dec = encoding.NewNumericGorillaDecoder()
	default:
		dec = encoding.NewNumericRawDecoder(r.engine)
	}

	values, err := encoding.DecodeAll(dec, raw, e.Count)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", name, err)
	}

	return values, nil
}

// Close releases the container data. Further calls fail with errs.ErrClosed.
// Closing twice is a no-op.
func (r *Reader) Close() error {
	r.closed = true
	r.data = nil
	r.payload = nil

	return nil
}

func (r *Reader) lookup(name string) (int, error) {
	if r.closed {
		return 0, errs.ErrClosed
	}

	idx, ok := r.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrDatasetNotFound, name)
	}

	return idx, nil
}
