package container

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/arloliu/vislog/compress"
	"github.com/arloliu/vislog/encoding"
	"github.com/arloliu/vislog/errs"
	"github.com/arloliu/vislog/format"
	"github.com/arloliu/vislog/internal/hash"
	"github.com/arloliu/vislog/internal/options"
	"github.com/arloliu/vislog/section"
)

type pendingDataset struct {
	name   string
	event  string
	values []float64
}

// Writer builds a container in memory.
//
// Datasets are kept in the order they are added, which is also the enumeration
// order a Reader reports. A Writer is not safe for concurrent use.
type Writer struct {
	header      *section.Header
	encoding    format.EncodingType
	compression format.CompressionType
	datasets    []pendingDataset
	ids         map[uint64]string
}

// NewWriter creates a Writer. By default values are stored raw, uncompressed and
// little-endian, stamped with the current time.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		header:      section.NewHeader(time.Now()),
		encoding:    format.TypeRaw,
		compression: format.CompressionNone,
		ids:         make(map[uint64]string),
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// Add appends a dataset. event names the dataset holding the event timestamps of
// values, or is empty when the dataset has none (time-reference datasets usually).
// The event dataset does not have to be added before the datasets referencing it.
//
// values is copied.
//
// Returns:
//   - errs.ErrInvalidDatasetName for an empty or too long name or event
//   - errs.ErrDuplicateDataset if name was already added
//   - errs.ErrHashCollision if another name hashes to the same ID
//   - errs.ErrTooManyDatasets once section.MaxDatasetCount datasets were added
func (w *Writer) Add(name string, values []float64, event string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrInvalidDatasetName)
	}
	if len(name) > encoding.MaxNameLength || len(event) > encoding.MaxNameLength {
		return fmt.Errorf("%w: name longer than %d bytes", errs.ErrInvalidDatasetName, encoding.MaxNameLength)
	}
	if len(w.datasets) >= section.MaxDatasetCount {
		return fmt.Errorf("%w: limit is %d", errs.ErrTooManyDatasets, section.MaxDatasetCount)
	}
	if uint64(len(values)) > section.MaxSampleCount {
		return fmt.Errorf("%w: %d values in %q", errs.ErrDataPointCountMismatch, len(values), name)
	}

	id := hash.ID(name)
	if existing, ok := w.ids[id]; ok {
		if existing == name {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateDataset, name)
		}

		return fmt.Errorf("%w: %q and %q", errs.ErrHashCollision, existing, name)
	}

	w.ids[id] = name
	w.datasets = append(w.datasets, pendingDataset{
		name:   name,
		event:  event,
		values: slices.Clone(values),
	})

	return nil
}

// Len returns the number of datasets added so far.
func (w *Writer) Len() int {
	return len(w.datasets)
}

// Bytes encodes the container. The Writer stays usable, so more datasets may be
// added and Bytes called again.
func (w *Writer) Bytes() ([]byte, error) {
	engine := w.header.Flag.GetEndianEngine()

	codec, err := compress.GetCodec(w.compression)
	if err != nil {
		return nil, err
	}

	count := len(w.datasets)
	names := make([]string, 0, count*2)
	for _, ds := range w.datasets {
		names = append(names, ds.name)
	}
	for _, ds := range w.datasets {
		names = append(names, ds.event)
	}

	namesPayload, err := encoding.EncodeNames(names, engine)
	if err != nil {
		return nil, err
	}

	var payload []byte
	entries := make([]section.IndexEntry, count)
	for i, ds := range w.datasets {
		start := len(payload)
		payload, err = w.appendDataset(payload, ds.values, codec)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", ds.name, err)
		}

		stored := payload[start:]
		if uint64(len(stored)) > section.MaxPayloadLength {
			return nil, fmt.Errorf("%w: dataset %q stores %d bytes", errs.ErrInvalidPayloadOffset, ds.name, len(stored))
		}

		entries[i] = section.IndexEntry{
			DatasetID:   hash.ID(ds.name),
			EventID:     hash.RefID(ds.event),
			Count:       len(ds.values),
			Encoding:    w.encoding,
			Compression: w.compression,
			Length:      len(stored),
			Checksum:    checksum(stored),
			Offset:      start,
		}
	}

	header := *w.header
	header.DatasetCount = uint32(count) //nolint:gosec
	header.IndexOffset = section.IndexOffsetOffset
	header.NamesOffset = section.IndexOffsetOffset + uint32(count*section.IndexEntrySize) //nolint:gosec
	header.PayloadOffset = uint64(header.NamesOffset) + uint64(len(namesPayload))

	out := make([]byte, 0, int(header.PayloadOffset)+len(payload)) //nolint:gosec
	out = append(out, header.Bytes()...)
	for i := range entries {
		out = entries[i].AppendTo(out, engine)
	}
	out = append(out, namesPayload...)
	out = append(out, payload...)

	return out, nil
}

// appendDataset encodes and compresses values and appends the stored form to dst.
func (w *Writer) appendDataset(dst []byte, values []float64, codec compress.Codec) ([]byte, error) {
	var enc encoding.ColumnarEncoder[float64]
	switch w.encoding { //nolint:exhaustive
	case format.TypeGorilla:
		enc = encoding.NewNumericGorillaEncoder()
	default:
		enc = encoding.NewNumericRawEncoder(w.header.Flag.GetEndianEngine())
	}
	defer enc.Finish()

	enc.WriteSlice(values)

	compressed, err := codec.Compress(enc.Bytes())
	if err != nil {
		return nil, err
	}

	return append(dst, compressed...), nil
}

// WriteTo writes the encoded container to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	data, err := w.Bytes()
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dst, bytes.NewReader(data))

	return n, err
}

// WriteFile writes the encoded container to path, replacing any existing file.
func (w *Writer) WriteFile(path string) error {
	data, err := w.Bytes()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644) //nolint:gosec
}
