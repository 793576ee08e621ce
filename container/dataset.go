package container

import (
	"hash/crc32"

	"github.com/arloliu/vislog/format"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// DatasetInfo describes one dataset of a container.
type DatasetInfo struct {
	// Name is the full dataset name, including any namespace.
	Name string
	// Event is the name of the dataset holding this dataset's event timestamps,
	// or "" when the dataset has no event reference.
	Event string
	// Count is the number of values.
	Count int
	// Encoding is the value encoding of the stored payload.
	Encoding format.EncodingType
	// Compression is the codec applied to the stored payload.
	Compression format.CompressionType
	// StoredSize is the size of the stored payload in bytes.
	StoredSize int
}

// HasEvent reports whether the dataset declares an event reference.
func (i DatasetInfo) HasEvent() bool {
	return i.Event != ""
}

func checksum(data []byte) uint32 {
	return crc32.Checksum(data, castagnoli)
}
