package compress

import (
	"fmt"

	"github.com/arloliu/vislog/errs"
	"github.com/arloliu/vislog/format"
)

// Compressor compresses one encoded dataset payload.
//
// The returned slice is owned by the caller. The input is never modified, but a
// codec may return it unchanged (see NoOpCompressor).
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error when data is corrupted or was produced by a different
// algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
//
// Returns:
//   - Codec: shared, stateless codec instance
//   - error: errs.ErrInvalidCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}
