package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// It gives the best ratio of the built-in codecs and suits archived logs that
// are written once and loaded many times.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
