// Package compress provides the payload codecs of the vislog container.
//
// A dataset payload is first laid out by a value encoding (raw IEEE 754 or
// Gorilla XOR, see package encoding) and then passed through one of the codecs
// below. The codec used for a dataset is recorded in its index entry, so a
// reader never needs to be told which one to use.
//
//   - None (format.CompressionNone): payload stored as encoded
//   - Zstd (format.CompressionZstd): best ratio, pooled klauspost/compress encoders
//   - S2   (format.CompressionS2): fast, moderate ratio
//   - LZ4  (format.CompressionLZ4): fastest decompression
//
// Building with the gozstd tag swaps the pure Go Zstd implementation for the
// cgo-based github.com/valyala/gozstd one. Both produce standard Zstandard frames.
//
// All codecs are stateless values and safe for concurrent use.
package compress
