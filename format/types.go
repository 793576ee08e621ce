// Package format holds the on-disk enumerations shared by the container
// writer, the container reader and the value codecs.
package format

import (
	"fmt"
	"strings"
)

type (
	// EncodingType selects how a dataset's float64 values are laid out before compression.
	EncodingType uint8
	// CompressionType selects the codec applied to an encoded dataset payload.
	CompressionType uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw stores IEEE 754 bits as-is.
	TypeGorilla EncodingType = 0x3 // TypeGorilla stores XOR-compressed values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

// Valid reports whether e is a known value encoding.
func (e EncodingType) Valid() bool {
	return e == TypeRaw || e == TypeGorilla
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseEncoding converts a case-insensitive name ("raw", "gorilla") into an EncodingType.
func ParseEncoding(name string) (EncodingType, error) {
	switch strings.ToLower(name) {
	case "raw":
		return TypeRaw, nil
	case "gorilla":
		return TypeGorilla, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", name)
	}
}

// ParseCompression converts a case-insensitive name ("none", "zstd", "s2", "lz4")
// into a CompressionType.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}
