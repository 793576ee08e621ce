package section

import "math"

const (
	// Options bit layout (16 bits, always stored little-endian)
	EndiannessMask   = 0x0001 // bit 0: 0 = little-endian, 1 = big-endian
	ReservedBitsMask = 0x000E // bits 1-3, must be zero
	MagicNumberMask  = 0xFFF0 // bits 4-15

	// MagicContainerV1 identifies a vislog container.
	MagicContainerV1 = 0x5A10

	// Version1 is the only layout version understood by this package.
	Version1 = 1
)

// offsets and section sizes in the container file
const (
	HeaderSize        = 32                // fixed header size in bytes
	IndexEntrySize    = 32                // fixed index entry size in bytes
	IndexOffsetOffset = HeaderSize        // the index directly follows the header
	MaxDatasetCount   = math.MaxUint16    // upper bound on datasets per container
	MaxPayloadLength  = math.MaxUint32    // upper bound on one stored dataset payload
	MaxSampleCount    = math.MaxUint32    // upper bound on values per dataset
)
