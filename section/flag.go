package section

import (
	"fmt"

	"github.com/arloliu/vislog/endian"
	"github.com/arloliu/vislog/errs"
)

// Flag is the first 4 bytes of the header: packed options, layout version and a reserved byte.
type Flag struct {
	// Options packs the endianness bit and the magic number, see the masks in const.go.
	Options uint16
	// Version is the layout version.
	Version uint8
	// Reserved must be zero.
	Reserved uint8
}

// NewFlag returns a little-endian version 1 flag.
func NewFlag() Flag {
	return Flag{
		Options: MagicContainerV1,
		Version: Version1,
	}
}

// IsBigEndian reports whether the sections after the flag are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithBigEndian switches the container to big-endian.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// WithLittleEndian switches the container to little-endian.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// GetEndianEngine returns the byte order selected by the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	return endian.EngineFor(f.IsBigEndian())
}

// Magic returns the magic number bits.
func (f Flag) Magic() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks the magic number, reserved bits and version.
func (f Flag) Validate() error {
	if f.Magic() != MagicContainerV1 {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, f.Magic())
	}

	if f.Options&ReservedBitsMask != 0 || f.Reserved != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidMagicNumber)
	}

	if f.Version != Version1 {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, f.Version)
	}

	return nil
}
