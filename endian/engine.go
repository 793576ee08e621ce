// Package endian selects the byte order used for container sections and value payloads.
//
// The container header always records which order the rest of the file uses, so a
// reader only needs EngineFor(header.Flag.IsBigEndian()) to decode everything that
// follows the flag field.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so callers can
// both put into fixed slices and append to growing buffers with one value.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. It is the container default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// EngineFor returns the big-endian engine when bigEndian is set and the little-endian one otherwise.
func EngineFor(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Native returns the byte order of the host.
func Native() EndianEngine {
	var i uint16 = 0x0100
	// On big-endian hosts the MSB (0x01) sits at the lowest address.
	if (*[2]byte)(unsafe.Pointer(&i))[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNative reports whether engine matches the host byte order.
func IsNative(engine EndianEngine) bool {
	return engine == Native()
}
