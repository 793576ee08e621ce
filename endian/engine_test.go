package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNative(t *testing.T) {
	var probe uint16 = 0x0102
	first := (*[2]byte)(unsafe.Pointer(&probe))[0]

	switch first {
	case 0x01:
		require.Equal(t, binary.BigEndian, Native())
	case 0x02:
		require.Equal(t, binary.LittleEndian, Native())
	default:
		require.Failf(t, "unexpected byte value", "got: %v", first)
	}

	require.True(t, IsNative(Native()))
}

func TestEngineFor(t *testing.T) {
	require.Equal(t, GetBigEndianEngine(), EngineFor(true))
	require.Equal(t, GetLittleEndianEngine(), EngineFor(false))
}

func TestEngineRoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint64(nil, 0x0102030405060708)
		require.Len(t, buf, 8)
		require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))
	}

	require.Equal(t, []byte{0x01, 0x02}, GetBigEndianEngine().AppendUint16(nil, 0x0102))
	require.Equal(t, []byte{0x02, 0x01}, GetLittleEndianEngine().AppendUint16(nil, 0x0102))
}
