package compress

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vislog/errs"
	"github.com/arloliu/vislog/format"
)

// samplePayload builds a raw float64 payload resembling a slowly drifting sensor signal.
func samplePayload(n int) []byte {
	buf := make([]byte, 0, n*8)
	for i := range n {
		v := 20.0 + math.Sin(float64(i)/50.0)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0x7f))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCodecRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"single value": samplePayload(1),
		"small":        samplePayload(16),
		"large":        samplePayload(20000),
		"constant":     make([]byte, 4096),
	}

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, data := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				restored, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, restored)
			})
		}
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewS2Compressor(), NewLZ4Compressor()} {
		out, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, out)

		out, err = codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, out)
	}

	out, err := NewZstdCompressor().Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestCodecCompressesRepetitiveData(t *testing.T) {
	data := make([]byte, 64*1024)

	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data)/10)
	}
}

func TestCodecRejectsCorruptInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02}

	_, err := NewZstdCompressor().Decompress(garbage)
	require.Error(t, err)

	_, err = NewS2Compressor().Decompress(garbage)
	require.Error(t, err)
}

func TestNoOpAliasesInput(t *testing.T) {
	data := []byte{1, 2, 3}
	out, err := NewNoOpCompressor().Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}
