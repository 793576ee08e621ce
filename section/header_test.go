package section

import (
	"testing"
	"time"

	"github.com/arloliu/vislog/errs"
	"github.com/stretchr/testify/require"
)

func TestNewHeader(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	header := NewHeader(created)

	require.NotNil(t, header)
	require.Equal(t, created.UnixMicro(), header.CreatedAt)
	require.Equal(t, uint32(IndexOffsetOffset), header.IndexOffset)
	require.Equal(t, uint32(0), header.DatasetCount)
	require.NoError(t, header.Flag.Validate())
	require.False(t, header.Flag.IsBigEndian())
	require.True(t, created.Equal(header.CreatedTime()))
}

func TestHeader_Parse(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		name := "little endian"
		if bigEndian {
			name = "big endian"
		}

		t.Run(name, func(t *testing.T) {
			original := NewHeader(time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC))
			if bigEndian {
				original.Flag.WithBigEndian()
			}
			original.DatasetCount = 3
			original.NamesOffset = HeaderSize + 3*IndexEntrySize
			original.PayloadOffset = 200

			data := original.Bytes()
			require.Len(t, data, HeaderSize)

			parsed, err := ParseHeader(data)
			require.NoError(t, err)
			require.Equal(t, *original, parsed)
			require.Equal(t, bigEndian, parsed.Flag.IsBigEndian())
		})
	}

	t.Run("Invalid size", func(t *testing.T) {
		header := &Header{}
		err := header.Parse([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

		_, err = ParseHeader(make([]byte, HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Invalid magic number", func(t *testing.T) {
		data := make([]byte, HeaderSize)
		data[0], data[1] = 0x34, 0x12
		data[2] = Version1

		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("Unsupported version", func(t *testing.T) {
		data := NewHeader(time.Now()).Bytes()
		data[2] = 9

		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	})

	t.Run("Reserved bits set", func(t *testing.T) {
		data := NewHeader(time.Now()).Bytes()
		data[0] |= 0x02

		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})
}

func TestHeader_ValidateOffsets(t *testing.T) {
	valid := func() *Header {
		h := NewHeader(time.Now())
		h.DatasetCount = 2
		h.NamesOffset = HeaderSize + 2*IndexEntrySize
		h.PayloadOffset = uint64(h.NamesOffset) + 20

		return h
	}

	require.NoError(t, valid().ValidateOffsets(200))

	h := valid()
	h.IndexOffset = 4
	require.ErrorIs(t, h.ValidateOffsets(200), errs.ErrInvalidIndexOffsets)

	h = valid()
	h.NamesOffset++
	require.ErrorIs(t, h.ValidateOffsets(200), errs.ErrInvalidIndexOffsets)

	h = valid()
	h.PayloadOffset = uint64(h.NamesOffset) - 1
	require.ErrorIs(t, h.ValidateOffsets(200), errs.ErrInvalidPayloadOffset)

	h = valid()
	require.ErrorIs(t, h.ValidateOffsets(int(h.PayloadOffset)-1), errs.ErrInvalidPayloadOffset)
}
