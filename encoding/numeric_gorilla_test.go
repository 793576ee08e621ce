package encoding

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vislog/errs"
)

func gorillaRoundTrip(t *testing.T, values []float64) []byte {
	t.Helper()

	enc := NewNumericGorillaEncoder()
	enc.WriteSlice(values)
	require.Equal(t, len(values), enc.Len())

	payload := append([]byte(nil), enc.Bytes()...)
	enc.Finish()

	got, err := DecodeAll[float64](NewNumericGorillaDecoder(), payload, len(values))
	require.NoError(t, err)
	require.Len(t, got, len(values))
	for i := range values {
		require.Equal(t, math.Float64bits(values[i]), math.Float64bits(got[i]), "index %d", i)
	}

	return payload
}

func TestNumericGorillaRoundTrip(t *testing.T) {
	t.Run("single value", func(t *testing.T) {
		payload := gorillaRoundTrip(t, []float64{42.5})
		require.Len(t, payload, 8)
	})

	t.Run("constant signal", func(t *testing.T) {
		values := make([]float64, 1000)
		for i := range values {
			values[i] = 3.0
		}
		payload := gorillaRoundTrip(t, values)
		// 64 bits for the first value plus one bit per repeat
		require.Equal(t, (64+999+7)/8, len(payload))
	})

	t.Run("discrete states", func(t *testing.T) {
		values := []float64{0, 0, 1, 1, 1, 2, 2, 0, 0, 1}
		gorillaRoundTrip(t, values)
	})

	t.Run("slow drift", func(t *testing.T) {
		values := make([]float64, 500)
		for i := range values {
			values[i] = 20 + math.Sin(float64(i)/40)
		}
		payload := gorillaRoundTrip(t, values)
		require.Less(t, len(payload), len(values)*8)
	})

	t.Run("special values", func(t *testing.T) {
		values := []float64{math.NaN(), 1, math.Inf(-1), math.Inf(1), 0, math.Copysign(0, -1), math.NaN()}
		gorillaRoundTrip(t, values)
	})

	t.Run("random values", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		values := make([]float64, 2000)
		for i := range values {
			values[i] = rng.NormFloat64() * 1e6
		}
		gorillaRoundTrip(t, values)
	})

	t.Run("small leading zero counts", func(t *testing.T) {
		values := []float64{1, math.Float64frombits(math.Float64bits(1) ^ 1), 1, 2, math.MaxFloat64, -math.MaxFloat64}
		gorillaRoundTrip(t, values)
	})
}

func TestNumericGorillaAt(t *testing.T) {
	values := []float64{1, 1, 2.5, -3, -3, 8}
	enc := NewNumericGorillaEncoder()
	defer enc.Finish()
	enc.WriteSlice(values)
	payload := enc.Bytes()

	dec := NewNumericGorillaDecoder()
	for i, want := range values {
		got, ok := dec.At(payload, i, len(values))
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := dec.At(payload, len(values), len(values))
	require.False(t, ok)
	_, ok = dec.At(payload, -1, len(values))
	require.False(t, ok)
}

func TestNumericGorillaTruncated(t *testing.T) {
	enc := NewNumericGorillaEncoder()
	defer enc.Finish()
	enc.WriteSlice([]float64{1, 2, 3, 4})
	payload := enc.Bytes()

	_, err := DecodeAll[float64](NewNumericGorillaDecoder(), payload[:4], 4)
	require.ErrorIs(t, err, errs.ErrDataPointCountMismatch)
}

func TestNumericGorillaWindowOverflow(t *testing.T) {
	enc := NewNumericGorillaEncoder()
	defer enc.Finish()
	enc.Write(1.0)
	// leading 31 with a 64 bit block leaves a negative trailing count
	enc.writeBits(0b11, 2)
	enc.writeBits(31, gorillaLeadingBits)
	enc.writeBits(63, gorillaBlockSizeBits)
	enc.writeBits(math.MaxUint64, 64)
	payload := enc.Bytes()

	dec := NewNumericGorillaDecoder()
	require.NotPanics(t, func() {
		_, err := DecodeAll[float64](dec, payload, 2)
		require.ErrorIs(t, err, errs.ErrDataPointCountMismatch)
	})

	first, ok := dec.At(payload, 0, 2)
	require.True(t, ok)
	require.Equal(t, 1.0, first)
	_, ok = dec.At(payload, 1, 2)
	require.False(t, ok)
}

func TestNumericGorillaMaxCount(t *testing.T) {
	dec := NewNumericGorillaDecoder()
	require.Zero(t, dec.MaxCount(nil))
	require.Zero(t, dec.MaxCount(make([]byte, 7)))
	require.Equal(t, 1, dec.MaxCount(make([]byte, 8)))
	require.Equal(t, 17, dec.MaxCount(make([]byte, 10)))

	_, err := DecodeAll[float64](dec, make([]byte, 10), 1<<32-1)
	require.ErrorIs(t, err, errs.ErrDataPointCountMismatch)
}

func TestNumericGorillaReset(t *testing.T) {
	enc := NewNumericGorillaEncoder()
	defer enc.Finish()

	enc.WriteSlice([]float64{1, 2, 3})
	enc.Reset()
	require.Zero(t, enc.Len())
	require.Zero(t, enc.Size())

	enc.WriteSlice([]float64{5, 5})
	got, err := DecodeAll[float64](NewNumericGorillaDecoder(), enc.Bytes(), 2)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 5}, got)
}

func BenchmarkNumericGorillaEncode(b *testing.B) {
	values := make([]float64, 4096)
	for i := range values {
		values[i] = float64(i % 7)
	}

	b.ReportAllocs()
	for b.Loop() {
		enc := NewNumericGorillaEncoder()
		enc.WriteSlice(values)
		_ = enc.Bytes()
		enc.Finish()
	}
}
