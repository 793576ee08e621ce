package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sampling struct {
	step   float64
	strict bool
	calls  []string
}

func withStep(step float64) Option[*sampling] {
	return New(func(s *sampling) error {
		if step <= 0 {
			return errors.New("step must be positive")
		}
		s.step = step
		s.calls = append(s.calls, "step")

		return nil
	})
}

func withStrict(strict bool) Option[*sampling] {
	return NoError(func(s *sampling) {
		s.strict = strict
		s.calls = append(s.calls, "strict")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		s := &sampling{}
		err := Apply(s, withStrict(true), withStep(0.5))
		require.NoError(t, err)
		require.Equal(t, 0.5, s.step)
		require.True(t, s.strict)
		require.Equal(t, []string{"strict", "step"}, s.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		s := &sampling{}
		err := Apply(s, withStep(2), withStep(-1), withStrict(true))
		require.Error(t, err)
		require.Contains(t, err.Error(), "step must be positive")
		require.Equal(t, 2.0, s.step)
		require.False(t, s.strict)
	})

	t.Run("skips nil options", func(t *testing.T) {
		s := &sampling{}
		require.NoError(t, Apply(s, nil, withStrict(true)))
		require.True(t, s.strict)
	})

	t.Run("empty options leave target unchanged", func(t *testing.T) {
		s := &sampling{step: 1}
		require.NoError(t, Apply(s))
		require.Equal(t, 1.0, s.step)
		require.Empty(t, s.calls)
	})
}

func TestJoin(t *testing.T) {
	s := &sampling{}
	preset := Join(withStep(4), withStrict(true))

	require.NoError(t, Apply[*sampling](s, preset))
	require.Equal(t, 4.0, s.step)
	require.True(t, s.strict)

	err := Apply[*sampling](&sampling{}, Join(withStep(0)))
	require.Error(t, err)
}
