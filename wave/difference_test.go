package wave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timewave/hexagram"
	"github.com/katalvlaran/timewave/wave"
)

// kingWenDifferences is the first-order difference wave of the King Wen sequence.
var kingWenDifferences = []int{
	6, 2, 4, 4, 4, 3, 2, 4, 2, 4, 6, 2, 2, 4, 2, 2, 6, 3, 4, 3, 2,
	2, 2, 3, 4, 2, 6, 2, 6, 3, 2, 3, 4, 4, 4, 2, 4, 6, 4, 3, 2, 4,
	2, 3, 4, 3, 2, 3, 4, 4, 4, 1, 6, 2, 2, 3, 4, 3, 2, 1, 6, 3, 6,
}

func TestDifference_Example(t *testing.T) {
	got, err := wave.Difference([]hexagram.Code{"111111", "101111", "101110"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, got)
}

func TestDifference_Errors(t *testing.T) {
	_, err := wave.Difference(nil)
	assert.ErrorIs(t, err, wave.ErrInvalidArgument, "nil input")

	_, err = wave.Difference([]hexagram.Code{"111111"})
	assert.ErrorIs(t, err, wave.ErrInvalidArgument, "single code")

	_, err = wave.Difference([]hexagram.Code{"111111", "10111"})
	assert.ErrorIs(t, err, wave.ErrInvalidArgument, "narrow code")

	_, err = wave.Difference([]hexagram.Code{"111111", "000000", "0000a0"})
	assert.ErrorIs(t, err, wave.ErrInvalidArgument, "non-binary code")
}

// TestBaseDifference checks length, range and the per-pair definition.
func TestBaseDifference(t *testing.T) {
	base := wave.BaseDifference()
	require.Len(t, base, hexagram.Count-1)
	assert.Equal(t, kingWenDifferences, base)

	seq := hexagram.Sequence()
	for i, v := range base {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, hexagram.Width)

		want, err := seq[i].Code.Hamming(seq[i+1].Code)
		require.NoError(t, err)
		assert.Equal(t, want, v, "index %d", i)
	}

	// The King Wen sequence never changes exactly five lines.
	assert.NotContains(t, base, 5)
	assert.NotContains(t, base, 0)
}

func TestBaseDifference_Idempotent(t *testing.T) {
	a := wave.BaseDifference()
	a[0] = 99
	assert.Equal(t, kingWenDifferences, wave.BaseDifference())
}

func TestFromInts(t *testing.T) {
	assert.Equal(t, wave.Wave{1, 0, 6}, wave.FromInts([]int{1, 0, 6}))
	assert.Empty(t, wave.FromInts(nil))
}
