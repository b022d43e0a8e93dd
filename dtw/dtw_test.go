package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timewave/dtw"
	"github.com/katalvlaran/timewave/wave"
)

// TestDTW_EmptyInput verifies that either empty series is rejected.
func TestDTW_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, _, err := dtw.DTW([]float64{}, []float64{1, 2, 3}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first series should error")

	_, _, err = dtw.DTW([]float64{1, 2, 3}, nil, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second series should error")
}

// TestDTW_BadOptions ensures malformed options surface as ErrBadInput.
func TestDTW_BadOptions(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = -2
	_, _, err := dtw.DTW([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput, "Window < -1 must error")

	opts = dtw.DefaultOptions()
	opts.SlopePenalty = -0.1
	_, _, err = dtw.DTW([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput, "negative penalty must error")
}

// TestDTW_PathNeedsMatrix ensures ReturnPath with TwoRows errors.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.TwoRows

	_, _, err := dtw.DTW([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix)
}

// TestDTW_Identical checks zero distance and no path by default.
func TestDTW_Identical(t *testing.T) {
	a := []float64{0, 1, 2}

	dist, path, err := dtw.DTW(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Nil(t, path)
}

// TestDTW_SubsequencePath checks a perfect warped match and its path.
func TestDTW_SubsequencePath(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW([]float64{1, 2, 3}, []float64{1, 2, 2, 3}, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Equal(t, []dtw.Coord{{I: 0, J: 0}, {I: 1, J: 1}, {I: 1, J: 2}, {I: 2, J: 3}}, path)
}

// TestDTW_WindowConstraint: window 0 on different lengths is unreachable.
func TestDTW_WindowConstraint(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = 0
	opts.ReturnPath = true

	dist, path, err := dtw.DTW([]float64{1, 2, 3}, []float64{1, 2, 3, 4}, &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1))
	assert.Nil(t, path)
}

// TestDTW_Penalty: stretching costs the penalty once per non-diagonal step.
func TestDTW_Penalty(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.SlopePenalty = 0.5

	dist, _, err := dtw.DTW([]float64{1, 2, 3}, []float64{1, 2, 2, 3}, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.5, dist)
}

// TestDTW_ModesAgree compares FullMatrix and TwoRows on real waves.
func TestDTW_ModesAgree(t *testing.T) {
	a, err := wave.Recursive(wave.WithIterations(3))
	require.NoError(t, err)
	b, err := wave.Recursive(wave.WithIterations(4), wave.WithCompression(1.6))
	require.NoError(t, err)

	for _, window := range []int{dtw.NoWindow, 0, 40, 80} {
		full := dtw.DefaultOptions()
		full.Window = window
		rows := full
		rows.MemoryMode = dtw.TwoRows

		d1, _, err := dtw.DTW(a, b, &full)
		require.NoError(t, err)
		d2, _, err := dtw.DTW(a, b, &rows)
		require.NoError(t, err)
		assert.Equal(t, d1, d2, "window %d", window)
	}
}

// TestDTW_PathShape checks monotonic, unit-step paths from corner to corner.
func TestDTW_PathShape(t *testing.T) {
	a, err := wave.Recursive(wave.WithIterations(2))
	require.NoError(t, err)
	b := wave.FromInts(wave.BaseDifference())

	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	dist, path, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.False(t, math.IsInf(dist, 0))

	require.NotEmpty(t, path)
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, path[0])
	assert.Equal(t, dtw.Coord{I: len(a) - 1, J: len(b) - 1}, path[len(path)-1])
	for k := 1; k < len(path); k++ {
		di := path[k].I - path[k-1].I
		dj := path[k].J - path[k-1].J
		assert.True(t, (di == 0 || di == 1) && (dj == 0 || dj == 1) && di+dj > 0, "step %d: %v -> %v", k, path[k-1], path[k])
	}
}
