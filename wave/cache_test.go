package wave_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timewave/wave"
)

func TestCache_Memoizes(t *testing.T) {
	c := wave.NewCache()

	a, err := c.Get(wave.WithIterations(4))
	require.NoError(t, err)
	b, err := c.Get(wave.WithIterations(4))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, c.Len())

	hits, misses := c.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)

	direct, err := wave.Recursive(wave.WithIterations(4))
	require.NoError(t, err)
	assert.Equal(t, direct, a)
}

func TestCache_KeyIncludesCompression(t *testing.T) {
	c := wave.NewCache()
	_, err := c.Get(wave.WithIterations(3))
	require.NoError(t, err)
	_, err = c.Get(wave.WithIterations(3), wave.WithCompression(2))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestCache_ReturnsCopies(t *testing.T) {
	c := wave.NewCache()
	a, err := c.Get(wave.WithIterations(2))
	require.NoError(t, err)
	a[0] = -42

	b, err := c.Get(wave.WithIterations(2))
	require.NoError(t, err)
	assert.Equal(t, 6.0, b[0])
}

func TestCache_ErrorsNotCached(t *testing.T) {
	c := wave.NewCache()
	_, err := c.Get(wave.WithIterations(-1))
	assert.ErrorIs(t, err, wave.ErrInvalidArgument)
	assert.Equal(t, 0, c.Len())
}

func TestCache_Concurrent(t *testing.T) {
	c := wave.NewCache()
	want, err := wave.Recursive(wave.WithIterations(5))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]wave.Wave, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.Get(wave.WithIterations(5))
		}(i)
	}
	wg.Wait()

	for i, w := range results {
		assert.Equal(t, want, w, "goroutine %d", i)
	}
	assert.Equal(t, 1, c.Len())
}
