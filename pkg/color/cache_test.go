package color

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	t.Parallel()

	cache := NewCache()
	_, ok := cache.Get("#010203")
	assert.False(t, ok)

	c := FromRGBA(1, 2, 3, 1)
	cache.Set("#010203", c)

	got, ok := cache.Get("#010203")
	require.True(t, ok)
	assert.Equal(t, c, got)
	assert.Equal(t, 1, cache.Len())

	cache.Flush()
	assert.Zero(t, cache.Len())
}

func TestNewCachesParsedStrings(t *testing.T) {
	t.Parallel()

	const input = "rgb(1, 22, 133)"
	first := New(input)

	cached, ok := DefaultCache.Get(input)
	require.True(t, ok)
	require.Equal(t, first, cached)
	require.Equal(t, first, New(input))
}

func TestNewDoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	const input = "definitely not a color"
	require.False(t, New(input).Valid)

	_, ok := DefaultCache.Get(input)
	require.False(t, ok)
}

func TestCacheConcurrentAccess(t *testing.T) {
	t.Parallel()

	cache := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("#%02x0000", i)
			cache.Set(key, New(key))
			_, _ = cache.Get(key)
			_ = New(key)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 16, cache.Len())
}
