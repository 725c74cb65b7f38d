package cache_test

import (
	"testing"
	"time"

	"github.com/fwojciec/polarisdocs/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a controllable time source for expiry tests.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestCache_GetSet(t *testing.T) {
	t.Parallel()

	t.Run("returns value strictly before TTL elapses", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := cache.New(cache.WithClock[string](clock.Now))

		c.Set("k", "v", time.Minute)
		clock.Advance(59 * time.Second)

		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "v", got)
	})

	t.Run("misses strictly after TTL elapses", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := cache.New(cache.WithClock[string](clock.Now))

		c.Set("k", "v", time.Minute)
		clock.Advance(time.Minute + time.Second)

		_, ok := c.Get("k")
		assert.False(t, ok)
	})

	t.Run("misses on a key that was never set", func(t *testing.T) {
		t.Parallel()

		c := cache.New[int]()

		_, ok := c.Get("absent")
		assert.False(t, ok)
	})

	t.Run("overwrite before expiry yields the second value", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := cache.New(cache.WithClock[string](clock.Now))

		c.Set("k", "first", time.Minute)
		c.Set("k", "second", time.Hour)
		clock.Advance(30 * time.Minute)

		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "second", got)
	})

	t.Run("expired entry is removed on read", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := cache.New(cache.WithClock[string](clock.Now))

		c.Set("k", "v", time.Minute)
		clock.Advance(2 * time.Minute)
		_, ok := c.Get("k")
		require.False(t, ok)

		// Re-setting after eviction behaves like a fresh key.
		c.Set("k", "v2", time.Minute)
		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "v2", got)
	})
}
