package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func TestTTLCache(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := NewTTL[int](clock, 5*time.Minute)

	_, ok := c.Get("rate")
	require.False(t, ok)

	c.Set("rate", 1047)

	got, ok := c.Get("rate")
	require.True(t, ok)
	require.Equal(t, 1047, got)

	// still fresh just inside the ttl
	clock.now = clock.now.Add(5 * time.Minute)
	_, ok = c.Get("rate")
	require.True(t, ok)

	// expired one tick past it
	clock.now = clock.now.Add(time.Second)
	_, ok = c.Get("rate")
	require.False(t, ok)

	// setting again restarts the window
	c.Set("rate", 1050)
	got, ok = c.Get("rate")
	require.True(t, ok)
	require.Equal(t, 1050, got)
}
