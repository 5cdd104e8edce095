package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestCache(ttl time.Duration) (*Cache[string], *clock) {
	clk := &clock{t: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)}
	c := New[string](ttl)
	c.now = clk.now
	return c, clk
}

func TestGetPut(t *testing.T) {
	t.Parallel()

	c, clk := newTestCache(time.Hour)

	_, _, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("k", "v")
	clk.advance(10 * time.Minute)

	v, age, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, 10*time.Minute, age)

	c.Put("k", "v2")
	v, age, _ = c.Get("k")
	assert.Equal(t, "v2", v)
	assert.Zero(t, age)
}

func TestExpiry(t *testing.T) {
	t.Parallel()

	c, clk := newTestCache(0)
	c.Put("old", "a")
	clk.advance(23 * time.Hour)
	c.Put("new", "b")

	_, _, ok := c.Get("old")
	assert.True(t, ok, "still fresh just under the default ttl")

	clk.advance(time.Hour)
	_, _, ok = c.Get("old")
	assert.False(t, ok)
	_, _, ok = c.Get("new")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len())

	clk.advance(24 * time.Hour)
	assert.Equal(t, 1, c.Sweep())
	assert.Zero(t, c.Len())
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := New[int](time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("k%d", j%10)
				c.Put(key, i)
				if v, _, ok := c.Get(key); ok {
					assert.GreaterOrEqual(t, v, 0)
				}
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, c.Len())
}

func TestKey(t *testing.T) {
	t.Parallel()

	base := Key("Skills\nGo, SQL", "Technology", "Developer", false, "Go developer")

	assert.Len(t, base, 64)
	assert.Equal(t, base, Key("Skills\r\n\r\nGo,   SQL  ", " technology ", "developer", false, "Go  developer"))
	assert.NotEqual(t, base, Key("Skills\nGo, SQL", "Technology", "Developer", true, "Go developer"))
	assert.NotEqual(t, base, Key("Skills\nGo, SQL", "Finance", "Developer", false, "Go developer"))
	assert.NotEqual(t, base, Key("Skills\nGo", "Technology", "Developer", false, "Go developer"))
	// field boundaries are kept
	assert.NotEqual(t, Key("a", "b", "", false, ""), Key("", "ab", "", false, ""))
}
