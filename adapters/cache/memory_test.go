package cache

import (
	"context"
	"testing"
	"time"

	"offerforge/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	require.NoError(t, m.Set(ctx, "k", payload{Name: "offer"}, time.Hour))

	var out payload
	require.NoError(t, m.Get(ctx, "k", &out))
	assert.Equal(t, "offer", out.Name)
}

func TestMemoryMissAndDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var out map[string]string
	assert.ErrorIs(t, m.Get(ctx, "absent", &out), ports.ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "k", map[string]string{"a": "b"}, 0))
	require.NoError(t, m.Delete(ctx, "k"))
	assert.ErrorIs(t, m.Get(ctx, "k", &out), ports.ErrCacheMiss)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Now()
	m.SetClock(func() time.Time { return now })
	require.NoError(t, m.Set(ctx, "k", "v", time.Minute))

	var out string
	require.NoError(t, m.Get(ctx, "k", &out))

	now = now.Add(2 * time.Minute)
	assert.ErrorIs(t, m.Get(ctx, "k", &out), ports.ErrCacheMiss)
}

func TestMemoryCorruptEntryBecomesMiss(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Put("k", []byte("{not json"))

	var out map[string]string
	assert.ErrorIs(t, m.Get(ctx, "k", &out), ports.ErrCacheMiss)
	// Entry evicted: a second read is still a clean miss
	assert.ErrorIs(t, m.Get(ctx, "k", &out), ports.ErrCacheMiss)
}
