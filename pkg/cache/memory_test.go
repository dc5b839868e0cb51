package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetGetDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	require.NoError(t, m.Set(ctx, "country:1", payload{Name: "Argentina"}, 0))

	var got payload
	found, err := m.Get(ctx, "country:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Argentina", got.Name)

	require.NoError(t, m.Delete(ctx, "country:1"))

	found, err = m.Get(ctx, "country:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryMissLeavesDestUntouched(t *testing.T) {
	m := NewMemory()

	got := "unchanged"
	found, err := m.Get(context.Background(), "absent", &got)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "unchanged", got)
}

func TestMemoryTTLExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", "v", 10*time.Millisecond))

	var got string
	found, _ := m.Get(ctx, "k", &got)
	assert.True(t, found)

	time.Sleep(20 * time.Millisecond)

	found, _ = m.Get(ctx, "k", &got)
	assert.False(t, found)
}

func TestMemoryDeletePattern(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "city:1", "a", 0))
	require.NoError(t, m.Set(ctx, "city:2", "b", 0))
	require.NoError(t, m.Set(ctx, "country:1", "c", 0))

	require.NoError(t, m.DeletePattern(ctx, "city:*"))

	var got string
	found, _ := m.Get(ctx, "city:1", &got)
	assert.False(t, found)
	found, _ = m.Get(ctx, "city:2", &got)
	assert.False(t, found)
	found, _ = m.Get(ctx, "country:1", &got)
	assert.True(t, found)
}

func TestMemoryIncrementAndExpire(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	n, err := m.Increment(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = m.Increment(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, m.Expire(ctx, "counter", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	// The window lapsed, so the counter restarts.
	n, err = m.Increment(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
