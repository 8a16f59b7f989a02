package hashmap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainedMap_Basic(t *testing.T) {
	m := NewChained[string, int](16)

	m.Put("foo", 42)

	v, ok := m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	// Update existing key
	m.Put("foo", 100)

	v, ok = m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 100, v)
	assert.Equal(t, 1, m.Len())

	// Get non-existent key
	_, ok = m.Get("bar")
	assert.False(t, ok)
	assert.False(t, m.Contains("bar"))

	// Delete
	deleted := m.Delete("foo")
	assert.True(t, deleted)
	assert.Equal(t, 0, m.Len())

	_, ok = m.Get("foo")
	assert.False(t, ok)

	// Delete non-existent key
	deleted = m.Delete("foo")
	assert.False(t, deleted)
}

func TestChainedMap_DefaultCapacity(t *testing.T) {
	m := NewChained[string, int](0)

	require.Equal(t, defaultCapacity, m.Cap())
}

func TestChainedMap_ChainOrder(t *testing.T) {
	// Force every key into bucket 0 so the whole map is one chain.
	collisionHash := func(string) uint64 { return 0 }

	m := NewChained[string, int](64, WithHashFunc(collisionHash))

	m.Put("x", 1)
	m.Put("y", 2)
	m.Put("z", 3)

	// Append order, not prepend
	assert.Equal(t, []string{"x", "y", "z"}, m.Keys())
	assert.Equal(t, []int{1, 2, 3}, m.Values())

	for key, want := range map[string]int{"x": 1, "y": 2, "z": 3} {
		v, ok := m.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, v)
	}

	assert.Equal(t, 3, m.Stats().LongestChain)
	assert.Equal(t, 63, m.EmptyBuckets())
}

func TestChainedMap_DeleteUnlinks(t *testing.T) {
	collisionHash := func(string) uint64 { return 0 }

	m := NewChained[string, int](64, WithHashFunc(collisionHash))

	m.Put("head", 1)
	m.Put("mid", 2)
	m.Put("tail", 3)

	t.Run("middle", func(t *testing.T) {
		require.True(t, m.Delete("mid"))
		assert.Equal(t, []string{"head", "tail"}, m.Keys())
	})

	t.Run("head", func(t *testing.T) {
		require.True(t, m.Delete("head"))
		assert.Equal(t, []string{"tail"}, m.Keys())
	})

	t.Run("tail", func(t *testing.T) {
		require.True(t, m.Delete("tail"))
		assert.Empty(t, m.Keys())
		assert.Equal(t, 0, m.Len())
	})
}

func TestChainedMap_LoadFactorGrowth(t *testing.T) {
	m := NewChained[int, int](16)

	for i := range 7 {
		m.Put(i, i*10)
	}
	require.Equal(t, 16, m.Cap())

	// The eighth insert hits load 0.5 and must double the capacity
	// before Put returns.
	m.Put(7, 70)

	assert.Greater(t, m.Cap(), 16)
	assert.Less(t, m.Load(), 0.5)
	assert.Equal(t, 8, m.Len())

	for i := range 8 {
		v, ok := m.Get(i)
		require.True(t, ok, i)
		assert.Equal(t, i*10, v)
	}
}

func TestChainedMap_Resize(t *testing.T) {
	m := NewChained[string, int](8)

	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	t.Run("invalid capacity", func(t *testing.T) {
		for _, capacity := range []int{0, -1, -100} {
			err := m.Resize(capacity)
			require.ErrorIs(t, err, ErrInvalidCapacity)

			// Map unchanged
			assert.Equal(t, 8, m.Cap())
			assert.Equal(t, 3, m.Len())
		}
	})

	t.Run("grow", func(t *testing.T) {
		require.NoError(t, m.Resize(32))

		// Chained capacity is used exactly as requested
		assert.Equal(t, 32, m.Cap())
		assert.Equal(t, 3, m.Len())

		for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
			v, ok := m.Get(key)
			require.True(t, ok, key)
			assert.Equal(t, want, v)
		}
	})

	t.Run("shrink below load threshold", func(t *testing.T) {
		// Accepted even though it leaves the load factor above 0.5.
		require.NoError(t, m.Resize(1))

		assert.Equal(t, 1, m.Cap())
		assert.Equal(t, 3, m.Len())
		assert.Equal(t, 3.0, m.Load())

		v, ok := m.Get("b")
		require.True(t, ok)
		assert.Equal(t, 2, v)
	})
}

func TestChainedMap_Clear(t *testing.T) {
	m := NewChained[int, int](32)

	for i := range 10 {
		m.Put(i, i)
	}

	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 32, m.Cap())
	assert.Equal(t, 32, m.EmptyBuckets())

	_, ok := m.Get(3)
	assert.False(t, ok)
}

func TestChainedMap_Snapshot(t *testing.T) {
	m := NewChained[int, int](64)

	for i := range 5 {
		m.Put(i, i)
	}

	keys := m.Keys()
	entries := m.Entries()
	require.Len(t, keys, 5)
	require.Len(t, entries, 5)

	// Snapshots are materialized: later mutation does not affect them.
	m.Clear()

	assert.Len(t, keys, 5)
	assert.Len(t, entries, 5)
}

func TestChainedMap_Range(t *testing.T) {
	m := NewChained[int, int](64)

	for i := range 10 {
		m.Put(i, i)
	}

	seen := 0
	m.Range(func(int, int) bool {
		seen++
		return seen < 4
	})

	assert.Equal(t, 4, seen)
}

func TestChainedMap_RoundTrip(t *testing.T) {
	m := NewChained[string, int](4)

	const n = 200
	for i := range n {
		m.Put("key-"+strconv.Itoa(i), i)
	}

	require.Equal(t, n, m.Len())
	require.Less(t, m.Load(), 0.5)

	for i := range n {
		v, ok := m.Get("key-" + strconv.Itoa(i))
		require.True(t, ok, i)
		require.Equal(t, i, v)
	}

	// Remove every even key
	for i := 0; i < n; i += 2 {
		require.True(t, m.Delete("key-"+strconv.Itoa(i)))
	}

	require.Equal(t, n/2, m.Len())

	for i := range n {
		_, ok := m.Get("key-" + strconv.Itoa(i))
		require.Equal(t, i%2 == 1, ok, i)
	}
}

func TestChainedMap_String(t *testing.T) {
	collisionHash := func(string) uint64 { return 1 }

	m := NewChained[string, int](3, WithHashFunc(collisionHash))
	m.Put("a", 1)

	assert.Equal(t, "0:\n1: (a, 1)\n2:\n", m.String())
}
