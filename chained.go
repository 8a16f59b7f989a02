package hashmap

import (
	"fmt"
	"strings"
)

// chainNode is a link in a bucket's singly linked chain.
type chainNode[K comparable, V any] struct {
	key   K
	value V
	next  *chainNode[K, V]
}

// ChainedMap is a hash map that resolves collisions with separate
// chaining: every bucket holds a singly linked list of entries, appended
// in insertion order. Chains absorb any number of collisions, so the map
// keeps working at load factors above 1, but it doubles its capacity once
// load reaches 0.5 to keep chains short.
//
// Not safe for concurrent use.
type ChainedMap[K comparable, V any] struct {
	buckets  []*chainNode[K, V]
	size     int
	hashFunc HashFunc[K]
}

// NewChained returns a chained hash map with the given number of buckets.
// Non-positive capacities fall back to a small default.
func NewChained[K comparable, V any](capacity int, opts ...Option[K]) *ChainedMap[K, V] {
	if capacity < 1 {
		capacity = defaultCapacity
	}

	o := applyOptions(opts)

	return &ChainedMap[K, V]{
		buckets:  make([]*chainNode[K, V], capacity),
		hashFunc: o.hashFunc,
	}
}

func (m *ChainedMap[K, V]) bucketIndex(key K) int {
	return int(m.hashFunc(key) % uint64(len(m.buckets)))
}

// Put inserts the key/value pair, overwriting the value in place if the
// key is already present. A new key is appended at the tail of its chain.
// If the insert brings the load factor to 0.5 or above, the map doubles
// its capacity before returning.
func (m *ChainedMap[K, V]) Put(key K, value V) {
	i := m.bucketIndex(key)

	var prev *chainNode[K, V]
	for n := m.buckets[i]; n != nil; n = n.next {
		if n.key == key {
			n.value = value
			return
		}

		prev = n
	}

	node := &chainNode[K, V]{key: key, value: value}
	if prev == nil {
		m.buckets[i] = node
	} else {
		prev.next = node
	}
	m.size++

	for m.Load() >= maxLoadFactor {
		m.rehash(2 * len(m.buckets))
	}
}

// Get returns the value stored for key. The second return is false when
// the key is absent.
func (m *ChainedMap[K, V]) Get(key K) (V, bool) {
	for n := m.buckets[m.bucketIndex(key)]; n != nil; n = n.next {
		if n.key == key {
			return n.value, true
		}
	}

	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *ChainedMap[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete unlinks the key's node from its chain and reports whether the
// key was present. Deleting never shrinks the map.
func (m *ChainedMap[K, V]) Delete(key K) bool {
	i := m.bucketIndex(key)

	var prev *chainNode[K, V]
	for n := m.buckets[i]; n != nil; n = n.next {
		if n.key == key {
			if prev == nil {
				m.buckets[i] = n.next
			} else {
				prev.next = n.next
			}
			m.size--

			return true
		}

		prev = n
	}

	return false
}

// Clear drops every entry. Capacity is unchanged.
func (m *ChainedMap[K, V]) Clear() {
	m.buckets = make([]*chainNode[K, V], len(m.buckets))
	m.size = 0
}

// Len returns the number of entries.
func (m *ChainedMap[K, V]) Len() int { return m.size }

// Cap returns the number of buckets.
func (m *ChainedMap[K, V]) Cap() int { return len(m.buckets) }

// Load returns the current load factor, size over capacity.
func (m *ChainedMap[K, V]) Load() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// Resize rebuilds the map with exactly capacity buckets, rehashing every
// entry with the map's hash function. Capacities below 1 are rejected with
// ErrInvalidCapacity and the map is left unchanged. A capacity that leaves
// the load factor at or above 0.5 is accepted; the next Put grows the map
// as usual.
func (m *ChainedMap[K, V]) Resize(capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	m.rehash(capacity)

	return nil
}

// rehash rebuilds into a fresh bucket array, walking the old buckets in
// index order and each chain in insertion order.
func (m *ChainedMap[K, V]) rehash(capacity int) {
	old := m.buckets
	m.buckets = make([]*chainNode[K, V], capacity)
	m.size = 0

	for _, head := range old {
		for n := head; n != nil; n = n.next {
			m.append(n.key, n.value)
		}
	}
}

// append adds a known-absent key at the tail of its chain, without the
// load check; rehash controls capacity itself.
func (m *ChainedMap[K, V]) append(key K, value V) {
	i := m.bucketIndex(key)
	node := &chainNode[K, V]{key: key, value: value}

	if m.buckets[i] == nil {
		m.buckets[i] = node
	} else {
		n := m.buckets[i]
		for n.next != nil {
			n = n.next
		}
		n.next = node
	}
	m.size++
}

// Keys returns every key as a fresh slice, in bucket-index order and then
// chain order. Later mutation of the map does not affect the slice.
func (m *ChainedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			keys = append(keys, n.key)
		}
	}

	return keys
}

// Values returns every value as a fresh slice, in the same order as Keys.
func (m *ChainedMap[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			values = append(values, n.value)
		}
	}

	return values
}

// Entries returns every key/value pair as a fresh slice, in the same
// order as Keys.
func (m *ChainedMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.size)
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			entries = append(entries, Entry[K, V]{Key: n.key, Value: n.value})
		}
	}

	return entries
}

// Range calls fn for every entry in bucket order, stopping early when fn
// returns false. Mutating the map while ranging is not safe.
func (m *ChainedMap[K, V]) Range(fn func(key K, value V) bool) {
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			if !fn(n.key, n.value) {
				return
			}
		}
	}
}

// EmptyBuckets returns the number of buckets with no entries.
func (m *ChainedMap[K, V]) EmptyBuckets() int {
	empty := 0
	for _, head := range m.buckets {
		if head == nil {
			empty++
		}
	}

	return empty
}

// Stats returns a snapshot of the map's shape.
func (m *ChainedMap[K, V]) Stats() Stats {
	longest := 0
	for _, head := range m.buckets {
		length := 0
		for n := head; n != nil; n = n.next {
			length++
		}
		if length > longest {
			longest = length
		}
	}

	return Stats{
		Size:         m.size,
		Capacity:     len(m.buckets),
		EmptyBuckets: m.EmptyBuckets(),
		Load:         m.Load(),
		LongestChain: longest,
	}
}

// String renders one line per bucket, mainly for debugging small maps.
func (m *ChainedMap[K, V]) String() string {
	var sb strings.Builder
	for i, head := range m.buckets {
		fmt.Fprintf(&sb, "%d:", i)
		for n := head; n != nil; n = n.next {
			fmt.Fprintf(&sb, " (%v, %v)", n.key, n.value)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
