package hashmap

import (
	"fmt"
	"strings"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

type slot[K comparable, V any] struct {
	state slotState
	key   K
	value V
}

// ProbingMap is a hash map built on open addressing with quadratic
// probing: entries live directly in the bucket array, and a collision
// moves the probe through offsets 0, 1, 4, 9, ... from the home index,
// modulo the capacity. A deleted entry leaves a tombstone so later probe
// walks still pass through its slot; tombstones are dropped on the next
// resize. Capacity is kept prime, which guarantees the quadratic sequence
// reaches a free slot while the load factor stays below 0.5, and the map
// grows at 0.5 so the table is never close to full.
//
// Not safe for concurrent use.
type ProbingMap[K comparable, V any] struct {
	slots    []slot[K, V]
	size     int
	hashFunc HashFunc[K]
}

// NewProbing returns an open-addressing hash map. The requested capacity
// is advanced to the next prime; non-positive capacities fall back to a
// small default.
func NewProbing[K comparable, V any](capacity int, opts ...Option[K]) *ProbingMap[K, V] {
	if capacity < 1 {
		capacity = defaultCapacity
	}

	o := applyOptions(opts)

	return &ProbingMap[K, V]{
		slots:    make([]slot[K, V], nextPrime(capacity)),
		hashFunc: o.hashFunc,
	}
}

// Put inserts the key/value pair. An exact match anywhere on the probe
// sequence is overwritten in place; otherwise a new entry goes into the
// first reusable slot seen, which may be a tombstone left by an earlier
// Delete. If the insert brings the load factor to 0.5 or above, the map
// grows to the next prime past double the capacity before returning.
func (m *ProbingMap[K, V]) Put(key K, value V) {
	prev := m.size

	for !m.insert(key, value) {
		// A bounded walk found neither the key nor a free slot. Only
		// reachable when an explicit Resize packed the table full.
		m.rehash(nextPrime(2 * len(m.slots)))
	}

	if m.size > prev {
		for m.Load() >= maxLoadFactor {
			m.rehash(nextPrime(2 * len(m.slots)))
		}
	}
}

// insert performs one probe walk, bounded at capacity steps. It reports
// false when the walk exhausts the table without finding the key or a
// reusable slot.
func (m *ProbingMap[K, V]) insert(key K, value V) bool {
	c := len(m.slots)
	home := int(m.hashFunc(key) % uint64(c))

	avail := -1
	for j := 0; j < c; j++ {
		i := (home + j*j) % c
		s := &m.slots[i]

		switch s.state {
		case slotOccupied:
			if s.key == key {
				s.value = value
				return true
			}

		case slotTombstone:
			if avail < 0 {
				avail = i
			}

		case slotEmpty:
			// Terminating slot: the key is not in the table. Reuse the
			// first tombstone seen, if any, to shorten future probes.
			if avail < 0 {
				avail = i
			}
			m.slots[avail] = slot[K, V]{state: slotOccupied, key: key, value: value}
			m.size++

			return true
		}
	}

	if avail >= 0 {
		m.slots[avail] = slot[K, V]{state: slotOccupied, key: key, value: value}
		m.size++

		return true
	}

	return false
}

// find walks the probe sequence and returns the slot index holding key.
// The walk steps over tombstones and stops at the first empty slot.
func (m *ProbingMap[K, V]) find(key K) (int, bool) {
	c := len(m.slots)
	home := int(m.hashFunc(key) % uint64(c))

	for j := 0; j < c; j++ {
		i := (home + j*j) % c

		switch s := &m.slots[i]; s.state {
		case slotOccupied:
			if s.key == key {
				return i, true
			}

		case slotEmpty:
			return 0, false
		}
	}

	return 0, false
}

// Get returns the value stored for key. The second return is false when
// the key is absent.
func (m *ProbingMap[K, V]) Get(key K) (V, bool) {
	i, ok := m.find(key)
	if !ok {
		var zero V
		return zero, false
	}

	return m.slots[i].value, true
}

// Contains reports whether key is present.
func (m *ProbingMap[K, V]) Contains(key K) bool {
	_, ok := m.find(key)
	return ok
}

// Delete marks the key's slot as a tombstone and reports whether the key
// was present. The slot stays in the probe path until the next resize
// drops it.
func (m *ProbingMap[K, V]) Delete(key K) bool {
	i, ok := m.find(key)
	if !ok {
		return false
	}

	m.slots[i] = slot[K, V]{state: slotTombstone}
	m.size--

	return true
}

// Clear empties every slot, tombstones included. Capacity is unchanged.
func (m *ProbingMap[K, V]) Clear() {
	m.slots = make([]slot[K, V], len(m.slots))
	m.size = 0
}

// Len returns the number of live entries. Tombstones are not counted.
func (m *ProbingMap[K, V]) Len() int { return m.size }

// Cap returns the number of slots.
func (m *ProbingMap[K, V]) Cap() int { return len(m.slots) }

// Load returns the current load factor, live entries over capacity.
func (m *ProbingMap[K, V]) Load() float64 {
	return float64(m.size) / float64(len(m.slots))
}

// EmptyBuckets returns the number of truly empty slots. Tombstones do not
// count: a probe walk cannot terminate on them.
func (m *ProbingMap[K, V]) EmptyBuckets() int {
	empty := 0
	for i := range m.slots {
		if m.slots[i].state == slotEmpty {
			empty++
		}
	}

	return empty
}

// Resize rebuilds the map with the requested capacity, advanced to the
// next prime if it is not one already. Capacities below 1 or below the
// current number of live entries are rejected with ErrInvalidCapacity and
// the map is left unchanged. Tombstones are not carried over.
func (m *ProbingMap[K, V]) Resize(capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	if capacity < m.size {
		return fmt.Errorf("%w: %d is below current size %d", ErrInvalidCapacity, capacity, m.size)
	}

	m.rehash(nextPrime(capacity))

	return nil
}

// rehash rebuilds into a fresh table of capacity slots (must be prime),
// re-inserting live entries in slot-index order and dropping tombstones.
// A quadratic walk can miss every free slot when the table is close to
// full, so the capacity is advanced further if a re-insert fails.
func (m *ProbingMap[K, V]) rehash(capacity int) {
	old := m.slots

rebuild:
	for {
		m.slots = make([]slot[K, V], capacity)
		m.size = 0

		for i := range old {
			if old[i].state != slotOccupied {
				continue
			}
			if !m.insert(old[i].key, old[i].value) {
				capacity = nextPrime(2 * capacity)
				continue rebuild
			}
		}

		return
	}
}

// Keys returns every live key as a fresh slice, in slot-index order.
func (m *ProbingMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for i := range m.slots {
		if m.slots[i].state == slotOccupied {
			keys = append(keys, m.slots[i].key)
		}
	}

	return keys
}

// Values returns every live value as a fresh slice, in slot-index order.
func (m *ProbingMap[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for i := range m.slots {
		if m.slots[i].state == slotOccupied {
			values = append(values, m.slots[i].value)
		}
	}

	return values
}

// Entries returns every live key/value pair as a fresh slice, in
// slot-index order. Later mutation of the map does not affect the slice.
func (m *ProbingMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.size)
	for i := range m.slots {
		if m.slots[i].state == slotOccupied {
			entries = append(entries, Entry[K, V]{Key: m.slots[i].key, Value: m.slots[i].value})
		}
	}

	return entries
}

// Range calls fn for every live entry in slot-index order, stopping early
// when fn returns false. Mutating the map while ranging is not safe.
func (m *ProbingMap[K, V]) Range(fn func(key K, value V) bool) {
	for i := range m.slots {
		if m.slots[i].state != slotOccupied {
			continue
		}
		if !fn(m.slots[i].key, m.slots[i].value) {
			return
		}
	}
}

// Stats returns a snapshot of the map's shape, tombstone debt included.
func (m *ProbingMap[K, V]) Stats() Stats {
	empty, tombstones := 0, 0
	for i := range m.slots {
		switch m.slots[i].state {
		case slotEmpty:
			empty++
		case slotTombstone:
			tombstones++
		}
	}

	return Stats{
		Size:         m.size,
		Capacity:     len(m.slots),
		EmptyBuckets: empty,
		Load:         m.Load(),
		Tombstones:   tombstones,
	}
}

// String renders one line per slot, mainly for debugging small maps.
func (m *ProbingMap[K, V]) String() string {
	var sb strings.Builder
	for i := range m.slots {
		switch s := &m.slots[i]; s.state {
		case slotOccupied:
			fmt.Fprintf(&sb, "%d: (%v, %v)\n", i, s.key, s.value)
		case slotTombstone:
			fmt.Fprintf(&sb, "%d: <tombstone>\n", i)
		default:
			fmt.Fprintf(&sb, "%d: <empty>\n", i)
		}
	}

	return sb.String()
}
