// Package hashmap provides two self-contained hash map implementations
// built over a resizable bucket array. ChainedMap resolves collisions with
// a singly linked list per bucket; ProbingMap stores entries directly in
// the array and resolves collisions with quadratic probing. Both grow
// automatically once the load factor reaches 0.5 and accept a
// caller-supplied hash function.
//
// Neither map is safe for concurrent use; callers sharing an instance
// across goroutines must provide their own locking.
package hashmap

import "errors"

const (
	// Capacity used when a constructor is given a non-positive one.
	defaultCapacity = 11

	// Load factor at which both maps grow.
	maxLoadFactor = 0.5
)

// ErrInvalidCapacity is returned by Resize for capacities below 1 or, for
// ProbingMap, below the current number of live entries. A failed Resize
// leaves the map unchanged.
var ErrInvalidCapacity = errors.New("hashmap: invalid capacity")

// Entry is a key/value pair, as reported by Entries.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type options[K comparable] struct {
	hashFunc HashFunc[K]
}

// Option configures a map at construction time.
type Option[K comparable] func(*options[K])

// Override the default hash function.
func WithHashFunc[K comparable](f HashFunc[K]) Option[K] {
	return func(o *options[K]) {
		o.hashFunc = f
	}
}

func applyOptions[K comparable](opts []Option[K]) options[K] {
	var o options[K]
	for _, opt := range opts {
		opt(&o)
	}

	if o.hashFunc == nil {
		o.hashFunc = MakeDefaultHashFunc[K]()
	}

	return o
}
