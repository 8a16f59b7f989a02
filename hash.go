package hashmap

import "hash/maphash"

// HashFunc maps a key to a hash value. A map calls it repeatedly for the
// same key over its lifetime, so it must be deterministic; the map reduces
// the result modulo its capacity.
type HashFunc[K comparable] func(K) uint64

// Returns a hash function backed by hash/maphash. The seed is captured
// once, so the function is stable for the lifetime of the map that holds
// it, but hash values differ between processes.
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringSumHash sums the byte values of the key. Deliberately weak: its
// collisions are easy to predict, which makes it useful for exercising
// chains and probe sequences deterministically.
func StringSumHash(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h += uint64(key[i])
	}

	return h
}

// StringWeightedHash weights each byte of the key by its position plus
// one. Also deterministic across processes, with a better spread than
// StringSumHash.
func StringWeightedHash(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h += uint64(i+1) * uint64(key[i])
	}

	return h
}
