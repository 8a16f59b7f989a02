package hashmap

// Stats is a point-in-time snapshot of a map's shape.
type Stats struct {
	Size         int
	Capacity     int
	EmptyBuckets int
	Load         float64

	// LongestChain is reported by ChainedMap only.
	LongestChain int

	// Tombstones is reported by ProbingMap only.
	Tombstones int
}
