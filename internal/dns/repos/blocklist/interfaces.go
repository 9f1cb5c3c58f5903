package blocklist

import "github.com/haukened/domcheck/internal/dns/domain"

// BloomSizer computes Bloom filter parameters from capacity (n) and target FP rate (p).
// It returns m (number of bits) and k (number of hash functions).
type BloomSizer interface {
	Size(n uint64, p float64) (m uint64, k uint8)
}

// BloomFilter is the minimal interface the repository needs from Bloom filters.
type BloomFilter interface {
	Add(key []byte)
	MightContain(key []byte) bool
}

// BloomFactory builds filters sized for a dataset.
type BloomFactory interface {
	New(capacity uint64, fpRate float64) BloomFilter
}

// DecisionCache caches decisions by canonical key with basic metrics.
type DecisionCache interface {
	Get(key string) (domain.Decision, bool)
	Put(key string, d domain.Decision)
	Len() int
	Purge()
	Stats() CacheStats
}

// Repository is the composition layer that wires bloom → cache → index.
// Decide returns a value-type Decision for a normalized query.
type Repository interface {
	Decide(query domain.NormalizedDomain) domain.Decision
	Stats() RepoStats
}
