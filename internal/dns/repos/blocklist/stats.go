package blocklist

// CacheStats reports lightweight cache metrics.
// All fields are best-effort snapshots and may be updated concurrently.
type CacheStats struct {
	Capacity  int    // configured capacity (0 for disabled cache)
	Size      int    // current number of entries
	Hits      uint64 // total cache hits since construction
	Misses    uint64 // total cache misses since construction
	Evictions uint64 // total evictions since construction
}

// IndexStats reports how many entries were given to Build and how many survived dedup.
type IndexStats struct {
	Raw      uint64 // entries passed to Build
	Retained uint64 // minimal roots kept
	Dropped  uint64 // entries covered by a retained root
}

// RepoStats exposes repository-level counters plus cache and index stats.
type RepoStats struct {
	Decisions    uint64 // total Decide calls
	Forbidden    uint64 // decisions that matched a root
	BloomRejects uint64 // decisions answered by the bloom prefilter alone
	Cache        CacheStats
	Index        IndexStats
}
