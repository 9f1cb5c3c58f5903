package blocklist

import (
	"sync/atomic"

	"github.com/haukened/domcheck/internal/dns/domain"
)

// repository implements the Repository interface by composing an Index,
// an optional Bloom prefilter, and a DecisionCache. Reads follow a
// bloom → cache → index pipeline.
type repository struct {
	index *Index
	cache DecisionCache
	bloom BloomFilter

	decisions    atomic.Uint64
	forbidden    atomic.Uint64
	bloomRejects atomic.Uint64
}

// NewRepository constructs a Repository over idx.
// A nil cache disables caching and a nil factory skips the Bloom prefilter.
// fpRate is the target false-positive rate for the filter.
func NewRepository(idx *Index, cache DecisionCache, factory BloomFactory, fpRate float64) Repository {
	if cache == nil {
		cache = nopCache{}
	}
	r := &repository{index: idx, cache: cache}
	if factory != nil && idx.Len() > 0 {
		r.bloom = buildBloom(idx, factory, fpRate)
	}
	return r
}

// buildBloom adds the canonical key of every retained root.
func buildBloom(idx *Index, factory BloomFactory, fpRate float64) BloomFilter {
	bf := factory.New(uint64(idx.Len()), fpRate)
	for _, e := range idx.entries {
		bf.Add([]byte(e.Key()))
	}
	return bf
}

// Decide returns a Decision for query. It never fails.
func (r *repository) Decide(query domain.NormalizedDomain) domain.Decision {
	r.decisions.Add(1)

	// 1) checkBloom: early-allow if definitively negative
	if !r.checkBloom(query.Key()) {
		r.bloomRejects.Add(1)
		return domain.AllowDecision()
	}

	// 2) checkCache
	if d, ok := r.cache.Get(query.Key()); ok {
		r.count(d)
		return d
	}

	// 3) checkIndex
	dec := r.checkIndex(query)

	// 4) updateCache
	r.cache.Put(query.Key(), dec)
	r.count(dec)
	return dec
}

// checkBloom returns true if the index must be consulted (maybe-positive),
// or false if we can early-allow. Every root that covers a query has a key
// equal to a prefix of the query key ending in a separator, so each such
// prefix is probed. A nil bloom always returns true.
func (r *repository) checkBloom(key string) bool {
	if r.bloom == nil {
		return true
	}
	for i := 0; i < len(key); i++ {
		if key[i] != domain.LabelSeparator {
			continue
		}
		if r.bloom.MightContain([]byte(key[:i+1])) {
			return true
		}
	}
	return false
}

// checkIndex consults the authoritative index and materializes a decision.
func (r *repository) checkIndex(query domain.NormalizedDomain) domain.Decision {
	root, ok := r.index.Match(query)
	if !ok {
		return domain.AllowDecision()
	}
	return domain.Decision{Forbidden: true, MatchedRoot: root.Name()}
}

func (r *repository) count(d domain.Decision) {
	if d.Forbidden {
		r.forbidden.Add(1)
	}
}

// Stats returns a snapshot of the pipeline counters.
func (r *repository) Stats() RepoStats {
	return RepoStats{
		Decisions:    r.decisions.Load(),
		Forbidden:    r.forbidden.Load(),
		BloomRejects: r.bloomRejects.Load(),
		Cache:        r.cache.Stats(),
		Index:        r.index.Stats(),
	}
}
