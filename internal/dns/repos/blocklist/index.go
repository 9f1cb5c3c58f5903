package blocklist

import (
	"slices"
	"sort"

	"github.com/haukened/domcheck/internal/dns/domain"
)

// Index is a sorted, minimal set of blocked roots.
//
// Entries are ordered by canonical key and no entry is a subdomain of another,
// so an ancestor of any query sorts immediately before the query's insertion
// point. A lookup is one binary search plus one IsSubdomain check.
//
// An Index is immutable after Build and safe for concurrent reads.
type Index struct {
	entries []domain.NormalizedDomain
	raw     int
}

// Build sorts entries by canonical key and drops every entry covered by the
// last retained one. The input slice is not modified.
func Build(entries []domain.NormalizedDomain) *Index {
	idx := &Index{raw: len(entries)}
	if len(entries) == 0 {
		return idx
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.NormalizedDomain) int {
		return a.Compare(b)
	})

	// Compare against the last retained root, not the previous raw entry:
	// "a", "b.a", "c.b.a" must collapse to "a".
	kept := sorted[:1]
	for _, d := range sorted[1:] {
		if d.IsSubdomain(kept[len(kept)-1]) {
			continue
		}
		kept = append(kept, d)
	}
	idx.entries = slices.Clip(kept)
	return idx
}

// BuildFromNames normalizes each raw name and builds an Index from them.
func BuildFromNames(names []string) *Index {
	entries := make([]domain.NormalizedDomain, 0, len(names))
	for _, n := range names {
		entries = append(entries, domain.NewNormalizedDomain(n))
	}
	return Build(entries)
}

// IsForbidden reports whether query equals or is a subdomain of a blocked root.
func (idx *Index) IsForbidden(query domain.NormalizedDomain) bool {
	_, ok := idx.Match(query)
	return ok
}

// Match returns the blocked root covering query, if any.
func (idx *Index) Match(query domain.NormalizedDomain) (domain.NormalizedDomain, bool) {
	if idx == nil || len(idx.entries) == 0 {
		return domain.NormalizedDomain{}, false
	}

	// upper bound: first entry strictly greater than query
	pos := sort.Search(len(idx.entries), func(i int) bool {
		return query.Less(idx.entries[i])
	})

	candidate := idx.entries[0]
	if pos > 0 {
		candidate = idx.entries[pos-1]
	}
	if query.IsSubdomain(candidate) {
		return candidate, true
	}
	return domain.NormalizedDomain{}, false
}

// Len returns the number of retained roots.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Entries returns a copy of the retained roots in key order.
func (idx *Index) Entries() []domain.NormalizedDomain {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.entries)
}

// Stats reports raw and retained entry counts.
func (idx *Index) Stats() IndexStats {
	if idx == nil {
		return IndexStats{}
	}
	return IndexStats{
		Raw:      uint64(idx.raw),
		Retained: uint64(len(idx.entries)),
		Dropped:  uint64(idx.raw - len(idx.entries)),
	}
}
