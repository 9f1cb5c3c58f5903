package blocklist

import "github.com/haukened/domcheck/internal/dns/domain"

// nopCache is the DecisionCache used when none is supplied. It always misses.
type nopCache struct{}

func (nopCache) Get(string) (domain.Decision, bool) { return domain.Decision{}, false }
func (nopCache) Put(string, domain.Decision)        {}
func (nopCache) Len() int                           { return 0 }
func (nopCache) Purge()                             {}
func (nopCache) Stats() CacheStats                  { return CacheStats{} }

var _ DecisionCache = nopCache{}
