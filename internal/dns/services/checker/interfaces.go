package checker

import (
	"github.com/haukened/domcheck/internal/dns/domain"
	"github.com/haukened/domcheck/internal/dns/repos/blocklist"
)

// Blocklist answers forbidden-or-not for normalized queries.
type Blocklist interface {
	Decide(query domain.NormalizedDomain) domain.Decision
	Stats() blocklist.RepoStats
}

// RepositoryFactory builds a Blocklist over a freshly built index.
type RepositoryFactory func(idx *blocklist.Index) (Blocklist, error)
