package checker

import (
	"context"
	"fmt"
	"io"

	"github.com/haukened/domcheck/internal/dns/common/clock"
	"github.com/haukened/domcheck/internal/dns/common/log"
	"github.com/haukened/domcheck/internal/dns/domain"
	"github.com/haukened/domcheck/internal/dns/gateways/batch"
	"github.com/haukened/domcheck/internal/dns/repos/blocklist"
)

// Checker runs one batch: read the blocklist, build the index, classify
// every query in input order and write one verdict per query.
type Checker struct {
	clock   clock.Clock
	logger  log.Logger
	newRepo RepositoryFactory
}

// Options configures a Checker.
type Options struct {
	Clock   clock.Clock
	Logger  log.Logger
	NewRepo RepositoryFactory
}

// Summary reports what a run did.
type Summary struct {
	Blocklist blocklist.IndexStats
	Queries   int
	Good      int
	Bad       int
	Repo      blocklist.RepoStats
}

// NewChecker constructs a Checker. Missing options fall back to the real clock,
// a no-op logger and a repository without cache or Bloom filter.
func NewChecker(opts Options) *Checker {
	c := &Checker{clock: opts.Clock, logger: opts.Logger, newRepo: opts.NewRepo}
	if c.clock == nil {
		c.clock = clock.RealClock{}
	}
	if c.logger == nil {
		c.logger = log.NewNoopLogger()
	}
	if c.newRepo == nil {
		c.newRepo = func(idx *blocklist.Index) (Blocklist, error) {
			return blocklist.NewRepository(idx, nil, nil, 0), nil
		}
	}
	return c
}

// Run reads the protocol from in and writes verdicts to out.
// Any error aborts the run; output written so far is not guaranteed.
func (c *Checker) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	var sum Summary
	r := batch.NewReader(in, c.logger)

	start := c.clock.Now()
	names, err := r.ReadSection(batch.SectionBlocklist)
	if err != nil {
		return sum, err
	}
	c.logger.Info(map[string]any{"count": len(names)}, "blocklist_read")

	idx := blocklist.BuildFromNames(names)
	sum.Blocklist = idx.Stats()
	c.logger.Info(map[string]any{
		"raw":      sum.Blocklist.Raw,
		"retained": sum.Blocklist.Retained,
		"dropped":  sum.Blocklist.Dropped,
		"build":    clock.Since(c.clock, start).String(),
	}, "index_built")

	repo, err := c.newRepo(idx)
	if err != nil {
		return sum, fmt.Errorf("build repository: %w", err)
	}

	queries, err := r.ReadSection(batch.SectionQueries)
	if err != nil {
		return sum, err
	}
	c.logger.Info(map[string]any{"count": len(queries)}, "queries_read")

	w := batch.NewWriter(out)
	for _, raw := range queries {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		dec := repo.Decide(domain.NewNormalizedDomain(raw))
		c.logger.Debug(map[string]any{"query": raw, "forbidden": dec.Forbidden, "root": dec.MatchedRoot}, "decide")

		v := dec.Verdict()
		if err := w.WriteVerdict(v); err != nil {
			return sum, fmt.Errorf("write verdict: %w", err)
		}
		sum.Queries++
		if v == domain.Bad {
			sum.Bad++
		} else {
			sum.Good++
		}
	}
	if err := w.Flush(); err != nil {
		return sum, fmt.Errorf("flush verdicts: %w", err)
	}

	sum.Repo = repo.Stats()
	c.logger.Info(map[string]any{
		"queries":       sum.Queries,
		"good":          sum.Good,
		"bad":           sum.Bad,
		"bloom_rejects": sum.Repo.BloomRejects,
		"cache_hits":    sum.Repo.Cache.Hits,
		"cache_misses":  sum.Repo.Cache.Misses,
		"elapsed":       clock.Since(c.clock, start).String(),
	}, "batch_done")
	return sum, nil
}
