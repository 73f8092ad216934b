// Package querycache wraps matcher.Parse with a bounded, process-local LRU so
// repeated lookups of the same address string, modulo normalization, skip the
// tier cascade entirely. It mirrors the shape of the teacher's ICacheService
// (hit/miss accounting, explicit invalidation) collapsed to a single
// in-memory tier — no Redis, no Mongo: a query cache here only ever needs to
// outlive one process's gazetteer version.
package querycache

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ledinhtuan/vnaddr/app/config"
	"github.com/ledinhtuan/vnaddr/app/models"
	"github.com/ledinhtuan/vnaddr/internal/gazetteer"
	"github.com/ledinhtuan/vnaddr/internal/matcher"
	"github.com/ledinhtuan/vnaddr/internal/normalizer"
)

// Stats mirrors the hit-rate accounting the teacher's cache layer exposes,
// minus anything that implies a remote store.
type Stats struct {
	Hits   int64
	Misses int64
	Items  int
}

// HitRate returns Hits/(Hits+Misses), or 0 when nothing has been queried yet.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cache wraps an *gazetteer.Index with an LRU over Parse results, keyed on
// the normalized-aggressive form of the input string so that case, spacing,
// and punctuation variants of the same address share one entry. It is safe
// for concurrent use: the underlying LRU is internally locked and the
// hit/miss counters are atomic.
type Cache struct {
	idx *gazetteer.Index
	cfg config.MatcherCfg

	entries *lru.Cache[string, models.ParsedAddress]
	hits    atomic.Int64
	misses  atomic.Int64
}

// New builds a Cache bounded to size entries. size<=0 disables caching: Parse
// degrades to calling matcher.Parse directly every time.
func New(idx *gazetteer.Index, cfg config.MatcherCfg, size int) (*Cache, error) {
	c := &Cache{idx: idx, cfg: cfg}
	if size <= 0 {
		return c, nil
	}
	entries, err := lru.New[string, models.ParsedAddress](size)
	if err != nil {
		return nil, err
	}
	c.entries = entries
	return c, nil
}

// Parse returns the cached result for text if present, otherwise runs
// matcher.Parse and stores the result before returning it.
func (c *Cache) Parse(ctx context.Context, text string) models.ParsedAddress {
	if c.entries == nil {
		return matcher.Parse(ctx, c.idx, text, c.cfg)
	}

	key := normalizer.NormalizeAggressive(text)
	if addr, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return addr
	}
	c.misses.Add(1)

	addr := matcher.Parse(ctx, c.idx, text, c.cfg)
	c.entries.Add(key, addr)
	return addr
}

// Clear discards every cached entry without resetting hit/miss counters,
// matching the teacher's distinction between "forget results" and "reset
// stats" being two separate operations.
func (c *Cache) Clear() {
	if c.entries != nil {
		c.entries.Purge()
	}
}

// Stats reports the current hit/miss counters and resident item count.
func (c *Cache) Stats() Stats {
	items := 0
	if c.entries != nil {
		items = c.entries.Len()
	}
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load(), Items: items}
}
