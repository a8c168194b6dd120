// Package cache implements the two-tier (token, theme_hash) -> declarations
// cache from SPEC_FULL module 9: an in-process ristretto L1 in front of a
// pluggable Backend L2 (typically Redis), so a hot recompile of the same
// token set against the same theme never re-walks the parser registry.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"

	"github.com/niiniyare/atomiccss/pkg/config"
	"github.com/niiniyare/atomiccss/pkg/logger"
	"github.com/niiniyare/atomiccss/rule"
)

// ErrCacheMiss indicates the requested key was found in neither tier.
var ErrCacheMiss = errors.New("cache: key not found")

// Backend is the pluggable L2 tier. A nil Backend means L2 is disabled and
// the cache runs L1-only.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// Stats mirrors the teacher's pkg/cache CacheStats shape (hit/miss/error
// counters plus a derived ratio), narrowed to what a two-tier declaration
// cache actually reports.
type Stats struct {
	L1Hits   int64   `json:"l1_hits"`
	L2Hits   int64   `json:"l2_hits"`
	Misses   int64   `json:"misses"`
	Sets     int64   `json:"sets"`
	Errors   int64   `json:"errors"`
	HitRatio float64 `json:"hit_ratio"`
}

// Cache is the two-tier declaration cache. The zero value is not usable;
// use New.
type Cache struct {
	ID string // per-instance id, grounded on the teacher's uuid-namespaced cache instances

	l1     *ristretto.Cache
	l2     Backend
	l2TTL  time.Duration
	enabled bool

	l1Hits, l2Hits, misses, sets, errs int64
}

// New builds a Cache from cfg. l2 may be nil to run L1-only (e.g. in tests
// or a single-process CLI invocation with no Redis available).
func New(cfg config.CacheConfig, l2 Backend) (*Cache, error) {
	c := &Cache{ID: uuid.NewString(), l2: l2, l2TTL: cfg.L2TTL, enabled: cfg.Enabled}
	if !cfg.Enabled {
		return c, nil
	}

	maxCost := cfg.L1MaxCostMB * 1024 * 1024
	if maxCost <= 0 {
		maxCost = 64 * 1024 * 1024
	}
	numCounters := cfg.L1MaxEntries * 10
	if numCounters <= 0 {
		numCounters = 1e5
	}
	l1, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	c.l1 = l1
	return c, nil
}

// Key derives the cache key for a token compiled against a theme, per
// SPEC_FULL's "(token, theme_hash)" key contract.
func Key(token string, themeHash uint64) string {
	return token + "@" + uitoa(themeHash)
}

func uitoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// Get looks up key in L1, then L2 (promoting an L2 hit into L1 on the way
// out), returning (declarations, true) on a hit in either tier.
func (c *Cache) Get(ctx context.Context, key string) ([]rule.Declaration, bool) {
	if !c.enabled {
		return nil, false
	}
	if v, ok := c.l1.Get(key); ok {
		atomic.AddInt64(&c.l1Hits, 1)
		return v.([]rule.Declaration), true
	}

	if c.l2 == nil {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}

	raw, found, err := c.l2.Get(ctx, key)
	if err != nil {
		atomic.AddInt64(&c.errs, 1)
		logger.Error("cache: L2 get failed", logger.Fields{"key": key, "error": err.Error()})
		return nil, false
	}
	if !found {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}

	var decls []rule.Declaration
	if err := json.Unmarshal(raw, &decls); err != nil {
		atomic.AddInt64(&c.errs, 1)
		logger.Error("cache: L2 payload corrupt", logger.Fields{"key": key, "error": err.Error()})
		return nil, false
	}
	atomic.AddInt64(&c.l2Hits, 1)
	c.l1.Set(key, decls, costOf(decls))
	c.l1.Wait()
	return decls, true
}

// Set writes through both tiers. An L2 write failure is logged and counted
// but does not fail the call: the L1 write still happened, so the caller's
// own compilation result is cached for this process even if the shared
// tier is briefly unavailable.
func (c *Cache) Set(ctx context.Context, key string, decls []rule.Declaration) {
	if !c.enabled {
		return
	}
	atomic.AddInt64(&c.sets, 1)
	c.l1.Set(key, decls, costOf(decls))
	c.l1.Wait()

	if c.l2 == nil {
		return
	}
	raw, err := json.Marshal(decls)
	if err != nil {
		atomic.AddInt64(&c.errs, 1)
		return
	}
	if err := c.l2.Set(ctx, key, raw, c.l2TTL); err != nil {
		atomic.AddInt64(&c.errs, 1)
		logger.Error("cache: L2 set failed", logger.Fields{"key": key, "error": err.Error()})
	}
}

// costOf approximates a ristretto cost for an entry: roughly one unit per
// declaration plus its property/value byte length, which is proportional
// enough to the entry's real memory footprint for MaxCost eviction to
// behave sensibly.
func costOf(decls []rule.Declaration) int64 {
	cost := int64(16)
	for _, d := range decls {
		cost += int64(len(d.Property) + len(d.Value) + 8)
	}
	return cost
}

// Stats reports cumulative counters since the cache was created or last Reset.
func (c *Cache) Stats() Stats {
	l1 := atomic.LoadInt64(&c.l1Hits)
	l2 := atomic.LoadInt64(&c.l2Hits)
	miss := atomic.LoadInt64(&c.misses)
	total := l1 + l2 + miss
	ratio := 0.0
	if total > 0 {
		ratio = float64(l1+l2) / float64(total)
	}
	return Stats{
		L1Hits:   l1,
		L2Hits:   l2,
		Misses:   miss,
		Sets:     atomic.LoadInt64(&c.sets),
		Errors:   atomic.LoadInt64(&c.errs),
		HitRatio: ratio,
	}
}

// Reset zeroes every counter without evicting cached entries.
func (c *Cache) Reset() {
	atomic.StoreInt64(&c.l1Hits, 0)
	atomic.StoreInt64(&c.l2Hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.sets, 0)
	atomic.StoreInt64(&c.errs, 0)
}

// Close releases L1 and, if present, the L2 backend.
func (c *Cache) Close() error {
	if c.l1 != nil {
		c.l1.Close()
	}
	if c.l2 != nil {
		return c.l2.Close()
	}
	return nil
}
