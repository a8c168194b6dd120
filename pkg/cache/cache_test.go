package cache

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/niiniyare/atomiccss/pkg/config"
	"github.com/niiniyare/atomiccss/rule"
)

// fakeBackend is an in-memory stand-in for a real Redis connection, since
// tests here can't dial out. It stores raw JSON blobs exactly like a real
// L2 would.
type fakeBackend struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
	closed  bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{entries: make(map[string][]byte)}
}

func (f *fakeBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.entries[key]
	return v, ok, nil
}

func (f *fakeBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return nil
}

func (f *fakeBackend) Close() error {
	f.closed = true
	return nil
}

func testConfig() config.CacheConfig {
	return config.CacheConfig{Enabled: true, L1MaxEntries: 1000, L1MaxCostMB: 1, L2TTL: time.Minute}
}

func TestCacheL1OnlyHit(t *testing.T) {
	c, err := New(testConfig(), nil)
	require.NoError(t, err)
	defer c.Close()

	key := Key("p-4", 42)
	decls := []rule.Declaration{{Property: "padding", Value: "1rem"}}
	c.Set(context.Background(), key, decls)

	got, ok := c.Get(context.Background(), key)
	require.True(t, ok, "expected L1 hit")
	require.Len(t, got, 1)
	require.Equal(t, "1rem", got[0].Value)
	require.EqualValues(t, 1, c.Stats().L1Hits)
}

func TestCacheFullMiss(t *testing.T) {
	c, err := New(testConfig(), nil)
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get(context.Background(), Key("nope", 1))
	require.False(t, ok)
	require.EqualValues(t, 1, c.Stats().Misses)
}

func TestCacheL2HitPromotesToL1(t *testing.T) {
	backend := newFakeBackend()
	c, err := New(testConfig(), backend)
	require.NoError(t, err)
	defer c.Close()

	key := Key("m-2", 7)
	decls := []rule.Declaration{{Property: "margin", Value: "0.5rem"}}
	raw, err := json.Marshal(decls)
	require.NoError(t, err)
	backend.entries[key] = raw

	got, ok := c.Get(context.Background(), key)
	require.True(t, ok, "expected L2 hit")
	require.Equal(t, "0.5rem", got[0].Value)
	require.EqualValues(t, 1, c.Stats().L2Hits)

	// Second Get should now be served from L1, not L2.
	_, ok = c.Get(context.Background(), key)
	require.True(t, ok, "expected promoted L1 hit")
	stats := c.Stats()
	require.EqualValues(t, 1, stats.L1Hits)
	require.EqualValues(t, 1, stats.L2Hits)
}

func TestCacheSetWritesThroughBothTiers(t *testing.T) {
	backend := newFakeBackend()
	c, err := New(testConfig(), backend)
	require.NoError(t, err)
	defer c.Close()

	key := Key("gap-4", 1)
	decls := []rule.Declaration{{Property: "gap", Value: "1rem"}}
	c.Set(context.Background(), key, decls)

	_, ok := backend.entries[key]
	require.True(t, ok, "expected L2 to receive the write")
	require.EqualValues(t, 1, c.Stats().Sets)
}

func TestCacheDisabledIsNoop(t *testing.T) {
	c, err := New(config.CacheConfig{Enabled: false}, nil)
	require.NoError(t, err)
	defer c.Close()

	c.Set(context.Background(), "k", []rule.Declaration{{Property: "a", Value: "b"}})
	_, ok := c.Get(context.Background(), "k")
	require.False(t, ok, "expected disabled cache to never hit")
}

func TestCacheHitRatio(t *testing.T) {
	backend := newFakeBackend()
	c, err := New(testConfig(), backend)
	require.NoError(t, err)
	defer c.Close()

	key := Key("x", 1)
	c.Set(context.Background(), key, []rule.Declaration{{Property: "a", Value: "b"}})
	c.Get(context.Background(), key)         // L1 hit
	c.Get(context.Background(), Key("y", 1)) // miss

	require.Equal(t, 0.5, c.Stats().HitRatio)
}

func TestCacheReset(t *testing.T) {
	c, err := New(testConfig(), nil)
	require.NoError(t, err)
	defer c.Close()

	c.Get(context.Background(), "missing")
	c.Reset()
	require.Zero(t, c.Stats().Misses)
}
