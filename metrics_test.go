package texpool

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestCollectorRegisters tests that the collector satisfies the
// prometheus.Collector contract.
func TestCollectorRegisters(t *testing.T) {
	pool, _, _ := newTestPool(DefaultConfig())

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(NewCollector(pool)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
}

// TestCollectorValues tests that scraped values match the stats snapshot.
func TestCollectorValues(t *testing.T) {
	pool, _, _ := newTestPool(DefaultConfig())

	h := pool.Acquire(64, 64, InternalRGBA8, PixelRGBA, ComponentUint8)
	pool.Release(h)
	pool.Acquire(64, 64, InternalRGBA8, PixelRGBA, ComponentUint8)

	expected := `
# HELP texpool_cache_hits_total Acquire calls satisfied from the availability list.
# TYPE texpool_cache_hits_total counter
texpool_cache_hits_total 1
# HELP texpool_cache_misses_total Acquire calls that created a new texture.
# TYPE texpool_cache_misses_total counter
texpool_cache_misses_total 1
# HELP texpool_textures_total Number of live texture records.
# TYPE texpool_textures_total gauge
texpool_textures_total 1
# HELP texpool_textures_in_use Number of texture records between Acquire and Release.
# TYPE texpool_textures_in_use gauge
texpool_textures_in_use 1
`
	err := testutil.CollectAndCompare(NewCollector(pool), strings.NewReader(expected),
		"texpool_cache_hits_total",
		"texpool_cache_misses_total",
		"texpool_textures_total",
		"texpool_textures_in_use",
	)
	if err != nil {
		t.Errorf("CollectAndCompare() error = %v", err)
	}
}
