package texpool

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes pool statistics as Prometheus metrics. It implements
// prometheus.Collector by snapshotting GetStats on every scrape, so it
// adds no bookkeeping to the Acquire/Release hot path.
//
// Example:
//
//	prometheus.MustRegister(texpool.NewCollector(pool))
type Collector struct {
	pool *Pool

	totalTextures     *prometheus.Desc
	availableTextures *prometheus.Desc
	inUseTextures     *prometheus.Desc
	totalBytes        *prometheus.Desc
	inUseBytes        *prometheus.Desc
	hits              *prometheus.Desc
	misses            *prometheus.Desc
	created           *prometheus.Desc
	evicted           *prometheus.Desc
}

// NewCollector creates a Prometheus collector over the pool.
func NewCollector(pool *Pool) *Collector {
	return &Collector{
		pool: pool,
		totalTextures: prometheus.NewDesc("texpool_textures_total",
			"Number of live texture records.", nil, nil),
		availableTextures: prometheus.NewDesc("texpool_textures_available",
			"Number of texture records awaiting reuse.", nil, nil),
		inUseTextures: prometheus.NewDesc("texpool_textures_in_use",
			"Number of texture records between Acquire and Release.", nil, nil),
		totalBytes: prometheus.NewDesc("texpool_memory_bytes_total",
			"Memory footprint of all live texture records.", nil, nil),
		inUseBytes: prometheus.NewDesc("texpool_memory_bytes_in_use",
			"Memory footprint of in-use texture records.", nil, nil),
		hits: prometheus.NewDesc("texpool_cache_hits_total",
			"Acquire calls satisfied from the availability list.", nil, nil),
		misses: prometheus.NewDesc("texpool_cache_misses_total",
			"Acquire calls that created a new texture.", nil, nil),
		created: prometheus.NewDesc("texpool_textures_created_total",
			"Textures created over the pool's lifetime.", nil, nil),
		evicted: prometheus.NewDesc("texpool_textures_evicted_total",
			"Textures destroyed by sweeps, forced eviction, and Clear.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalTextures
	ch <- c.availableTextures
	ch <- c.inUseTextures
	ch <- c.totalBytes
	ch <- c.inUseBytes
	ch <- c.hits
	ch <- c.misses
	ch <- c.created
	ch <- c.evicted
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.GetStats()

	ch <- prometheus.MustNewConstMetric(c.totalTextures, prometheus.GaugeValue, float64(s.TotalTextures))
	ch <- prometheus.MustNewConstMetric(c.availableTextures, prometheus.GaugeValue, float64(s.AvailableTextures))
	ch <- prometheus.MustNewConstMetric(c.inUseTextures, prometheus.GaugeValue, float64(s.InUseTextures))
	ch <- prometheus.MustNewConstMetric(c.totalBytes, prometheus.GaugeValue, float64(s.TotalBytes))
	ch <- prometheus.MustNewConstMetric(c.inUseBytes, prometheus.GaugeValue, float64(s.InUseBytes))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.created, prometheus.CounterValue, float64(s.Created))
	ch <- prometheus.MustNewConstMetric(c.evicted, prometheus.CounterValue, float64(s.Evicted))
}
