// Package texpool provides a concurrent GPU texture resource pool for
// real-time rendering pipelines.
//
// # Overview
//
// texpool hands out reusable GPU texture handles, tracks their memory
// footprint, and reclaims them under two independent pressure signals:
// an idle time-to-live and a global memory budget. Acquire and Release
// are synchronous and lock-protected so they are safe to call from the
// render thread and any number of other goroutines. Reclamation runs on
// a background goroutine that never holds the pool lock for longer than
// one eviction pass.
//
// # Quick Start
//
//	dev, _ := native.NewDevice(halDevice)
//	pool, _ := texpool.New(dev, texpool.DefaultConfig())
//	pool.StartBackgroundEviction()
//	defer pool.Close()
//
//	h := pool.Acquire(1920, 1080, texpool.InternalRGBA16F,
//	    texpool.PixelRGBA, texpool.ComponentHalfFloat)
//	if h != texpool.InvalidHandle {
//	    // ... render with h ...
//	    pool.Release(h)
//	}
//
// # Reuse Semantics
//
// Two requests are interchangeable only when all five fields of the
// (width, height, internal format, pixel format, component type) tuple
// are identical. There is no nearest-size substitution: samplers in this
// pipeline read the exact declared extents, and handing back an oversized
// buffer would silently change render output.
//
// # Reclamation
//
// The background worker runs one eviction pass per configured interval:
// an idle-TTL sweep of available textures, then, if the pool is over its
// memory budget, LRU eviction of available textures until usage drops to
// 80% of the budget. Textures that are currently acquired are never
// evicted; if every available texture is gone and the pool is still over
// budget, it stays over budget and reports so through Stats.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pool, Config, Stats, Device, format types
//   - Observability: Collector (Prometheus), SetLogger (log/slog)
//   - Backends: backend/native (gogpu/wgpu HAL)
package texpool
