package texpool

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// Pool errors.
var (
	// ErrNilDevice is returned when creating a pool without a device.
	ErrNilDevice = errors.New("texpool: device is nil")
)

// Pool is a concurrent cache/allocator for reusable GPU texture handles.
//
// All mutating operations on the record table and the availability list
// serialize through one mutex; configuration reads and writes use a
// separate mutex so config changes never block a hot-path Acquire.
// Eviction (foreground or background) is guarded by the same pool mutex,
// so a handle can never be destroyed while it is in use, and can never be
// marked in-use while it is being destroyed.
//
// Pool is safe for concurrent use.
type Pool struct {
	device Device

	// cfgMu guards cfg. Readers get a snapshot copy, never a reference
	// into mutable state.
	cfgMu sync.RWMutex
	cfg   Config

	// mu guards records, available, stats, and closed.
	mu sync.Mutex

	// records maps every live handle to its metadata.
	records map[Handle]*record

	// available lists not-in-use handles in FIFO order. Invariants:
	// every listed handle has a record with inUse == false, no handle is
	// listed twice, and the listed set is a subset of the record keys.
	available []Handle

	stats  Stats
	closed bool

	// now is the clock; overridable in tests for simulated time.
	now func() time.Time

	// pressure is the optional external signal consulted by the worker
	// when Config.EnableMonitoring is set.
	pressure PressureSignal

	// Background worker state.
	running atomic.Bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

// Option configures a Pool during creation.
type Option func(*Pool)

// WithPressureSignal attaches an external memory-pressure signal.
// The background worker consults it on every tick when the configuration
// has EnableMonitoring set, and runs a forced LRU pass when the host
// reports pressure even if the pool itself is under budget.
func WithPressureSignal(sig PressureSignal) Option {
	return func(p *Pool) {
		p.pressure = sig
	}
}

// New creates a texture pool over the given device. The configuration is
// validated up front; there is no previous configuration to retain at
// construction time, so an invalid one is an error.
func New(device Device, cfg Config, opts ...Option) (*Pool, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pool{
		device:  device,
		cfg:     cfg,
		records: make(map[Handle]*record),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Acquire returns a texture handle whose GPU storage is allocated with
// exactly the requested parameters, marked in-use. The availability list
// is scanned in FIFO order for the first exact tuple match; on a miss a
// new texture is created through the device.
//
// A driver creation failure returns InvalidHandle and is logged, never
// propagated: the caller should treat it as "no texture available this
// frame" and degrade gracefully.
func (p *Pool) Acquire(width, height int, internal InternalFormat, pixel PixelFormat, component ComponentType) Handle {
	if width <= 0 || height <= 0 {
		Logger().Warn("texpool: acquire with non-positive dimensions",
			"width", width, "height", height)
		return InvalidHandle
	}

	cfg := p.GetConfig()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		Logger().Warn("texpool: acquire on closed pool")
		return InvalidHandle
	}

	now := p.now()

	// Exact-match scan, FIFO order.
	for i, h := range p.available {
		rec := p.records[h]
		if rec == nil || !rec.matches(width, height, internal, pixel, component) {
			continue
		}
		p.available = append(p.available[:i], p.available[i+1:]...)
		rec.inUse = true
		rec.lastUsed = now
		p.stats.Hits++
		p.recomputeLocked()
		return h
	}

	// Miss: make room under the handle cap, then create.
	p.makeRoomLocked(cfg.MaxTextures)

	desc := TextureDesc{
		Width:     width,
		Height:    height,
		Internal:  internal,
		Pixel:     pixel,
		Component: component,
		Label:     "texpool",
	}
	h, err := p.device.CreateTexture2D(desc)
	if err != nil || h == InvalidHandle {
		Logger().Error("texpool: texture creation failed",
			"width", width, "height", height,
			"internal", internal, "component", component,
			"err", err, "device_err", p.device.Err())
		return InvalidHandle
	}

	p.device.Bind(h)
	if err := p.device.SetSampling(h, DefaultSampling()); err != nil {
		// Sampling failure degrades filtering quality, not correctness.
		Logger().Warn("texpool: set sampling failed", "handle", h, "err", err)
	}

	rec := &record{
		handle:    h,
		width:     width,
		height:    height,
		internal:  internal,
		pixel:     pixel,
		component: component,
		inUse:     true,
		createdAt: now,
		lastUsed:  now,
		sizeBytes: uint64(width) * uint64(height) * uint64(BytesPerPixel(internal, component)),
	}
	p.records[h] = rec
	p.stats.Misses++
	p.stats.Created++
	p.recomputeLocked()
	return h
}

// Release marks a previously acquired handle as available for reuse and
// refreshes its last-used time. Releasing an unknown handle or one that
// is not in use logs a warning and is otherwise a no-op: double-release
// and release-after-evict races must not crash the render thread.
func (p *Pool) Release(h Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	rec, ok := p.records[h]
	if !ok {
		Logger().Warn("texpool: release of unknown handle", "handle", h)
		return
	}
	if !rec.inUse {
		Logger().Warn("texpool: release of handle not in use", "handle", h)
		return
	}

	rec.inUse = false
	rec.lastUsed = p.now()
	p.available = append(p.available, h)
	p.recomputeLocked()
}

// GetStats returns a snapshot of pool statistics. Safe for concurrent use.
func (p *Pool) GetStats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// ResetStats zeroes the monotonic counters (hits, misses, created,
// evicted). Derived counts are recomputed and unaffected.
func (p *Pool) ResetStats() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats.Hits = 0
	p.stats.Misses = 0
	p.stats.Created = 0
	p.stats.Evicted = 0
}

// GetConfig returns a snapshot copy of the current configuration.
func (p *Pool) GetConfig() Config {
	p.cfgMu.RLock()
	defer p.cfgMu.RUnlock()
	return p.cfg
}

// SetConfig replaces the configuration as a whole. An invalid
// configuration is rejected with a warning log and the previous one is
// retained.
func (p *Pool) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		Logger().Warn("texpool: rejected configuration", "err", err)
		return err
	}
	p.cfgMu.Lock()
	p.cfg = cfg
	p.cfgMu.Unlock()
	return nil
}

// IsMemoryLimitExceeded reports whether the pool's total memory footprint
// exceeds the configured budget.
func (p *Pool) IsMemoryLimitExceeded() bool {
	budget := p.GetConfig().budgetBytes()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats.TotalBytes > budget
}

// Clear destroys every record, in-use or not. With fastShutdown the
// driver destroy calls are skipped entirely: when the owning graphics
// context is about to be torn down anyway, calling into it is at best
// wasted work and at worst a call into an invalid context.
//
// Counts go to zero; the monotonic counters persist (cleared records
// count as evicted).
func (p *Pool) Clear(fastShutdown bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clearLocked(fastShutdown)
}

func (p *Pool) clearLocked(fastShutdown bool) {
	if len(p.records) == 0 {
		p.available = p.available[:0]
		p.recomputeLocked()
		return
	}

	handles := make([]Handle, 0, len(p.records))
	for h := range p.records {
		handles = append(handles, h)
	}
	if !fastShutdown {
		p.device.DestroyTextures(handles)
	}
	p.stats.Evicted += uint64(len(handles))
	p.records = make(map[Handle]*record)
	p.available = p.available[:0]
	p.recomputeLocked()

	Logger().Info("texpool: pool cleared",
		"destroyed", len(handles), "fast_shutdown", fastShutdown)
}

// Close stops the background worker, destroys all textures, and marks
// the pool closed. The pool should not be used after Close.
func (p *Pool) Close() {
	p.StopBackgroundEviction()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.clearLocked(false)
	p.closed = true
}

// recomputeLocked rebuilds the derived stats from the live record table.
// Full recomputation after every mutation trades a bounded O(n) walk for
// bookkeeping that cannot drift. Caller must hold mu.
func (p *Pool) recomputeLocked() {
	p.stats.TotalTextures = len(p.records)
	p.stats.AvailableTextures = len(p.available)
	p.stats.InUseTextures = len(p.records) - len(p.available)

	var total, inUse uint64
	for _, rec := range p.records {
		total += rec.sizeBytes
		if rec.inUse {
			inUse += rec.sizeBytes
		}
	}
	p.stats.TotalBytes = total
	p.stats.InUseBytes = inUse
}

// removeAvailableLocked splices a handle out of the availability list.
// Caller must hold mu.
func (p *Pool) removeAvailableLocked(h Handle) {
	for i, have := range p.available {
		if have == h {
			p.available = append(p.available[:i], p.available[i+1:]...)
			return
		}
	}
}

// makeRoomLocked evicts oldest-available records until the handle count
// is below the cap. If nothing is available the pool creates past the cap
// rather than fail the frame; the overage shows up in stats. Caller must
// hold mu.
func (p *Pool) makeRoomLocked(maxTextures int) {
	for len(p.records) >= maxTextures {
		if !p.evictOldestAvailableLocked() {
			return
		}
	}
}
