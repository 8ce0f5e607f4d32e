package texpool

import (
	"sort"
	"time"
)

// EvictTick runs one full eviction pass: the idle-TTL sweep, then, if the
// pool is over its memory budget (or the external pressure signal fires
// while monitoring is enabled), LRU eviction down to the configured
// target. The background worker calls this on its cadence; callers
// without a worker can invoke it directly.
//
// The whole pass holds the pool mutex once, so it never stalls a
// concurrent Acquire for longer than one critical section.
func (p *Pool) EvictTick() {
	cfg := p.GetConfig()

	pressured := false
	if cfg.EnableMonitoring && p.pressure != nil {
		under, err := p.pressure.UnderPressure()
		if err != nil {
			Logger().Warn("texpool: pressure signal failed", "err", err)
		} else {
			pressured = under
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.sweepIdleLocked(p.now(), cfg.IdleTTL)

	if p.stats.TotalBytes > cfg.budgetBytes() || pressured {
		p.evictLRULocked(cfg.targetBytes())
	}
}

// sweepIdleLocked destroys every available record whose idle time exceeds
// the TTL. In-use records are untouched regardless of age. Caller must
// hold mu.
func (p *Pool) sweepIdleLocked(now time.Time, ttl time.Duration) {
	var expired []Handle
	for _, h := range p.available {
		rec := p.records[h]
		if rec == nil {
			continue
		}
		if now.Sub(rec.lastUsed) > ttl {
			expired = append(expired, h)
		}
	}
	if len(expired) == 0 {
		return
	}

	p.device.DestroyTextures(expired)
	for _, h := range expired {
		delete(p.records, h)
		p.removeAvailableLocked(h)
		p.stats.Evicted++
		Logger().Debug("texpool: idle texture evicted", "handle", h)
	}
	p.recomputeLocked()
}

// evictLRULocked evicts available records, oldest last-used first, until
// total memory drops to at most targetBytes or no available records
// remain. In-use records represent resources referenced by in-flight
// rendering and are never evicted: if evicting everything available still
// leaves the pool over target, it stays over target. Caller must hold mu.
func (p *Pool) evictLRULocked(targetBytes uint64) {
	if p.stats.TotalBytes <= targetBytes {
		return
	}

	candidates := make([]*record, 0, len(p.available))
	for _, h := range p.available {
		if rec := p.records[h]; rec != nil {
			candidates = append(candidates, rec)
		}
	}
	// Oldest first; ties broken by ascending handle for determinism.
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].lastUsed.Equal(candidates[j].lastUsed) {
			return candidates[i].lastUsed.Before(candidates[j].lastUsed)
		}
		return candidates[i].handle < candidates[j].handle
	})

	remaining := p.stats.TotalBytes
	var victims []Handle
	for _, rec := range candidates {
		if remaining <= targetBytes {
			break
		}
		victims = append(victims, rec.handle)
		remaining -= rec.sizeBytes
	}
	if len(victims) == 0 {
		return
	}

	p.device.DestroyTextures(victims)
	for _, h := range victims {
		delete(p.records, h)
		p.removeAvailableLocked(h)
		p.stats.Evicted++
		Logger().Debug("texpool: texture evicted for memory", "handle", h)
	}
	p.recomputeLocked()

	if p.stats.TotalBytes > targetBytes {
		Logger().Warn("texpool: still over eviction target, all remaining textures in use",
			"total_bytes", p.stats.TotalBytes, "target_bytes", targetBytes)
	}
}

// evictOldestAvailableLocked destroys the single oldest available record.
// Returns false when nothing is available. Caller must hold mu.
func (p *Pool) evictOldestAvailableLocked() bool {
	var oldest *record
	for _, h := range p.available {
		rec := p.records[h]
		if rec == nil {
			continue
		}
		if oldest == nil ||
			rec.lastUsed.Before(oldest.lastUsed) ||
			(rec.lastUsed.Equal(oldest.lastUsed) && rec.handle < oldest.handle) {
			oldest = rec
		}
	}
	if oldest == nil {
		return false
	}

	p.device.DestroyTextures([]Handle{oldest.handle})
	delete(p.records, oldest.handle)
	p.removeAvailableLocked(oldest.handle)
	p.stats.Evicted++
	p.recomputeLocked()
	Logger().Debug("texpool: texture evicted for handle cap", "handle", oldest.handle)
	return true
}
