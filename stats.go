package texpool

import "fmt"

// Stats is a snapshot of pool state. Counts and byte totals are derived
// by full recomputation over the live record table after every structural
// mutation; the monotonic counters (Hits, Misses, Created, Evicted) are
// preserved across recomputation and reset only by ResetStats.
type Stats struct {
	// TotalTextures is the number of live records, in-use or not.
	TotalTextures int

	// AvailableTextures is the number of records awaiting reuse.
	AvailableTextures int

	// InUseTextures is the number of records between Acquire and Release.
	InUseTextures int

	// TotalBytes is the memory footprint of all live records.
	TotalBytes uint64

	// InUseBytes is the memory footprint of in-use records.
	InUseBytes uint64

	// Hits counts Acquire calls satisfied from the availability list.
	Hits uint64

	// Misses counts Acquire calls that created a new texture.
	Misses uint64

	// Created counts textures created over the pool's lifetime.
	Created uint64

	// Evicted counts textures destroyed by sweeps, forced eviction,
	// and Clear.
	Evicted uint64
}

// HitRatio returns Hits / (Hits + Misses), or 0 before the first Acquire.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// String returns a human-readable summary of the snapshot.
func (s Stats) String() string {
	return fmt.Sprintf("Pool[%d textures (%d in use), %d/%d MB in use, %.1f%% hit ratio, %d evictions]",
		s.TotalTextures,
		s.InUseTextures,
		s.InUseBytes/(1024*1024),
		s.TotalBytes/(1024*1024),
		s.HitRatio()*100,
		s.Evicted)
}
