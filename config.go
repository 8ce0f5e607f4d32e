package texpool

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a configuration fails validation.
// The pool rejects the new configuration and retains the previous one.
var ErrInvalidConfig = errors.New("texpool: invalid configuration")

// Configuration limits and defaults.
const (
	// MinMemoryBudgetMB is the minimum allowed memory budget.
	MinMemoryBudgetMB = 512

	// MaxMemoryBudgetMB is the maximum allowed memory budget.
	MaxMemoryBudgetMB = 16384

	// DefaultMemoryBudgetMB is the default memory budget (2 GB).
	DefaultMemoryBudgetMB = 2048

	// MaxTextureLimit is the maximum allowed value for Config.MaxTextures.
	MaxTextureLimit = 4096

	// DefaultMaxTextures is the default handle-count cap.
	DefaultMaxTextures = 256

	// MinEvictionInterval is the shortest allowed worker cadence.
	MinEvictionInterval = time.Second

	// MaxEvictionInterval is the longest allowed worker cadence.
	MaxEvictionInterval = 10 * time.Minute

	// DefaultEvictionInterval is the default worker cadence.
	DefaultEvictionInterval = 30 * time.Second

	// MinIdleTTL is the shortest allowed idle time-to-live.
	MinIdleTTL = time.Second

	// MaxIdleTTL is the longest allowed idle time-to-live.
	MaxIdleTTL = time.Hour

	// DefaultIdleTTL is the default idle time-to-live.
	DefaultIdleTTL = 2 * time.Minute

	// evictionTarget is the fraction of budget forced eviction reduces
	// usage to, leaving headroom against immediate re-triggering.
	evictionTarget = 0.8
)

// Config holds the pool configuration. A Config is an immutable snapshot:
// the pool replaces it as a whole and never mutates it in place, so
// readers always see a consistent view.
type Config struct {
	// MaxMemoryMB is the global memory budget in megabytes.
	// Must be in [MinMemoryBudgetMB, MaxMemoryBudgetMB].
	MaxMemoryMB int

	// MaxTextures caps the number of live handles the pool tracks.
	// Must be in [1, MaxTextureLimit].
	MaxTextures int

	// EvictionInterval is the background worker cadence.
	// Must be in [MinEvictionInterval, MaxEvictionInterval].
	EvictionInterval time.Duration

	// IdleTTL is how long an available texture may sit unused before the
	// idle sweep destroys it. Must be in [MinIdleTTL, MaxIdleTTL].
	IdleTTL time.Duration

	// EnableMonitoring attaches the optional external pressure signal to
	// the eviction worker (see WithPressureSignal).
	EnableMonitoring bool
}

// DefaultConfig returns the default pool configuration.
func DefaultConfig() Config {
	return Config{
		MaxMemoryMB:      DefaultMemoryBudgetMB,
		MaxTextures:      DefaultMaxTextures,
		EvictionInterval: DefaultEvictionInterval,
		IdleTTL:          DefaultIdleTTL,
	}
}

// Validate reports whether the configuration is within the allowed
// ranges. It returns an error wrapping ErrInvalidConfig that names the
// offending field.
func (c Config) Validate() error {
	if c.MaxMemoryMB < MinMemoryBudgetMB || c.MaxMemoryMB > MaxMemoryBudgetMB {
		return fmt.Errorf("%w: MaxMemoryMB %d outside [%d, %d]",
			ErrInvalidConfig, c.MaxMemoryMB, MinMemoryBudgetMB, MaxMemoryBudgetMB)
	}
	if c.MaxTextures < 1 || c.MaxTextures > MaxTextureLimit {
		return fmt.Errorf("%w: MaxTextures %d outside [1, %d]",
			ErrInvalidConfig, c.MaxTextures, MaxTextureLimit)
	}
	if c.EvictionInterval < MinEvictionInterval || c.EvictionInterval > MaxEvictionInterval {
		return fmt.Errorf("%w: EvictionInterval %v outside [%v, %v]",
			ErrInvalidConfig, c.EvictionInterval, MinEvictionInterval, MaxEvictionInterval)
	}
	if c.IdleTTL < MinIdleTTL || c.IdleTTL > MaxIdleTTL {
		return fmt.Errorf("%w: IdleTTL %v outside [%v, %v]",
			ErrInvalidConfig, c.IdleTTL, MinIdleTTL, MaxIdleTTL)
	}
	return nil
}

// budgetBytes returns the memory budget in bytes.
func (c Config) budgetBytes() uint64 {
	return uint64(c.MaxMemoryMB) * 1024 * 1024
}

// targetBytes returns the forced-eviction target in bytes.
func (c Config) targetBytes() uint64 {
	return uint64(float64(c.budgetBytes()) * evictionTarget)
}
