package texpool

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// PressureSignal is an optional external memory-pressure input to the
// eviction worker. When Config.EnableMonitoring is set and a signal is
// attached (see WithPressureSignal), a pressured tick runs a forced LRU
// pass to the eviction target even if the pool itself is under budget.
//
// Signal errors are logged and treated as "no pressure".
type PressureSignal interface {
	UnderPressure() (bool, error)
}

// DefaultPressureThreshold is the host memory usage percentage at which
// SystemPressure reports pressure.
const DefaultPressureThreshold = 90.0

// SystemPressure reports pressure when host virtual memory usage crosses
// a threshold percentage. It is a thin poll over the OS counters; the
// richer system monitor that owns trend analysis lives outside this pool.
type SystemPressure struct {
	// Threshold is the used-memory percentage (0-100) above which the
	// host is considered under pressure.
	Threshold float64
}

// NewSystemPressure returns a SystemPressure with the given threshold.
// A threshold outside (0, 100] falls back to DefaultPressureThreshold.
func NewSystemPressure(threshold float64) *SystemPressure {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultPressureThreshold
	}
	return &SystemPressure{Threshold: threshold}
}

// UnderPressure reads host virtual memory usage and compares it against
// the threshold.
func (s *SystemPressure) UnderPressure() (bool, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return false, fmt.Errorf("texpool: read virtual memory: %w", err)
	}
	return vm.UsedPercent >= s.Threshold, nil
}

// PressureFunc adapts a plain function to the PressureSignal interface.
type PressureFunc func() (bool, error)

// UnderPressure calls f.
func (f PressureFunc) UnderPressure() (bool, error) { return f() }
