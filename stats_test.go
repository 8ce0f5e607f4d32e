package texpool

import (
	"strings"
	"testing"
)

// TestHitRatio tests the ratio computation, including the empty case.
func TestHitRatio(t *testing.T) {
	tests := []struct {
		name   string
		hits   uint64
		misses uint64
		want   float64
	}{
		{"no traffic", 0, 0, 0},
		{"all hits", 10, 0, 1},
		{"all misses", 0, 10, 0},
		{"three quarters", 3, 1, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Stats{Hits: tt.hits, Misses: tt.misses}
			if got := s.HitRatio(); got != tt.want {
				t.Errorf("HitRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestStatsString tests the human-readable summary.
func TestStatsString(t *testing.T) {
	s := Stats{
		TotalTextures: 4,
		InUseTextures: 1,
		TotalBytes:    64 * 1024 * 1024,
		InUseBytes:    16 * 1024 * 1024,
		Hits:          3,
		Misses:        1,
		Evicted:       2,
	}

	got := s.String()
	for _, want := range []string{"4 textures", "1 in use", "16/64 MB", "75.0%", "2 evictions"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}
