package texpool

import (
	"errors"
	"testing"
	"time"
)

// TestConfigValidate tests the range checks on every field.
func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"budget at minimum", func(c *Config) { c.MaxMemoryMB = MinMemoryBudgetMB }, false},
		{"budget at maximum", func(c *Config) { c.MaxMemoryMB = MaxMemoryBudgetMB }, false},
		{"budget too small", func(c *Config) { c.MaxMemoryMB = MinMemoryBudgetMB - 1 }, true},
		{"budget too large", func(c *Config) { c.MaxMemoryMB = MaxMemoryBudgetMB + 1 }, true},
		{"zero max textures", func(c *Config) { c.MaxTextures = 0 }, true},
		{"max textures too large", func(c *Config) { c.MaxTextures = MaxTextureLimit + 1 }, true},
		{"interval too short", func(c *Config) { c.EvictionInterval = 500 * time.Millisecond }, true},
		{"interval too long", func(c *Config) { c.EvictionInterval = 11 * time.Minute }, true},
		{"ttl too short", func(c *Config) { c.IdleTTL = 0 }, true},
		{"ttl too long", func(c *Config) { c.IdleTTL = 2 * time.Hour }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig wrapping", err)
			}
		})
	}
}

// TestConfigBudgetBytes tests the budget and eviction-target conversions.
func TestConfigBudgetBytes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxMemoryMB = 1024

	if got := cfg.budgetBytes(); got != 1024*1024*1024 {
		t.Errorf("budgetBytes() = %d, want 1 GiB", got)
	}
	want := uint64(float64(cfg.budgetBytes()) * evictionTarget)
	if got := cfg.targetBytes(); got != want {
		t.Errorf("targetBytes() = %d, want %d (80%% of budget)", got, want)
	}
}
