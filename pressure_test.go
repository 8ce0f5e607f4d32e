package texpool

import "testing"

// TestNewSystemPressure tests threshold defaulting.
func TestNewSystemPressure(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		want      float64
	}{
		{"explicit", 75, 75},
		{"zero falls back", 0, DefaultPressureThreshold},
		{"negative falls back", -5, DefaultPressureThreshold},
		{"over 100 falls back", 150, DefaultPressureThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSystemPressure(tt.threshold).Threshold; got != tt.want {
				t.Errorf("Threshold = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSystemPressureReads tests that the host counters are readable.
func TestSystemPressureReads(t *testing.T) {
	sig := NewSystemPressure(DefaultPressureThreshold)
	if _, err := sig.UnderPressure(); err != nil {
		t.Errorf("UnderPressure() error = %v", err)
	}
}

// TestPressureFunc tests the function adapter.
func TestPressureFunc(t *testing.T) {
	called := false
	sig := PressureFunc(func() (bool, error) {
		called = true
		return true, nil
	})

	under, err := sig.UnderPressure()
	if err != nil || !under || !called {
		t.Errorf("UnderPressure() = (%v, %v), called = %v", under, err, called)
	}
}
