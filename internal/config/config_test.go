package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", s.Capacity, DefaultCapacity)
	}
	if s.SpinDuration != DefaultSpinDuration {
		t.Errorf("SpinDuration = %v, want %v", s.SpinDuration, DefaultSpinDuration)
	}
	if s.MinRotations != 0 || s.Seed != 0 {
		t.Errorf("unexpected non-zero overrides: %+v", s)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RAFFLE_CAPACITY", "60")
	t.Setenv("RAFFLE_SPIN_SECONDS", "4.5")
	t.Setenv("RAFFLE_MIN_ROTATIONS", "3")
	t.Setenv("RAFFLE_MAX_ROTATIONS", "6")
	t.Setenv("RAFFLE_SEED", "42")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Capacity != 60 {
		t.Errorf("Capacity = %d, want 60", s.Capacity)
	}
	if want := time.Duration(4.5 * float64(time.Second)); s.SpinDuration != want {
		t.Errorf("SpinDuration = %v, want %v", s.SpinDuration, want)
	}
	if s.MinRotations != 3 || s.MaxRotations != 6 {
		t.Errorf("rotations = %d..%d, want 3..6", s.MinRotations, s.MaxRotations)
	}
	if s.Seed != 42 {
		t.Errorf("Seed = %d, want 42", s.Seed)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Capacity not a number", "RAFFLE_CAPACITY", "lots"},
		{"Capacity negative", "RAFFLE_CAPACITY", "-5"},
		{"Duration not a number", "RAFFLE_SPIN_SECONDS", "fast"},
		{"Duration negative", "RAFFLE_SPIN_SECONDS", "-2"},
		{"Seed not a number", "RAFFLE_SEED", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load accepted %s=%q", tt.key, tt.value)
			}
		})
	}
}
