package game

import "testing"

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		r, g, b uint8
	}{
		{"Red", 0, 1, 1, 255, 0, 0},
		{"Green", 120, 1, 1, 0, 255, 0},
		{"Blue", 240, 1, 1, 0, 0, 255},
		{"White", 0, 0, 1, 255, 255, 255},
		{"Black", 0, 0, 0, 0, 0, 0},
		{"Wraps hue", 360, 1, 1, 255, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := hsvToRgb(tt.h, tt.s, tt.v)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("hsvToRgb(%v, %v, %v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.h, tt.s, tt.v, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Below range", -0.5, 0},
		{"Lower bound", 0, 0},
		{"In range", 0.3, 0.3},
		{"Upper bound", 1, 1},
		{"Above range", 1.7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp01(tt.in); got != tt.want {
				t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
