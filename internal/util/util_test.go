package util

import "testing"

func TestContainsFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		s        string
		substr   string
		expected bool
	}{
		{name: "empty needle matches", s: "Organic Tomato Seeds", substr: "", expected: true},
		{name: "case-insensitive match", s: "Organic Tomato Seeds", substr: "tomato", expected: true},
		{name: "uppercase needle", s: "heirloom tomatoes", substr: "HEIRLOOM", expected: true},
		{name: "no match", s: "Drip Irrigation Kit", substr: "tomato", expected: false},
		{name: "empty haystack", s: "", substr: "tomato", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ContainsFold(tt.s, tt.substr); got != tt.expected {
				t.Fatalf("ContainsFold(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        float64
		lo       float64
		hi       float64
		expected float64
	}{
		{name: "within range", v: 0.5, lo: 0, hi: 1, expected: 0.5},
		{name: "below range", v: -0.3, lo: 0, hi: 1, expected: 0},
		{name: "above range", v: 1.7, lo: 0, hi: 1, expected: 1},
		{name: "at lower bound", v: 0, lo: 0, hi: 1, expected: 0},
		{name: "at upper bound", v: 1, lo: 0, hi: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.expected)
			}
		})
	}
}
