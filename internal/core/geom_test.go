package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestScalerAxes(t *testing.T) {
	s := Scaler{WorldW: 432, WorldH: 768, CellsW: 54, CellsH: 32}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"x origin", s.X(0), 0},
		{"x full", s.X(432), 54},
		{"x mid", s.X(80), 10},
		{"y full", s.Y(768), 32},
		{"y ground top", s.Y(600), 25},
		{"negative floors", s.X(-1), -1},
		{"negative exact", s.X(-8), -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %d, expected %d", tc.got, tc.want)
			}
		})
	}
}

func TestScalerRectNeverCollapses(t *testing.T) {
	s := Scaler{WorldW: 1000, WorldH: 1000, CellsW: 10, CellsH: 10}

	r := s.Rect(5, 5, 3, 3)
	if r.W != 1 || r.H != 1 {
		t.Errorf("tiny rect scaled to %+v, expected a single cell", r)
	}

	r = s.Rect(0, 0, 0, 50)
	if !r.Empty() {
		t.Errorf("zero-width rect scaled to %+v, expected empty", r)
	}
}

func TestScalerZeroWorld(t *testing.T) {
	s := Scaler{CellsW: 10, CellsH: 10}
	if s.X(50) != 0 || s.Y(50) != 0 {
		t.Error("zero world size should map everything to 0")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
