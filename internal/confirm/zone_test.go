package confirm

import (
	"math/rand"
	"testing"
)

func TestNewZoneBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		z := NewZone(r)
		if z.Start < ZoneStartMin || z.Start > ZoneStartMax {
			t.Fatalf("zone %d: start = %v, want within [%v, %v]", i, z.Start, ZoneStartMin, ZoneStartMax)
		}
		if z.End > 1 {
			t.Fatalf("zone %d: end = %v, want <= 1", i, z.End)
		}
		if z.End != 1 && z.End-z.Start != ZoneWidth {
			t.Fatalf("zone %d: width = %v, want %v", i, z.End-z.Start, ZoneWidth)
		}
	}
}

func TestNewZoneDeterministicWithSeed(t *testing.T) {
	a := NewZone(rand.New(rand.NewSource(7)))
	b := NewZone(rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("same seed produced different zones: %+v vs %+v", a, b)
	}
}

func TestZoneContains(t *testing.T) {
	z := Zone{Start: 0.40, End: 0.60}

	tests := []struct {
		p    float64
		want bool
	}{
		{0.39, false},
		{0.40, true},
		{0.50, true},
		{0.60, true},
		{0.61, false},
		{0.0, false},
		{1.0, false},
	}

	for _, tt := range tests {
		if got := z.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
