package breakout

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(123), NewRNG(123)
	for range 100 {
		if a.Next() != b.Next() {
			t.Fatal("same seed should give the same sequence")
		}
	}
	s := a.State()
	x := a.Next()
	a.SetState(s)
	if a.Next() != x {
		t.Error("SetState should replay the sequence")
	}
}

func TestRNGBetween(t *testing.T) {
	r := NewRNG(9)
	seen := map[int]bool{}
	for range 1000 {
		v := r.Between(-2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("Between(-2,2) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("Between should reach both ends, saw %v", seen)
	}
	if r.Between(4, 4) != 4 {
		t.Error("degenerate range should return lo")
	}
}

func TestRNGFloat64(t *testing.T) {
	r := NewRNG(0)
	for range 1000 {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f", f)
		}
	}
	if r.Chance(0) {
		t.Error("Chance(0) should never fire")
	}
	if !r.Chance(1) {
		t.Error("Chance(1) should always fire")
	}
}
