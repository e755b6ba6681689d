package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMin(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
}

func TestVec2WithLen(t *testing.T) {
	v := V(3, -4)
	got := v.WithLen(10)
	if math.Abs(got.Len()-10) > 1e-9 {
		t.Errorf("WithLen(10).Len() = %f, expected 10", got.Len())
	}
	if got.X <= 0 || got.Y >= 0 {
		t.Errorf("WithLen should preserve direction, got %+v", got)
	}

	zero := Vec2{}
	if zero.WithLen(5) != zero {
		t.Error("WithLen on zero vector should return zero vector")
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		deg   float64
		wantX  float64
		wantY  float64
	}{
		{0, 1, 0},
		{90, 0, 1},
		{270, 0, -1},
		{180, -1, 0},
	}

	for _, tc := range tests {
		v := FromAngle(tc.deg, 1)
		if math.Abs(v.X-tc.wantX) > 1e-9 || math.Abs(v.Y-tc.wantY) > 1e-9 {
			t.Errorf("FromAngle(%v) = %+v, expected (%v, %v)", tc.deg, v, tc.wantX, tc.wantY)
		}
	}
}

func TestBoxOverlap(t *testing.T) {
	a := BoxAt(V(0, 0), 10, 10)

	if _, _, ok := a.Overlap(BoxAt(V(20, 0), 10, 10)); ok {
		t.Error("distant boxes should not overlap")
	}
	if _, _, ok := a.Overlap(BoxAt(V(10, 0), 10, 10)); ok {
		t.Error("touching boxes should not overlap")
	}

	dx, dy, ok := a.Overlap(BoxAt(V(8, 2), 10, 10))
	if !ok {
		t.Fatal("boxes should overlap")
	}
	if math.Abs(dx-2) > 1e-9 || math.Abs(dy-8) > 1e-9 {
		t.Errorf("penetration = (%f, %f), expected (2, 8)", dx, dy)
	}
}
