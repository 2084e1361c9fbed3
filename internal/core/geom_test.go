package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := Vec{X: 3, Y: 4}
	b := Vec{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec{X: 4, Y: 2}) {
		t.Errorf("Add() = %v, expected {4 2}", got)
	}
	if got := a.Sub(b); got != (Vec{X: 2, Y: 6}) {
		t.Errorf("Sub() = %v, expected {2 6}", got)
	}
	if got := a.Scale(0.5); got != (Vec{X: 1.5, Y: 2}) {
		t.Errorf("Scale() = %v, expected {1.5 2}", got)
	}
	if got := a.Len(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if got := (Vec{}).Len(); got != 0 {
		t.Errorf("zero Len() = %f, expected 0", got)
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{Center: Vec{X: 240, Y: 400}, HalfW: 28, HalfH: 28}

	tests := []struct {
		name   string
		p      Vec
		strict bool
		loose  bool
	}{
		{"center", Vec{X: 240, Y: 400}, true, true},
		{"inside", Vec{X: 260, Y: 380}, true, true},
		{"right edge", Vec{X: 268, Y: 400}, false, true},
		{"bottom edge", Vec{X: 240, Y: 428}, false, true},
		{"outside left", Vec{X: 211, Y: 400}, false, false},
		{"outside top", Vec{X: 240, Y: 371}, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.ContainsStrict(tc.p); got != tc.strict {
				t.Errorf("ContainsStrict(%v) = %v, expected %v", tc.p, got, tc.strict)
			}
			if got := b.Contains(tc.p); got != tc.loose {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.loose)
			}
		})
	}
}

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
		{448, 32, 448, 448},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
