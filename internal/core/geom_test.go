package core

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		bound    float64
		expected bool
	}{
		{
			name:     "same point",
			a:        Vec2{X: 3, Y: 3},
			b:        Vec2{X: 3, Y: 3},
			bound:    0.4,
			expected: true,
		},
		{
			name:     "within bound on both axes",
			a:        Vec2{X: 0, Y: 0},
			b:        Vec2{X: 1.5, Y: -1.0},
			bound:    0.8,
			expected: true,
		},
		{
			name:     "touching edges counts as overlap",
			a:        Vec2{X: 0, Y: 0},
			b:        Vec2{X: 0.8, Y: 0},
			bound:    0.4,
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        Vec2{X: 0, Y: 0},
			b:        Vec2{X: 0.81, Y: 0},
			bound:    0.4,
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        Vec2{X: 0, Y: 0},
			b:        Vec2{X: 0, Y: -2},
			bound:    0.8,
			expected: false,
		},
		{
			name:     "close on x but far on y",
			a:        Vec2{X: 5, Y: 5},
			b:        Vec2{X: 5.1, Y: 9},
			bound:    0.8,
			expected: false,
		},
		{
			name:     "diagonal corner inside box but outside circle",
			a:        Vec2{X: 0, Y: 0},
			b:        Vec2{X: 1.5, Y: 1.5},
			bound:    0.8,
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Overlaps(tc.a, tc.b, tc.bound)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := Overlaps(tc.b, tc.a, tc.bound)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -4}

	if got := a.Add(b); got != (Vec2{X: 4, Y: -2}) {
		t.Errorf("Add() = %v, expected (4, -2)", got)
	}
	if got := a.Sub(b); got != (Vec2{X: -2, Y: 6}) {
		t.Errorf("Sub() = %v, expected (-2, 6)", got)
	}
	if got := b.Scale(2); got != (Vec2{X: 6, Y: -8}) {
		t.Errorf("Scale() = %v, expected (6, -8)", got)
	}
	if got := b.Len(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Len() = %f, expected 5", got)
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
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestHeatColor(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected Color
	}{
		{-1, ColorBrightGreen},
		{0, ColorBrightGreen},
		{0.5, ColorOrange},
		{0.99, ColorBrightRed},
		{1, ColorBrightRed},
		{7, ColorBrightRed},
	}

	for _, tc := range tests {
		if got := HeatColor(tc.ratio); got != tc.expected {
			t.Errorf("HeatColor(%f) = %d, expected %d", tc.ratio, got, tc.expected)
		}
	}
}
