package common

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		name string
		in   float32
		want float32
	}{
		{"zero", 0, 0},
		{"in_range", 1, 1},
		{"negative_quarter", -math.Pi / 2, 3 * math.Pi / 2},
		{"full_turn", TwoPi, 0},
		{"several_turns", 7 * math.Pi, math.Pi},
		{"negative_turns", -5 * math.Pi, math.Pi},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WrapAngle(c.in)
			if got < 0 || got >= TwoPi {
				t.Fatalf("WrapAngle(%v) = %v out of [0, 2π)", c.in, got)
			}
			if !approx(got, c.want, 1e-4) {
				t.Fatalf("WrapAngle(%v): expected %v, got %v", c.in, c.want, got)
			}
		})
	}
}

func TestClampAndMapRange(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("Clamp high: got %v", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("Clamp low: got %v", got)
	}
	if got := MapRange(800, 0, 1600, 0, 1); got != 0.5 {
		t.Fatalf("MapRange: got %v", got)
	}
	if got := MapRange(3, 2, 2, 7, 9); got != 7 {
		t.Fatalf("MapRange with empty input range: got %v", got)
	}
}
