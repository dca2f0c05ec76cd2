package physics

import (
	"testing"

	"github.com/milk9111/triangles/common"
)

func TestBounce(t *testing.T) {
	b := NewBounds(100, 50, 10)

	cases := []struct {
		name    string
		pos     common.Vec2
		vel     common.Vec2
		wantPos common.Vec2
		wantVel common.Vec2
		wantHit bool
	}{
		{"inside", common.V(50, 25), common.V(1, 1), common.V(50, 25), common.V(1, 1), false},
		{"left", common.V(5, 25), common.V(-3, 0), common.V(10, 25), common.V(3, 0), true},
		{"right", common.V(95, 25), common.V(3, 2), common.V(90, 25), common.V(-3, 2), true},
		{"top", common.V(50, 2), common.V(0, -4), common.V(50, 10), common.V(0, 4), true},
		{"bottom_right_corner", common.V(99, 49), common.V(2, 2), common.V(90, 40), common.V(-2, -2), true},
		{"on_edge", common.V(10, 40), common.V(-1, 1), common.V(10, 40), common.V(-1, 1), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, vel, hit := Bounce(c.pos, c.vel, b)
			if pos != c.wantPos || vel != c.wantVel || hit != c.wantHit {
				t.Fatalf("expected (%+v, %+v, %v), got (%+v, %+v, %v)", c.wantPos, c.wantVel, c.wantHit, pos, vel, hit)
			}
		})
	}
}

func TestBoundsGeometry(t *testing.T) {
	b := NewBounds(1600, 800, 12)
	if got := b.Center(); got != common.V(800, 400) {
		t.Fatalf("expected centre (800, 400), got %+v", got)
	}
	if got := b.Min(); got != common.V(12, 12) {
		t.Fatalf("expected min (12, 12), got %+v", got)
	}
	if got := b.Max(); got != common.V(1588, 788) {
		t.Fatalf("expected max (1588, 788), got %+v", got)
	}

	outer := NewBounds(1600, 800, 0).Grow(12)
	if Escaped(common.V(-12, 400), outer) {
		t.Fatalf("point on the grown edge should not have escaped")
	}
	if !Escaped(common.V(-13, 400), outer) {
		t.Fatalf("point past the grown edge should have escaped")
	}
	if !b.Contains(common.V(12, 12)) || b.Contains(common.V(11, 12)) {
		t.Fatalf("Contains should include edges only")
	}
}
