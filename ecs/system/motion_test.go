package system

import (
	"math"
	"testing"

	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs/component"
	"github.com/milk9111/triangles/physics"
)

func testConfig(mutate func(c *component.Config)) component.Config {
	cfg := component.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return cfg
}

func TestStepProjectile(t *testing.T) {
	cases := []struct {
		name       string
		cfg        component.Config
		sources    []common.Vec2
		start      component.Projectile
		wantPos    common.Vec2
		wantVel    common.Vec2
		wantMarked bool
	}{
		{
			name: "bounce_left_wall",
			cfg: testConfig(func(c *component.Config) {
				c.WorldWidth, c.WorldHeight, c.BorderMargin, c.Bounce = 800, 600, 10, true
			}),
			start:   component.Projectile{Position: common.V(5, 300), Velocity: common.V(-3, 0)},
			wantPos: common.V(18, 300),
			wantVel: common.V(3, 0),
		},
		{
			name:    "decay_skipped_without_gravity",
			cfg:     testConfig(nil),
			start:   component.Projectile{Position: common.V(100, 100), Velocity: common.V(10, 0)},
			wantPos: common.V(110, 100),
			wantVel: common.V(10, 0),
		},
		{
			name:    "decay_always",
			cfg:     testConfig(func(c *component.Config) { c.DecayPolicy = component.DecayAlways }),
			start:   component.Projectile{Position: common.V(100, 100), Velocity: common.V(10, 0)},
			wantPos: common.V(109.9, 100),
			wantVel: common.V(9.9, 0),
		},
		{
			name:    "capped_pull_then_decay",
			cfg:     testConfig(func(c *component.Config) { c.Gravity = physics.GravityRadialCapped }),
			sources: []common.Vec2{common.V(100, 100)},
			start:   component.Projectile{Position: common.V(100, 200)},
			wantPos: common.V(100, 199.01),
			wantVel: common.V(0, -0.99),
		},
		{
			name:    "margin_keeps_near_edge",
			cfg:     testConfig(nil),
			start:   component.Projectile{Position: common.V(5, 300), Velocity: common.V(-10, 0)},
			wantPos: common.V(-5, 300),
			wantVel: common.V(-10, 0),
		},
		{
			name:       "margin_marks_escaped",
			cfg:        testConfig(nil),
			start:      component.Projectile{Position: common.V(-5, 300), Velocity: common.V(-10, 0)},
			wantPos:    common.V(-15, 300),
			wantVel:    common.V(-10, 0),
			wantMarked: true,
		},
		{
			name:       "clamp_policy_marks_on_hit",
			cfg:        testConfig(func(c *component.Config) { c.DespawnPolicy = component.DespawnClamp }),
			start:      component.Projectile{Position: common.V(5, 300), Velocity: common.V(-3, 0)},
			wantPos:    common.V(20, 300),
			wantVel:    common.V(3, 0),
			wantMarked: true,
		},
		{
			name:       "marked_is_frozen",
			cfg:        testConfig(nil),
			start:      component.Projectile{Position: common.V(50, 50), Velocity: common.V(1, 1), Marked: true},
			wantPos:    common.V(50, 50),
			wantVel:    common.V(1, 1),
			wantMarked: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := c.start
			StepProjectile(&p, c.cfg, c.sources)
			if !nearVec(p.Position, c.wantPos, 1e-3) || !nearVec(p.Velocity, c.wantVel, 1e-3) {
				t.Fatalf("expected pos %+v vel %+v, got pos %+v vel %+v", c.wantPos, c.wantVel, p.Position, p.Velocity)
			}
			if p.Marked != c.wantMarked {
				t.Fatalf("expected marked=%v, got %v", c.wantMarked, p.Marked)
			}
		})
	}
}

func TestBouncingProjectilesStayInside(t *testing.T) {
	cfg := testConfig(func(c *component.Config) { c.Bounce = true })
	b := cfg.ProjectileBounds()
	for x := float32(-50); x <= 1650; x += 85 {
		for _, vx := range []float32{-30, -3, 0, 3, 30} {
			p := component.Projectile{Position: common.V(x, 400), Velocity: common.V(vx, -25)}
			StepProjectile(&p, cfg, nil)
			if !b.Contains(p.Position) {
				t.Fatalf("start x=%v vx=%v: %+v escaped %+v", x, vx, p.Position, b)
			}
			if p.Marked {
				t.Fatalf("bouncing projectiles are never marked")
			}
		}
	}
}

func TestProjectileBounceFollowsConfig(t *testing.T) {
	p := component.Projectile{Position: common.V(400, 400), Velocity: common.V(1, 0)}
	StepProjectile(&p, testConfig(func(c *component.Config) { c.Bounce = true }), nil)
	if !p.Bounce {
		t.Fatalf("projectile should pick up the bounce flag")
	}
	StepProjectile(&p, testConfig(nil), nil)
	if p.Bounce {
		t.Fatalf("projectile should drop the bounce flag")
	}
}

func TestSteerSeeker(t *testing.T) {
	cfg := testConfig(nil)

	t.Run("dead_zone_faces_up", func(t *testing.T) {
		s := component.NewSeeker(common.V(100, 100), cfg.SeekerSpeed)
		s.Heading = 1
		SteerSeeker(s, component.Input{Approach: true}, common.V(101, 100), cfg)
		if s.Position != common.V(100, 100) || s.Heading != 0 || s.Velocity != common.V(0, -4) {
			t.Fatalf("unexpected dead zone state %+v", s)
		}
	})

	t.Run("aligns_without_moving", func(t *testing.T) {
		s := component.NewSeeker(common.V(100, 100), cfg.SeekerSpeed)
		SteerSeeker(s, component.Input{}, common.V(500, 100), cfg)
		if s.Position != common.V(100, 100) {
			t.Fatalf("seeker should not move without commands, got %+v", s.Position)
		}
		if !nearVec(s.Velocity, common.V(4, 0), 1e-5) || !near(s.Heading, math.Pi/2, 1e-5) {
			t.Fatalf("expected velocity (4,0) heading π/2, got %+v %v", s.Velocity, s.Heading)
		}
	})

	t.Run("approach_and_retreat", func(t *testing.T) {
		target := common.V(500, 100)
		s := component.NewSeeker(common.V(100, 100), cfg.SeekerSpeed)
		SteerSeeker(s, component.Input{}, target, cfg)

		SteerSeeker(s, component.Input{Approach: true}, target, cfg)
		if !nearVec(s.Position, common.V(104, 100), 1e-4) {
			t.Fatalf("approach: got %+v", s.Position)
		}
		SteerSeeker(s, component.Input{Retreat: true}, target, cfg)
		if !nearVec(s.Position, common.V(100, 100), 1e-4) {
			t.Fatalf("retreat: got %+v", s.Position)
		}
	})

	t.Run("clamped_to_border", func(t *testing.T) {
		s := component.NewSeeker(common.V(13, 400), cfg.SeekerSpeed)
		target := common.V(800, 400)
		SteerSeeker(s, component.Input{}, target, cfg)
		SteerSeeker(s, component.Input{Retreat: true}, target, cfg)
		if s.Position.X != cfg.BorderMargin {
			t.Fatalf("expected x clamped to %v, got %v", cfg.BorderMargin, s.Position.X)
		}
	})

	t.Run("approach_into_border_strip", func(t *testing.T) {
		target := common.V(5, 400)
		s := component.NewSeeker(common.V(20, 400), cfg.SeekerSpeed)
		SteerSeeker(s, component.Input{}, target, cfg)

		prev := s.Position.Dist(target)
		for i := 0; i < 10; i++ {
			SteerSeeker(s, component.Input{Approach: true}, target, cfg)
			d := s.Position.Dist(target)
			if d > prev+1e-3 {
				t.Fatalf("tick %d: approach moved away from the target, %v -> %v at %+v", i, prev, d, s.Position)
			}
			if !nearVec(s.Velocity, common.FromHeading(s.Heading, cfg.SeekerSpeed), 1e-4) {
				t.Fatalf("tick %d: velocity %+v does not follow heading %v", i, s.Velocity, s.Heading)
			}
			prev = d
		}
		if !near(s.Position.X, cfg.BorderMargin, 1e-4) {
			t.Fatalf("expected seeker resting on the border at x=%v, got %+v", cfg.BorderMargin, s.Position)
		}
	})
}

func TestOrbitKeepsDistance(t *testing.T) {
	cfg := testConfig(nil)
	target := common.V(800, 400)

	for _, in := range []component.Input{{OrbitCW: true}, {OrbitCCW: true}} {
		s := component.NewSeeker(common.V(500, 400), cfg.SeekerSpeed)
		SteerSeeker(s, component.Input{}, target, cfg)
		start := s.Position
		for i := 0; i < 200; i++ {
			SteerSeeker(s, in, target, cfg)
			if d := s.Position.Dist(target); !near(d, 300, 0.5) {
				t.Fatalf("%+v tick %d: distance drifted to %v", in, i, d)
			}
		}
		if s.Position == start {
			t.Fatalf("%+v: seeker did not move", in)
		}
	}

	// OrbitCW turns the heading clockwise: facing right, the step goes down
	s := component.NewSeeker(common.V(500, 400), cfg.SeekerSpeed)
	SteerSeeker(s, component.Input{}, target, cfg)
	SteerSeeker(s, component.Input{OrbitCW: true}, target, cfg)
	if s.Position.Y <= 400 {
		t.Fatalf("OrbitCW should step down from the left side, got %+v", s.Position)
	}
}

func TestOrbitAngleNeverNaN(t *testing.T) {
	for _, d := range []float32{0, 0.5, 1, 2, 100} {
		a := orbitAngle(4, d)
		if math.IsNaN(float64(a)) {
			t.Fatalf("orbitAngle(4, %v) is NaN", d)
		}
	}
}

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func nearVec(a, b common.Vec2, eps float32) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps)
}
