package system

import (
	"math"
	"testing"

	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs"
	"github.com/milk9111/triangles/ecs/component"
	"github.com/milk9111/triangles/physics"
)

func newTestSimulation(t *testing.T, mutate func(c *component.Config)) *ecs.World {
	t.Helper()
	w, err := NewSimulation(testConfig(mutate))
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return w
}

func TestTriggerCadence(t *testing.T) {
	cases := []struct {
		name        string
		in          component.Input
		ticks       int
		preSpawn    int
		wantSeekers int
		wantShots   int
	}{
		{"spawn_every_fourth", component.Input{SpawnHeld: true}, 9, 0, 2, 0},
		{"fire_every_fourth", component.Input{FireHeld: true}, 12, 1, 1, 3},
		{"remove_every_fourth", component.Input{RemoveHeld: true}, 8, 3, 1, 0},
		{"nothing_held", component.Input{}, 12, 2, 2, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestSimulation(t, nil)
			for i := 0; i < c.preSpawn; i++ {
				w.SpawnSeeker(common.V(float32(100+100*i), 100))
			}
			for i := 0; i < c.ticks; i++ {
				// a moving target so held spawns are not deduplicated
				w.Tick(c.in, common.V(float32(400+10*i), 400))
			}
			if w.SeekerCount() != c.wantSeekers {
				t.Fatalf("expected %d seekers, got %d", c.wantSeekers, w.SeekerCount())
			}
			if w.ProjectileCount() != c.wantShots {
				t.Fatalf("expected %d projectiles, got %d", c.wantShots, w.ProjectileCount())
			}
		})
	}
}

func TestHeldSpawnOnStillPointerStacksOnce(t *testing.T) {
	w := newTestSimulation(t, nil)
	for i := 0; i < 40; i++ {
		w.Tick(component.Input{SpawnHeld: true}, common.V(300, 300))
	}
	if w.SeekerCount() != 1 {
		t.Fatalf("expected a single seeker, got %d", w.SeekerCount())
	}
}

func TestPopulationStaysWithinCaps(t *testing.T) {
	w := newTestSimulation(t, func(c *component.Config) {
		c.SeekerCap = 5
		c.ProjectileCap = 40
		c.TriggerInterval = 1
		c.Bounce = true
		c.Gravity = physics.GravityMultiPoint
	})
	w.AddFieldSource(common.V(200, 200))

	in := component.Input{SpawnHeld: true, FireHeld: true, OrbitCW: true}
	for i := 0; i < 500; i++ {
		target := common.V(float32(100+(i*37)%1400), float32(100+(i*53)%600))
		if i%50 == 25 {
			w.ToggleBounce()
		}
		snap := w.Tick(in, target)
		if snap.Stats.Seekers > 5 {
			t.Fatalf("tick %d: %d seekers exceeds cap", i, snap.Stats.Seekers)
		}
		if snap.Stats.Projectiles > 40 {
			t.Fatalf("tick %d: %d projectiles exceeds cap", i, snap.Stats.Projectiles)
		}
		for _, s := range snap.Seekers {
			if s.Heading < 0 || s.Heading >= common.TwoPi {
				t.Fatalf("tick %d: heading %v out of range", i, s.Heading)
			}
		}
	}

	w.ClearAll()
	w.ClearAll()
	if w.SeekerCount() != 0 || w.ProjectileCount() != 0 {
		t.Fatalf("ClearAll should leave the world empty")
	}
}

func TestProjectilesDespawnOutsideWorld(t *testing.T) {
	w := newTestSimulation(t, nil)
	e := w.SpawnSeeker(common.V(50, 50))
	w.FireProjectile(e)
	w.Events().Drain()

	// fired straight up from y=10 at speed 10; gone once past -12
	for i := 0; i < 4; i++ {
		w.Tick(component.Input{}, common.V(50, 50))
	}
	if w.ProjectileCount() != 0 {
		t.Fatalf("expected the projectile to despawn, %d left", w.ProjectileCount())
	}

	despawned := 0
	for _, evt := range w.Events().Drain() {
		if evt.Type == ecs.EventProjectilesDespawned {
			despawned += evt.Count
		}
	}
	if despawned != 1 {
		t.Fatalf("expected one despawn event, got %d", despawned)
	}
}

func TestSystemPhasesAreTimed(t *testing.T) {
	w := newTestSimulation(t, nil)
	snap := w.Tick(component.Input{}, common.V(0, 0))
	for _, name := range []string{"projectiles", "seekers", "compaction", "triggers"} {
		if _, ok := snap.Stats.Phase(name); !ok {
			t.Fatalf("missing timing for %q", name)
		}
	}
}

func TestUniformPullsTowardPrimarySource(t *testing.T) {
	w := newTestSimulation(t, func(c *component.Config) {
		c.Gravity = physics.GravityUniform
	})
	if w.Config().PointerWell {
		t.Fatalf("pointer well should be opt-in")
	}
	if err := w.SetFieldSource(0, common.V(100, 200)); err != nil {
		t.Fatalf("SetFieldSource: %v", err)
	}

	e := w.SpawnSeeker(common.V(800, 400))
	if !w.FireProjectile(e) {
		t.Fatalf("FireProjectile rejected")
	}

	// the pointer sits on the opposite side from the source
	snap := w.Tick(component.Input{}, common.V(1500, 700))
	if len(snap.Seekers) != 1 || len(snap.Seekers[0].Projectiles) != 1 {
		t.Fatalf("expected one seeker with one projectile, got %+v", snap.Seekers)
	}
	// fired straight up; a pull to the left tilts the heading past π
	if h := snap.Seekers[0].Projectiles[0].Heading; h <= math.Pi || h >= common.TwoPi {
		t.Fatalf("expected a pull toward (100,200), got heading %v", h)
	}
}

func TestResizeAppliesOnNextTick(t *testing.T) {
	t.Run("despawn_and_seeker_clamp", func(t *testing.T) {
		w := newTestSimulation(t, nil)
		e := w.SpawnSeeker(common.V(1500, 400))
		w.FireProjectile(e)

		if err := w.SetWorldBounds(1000, 500); err != nil {
			t.Fatalf("SetWorldBounds: %v", err)
		}
		snap := w.Tick(component.Input{}, common.V(500, 250))
		if snap.Stats.Projectiles != 0 {
			t.Fatalf("projectile outside the new world should despawn, got %d", snap.Stats.Projectiles)
		}
		if got := snap.Seekers[0].Position; got != common.V(988, 400) {
			t.Fatalf("seeker should be clamped into the new bounds, got %+v", got)
		}
	})

	t.Run("bounce_clamp", func(t *testing.T) {
		w := newTestSimulation(t, func(c *component.Config) { c.Bounce = true })
		e := w.SpawnSeeker(common.V(1400, 300))
		w.FireProjectile(e)

		if err := w.SetWorldBounds(1000, 500); err != nil {
			t.Fatalf("SetWorldBounds: %v", err)
		}
		snap := w.Tick(component.Input{}, common.V(500, 250))
		if snap.Stats.Projectiles != 1 {
			t.Fatalf("bouncing projectile should stay, got %d", snap.Stats.Projectiles)
		}
		if got := snap.Seekers[0].Projectiles[0].Position.X; got != 980 {
			t.Fatalf("projectile should be clamped to x=980, got %v", got)
		}
	})
}
