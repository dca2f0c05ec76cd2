package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/milk9111/triangles/ecs"
	"github.com/milk9111/triangles/ecs/system"
	"github.com/milk9111/triangles/prefabs"
)

type options struct {
	Spec   string
	Script string
	Ticks  int
	Seed   int64
	Every  int
}

type report struct {
	Ticks          int
	Elapsed        time.Duration
	Phases         map[string]time.Duration
	MaxSeekers     int
	MaxProjectiles int
	Events         int
	Final          ecs.Stats
}

func main() {
	var opts options
	flag.StringVar(&opts.Spec, "spec", prefabs.DefaultSimSpec, "sim spec in prefabs/")
	flag.StringVar(&opts.Script, "script", "", "pilot script in prefabs/scripts/ (default: perlin wander)")
	flag.IntVar(&opts.Ticks, "ticks", 3600, "ticks to run")
	flag.Int64Var(&opts.Seed, "seed", 1, "wander noise seed")
	flag.IntVar(&opts.Every, "every", 600, "log progress every n ticks, 0 to disable")
	list := flag.Bool("list", false, "list the embedded pilot scripts and exit")
	flag.Parse()

	if *list {
		for _, name := range prefabs.Scripts() {
			fmt.Println(name)
		}
		return
	}

	r, err := run(opts)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("%d ticks in %v (%v/tick)", r.Ticks, r.Elapsed, r.Elapsed/time.Duration(max(r.Ticks, 1)))
	log.Printf("peak seekers %d, peak projectiles %d, events %d", r.MaxSeekers, r.MaxProjectiles, r.Events)
	names := make([]string, 0, len(r.Phases))
	for name := range r.Phases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := r.Phases[name]
		log.Printf("  %-12s %v total, %v/tick", name, d, d/time.Duration(max(r.Ticks, 1)))
	}
}

func run(opts options) (report, error) {
	spec, err := prefabs.LoadSimSpec(opts.Spec)
	if err != nil {
		return report{}, err
	}
	world, err := spec.NewWorld()
	if err != nil {
		return report{}, err
	}

	var pilot *system.ScriptPilot
	if opts.Script != "" {
		src, err := prefabs.LoadScript(opts.Script)
		if err != nil {
			return report{}, fmt.Errorf("%w (available: %s)", err, strings.Join(prefabs.Scripts(), ", "))
		}
		if pilot, err = system.NewScriptPilot(opts.Script, src); err != nil {
			return report{}, err
		}
	}
	cfg := world.Config()
	wander := newWanderPilot(opts.Seed, cfg.WorldWidth, cfg.WorldHeight)

	r := report{Phases: map[string]time.Duration{}}
	start := time.Now()
	for i := 0; i < opts.Ticks; i++ {
		next := world.TickCount() + 1
		in, target := wander.Input(next), wander.Target(next)
		if pilot != nil {
			frame, err := pilot.Step(world)
			if err != nil {
				return r, err
			}
			if err := frame.Apply(world); err != nil {
				return r, fmt.Errorf("bench: tick %d: %w", next, err)
			}
			in, target = frame.Input, frame.Target
		}

		snap := world.Tick(in, target)
		r.Ticks++
		r.Events += len(world.Events().Drain())
		r.MaxSeekers = max(r.MaxSeekers, snap.Stats.Seekers)
		r.MaxProjectiles = max(r.MaxProjectiles, snap.Stats.Projectiles)
		for _, p := range snap.Stats.Phases {
			r.Phases[p.Name] += p.Duration
		}
		r.Final = snap.Stats

		if opts.Every > 0 && r.Ticks%opts.Every == 0 {
			log.Printf("tick %d: seekers %d, projectiles %d, gravity %s", snap.Stats.Tick, snap.Stats.Seekers, snap.Stats.Projectiles, snap.Stats.Gravity)
		}
	}
	r.Elapsed = time.Since(start)
	return r, nil
}
