package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs"
	"github.com/milk9111/triangles/ecs/component"
	"github.com/milk9111/triangles/ecs/system"
	"github.com/milk9111/triangles/physics"
	"github.com/milk9111/triangles/prefabs"
)

type app struct {
	screen tcell.Screen
	world  *ecs.World
	sound  *SoundBoard
	pilot  *system.ScriptPilot

	view    Viewport
	holds   Holds
	cursor  common.Vec2
	dynamic bool
	frame   time.Duration
}

func main() {
	specName := flag.String("spec", prefabs.DefaultSimSpec, "sim spec in prefabs/")
	scriptName := flag.String("script", "", "pilot script in prefabs/scripts/")
	mute := flag.Bool("mute", false, "disable audio")
	fps := flag.Int("fps", 60, "ticks per second")
	logPath := flag.String("log", "termfire.log", "log file (the terminal is busy drawing)")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	spec, err := prefabs.LoadSimSpec(*specName)
	if err != nil {
		log.Fatal(err)
	}
	world, err := spec.NewWorld()
	if err != nil {
		log.Fatal(err)
	}

	a := &app{world: world, dynamic: true, frame: time.Second / time.Duration(max(*fps, 1))}

	if *scriptName != "" {
		src, err := prefabs.LoadScript(*scriptName)
		if err != nil {
			log.Fatal(err)
		}
		if a.pilot, err = system.NewScriptPilot(*scriptName, src); err != nil {
			log.Fatal(err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to initialize screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	a.screen = screen
	a.resize()
	a.cursor = a.world.Config().SeekerBounds().Center()

	a.sound = NewSoundBoard()
	if !*mute {
		if err := a.sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}

	a.run()

	a.sound.Cleanup()
	screen.Fini()
}

func (a *app) resize() {
	cols, rows := a.screen.Size()
	cfg := a.world.Config()
	a.view = Viewport{Cols: cols, Rows: rows, WorldWidth: cfg.WorldWidth, WorldHeight: cfg.WorldHeight}
}

func (a *app) run() {
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !a.handleEvent(ev, time.Now()) {
				return
			}
		case <-ticker.C:
			a.step(time.Now())
		}
	}
}

func (a *app) step(now time.Time) {
	in := a.holds.Input(now)
	target := a.cursor
	if !a.dynamic {
		in = component.Input{Approach: in.Approach, Retreat: in.Retreat, OrbitCW: in.OrbitCW, OrbitCCW: in.OrbitCCW}
	}

	if a.pilot != nil {
		frame, err := a.pilot.Step(a.world)
		if err != nil {
			log.Printf("pilot stopped: %v", err)
			a.pilot = nil
		} else {
			if err := frame.Apply(a.world); err != nil {
				log.Printf("pilot command rejected: %v", err)
			}
			in, target = frame.Input, frame.Target
		}
	}

	snap := a.world.Tick(in, target)
	a.sound.Play(a.world.Events().Drain())
	drawFrame(a.screen, a.view, snap, target, a.status(snap.Stats))
}

func (a *app) status(s ecs.Stats) string {
	mode := "dynamic"
	if !a.dynamic {
		mode = "static"
	}
	pilot := ""
	if a.pilot != nil {
		pilot = " pilot=" + a.pilot.Name()
	}
	return fmt.Sprintf(" tick %d | seekers %d | bullets %d | gravity %s | bounce %v | %s%s | q quit",
		s.Tick, s.Seekers, s.Projectiles, s.Gravity, s.Bounce, mode, pilot)
}

// handleEvent applies one terminal event. It returns false to quit.
func (a *app) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.cursor = a.view.World(x, y)
		buttons := ev.Buttons()
		left := buttons&tcell.Button1 != 0
		right := buttons&tcell.Button2 != 0
		if !a.dynamic {
			if left && !a.holds.mouseFire {
				a.world.FireFromAll()
			}
			if right && !a.holds.mouseSpawn {
				a.world.SpawnSeeker(a.cursor)
			}
		}
		if buttons&tcell.Button3 != 0 {
			a.placeWell()
		}
		a.holds.SetMouse(left, right)
	case *tcell.EventKey:
		return a.handleKey(ev, now)
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey, now time.Time) bool {
	w := a.world
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.holds.Press(cmdApproach, now)
	case tcell.KeyDown:
		a.holds.Press(cmdRetreat, now)
	case tcell.KeyLeft:
		a.holds.Press(cmdOrbitCCW, now)
	case tcell.KeyRight:
		a.holds.Press(cmdOrbitCW, now)
	case tcell.KeyEnter:
		a.dynamic = !a.dynamic
	case tcell.KeyTab:
		w.CycleGravityMode()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if a.dynamic {
			a.holds.Press(cmdRemove, now)
		} else {
			w.RemoveOldestSeeker()
		}
	case tcell.KeyRune:
		return a.handleRune(ev.Rune(), now)
	}
	return true
}

func (a *app) handleRune(r rune, now time.Time) bool {
	w := a.world
	switch r {
	case 'q':
		return false
	case ' ':
		w.ClearAll()
	case 'b':
		w.ToggleBounce()
	case 'c':
		w.ClearAllProjectiles()
	case 'r':
		w.ResetFieldSources()
	case 'g':
		a.placeWell()
	case 'f':
		if a.dynamic {
			a.holds.Press(cmdFire, now)
		} else {
			w.FireFromAll()
		}
	case 's':
		if a.dynamic {
			a.holds.Press(cmdSpawn, now)
		} else {
			w.SpawnSeeker(a.cursor)
		}
	case '1', '2', '3', '4', '5':
		if err := w.SetGravityMode(physics.GravityMode(r - '1')); err != nil {
			log.Printf("gravity rejected: %v", err)
		}
	case 'i', 'k', 'j', 'l':
		a.holds.Press(map[rune]command{'i': cmdApproach, 'k': cmdRetreat, 'j': cmdOrbitCCW, 'l': cmdOrbitCW}[r], now)
	}
	return true
}

func (a *app) placeWell() {
	w := a.world
	if w.Config().Gravity == physics.GravityMultiPoint {
		w.AddFieldSource(a.cursor)
		return
	}
	if err := w.SetFieldSource(0, a.cursor); err != nil {
		log.Printf("failed to move field source: %v", err)
	}
}
