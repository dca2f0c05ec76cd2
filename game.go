package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs"
	"github.com/milk9111/triangles/ecs/component"
	"github.com/milk9111/triangles/ecs/system"
	"github.com/milk9111/triangles/physics"
	"github.com/milk9111/triangles/prefabs"
	"golang.design/x/clipboard"
)

type GameOptions struct {
	SpecName   string
	ScriptName string
	Dynamic    bool
	Watch      bool
	Debug      bool

	// ShowControls opens the controls panel at startup.
	ShowControls bool
}

type Game struct {
	world    *ecs.World
	controls *Controls
	snap     ecs.FrameSnapshot

	// dynamic repeats held actions on the trigger cadence; static mode acts
	// once per click or key press.
	dynamic bool
	help    helpOverlay
	helpUI  *ebitenui.UI
	debug   bool
	cursor  ebiten.CursorModeType

	specName   string
	scriptName string
	pilot      *system.ScriptPilot
	watcher    *prefabs.Watcher

	clipboardReady bool
	drawTime       time.Duration
}

func NewGame(opts GameOptions) (*Game, error) {
	spec, err := prefabs.LoadSimSpec(opts.SpecName)
	if err != nil {
		return nil, err
	}
	world, err := spec.NewWorld()
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:      world,
		controls:   NewControls(),
		dynamic:    opts.Dynamic,
		debug:      opts.Debug,
		specName:   opts.SpecName,
		scriptName: opts.ScriptName,
	}
	g.helpUI = NewControlsUI(g)

	if opts.ScriptName != "" {
		if err := g.loadPilot(); err != nil {
			return nil, err
		}
	}

	if opts.Watch {
		g.startWatcher()
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}

	if opts.ShowControls {
		g.help.Open()
	}
	g.syncCursor()

	g.snap = world.Snapshot()
	return g, nil
}

func (g *Game) startWatcher() {
	dirs := []string{}
	for _, dir := range []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("failed to watch %v: %v", dirs, err)
		return
	}
	g.watcher = w
}

func (g *Game) loadPilot() error {
	src, err := prefabs.LoadScript(g.scriptName)
	if err != nil {
		return err
	}
	pilot, err := system.NewScriptPilot(g.scriptName, src)
	if err != nil {
		return err
	}
	g.pilot = pilot
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// syncCursor shows the system cursor while the controls panel is up and
// hides it behind the crosshair otherwise.
func (g *Game) syncCursor() {
	mode := ebiten.CursorModeHidden
	if g.help.CursorVisible() {
		mode = ebiten.CursorModeVisible
	}
	if mode != g.cursor {
		ebiten.SetCursorMode(mode)
		g.cursor = mode
	}
}

func (g *Game) title() string {
	if g.dynamic {
		return "Triangles - Dynamic"
	}
	return "Triangles - Static"
}

func (g *Game) Update() error {
	g.applyReloads()

	if g.help.Visible() {
		g.helpUI.Update()
		g.help.Update(helpKeysPressed())
		g.syncCursor()
		// the input that dismissed the panel is not replayed into the world
		return nil
	}

	c := g.controls
	c.Update()
	g.handleCommands(c)

	var in component.Input
	target := c.Cursor
	if g.dynamic {
		in = c.Held
	} else {
		in = component.Input{
			Approach: c.Held.Approach,
			Retreat:  c.Held.Retreat,
			OrbitCW:  c.Held.OrbitCW,
			OrbitCCW: c.Held.OrbitCCW,
		}
		if c.SpawnPressed {
			g.world.SpawnSeeker(c.Cursor)
		}
		if c.FirePressed {
			g.world.FireFromAll()
		}
		if c.RemovePressed {
			g.world.RemoveOldestSeeker()
		}
	}

	if g.pilot != nil {
		frame, err := g.pilot.Step(g.world)
		if err != nil {
			log.Printf("pilot stopped: %v", err)
			g.pilot = nil
		} else {
			if err := frame.Apply(g.world); err != nil {
				log.Printf("pilot command rejected: %v", err)
			}
			in = frame.Input
			target = frame.Target
		}
	}

	g.snap = g.world.Tick(in, target)
	g.logEvents(g.world.Events())
	return nil
}

func (g *Game) handleCommands(c *Controls) {
	w := g.world

	if c.ToggleHelp {
		g.help.Open()
		g.syncCursor()
	}
	if c.ToggleDynamic {
		g.dynamic = !g.dynamic
		ebiten.SetWindowTitle(g.title())
	}
	if c.ClearAll {
		w.ClearAll()
	}
	if c.ClearProjectiles {
		w.ClearAllProjectiles()
	}
	if c.ToggleBounce {
		w.ToggleBounce()
	}
	if c.CycleGravity {
		w.CycleGravityMode()
	}
	if c.GravitySelected {
		if err := w.SetGravityMode(c.Gravity); err != nil {
			log.Printf("gravity %v rejected: %v", c.Gravity, err)
		}
	}
	if c.ResetWells {
		w.ResetFieldSources()
	}
	if c.WellPressed {
		g.placeWell(c.Cursor)
	}
	if c.CopyConfig {
		g.copyConfig()
	}
}

// placeWell moves the primary source, or adds one in multi-point mode.
func (g *Game) placeWell(p common.Vec2) {
	w := g.world
	if w.Config().Gravity == physics.GravityMultiPoint {
		w.AddFieldSource(p)
		return
	}
	if err := w.SetFieldSource(0, p); err != nil {
		log.Printf("failed to move field source: %v", err)
	}
}

func (g *Game) copyConfig() {
	data, err := prefabs.MarshalSimSpec(strings.TrimSuffix(filepath.Base(g.specName), filepath.Ext(g.specName)), g.world.Config(), g.world.FieldSources())
	if err != nil {
		log.Printf("failed to marshal config: %v", err)
		return
	}
	if !g.clipboardReady {
		log.Printf("clipboard unavailable, config:\n%s", data)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("copied config to clipboard")
}

// applyReloads drains the watcher and applies changed specs and scripts
// between ticks. A bad file is logged and the previous state stays.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch error: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	name := filepath.Base(change.Path)
	switch change.Kind {
	case prefabs.ChangeSpec:
		if name != filepath.Base(g.specName) {
			return
		}
		spec, err := prefabs.LoadSimSpec(name)
		if err != nil {
			log.Printf("failed to reload %s: %v", name, err)
			return
		}
		if err := spec.Apply(g.world); err != nil {
			log.Printf("failed to apply %s: %v", name, err)
			return
		}
		log.Printf("reloaded %s", name)
	case prefabs.ChangeScript:
		if g.scriptName == "" || strings.TrimSuffix(name, ".tengo") != strings.TrimSuffix(filepath.Base(g.scriptName), ".tengo") {
			return
		}
		if err := g.loadPilot(); err != nil {
			log.Printf("failed to reload %s: %v", name, err)
			return
		}
		log.Printf("reloaded %s", name)
	}
}

func (g *Game) logEvents(q *ecs.EventQueue) {
	if dropped := q.Dropped(); dropped > 0 && g.debug {
		log.Printf("dropped %d events", dropped)
	}
	for _, evt := range q.Drain() {
		switch evt.Type {
		case ecs.EventConfigApplied:
			cfg := g.world.Config()
			log.Printf("config: gravity=%s bounce=%v decay=%.2f", cfg.Gravity, cfg.Bounce, cfg.Decay)
		case ecs.EventWorldCleared:
			log.Printf("cleared %d seekers", evt.Count)
		default:
			if g.debug {
				log.Printf("%s %v x%d", evt.Type, evt.Entity, evt.Count)
			}
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	cfg := g.world.Config()

	drawBackground(screen, g.controls.Cursor.X, cfg.WorldWidth)
	drawBorders(screen, cfg)
	drawFieldSources(screen, cfg.Gravity, g.snap.FieldSources)
	if !g.help.Visible() {
		drawCrosshair(screen, g.controls.Cursor)
	}
	drawProjectiles(screen, g.snap.Seekers, cfg.ProjectileRadius)
	drawSeekers(screen, g.snap.Seekers)

	g.drawTime = time.Since(start)

	if g.help.Visible() {
		g.helpUI.Draw(screen)
		return
	}
	drawHUD(screen, g.controls.Cursor, g.snap.Stats, g.drawTime, g.pilot)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	cfg := g.world.Config()
	return float64(cfg.WorldWidth), float64(cfg.WorldHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
