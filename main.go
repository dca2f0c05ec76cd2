package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/triangles/prefabs"
)

func main() {
	specName := flag.String("spec", prefabs.DefaultSimSpec, "sim spec in prefabs/ (embedded copy used if not on disk)")
	scriptName := flag.String("script", "", "pilot script in prefabs/scripts/ to drive the simulation")
	static := flag.Bool("static", false, "start in static mode (one action per click)")
	watch := flag.Bool("watch", true, "hot reload prefabs/ on change")
	debug := flag.Bool("debug", false, "log every lifecycle event")
	showControls := flag.Bool("controls", true, "show the controls panel at startup")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(GameOptions{
		SpecName:   *specName,
		ScriptName: *scriptName,
		Dynamic:    !*static,
		Watch:      *watch,
		Debug:      *debug,

		ShowControls: *showControls,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	cfg := game.world.Config()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle(game.title())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
