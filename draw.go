package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs"
	"github.com/milk9111/triangles/ecs/component"
	"github.com/milk9111/triangles/ecs/system"
	"github.com/milk9111/triangles/physics"
)

// seekerShape is the triangle outline in local space, nose up.
var seekerShape = [3]common.Vec2{{X: 0, Y: -45}, {X: -30, Y: 36}, {X: 30, Y: 36}}

var (
	borderRed  = color.NRGBA{R: 0xff, A: 0xff}
	wallBlack  = color.NRGBA{A: 0xff}
	wellFill   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	whiteImage = ebiten.NewImage(3, 3)
	// whiteSubImage avoids sampling the edge pixels when stretched.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// headingHue maps a heading in radians onto a hue in degrees.
func headingHue(h float32) float64 {
	return math.Mod(float64(h)*180/math.Pi, 360)
}

func drawBackground(screen *ebiten.Image, cursorX, width float32) {
	hue := common.MapRange(common.Clamp(cursorX, 0, width), 0, width, 0, 360)
	screen.Fill(colorful.Hsv(float64(hue), 0.2, 1))
}

func drawBorders(screen *ebiten.Image, cfg component.Config) {
	w, h := cfg.WorldWidth, cfg.WorldHeight
	m := cfg.BorderMargin
	if cfg.Bounce {
		vector.FillRect(screen, 0, 0, w, m, wallBlack, false)
		vector.FillRect(screen, 0, 0, m, h, wallBlack, false)
		vector.FillRect(screen, 0, h-m, w, m, wallBlack, false)
		vector.FillRect(screen, w-m, 0, m, h, wallBlack, false)
	}
	vector.StrokeRect(screen, 0, 0, w, h, 2, borderRed, false)
}

func drawFieldSources(screen *ebiten.Image, mode physics.GravityMode, sources []common.Vec2) {
	if !mode.PointBased() {
		return
	}
	r := float32(4)
	if mode == physics.GravityMultiPoint {
		r = 20
	}
	for _, p := range sources {
		vector.FillCircle(screen, p.X, p.Y, r, wellFill, true)
		vector.StrokeCircle(screen, p.X, p.Y, r, 2, wallBlack, true)
	}
}

func drawCrosshair(screen *ebiten.Image, p common.Vec2) {
	vector.StrokeLine(screen, p.X, p.Y-10, p.X, p.Y+10, 2, borderRed, true)
	vector.StrokeLine(screen, p.X-10, p.Y, p.X+10, p.Y, 2, borderRed, true)
}

func drawProjectiles(screen *ebiten.Image, seekers []ecs.SeekerView, radius float32) {
	for _, s := range seekers {
		for _, p := range s.Projectiles {
			sat := common.MapRange(common.Clamp(p.Speed, 0, 20), 0, 20, 0.5, 1)
			c := colorful.Hsv(headingHue(p.Heading), float64(sat), 0.85)
			vector.FillCircle(screen, p.Position.X, p.Position.Y, radius/2, c, true)
			vector.StrokeCircle(screen, p.Position.X, p.Position.Y, radius/2, 1, wallBlack, true)
		}
	}
}

func drawSeekers(screen *ebiten.Image, seekers []ecs.SeekerView) {
	vs := make([]ebiten.Vertex, 0, len(seekers)*3)
	is := make([]uint16, 0, len(seekers)*3)

	flush := func() {
		if len(vs) == 0 {
			return
		}
		screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
		vs, is = vs[:0], is[:0]
	}

	for _, s := range seekers {
		r, g, b := colorful.Hsv(headingHue(s.Heading), 0.85, 1).RGB255()
		var pts [3]common.Vec2
		for i, v := range seekerShape {
			pts[i] = s.Position.Add(v.Rotate(s.Heading))
		}
		base := uint16(len(vs))
		for _, p := range pts {
			vs = append(vs, ebiten.Vertex{
				DstX: p.X, DstY: p.Y,
				SrcX: 1, SrcY: 1,
				ColorR: float32(r) / 255, ColorG: float32(g) / 255, ColorB: float32(b) / 255, ColorA: 1,
			})
		}
		is = append(is, base, base+1, base+2)
		for i := range pts {
			q := pts[(i+1)%3]
			vector.StrokeLine(screen, pts[i].X, pts[i].Y, q.X, q.Y, 3, wallBlack, true)
		}
		// uint16 indices cap a batch
		if len(vs) > math.MaxUint16-3 {
			flush()
		}
	}
	flush()
}

func drawHUD(screen *ebiten.Image, cursor common.Vec2, stats ecs.Stats, drawTime time.Duration, pilot *system.ScriptPilot) {
	lines := []string{
		fmt.Sprintf("X: %.0f", cursor.X),
		fmt.Sprintf("Y: %.0f", cursor.Y),
		fmt.Sprintf("Triangle Count: %d", stats.Seekers),
		fmt.Sprintf("Bullet Count: %d", stats.Projectiles),
	}
	for _, name := range []string{"seekers", "projectiles", "compaction"} {
		if p, ok := stats.Phase(name); ok {
			lines = append(lines, fmt.Sprintf("%s: ~%.4fms", name, float64(p.Duration.Microseconds())/1000))
		}
	}
	lines = append(lines,
		fmt.Sprintf("draw: ~%.4fms", float64(drawTime.Microseconds())/1000),
		fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()),
		fmt.Sprintf("Bounce: %s", onOff(stats.Bounce)),
	)
	if stats.Gravity == physics.GravityOff {
		lines = append(lines, "Decay: OFF")
	} else {
		lines = append(lines, fmt.Sprintf("Decay: %.2f", stats.Decay))
	}
	lines = append(lines, fmt.Sprintf("Gravity Mode: %s", stats.Gravity))
	if pilot != nil {
		lines = append(lines, fmt.Sprintf("Pilot: %s", pilot.Name()))
	}

	y := 50
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 50, y)
		y += 20
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
