package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs"
)

// arrows are indexed by heading octant, clockwise from up.
var arrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// Viewport maps world coordinates onto terminal cells. The last row is
// reserved for the status line.
type Viewport struct {
	Cols, Rows  int
	WorldWidth  float32
	WorldHeight float32
}

func (v Viewport) playRows() int {
	return max(v.Rows-1, 1)
}

// Cell returns the cell holding world point p and whether it is on screen.
func (v Viewport) Cell(p common.Vec2) (int, int, bool) {
	if v.Cols <= 0 || v.Rows <= 0 || v.WorldWidth <= 0 || v.WorldHeight <= 0 {
		return 0, 0, false
	}
	x := int(math.Floor(float64(p.X / v.WorldWidth * float32(v.Cols))))
	y := int(math.Floor(float64(p.Y / v.WorldHeight * float32(v.playRows()))))
	if x < 0 || y < 0 || x >= v.Cols || y >= v.playRows() {
		return x, y, false
	}
	return x, y, true
}

// World returns the world point at the centre of cell (x, y).
func (v Viewport) World(x, y int) common.Vec2 {
	if v.Cols <= 0 || v.Rows <= 0 {
		return common.Vec2{}
	}
	return common.V(
		(float32(x)+0.5)*v.WorldWidth/float32(v.Cols),
		(float32(y)+0.5)*v.WorldHeight/float32(v.playRows()),
	)
}

// arrowFor picks the glyph closest to heading h.
func arrowFor(h float32) rune {
	octant := int(math.Floor(float64(common.WrapAngle(h+common.TwoPi/16)) / (2 * math.Pi / 8)))
	return arrows[octant%8]
}

func headingColor(h float32, sat float64) tcell.Color {
	r, g, b := colorful.Hsv(float64(h)*180/math.Pi, sat, 1).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func drawFrame(screen tcell.Screen, v Viewport, snap ecs.FrameSnapshot, cursor common.Vec2, status string) {
	screen.Clear()

	border := tcell.StyleDefault.Foreground(tcell.ColorRed)
	for x := 0; x < v.Cols; x++ {
		screen.SetContent(x, 0, '─', nil, border)
		screen.SetContent(x, v.playRows()-1, '─', nil, border)
	}

	if snap.Stats.Gravity.PointBased() {
		well := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		for _, p := range snap.FieldSources {
			if x, y, ok := v.Cell(p); ok {
				screen.SetContent(x, y, '@', nil, well)
			}
		}
	}

	for _, s := range snap.Seekers {
		for _, p := range s.Projectiles {
			if x, y, ok := v.Cell(p.Position); ok {
				screen.SetContent(x, y, '•', nil, tcell.StyleDefault.Foreground(headingColor(p.Heading, 0.6)))
			}
		}
	}
	for _, s := range snap.Seekers {
		if x, y, ok := v.Cell(s.Position); ok {
			style := tcell.StyleDefault.Foreground(headingColor(s.Heading, 0.85)).Bold(true)
			screen.SetContent(x, y, arrowFor(s.Heading), nil, style)
		}
	}

	if x, y, ok := v.Cell(cursor); ok {
		screen.SetContent(x, y, '+', nil, tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true))
	}

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	x := 0
	for _, r := range status {
		if x >= v.Cols {
			break
		}
		screen.SetContent(x, v.Rows-1, r, nil, statusStyle)
		x++
	}
	for ; x < v.Cols; x++ {
		screen.SetContent(x, v.Rows-1, ' ', nil, statusStyle)
	}

	screen.Show()
}
