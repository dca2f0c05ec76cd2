package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs/component"
	"github.com/milk9111/triangles/physics"
)

// Controls holds the decoded keyboard and mouse state for one frame.
type Controls struct {
	// Cursor is the pointer in world coordinates.
	Cursor common.Vec2
	// Held is the continuous command state handed to the simulation.
	Held component.Input

	// Single-frame presses.
	SpawnPressed  bool
	FirePressed   bool
	RemovePressed bool
	WellPressed   bool

	ToggleDynamic    bool
	ToggleHelp       bool
	ToggleBounce     bool
	ClearAll         bool
	ClearProjectiles bool
	CycleGravity     bool
	ResetWells       bool
	CopyConfig       bool

	// GravitySelected is set when a number key picked Gravity this frame.
	GravitySelected bool
	Gravity         physics.GravityMode
}

var gravityKeys = []struct {
	key  ebiten.Key
	mode physics.GravityMode
}{
	{ebiten.Key1, physics.GravityOff},
	{ebiten.Key2, physics.GravityUniform},
	{ebiten.Key3, physics.GravityRadialTrue},
	{ebiten.Key4, physics.GravityRadialCapped},
	{ebiten.Key5, physics.GravityMultiPoint},
}

func NewControls() *Controls {
	return &Controls{}
}

// Update polls ebiten for this frame.
func (c *Controls) Update() {
	mx, my := ebiten.CursorPosition()
	c.Cursor = common.V(float32(mx), float32(my))

	c.Held = component.Input{
		Approach:   ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyI),
		Retreat:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyK),
		OrbitCCW:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyJ),
		OrbitCW:    ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyL),
		FireHeld:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		SpawnHeld:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		RemoveHeld: ebiten.IsKeyPressed(ebiten.KeyBackspace),
	}

	c.FirePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	c.SpawnPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	c.RemovePressed = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	c.WellPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) || inpututil.IsKeyJustPressed(ebiten.KeyG)

	c.ToggleDynamic = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	c.ToggleHelp = inpututil.IsKeyJustPressed(ebiten.KeyH)
	c.ToggleBounce = inpututil.IsKeyJustPressed(ebiten.KeyB)
	c.ClearAll = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	c.ClearProjectiles = inpututil.IsKeyJustPressed(ebiten.KeyC)
	c.CycleGravity = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	c.ResetWells = inpututil.IsKeyJustPressed(ebiten.KeyR)
	c.CopyConfig = inpututil.IsKeyJustPressed(ebiten.KeyY)

	c.GravitySelected = false
	for _, gk := range gravityKeys {
		if inpututil.IsKeyJustPressed(gk.key) {
			c.Gravity = gk.mode
			c.GravitySelected = true
		}
	}
}

// helpKeysPressed reads the inputs that dismiss the controls panel.
func helpKeysPressed() helpKeys {
	return helpKeys{
		Click: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle),
		Toggle: inpututil.IsKeyJustPressed(ebiten.KeyH),
		Escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
