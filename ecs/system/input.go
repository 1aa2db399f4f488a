package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
	"github.com/forgeplay/scenerun/pad"
)

// InputSystem merges arrow keys, WASD+Space, and the virtual pad into one
// action set per controlled entity. Every action is an OR across the
// three sources. JumpEdge is deliberately keyboard-only: the virtual pad
// never qualifies for double jumps.
type InputSystem struct {
	pad *pad.State
}

func NewInputSystem(p *pad.State) *InputSystem {
	return &InputSystem{pad: p}
}

func (is *InputSystem) Update(w *ecs.World) {
	if is == nil || w == nil {
		return
	}

	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	up := ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	down := ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)

	jumpEdge := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW)

	if is.pad != nil {
		left = left || is.pad.Left
		right = right || is.pad.Right
		up = up || is.pad.Up
		down = down || is.pad.Down
		jump = jump || is.pad.Jump
	}

	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, in *component.Input) {
		in.Left = left
		in.Right = right
		in.Up = up
		in.Down = down
		in.Jump = jump
		in.JumpEdge = jumpEdge
	})
}
