package system

import (
	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
)

// ControllerSystem turns unified input into movement. Horizontal response
// is the same in both modes: instantaneous ±moveSpeed, no ramp.
//
// Top-down mode (vertical movement allowed, the default) assigns vertical
// velocity directly and never jumps. Platformer mode gates jumps on
// ground contact; the optional double jump fires once per airborne stint
// and only from the keyboard edge signal.
type ControllerSystem struct{}

func NewControllerSystem() *ControllerSystem {
	return &ControllerSystem{}
}

func (cs *ControllerSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.ControlsComponent, component.InputComponent, func(e ecs.Entity, ctl *component.Controls, in *component.Input) {
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || body.Body == nil || body.Static {
			// controlled entity without a body: movement is a no-op
			return
		}

		vel := body.Body.Velocity()

		switch {
		case in.Left && !in.Right:
			vel.X = -ctl.MoveSpeed
		case in.Right && !in.Left:
			vel.X = ctl.MoveSpeed
		default:
			vel.X = 0
		}

		if ctl.AllowVertical {
			switch {
			case in.Up && !in.Down:
				vel.Y = -ctl.MoveSpeed
			case in.Down && !in.Up:
				vel.Y = ctl.MoveSpeed
			default:
				vel.Y = 0
			}
		} else {
			grounded := false
			if state, ok := ecs.Get(w, e, component.ContactStateComponent); ok {
				grounded = state.Grounded
			}
			if grounded {
				ctl.DoubleJumpSpent = false
				if in.Up || in.Jump {
					vel.Y = -ctl.JumpPower
				}
			} else if ctl.DoubleJump && !ctl.DoubleJumpSpent && in.JumpEdge {
				vel.Y = -ctl.JumpPower
				ctl.DoubleJumpSpent = true
			}
		}

		body.Body.SetVelocityVector(vel)
	})
}
