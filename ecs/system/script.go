package system

import (
	"log"

	"github.com/jakecoffman/cp"

	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
)

// ScriptSystem runs per-tick behavior expressions. Scripts see x, y, vx,
// vy, and the tick counter t; assignments to vx/vy (or x/y for bodiless
// entities) are written back. A failing script is disabled after one
// diagnostic rather than spamming every frame.
type ScriptSystem struct{}

func NewScriptSystem() *ScriptSystem {
	return &ScriptSystem{}
}

func (ss *ScriptSystem) Update(w *ecs.World) {
	if ss == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.ScriptComponent, component.TransformComponent, func(e ecs.Entity, sc *component.Script, t *component.Transform) {
		if sc.Failed || sc.Compiled == nil {
			return
		}
		sc.Ticks++

		var body *component.PhysicsBody
		if b, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && b.Body != nil && !b.Static {
			body = b
		}

		x, y := t.X, t.Y
		var vx, vy float64
		if body != nil {
			vel := body.Body.Velocity()
			vx, vy = vel.X, vel.Y
		}

		run := sc.Compiled
		_ = run.Set("x", x)
		_ = run.Set("y", y)
		_ = run.Set("vx", vx)
		_ = run.Set("vy", vy)
		_ = run.Set("t", float64(sc.Ticks))

		if err := run.Run(); err != nil {
			log.Printf("script: entity %s: %v", e, err)
			sc.Failed = true
			return
		}

		if body != nil {
			body.Body.SetVelocityVector(cp.Vector{
				X: run.Get("vx").Float(),
				Y: run.Get("vy").Float(),
			})
			return
		}
		t.X = run.Get("x").Float()
		t.Y = run.Get("y").Float()
	})
}
