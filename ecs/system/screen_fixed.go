package system

import (
	"github.com/jakecoffman/cp"

	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
)

// ScreenFixedSystem re-pins fixed entities to their configured screen
// coordinates. It runs after the physics step, so whatever displacement
// integration produced this tick is overwritten before anyone can see it.
type ScreenFixedSystem struct{}

func NewScreenFixedSystem() *ScreenFixedSystem {
	return &ScreenFixedSystem{}
}

func (sf *ScreenFixedSystem) Update(w *ecs.World) {
	if sf == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.ScreenFixedComponent, component.TransformComponent, func(e ecs.Entity, fixed *component.ScreenFixed, t *component.Transform) {
		t.X = fixed.X
		t.Y = fixed.Y
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || body.Body == nil || body.Static {
			return
		}
		body.Body.SetPosition(cp.Vector{X: fixed.X, Y: fixed.Y})
		body.Body.SetVelocity(0, 0)
	})
}
