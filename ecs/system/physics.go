package system

import (
	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
)

// PhysicsSystem steps the Chipmunk space once per tick, then copies body
// positions back into transforms and ground contacts into contact states.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	pw.BeginTick()
	pw.Step()

	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Body == nil || body.Static {
			return
		}
		pos := body.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
		t.Rotation = body.Body.Angle()
	})

	ecs.ForEach2(w, component.ControlsComponent, component.PhysicsBodyComponent, func(e ecs.Entity, _ *component.Controls, _ *component.PhysicsBody) {
		grounded := pw.Grounded(e)
		if state, ok := ecs.Get(w, e, component.ContactStateComponent); ok {
			state.Grounded = grounded
			return
		}
		_ = ecs.Add(w, e, component.ContactStateComponent, component.ContactState{Grounded: grounded})
	})
}
