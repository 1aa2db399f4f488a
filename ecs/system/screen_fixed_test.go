package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
)

func TestScreenFixedPinsTransform(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: 500, Y: 500, ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.ScreenFixedComponent, component.ScreenFixed{X: 60, Y: 48}); err != nil {
		t.Fatalf("add fixed: %v", err)
	}

	NewScreenFixedSystem().Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.X != 60 || tr.Y != 48 {
		t.Fatalf("transform = (%v, %v), want pinned (60, 48)", tr.X, tr.Y)
	}
}

func TestScreenFixedResetsBody(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: 321, Y: 654})
	body.SetVelocity(40, -70)

	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: 321, Y: 654, ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.ScreenFixedComponent, component.ScreenFixed{X: 60, Y: 48}); err != nil {
		t.Fatalf("add fixed: %v", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Body: body}); err != nil {
		t.Fatalf("add body: %v", err)
	}

	NewScreenFixedSystem().Update(w)

	if p := body.Position(); p.X != 60 || p.Y != 48 {
		t.Fatalf("body position = %+v, want pinned (60, 48)", p)
	}
	if v := body.Velocity(); v.X != 0 || v.Y != 0 {
		t.Fatalf("body velocity = %+v, want zero", v)
	}
}
