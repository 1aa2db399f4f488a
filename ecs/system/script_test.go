package system

import (
	"math"
	"testing"

	"github.com/d5/tengo/v2"
	"github.com/jakecoffman/cp"

	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
)

func compileTestScript(t *testing.T, src string) *tengo.Compiled {
	t.Helper()
	script := tengo.NewScript([]byte(src))
	for _, name := range []string{"x", "y", "vx", "vy", "t"} {
		if err := script.Add(name, 0.0); err != nil {
			t.Fatalf("add script var %q: %v", name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		t.Fatalf("compile script: %v", err)
	}
	return compiled
}

func addScripted(t *testing.T, w *ecs.World, src string, body *cp.Body) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: 10, Y: 20, ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.ScriptComponent, component.Script{Source: src, Compiled: compileTestScript(t, src)}); err != nil {
		t.Fatalf("add script: %v", err)
	}
	if body != nil {
		if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Body: body}); err != nil {
			t.Fatalf("add body: %v", err)
		}
	}
	return e
}

func TestScriptMovesBodilessTransform(t *testing.T) {
	w := ecs.NewWorld()
	e := addScripted(t, w, "x = x + 2.0\ny = y - 1.0", nil)

	sys := NewScriptSystem()
	sys.Update(w)
	sys.Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.X != 14 || tr.Y != 18 {
		t.Fatalf("transform = (%v, %v), want (14, 18) after two ticks", tr.X, tr.Y)
	}
}

func TestScriptDrivesBodyVelocity(t *testing.T) {
	w := ecs.NewWorld()
	body := cp.NewBody(1, math.Inf(1))
	addScripted(t, w, "vx = 60.0\nif int(t) % 2 == 0 { vx = -60.0 }", body)

	sys := NewScriptSystem()

	sys.Update(w) // t = 1
	if v := body.Velocity(); v.X != 60 {
		t.Fatalf("tick 1 velocity = %v, want 60", v.X)
	}
	sys.Update(w) // t = 2
	if v := body.Velocity(); v.X != -60 {
		t.Fatalf("tick 2 velocity = %v, want -60", v.X)
	}
}

func TestScriptSeesBodyState(t *testing.T) {
	w := ecs.NewWorld()
	body := cp.NewBody(1, math.Inf(1))
	body.SetVelocity(30, 0)
	addScripted(t, w, "vx = vx + 5.0", body)

	NewScriptSystem().Update(w)

	if v := body.Velocity(); v.X != 35 {
		t.Fatalf("velocity = %v, want 35", v.X)
	}
}

func TestFailingScriptIsDisabled(t *testing.T) {
	w := ecs.NewWorld()
	e := addScripted(t, w, "x = 1 / int(t - t)", nil)

	sys := NewScriptSystem()
	sys.Update(w)

	sc, _ := ecs.Get(w, e, component.ScriptComponent)
	if !sc.Failed {
		t.Fatalf("runtime error should mark the script failed")
	}
	ticks := sc.Ticks

	// a failed script stops running
	sys.Update(w)
	if sc.Ticks != ticks {
		t.Fatalf("failed script ran again")
	}
}
