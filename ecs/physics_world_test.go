package ecs

import (
	"testing"

	"github.com/forgeplay/scenerun/ecs/component"
)

func newTransform(x, y float64) *component.Transform {
	return &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

func stepTicks(pw *PhysicsWorld, n int) {
	for i := 0; i < n; i++ {
		pw.BeginTick()
		pw.Step()
	}
}

func TestGravityScale(t *testing.T) {
	pw := NewPhysicsWorld()

	falling := &component.PhysicsBody{Width: 20, Height: 20, Mass: 1, GravityScale: 1}
	floating := &component.PhysicsBody{Width: 20, Height: 20, Mass: 1, GravityScale: 0}

	pw.AddBody(makeEntity(1, 0), newTransform(100, 100), falling, nil, nil, false)
	pw.AddBody(makeEntity(2, 0), newTransform(300, 100), floating, nil, nil, false)

	stepTicks(pw, 30)

	if v := falling.Body.Velocity(); v.Y <= 0 {
		t.Fatalf("body with gravity scale 1 should fall, velocity %v", v)
	}
	if v := floating.Body.Velocity(); v.Y != 0 {
		t.Fatalf("body with gravity scale 0 should hover, velocity %v", v)
	}
	if p := floating.Body.Position(); p.Y != 100 {
		t.Fatalf("hovering body drifted to %v", p)
	}
}

func TestFieldAccelerationIntegration(t *testing.T) {
	pw := NewPhysicsWorld()

	accel := &component.Acceleration{X: 200}
	body := &component.PhysicsBody{Width: 20, Height: 20, Mass: 1, GravityScale: 0}
	pw.AddBody(makeEntity(1, 0), newTransform(100, 100), body, nil, accel, false)

	stepTicks(pw, 60)

	v := body.Body.Velocity()
	if v.X < 150 || v.X > 250 {
		t.Fatalf("1s of 200px/s² should yield ~200px/s, got %v", v.X)
	}
	if v.Y != 0 {
		t.Fatalf("no vertical acceleration configured, got %v", v.Y)
	}
}

func TestCollisionGraphGatesContacts(t *testing.T) {
	cases := []struct {
		name    string
		allowed bool
	}{
		{"pair_in_graph_collides", true},
		{"pair_not_in_graph_passes_through", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pw := NewPhysicsWorld()

			faller := makeEntity(1, 0)
			platform := makeEntity(2, 0)

			fb := &component.PhysicsBody{Width: 20, Height: 20, Mass: 1, GravityScale: 1}
			plat := &component.PhysicsBody{Width: 200, Height: 20, Mass: 1, Static: true}

			pw.AddBody(faller, newTransform(100, 100), fb, nil, nil, false)
			pw.AddBody(platform, newTransform(100, 160), plat, nil, nil, false)

			var nodes []GraphNode
			if c.allowed {
				nodes = []GraphNode{{Entity: faller}, {Entity: platform}}
			} else {
				nodes = []GraphNode{
					{Entity: faller, Oblique: &component.Oblique{Group: "ghost", OnlyWithOblique: true}},
					{Entity: platform},
				}
			}
			pw.SetGraph(BuildCollisionGraph(nodes))

			stepTicks(pw, 180)

			y := fb.Body.Position().Y
			if c.allowed && y > 160 {
				t.Fatalf("body should rest on the platform, sank to y=%v", y)
			}
			if !c.allowed && y < 300 {
				t.Fatalf("body should fall through the platform, stopped at y=%v", y)
			}
		})
	}
}

func TestWorldBoundsOptIn(t *testing.T) {
	cases := []struct {
		name    string
		collide bool
	}{
		{"opted_in_stops_at_floor", true},
		{"default_falls_out", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pw := NewPhysicsWorld()
			pw.AddWorldBounds(1280, 720)

			body := &component.PhysicsBody{Width: 20, Height: 20, Mass: 1, GravityScale: 1, WorldBounds: c.collide}
			pw.AddBody(makeEntity(1, 0), newTransform(640, 650), body, nil, nil, false)

			stepTicks(pw, 240)

			y := body.Body.Position().Y
			if c.collide && y > 730 {
				t.Fatalf("opted-in body left the world, y=%v", y)
			}
			if !c.collide && y < 900 {
				t.Fatalf("body without bounds collision should fall out, y=%v", y)
			}
		})
	}
}

func TestGroundedAndGrace(t *testing.T) {
	pw := NewPhysicsWorld()

	walker := makeEntity(1, 0)
	ground := makeEntity(2, 0)

	wb := &component.PhysicsBody{Width: 20, Height: 20, Mass: 1, GravityScale: 1}
	gb := &component.PhysicsBody{Width: 400, Height: 20, Mass: 1, Static: true}

	pw.AddBody(walker, newTransform(100, 100), wb, nil, nil, true)
	pw.AddBody(ground, newTransform(100, 140), gb, nil, nil, false)
	pw.SetGraph(BuildCollisionGraph([]GraphNode{{Entity: walker}, {Entity: ground}}))

	if pw.Grounded(walker) {
		t.Fatalf("airborne body must not be grounded before landing")
	}

	stepTicks(pw, 120)

	if !pw.Grounded(walker) {
		t.Fatalf("body resting on static ground should be grounded")
	}

	// without further contact the grace window runs out
	for i := 0; i < groundGraceFrames+1; i++ {
		pw.BeginTick()
	}
	if pw.Grounded(walker) {
		t.Fatalf("grounded state should expire after the grace window")
	}
}

func TestObliquePaddingShrinksShape(t *testing.T) {
	pw := NewPhysicsWorld()

	body := &component.PhysicsBody{Width: 40, Height: 40, Mass: 1, GravityScale: 0}
	obl := &component.Oblique{Group: "oneway", Padding: 5}
	pw.AddBody(makeEntity(1, 0), newTransform(100, 100), body, obl, nil, false)

	bb := body.Shape.BB()
	if got := bb.R - bb.L; got != 30 {
		t.Fatalf("padding 5 on a 40-wide box should give width 30, got %v", got)
	}
	if got := bb.T - bb.B; got != 30 {
		t.Fatalf("padding 5 on a 40-tall box should give height 30, got %v", got)
	}
}

func TestTeardownEmptiesSpace(t *testing.T) {
	pw := NewPhysicsWorld()
	pw.AddWorldBounds(1280, 720)

	body := &component.PhysicsBody{Width: 20, Height: 20, Mass: 1, GravityScale: 1}
	pw.AddBody(makeEntity(1, 0), newTransform(100, 100), body, nil, nil, true)

	stepTicks(pw, 10)
	pw.Teardown()

	if pw.Grounded(makeEntity(1, 0)) {
		t.Fatalf("contact state must not survive teardown")
	}

	// stepping an empty space must be safe
	stepTicks(pw, 5)
}
