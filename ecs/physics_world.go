package ecs

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/forgeplay/scenerun/common"
	"github.com/forgeplay/scenerun/ecs/component"
)

const (
	collisionTypeEntity cp.CollisionType = iota + 1
	collisionTypeGroundSensor
	collisionTypeBounds
)

const groundGraceFrames = 6

// TickDelta is the fixed simulation step, one per rendered frame.
const TickDelta = 1.0 / 60.0

type contactRecord struct {
	grounded    bool
	groundGrace int
}

// PhysicsWorld owns the Chipmunk space, the shape↔entity mapping, and the
// collision graph that gates entity-entity contacts.
type PhysicsWorld struct {
	space         *cp.Space
	graph         *CollisionGraph
	handlersReady bool

	shapeToEntity  map[*cp.Shape]Entity
	groundToEntity map[*cp.Shape]Entity
	worldBounds    map[Entity]bool
	contacts       map[Entity]*contactRecord

	bodies      []*cp.Body
	shapes      []*cp.Shape
	boundShapes []*cp.Shape
}

// NewPhysicsWorld creates an empty space with base downward gravity.
// Per-body gravity scaling happens in each body's velocity update func.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	pw := &PhysicsWorld{
		space:          space,
		shapeToEntity:  make(map[*cp.Shape]Entity),
		groundToEntity: make(map[*cp.Shape]Entity),
		worldBounds:    make(map[Entity]bool),
		contacts:       make(map[Entity]*contactRecord),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetGraph installs the collision graph. Pairs absent from the graph pass
// through each other at solve time.
func (pw *PhysicsWorld) SetGraph(g *CollisionGraph) {
	if pw == nil {
		return
	}
	pw.graph = g
}

// Graph returns the installed collision graph.
func (pw *PhysicsWorld) Graph() *CollisionGraph {
	if pw == nil {
		return nil
	}
	return pw.graph
}

// AddBody creates the Chipmunk body and shape for an entity and fills in
// body.Body/body.Shape. accel, when non-nil, is read during velocity
// integration as this tick's force-field acceleration. withGroundSensor
// adds the foot sensor used for platformer ground checks.
func (pw *PhysicsWorld) AddBody(e Entity, t *component.Transform, body *component.PhysicsBody, obl *component.Oblique, accel *component.Acceleration, withGroundSensor bool) {
	if pw == nil || pw.space == nil || t == nil || body == nil {
		return
	}

	width := body.Width * math.Abs(nonZero(t.ScaleX))
	height := body.Height * math.Abs(nonZero(t.ScaleY))
	if obl != nil {
		// shrink symmetrically by padding px per side
		width = math.Max(1, width-2*obl.Padding)
		height = math.Max(1, height-2*obl.Padding)
	}

	static := body.Static || (obl != nil && obl.Static)

	if static {
		bb := cp.BB{
			L: t.X - width/2,
			B: t.Y - height/2,
			R: t.X + width/2,
			T: t.Y + height/2,
		}
		shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
		shape.SetFriction(body.Friction)
		shape.SetElasticity(body.Bounce)
		shape.SetCollisionType(collisionTypeEntity)
		pw.space.AddShape(shape)

		pw.shapeToEntity[shape] = e
		pw.shapes = append(pw.shapes, shape)

		body.Body = pw.space.StaticBody
		body.Shape = shape
		body.Static = true
		return
	}

	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}
	cpBody := cp.NewBody(mass, math.Inf(1))
	cpBody.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	cpBody.SetAngle(t.Rotation)
	cpBody.SetAngularVelocity(0)

	scale := body.GravityScale
	cpBody.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		g := gravity.Mult(scale)
		if accel != nil {
			g = g.Add(cp.Vector{X: accel.X, Y: accel.Y})
		}
		cp.BodyUpdateVelocity(b, g, damping, dt)
	})

	shape := cp.NewBox(cpBody, width, height, 0)
	shape.SetFriction(body.Friction)
	shape.SetElasticity(body.Bounce)
	shape.SetCollisionType(collisionTypeEntity)

	pw.space.AddBody(cpBody)
	pw.space.AddShape(shape)

	pw.shapeToEntity[shape] = e
	pw.bodies = append(pw.bodies, cpBody)
	pw.shapes = append(pw.shapes, shape)
	pw.worldBounds[e] = body.WorldBounds

	if withGroundSensor {
		bb := cp.BB{
			L: -width * 0.45,
			B: height / 2.0,
			R: width * 0.45,
			T: height/2.0 + 2,
		}
		ground := cp.NewBox2(cpBody, bb, 0)
		ground.SetSensor(true)
		ground.SetCollisionType(collisionTypeGroundSensor)
		pw.space.AddShape(ground)
		pw.groundToEntity[ground] = e
		pw.shapes = append(pw.shapes, ground)
	}

	body.Body = cpBody
	body.Shape = shape
}

// AddWorldBounds surrounds the world rect with solid segments. Only
// bodies whose physics behavior asked for world-bounds collision touch
// them; everything else passes through.
func (pw *PhysicsWorld) AddWorldBounds(w, h float64) {
	if pw == nil || pw.space == nil || w <= 0 || h <= 0 {
		return
	}
	thickness := 1.0
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: w, Y: 0}},
		{a: cp.Vector{X: 0, Y: h}, b: cp.Vector{X: w, Y: h}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: h}},
		{a: cp.Vector{X: w, Y: 0}, b: cp.Vector{X: w, Y: h}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeBounds)
		pw.space.AddShape(shape)
		pw.boundShapes = append(pw.boundShapes, shape)
	}
}

// BeginTick ages ground-contact grace counters. Handlers refresh them
// during the step that follows.
func (pw *PhysicsWorld) BeginTick() {
	if pw == nil {
		return
	}
	for _, rec := range pw.contacts {
		rec.grounded = false
		if rec.groundGrace > 0 {
			rec.groundGrace--
		}
	}
}

// Step advances the simulation by one fixed tick.
func (pw *PhysicsWorld) Step() {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(TickDelta)
}

// Grounded reports whether the entity's foot sensor touched something
// solid this tick or within the grace window.
func (pw *PhysicsWorld) Grounded(e Entity) bool {
	if pw == nil {
		return false
	}
	rec := pw.contacts[e]
	if rec == nil {
		return false
	}
	return rec.grounded || rec.groundGrace > 0
}

// Teardown removes every body and shape from the space. Callers observe
// either the fully built or the fully torn down world, never a partial.
func (pw *PhysicsWorld) Teardown() {
	if pw == nil || pw.space == nil {
		return
	}
	for _, s := range pw.shapes {
		pw.space.RemoveShape(s)
	}
	for _, s := range pw.boundShapes {
		pw.space.RemoveShape(s)
	}
	for _, b := range pw.bodies {
		pw.space.RemoveBody(b)
	}
	pw.shapes = nil
	pw.boundShapes = nil
	pw.bodies = nil
	pw.shapeToEntity = make(map[*cp.Shape]Entity)
	pw.groundToEntity = make(map[*cp.Shape]Entity)
	pw.worldBounds = make(map[Entity]bool)
	pw.contacts = make(map[Entity]*contactRecord)
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	// Entity-entity contacts are gated by the collision graph.
	pairHandler := pw.space.NewCollisionHandler(collisionTypeEntity, collisionTypeEntity)
	pairHandler.UserData = pw
	pairHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil || world.graph == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		a, okA := world.shapeToEntity[shapeA]
		b, okB := world.shapeToEntity[shapeB]
		if !okA || !okB {
			return true
		}
		return world.graph.Allowed(a, b)
	}

	// World bounds only stop bodies that opted in.
	boundsHandler := pw.space.NewCollisionHandler(collisionTypeEntity, collisionTypeBounds)
	boundsHandler.UserData = pw
	boundsHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		if e, ok := world.shapeToEntity[shapeA]; ok {
			return world.worldBounds[e]
		}
		if e, ok := world.shapeToEntity[shapeB]; ok {
			return world.worldBounds[e]
		}
		return true
	}

	groundPreSolve := func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		owner, okA := world.groundToEntity[shapeA]
		other := shapeB
		if !okA {
			var okB bool
			owner, okB = world.groundToEntity[shapeB]
			if !okB {
				return true
			}
			other = shapeA
		}
		// respect graph pass-throughs for the foot sensor too
		if otherEnt, ok := world.shapeToEntity[other]; ok {
			if world.graph != nil && !world.graph.Allowed(owner, otherEnt) {
				return true
			}
		} else if !world.worldBounds[owner] {
			return true
		}
		rec := world.contacts[owner]
		if rec == nil {
			rec = &contactRecord{}
			world.contacts[owner] = rec
		}
		rec.grounded = true
		rec.groundGrace = groundGraceFrames
		return true
	}

	groundEntity := pw.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeEntity)
	groundEntity.UserData = pw
	groundEntity.PreSolveFunc = groundPreSolve

	groundBounds := pw.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeBounds)
	groundBounds.UserData = pw
	groundBounds.PreSolveFunc = groundPreSolve

	pw.handlersReady = true
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
