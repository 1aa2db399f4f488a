package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk runtime data plus the resolved collider
// configuration for one entity.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width  float64
	Height float64

	Mass     float64
	Bounce   float64
	Friction float64

	// GravityScale multiplies common.Gravity for this body. Zero means the
	// body ignores world gravity entirely.
	GravityScale float64

	Static      bool
	WorldBounds bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
