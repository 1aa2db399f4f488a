package component

// Caps are capability flags derived once at scene build, replacing
// per-type string branching in the systems.
type Caps struct {
	IsPhysics       bool
	IsCollidable    bool
	IsForceSource   bool
	IsForceAffected bool
	IsFixed         bool
}

var CapsComponent = NewComponent[Caps]()
