package component

// GravityZone marks an entity as a distance-based force source.
// Positive strength attracts, negative repels.
type GravityZone struct {
	Strength    float64
	MaxDistance float64

	// FromBehavior records that strength came from an explicit gravity
	// behavior. Otherwise the zone re-reads its object's gravityStrength
	// property every tick.
	FromBehavior bool
}

var GravityZoneComponent = NewComponent[GravityZone]()
