package component

// Acceleration is the force-field acceleration applied to an entity this
// tick. Zones overwrite it in registration order; it is not a sum.
type Acceleration struct {
	X float64
	Y float64
}

var AccelerationComponent = NewComponent[Acceleration]()
