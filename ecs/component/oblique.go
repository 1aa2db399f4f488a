package component

// Oblique carries collision-group metadata for the collision graph.
type Oblique struct {
	Group           string
	OnlyWithOblique bool
	Static          bool
	Padding         float64
}

var ObliqueComponent = NewComponent[Oblique]()
