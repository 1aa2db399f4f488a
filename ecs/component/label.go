package component

// Label is world-space text attached to an entity (zone strength readout).
type Label struct {
	Text    string
	OffsetY float64
}

var LabelComponent = NewComponent[Label]()
