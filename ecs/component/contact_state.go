package component

// ContactState is written by the physics system's collision handlers.
type ContactState struct {
	Grounded    bool
	GroundGrace int
}

var ContactStateComponent = NewComponent[ContactState]()
