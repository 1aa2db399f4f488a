package component

// Controls is the resolved movement configuration for a controlled entity.
type Controls struct {
	MoveSpeed float64
	JumpPower float64

	// AllowVertical selects top-down movement (true) or platformer
	// jumping (false). Unset in the scene file means true.
	AllowVertical bool

	DoubleJump bool

	// DoubleJumpSpent is runtime state: set when the airborne jump fires,
	// cleared on ground contact.
	DoubleJumpSpent bool
}

var ControlsComponent = NewComponent[Controls]()
