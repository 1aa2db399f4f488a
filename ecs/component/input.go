package component

// Input is the per-frame unified action set for a controlled entity.
// Left/Right/Up/Down/Jump are level-triggered and OR-combined from arrow
// keys, WASD+Space, and the virtual pad. JumpEdge is the keyboard-only
// just-pressed signal used for double jumps.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Jump  bool

	JumpEdge bool
}

var InputComponent = NewComponent[Input]()
