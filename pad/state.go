// Package pad implements the on-screen virtual controller: four
// directional press-targets in a cross layout plus a circular jump
// button, all screen-fixed and drawn above world content.
package pad

// State is the shared press-state written by the widget's pointer
// handlers and read once per tick by the input system. Writes and reads
// both happen on the game loop, so plain fields are safe; the semantics
// are level-triggered (last write before the read wins).
type State struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Jump  bool
}

// Reset clears every pressed flag.
func (s *State) Reset() {
	if s == nil {
		return
	}
	*s = State{}
}
