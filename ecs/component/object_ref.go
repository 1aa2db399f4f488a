package component

import "github.com/forgeplay/scenerun/scene"

// ObjectRef points back at the entity's source scene object for continued
// property reads (live gravityStrength and friends).
type ObjectRef struct {
	Object *scene.GameObject
}

var ObjectRefComponent = NewComponent[ObjectRef]()
