package component

// Sprite describes how to draw an entity. Kind selects a procedural
// placeholder; the actual image is generated lazily by the renderer so
// headless code never touches the GPU.
type Sprite struct {
	Kind   string
	Width  float64
	Height float64

	// ScreenSpace sprites ignore the camera and draw above world content.
	ScreenSpace bool
}

var SpriteComponent = NewComponent[Sprite]()
