package component

// ScreenFixed pins an entity to screen coordinates. Fixed entities are
// re-positioned after every physics step and render above world content,
// unaffected by camera scroll.
type ScreenFixed struct {
	X float64
	Y float64
}

var ScreenFixedComponent = NewComponent[ScreenFixed]()
