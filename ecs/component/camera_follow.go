package component

// CameraFollow configures the camera to track this entity.
type CameraFollow struct {
	Smoothing float64
	OffsetX   float64
	OffsetY   float64
	DeadzoneW float64
	DeadzoneH float64

	// Zoom of 0 keeps the camera's current zoom.
	Zoom float64
}

var CameraFollowComponent = NewComponent[CameraFollow]()
