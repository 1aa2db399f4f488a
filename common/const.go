package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

const (
	// Gravity is the base downward acceleration applied to dynamic bodies.
	// A body's effective gravity is Gravity scaled by its gravity scale.
	Gravity = 300.0

	// DefaultZoneStrength is used when a gravity object carries neither a
	// gravity behavior nor a gravityStrength property.
	DefaultZoneStrength = 500.0

	// DefaultZoneRange is the fallback maximum distance of a gravity zone.
	DefaultZoneRange = 800.0

	// ZoneFalloff converts strength/distance^2 into a usable acceleration.
	ZoneFalloff = 10000.0
)
