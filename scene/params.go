package scene

import "gopkg.in/yaml.v3"

// Behavior parameter shapes. Pointer fields distinguish "unset" from an
// explicit zero so the documented defaults apply only when the author
// said nothing.

type PhysicsParams struct {
	Mass         *float64 `yaml:"mass"`
	Bounce       *float64 `yaml:"bounce"`
	Friction     *float64 `yaml:"friction"`
	GravityScale *float64 `yaml:"gravityScale"`
	WorldBounds  *bool    `yaml:"collideWorldBounds"`
}

type ControlsParams struct {
	MoveSpeed *float64 `yaml:"moveSpeed"`
	JumpPower *float64 `yaml:"jumpPower"`
	// AllowVerticalMovement defaults to true when unset, not false.
	AllowVerticalMovement *bool `yaml:"allowVerticalMovement"`
	DoubleJump            *bool `yaml:"doubleJump"`
}

type CameraParams struct {
	Smoothing *float64 `yaml:"smoothing"`
	OffsetX   *float64 `yaml:"offsetX"`
	OffsetY   *float64 `yaml:"offsetY"`
	DeadzoneW *float64 `yaml:"deadzoneWidth"`
	DeadzoneH *float64 `yaml:"deadzoneHeight"`
	Zoom      *float64 `yaml:"zoom"`
}

type ObliqueParams struct {
	Group                  string   `yaml:"group"`
	OnlyCollideWithOblique *bool    `yaml:"onlyCollideWithOblique"`
	IsStatic               *bool    `yaml:"isStatic"`
	Padding                *float64 `yaml:"padding"`
}

type FixedParams struct {
	ScreenX *float64 `yaml:"screenX"`
	ScreenY *float64 `yaml:"screenY"`
}

type GravityParams struct {
	Strength    *float64 `yaml:"strength"`
	MaxDistance *float64 `yaml:"maxDistance"`
}

type ScriptParams struct {
	Source string `yaml:"source"`
}

// DecodeParams converts a behavior's open parameter map into a typed
// shape by re-marshaling through yaml, the same way prefab component
// specs are decoded.
func DecodeParams[T any](raw map[string]any) (T, error) {
	var out T
	if raw == nil {
		return out, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return out, err
	}
	if err := yaml.Unmarshal(b, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func orFloat(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

func orBool(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
