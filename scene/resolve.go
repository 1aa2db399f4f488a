package scene

import (
	"fmt"

	"github.com/forgeplay/scenerun/common"
)

// Documented behavior parameter defaults.
const (
	DefaultMass      = 1.0
	DefaultBounce    = 0.0
	DefaultFriction  = 0.8
	DefaultMoveSpeed = 200.0
	DefaultJumpPower = 500.0
	DefaultSmoothing = 0.1
)

// PhysicsConfig is the resolved physics setup for one object.
type PhysicsConfig struct {
	Mass         float64
	Bounce       float64
	Friction     float64
	GravityScale float64
	WorldBounds  bool

	// EffectiveGravityScale folds in the cross-behavior coupling: a
	// controls behavior with vertical movement forces gravity to zero
	// regardless of the authored scale.
	EffectiveGravityScale float64
}

type ControlsConfig struct {
	MoveSpeed     float64
	JumpPower     float64
	AllowVertical bool
	DoubleJump    bool
}

type CameraConfig struct {
	Smoothing float64
	OffsetX   float64
	OffsetY   float64
	DeadzoneW float64
	DeadzoneH float64

	// Zoom is 0 when the author did not set one. Zero means keep the
	// camera's current zoom, so the host-provided start zoom survives.
	Zoom float64
}

type ObliqueConfig struct {
	Group           string
	OnlyWithOblique bool
	Static          bool
	Padding         float64
}

type FixedConfig struct {
	ScreenX float64
	ScreenY float64
}

type GravityConfig struct {
	Strength    float64
	MaxDistance float64
	// FromBehavior is false when strength came from the object's
	// gravityStrength property, which stays live-readable at runtime.
	FromBehavior bool
}

type ScriptConfig struct {
	Source string
}

// EffectiveConfig is the union of an object's enabled behaviors, resolved
// once at load time. Nil sections mean the behavior is absent (or its
// first occurrence is disabled).
type EffectiveConfig struct {
	Physics  *PhysicsConfig
	Controls *ControlsConfig
	Camera   *CameraConfig
	Oblique  *ObliqueConfig
	Fixed    *FixedConfig
	Gravity  *GravityConfig
	Script   *ScriptConfig
}

// Resolve computes the effective configuration for one object. Sibling
// behaviors are coupled here, in one place, instead of at call sites.
func Resolve(obj *GameObject) (*EffectiveConfig, error) {
	if obj == nil {
		return nil, fmt.Errorf("scene: resolve nil object")
	}

	cfg := &EffectiveConfig{}

	if b := obj.Behavior(BehaviorControls); b.IsEnabled() {
		p, err := DecodeParams[ControlsParams](b.Parameters)
		if err != nil {
			return nil, fmt.Errorf("scene: object %q controls params: %w", obj.ID, err)
		}
		cfg.Controls = &ControlsConfig{
			MoveSpeed:     orFloat(p.MoveSpeed, DefaultMoveSpeed),
			JumpPower:     orFloat(p.JumpPower, DefaultJumpPower),
			AllowVertical: orBool(p.AllowVerticalMovement, true),
			DoubleJump:    orBool(p.DoubleJump, false),
		}
	}

	if b := obj.Behavior(BehaviorPhysics); b.IsEnabled() {
		p, err := DecodeParams[PhysicsParams](b.Parameters)
		if err != nil {
			return nil, fmt.Errorf("scene: object %q physics params: %w", obj.ID, err)
		}
		pc := &PhysicsConfig{
			Mass:         orFloat(p.Mass, DefaultMass),
			Bounce:       orFloat(p.Bounce, DefaultBounce),
			Friction:     orFloat(p.Friction, DefaultFriction),
			GravityScale: orFloat(p.GravityScale, 1.0),
			WorldBounds:  orBool(p.WorldBounds, true),
		}
		pc.EffectiveGravityScale = pc.GravityScale
		if cfg.Controls != nil && cfg.Controls.AllowVertical {
			// free movement implies no fall
			pc.EffectiveGravityScale = 0
		}
		cfg.Physics = pc
	}

	if b := obj.Behavior(BehaviorOblique); b.IsEnabled() {
		p, err := DecodeParams[ObliqueParams](b.Parameters)
		if err != nil {
			return nil, fmt.Errorf("scene: object %q oblique params: %w", obj.ID, err)
		}
		cfg.Oblique = &ObliqueConfig{
			Group:           p.Group,
			OnlyWithOblique: orBool(p.OnlyCollideWithOblique, false),
			Static:          orBool(p.IsStatic, false),
			Padding:         orFloat(p.Padding, 0),
		}
	}

	if b := obj.Behavior(BehaviorFixed); b.IsEnabled() {
		p, err := DecodeParams[FixedParams](b.Parameters)
		if err != nil {
			return nil, fmt.Errorf("scene: object %q fixed params: %w", obj.ID, err)
		}
		cfg.Fixed = &FixedConfig{
			ScreenX: orFloat(p.ScreenX, obj.Position.X),
			ScreenY: orFloat(p.ScreenY, obj.Position.Y),
		}
	}

	if b := obj.Behavior(BehaviorCamera); b.IsEnabled() {
		p, err := DecodeParams[CameraParams](b.Parameters)
		if err != nil {
			return nil, fmt.Errorf("scene: object %q camera params: %w", obj.ID, err)
		}
		cfg.Camera = &CameraConfig{
			Smoothing: orFloat(p.Smoothing, DefaultSmoothing),
			OffsetX:   orFloat(p.OffsetX, 0),
			OffsetY:   orFloat(p.OffsetY, 0),
			DeadzoneW: orFloat(p.DeadzoneW, 0),
			DeadzoneH: orFloat(p.DeadzoneH, 0),
			Zoom:      orFloat(p.Zoom, 0),
		}
	}

	if b := obj.Behavior(BehaviorGravity); b.IsEnabled() {
		p, err := DecodeParams[GravityParams](b.Parameters)
		if err != nil {
			return nil, fmt.Errorf("scene: object %q gravity params: %w", obj.ID, err)
		}
		cfg.Gravity = &GravityConfig{
			Strength:     orFloat(p.Strength, obj.PropFloat("gravityStrength", common.DefaultZoneStrength)),
			MaxDistance:  orFloat(p.MaxDistance, common.DefaultZoneRange),
			FromBehavior: p.Strength != nil,
		}
	}

	if b := obj.Behavior(BehaviorScript); b.IsEnabled() {
		p, err := DecodeParams[ScriptParams](b.Parameters)
		if err != nil {
			return nil, fmt.Errorf("scene: object %q script params: %w", obj.ID, err)
		}
		if p.Source != "" {
			cfg.Script = &ScriptConfig{Source: p.Source}
		}
	}

	return cfg, nil
}

// ZoneStrength returns a gravity object's current strength, preferring an
// attached gravity behavior over the live gravityStrength property.
func ZoneStrength(obj *GameObject, cfg *GravityConfig) float64 {
	if cfg != nil && cfg.FromBehavior {
		return cfg.Strength
	}
	return obj.PropFloat("gravityStrength", common.DefaultZoneStrength)
}
