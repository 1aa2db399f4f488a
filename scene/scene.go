package scene

// SceneDescription is the static scene shape produced by the editor and
// consumed by the runtime.
type SceneDescription struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Objects []GameObject `yaml:"objects"`
}

// ObjectType enumerates the object kinds the runtime knows how to build.
type ObjectType string

const (
	ObjectPlayer      ObjectType = "player"
	ObjectPlatform    ObjectType = "platform"
	ObjectCollectible ObjectType = "collectible"
	ObjectEnemy       ObjectType = "enemy"
	ObjectController  ObjectType = "controller"
	ObjectBoundary    ObjectType = "boundary"
	ObjectGravity     ObjectType = "gravity"
	ObjectSprite      ObjectType = "sprite"
)

// KnownObjectType reports whether the runtime can build t.
func KnownObjectType(t ObjectType) bool {
	switch t {
	case ObjectPlayer, ObjectPlatform, ObjectCollectible, ObjectEnemy,
		ObjectController, ObjectBoundary, ObjectGravity, ObjectSprite:
		return true
	}
	return false
}

type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GameObject is one authored object. Rotation is in degrees; the loader
// converts to radians. Properties is an open key/value bag the runtime
// keeps reading after build (live gravityStrength).
type GameObject struct {
	ID         string         `yaml:"id"`
	Type       ObjectType     `yaml:"type"`
	Position   Vec2           `yaml:"position"`
	Scale      Vec2           `yaml:"scale"`
	Rotation   float64        `yaml:"rotation"`
	Properties map[string]any `yaml:"properties"`
	Behaviors  []GameBehavior `yaml:"behaviors"`
}

// BehaviorType enumerates attachable behavior kinds.
type BehaviorType string

const (
	BehaviorPhysics  BehaviorType = "physics"
	BehaviorControls BehaviorType = "controls"
	BehaviorCamera   BehaviorType = "camera"
	BehaviorOblique  BehaviorType = "oblique"
	BehaviorFixed    BehaviorType = "fixed"
	BehaviorGravity  BehaviorType = "gravity"
	BehaviorScript   BehaviorType = "script"
)

// GameBehavior is a named, parameterized capability on an object.
// A nil Enabled means enabled.
type GameBehavior struct {
	ID         string         `yaml:"id"`
	Type       BehaviorType   `yaml:"type"`
	Name       string         `yaml:"name"`
	Enabled    *bool          `yaml:"enabled"`
	Parameters map[string]any `yaml:"parameters"`
}

// IsEnabled treats an absent flag as true.
func (b *GameBehavior) IsEnabled() bool {
	return b != nil && (b.Enabled == nil || *b.Enabled)
}

// Behavior returns the first behavior of the given type in list order, or
// nil. Duplicates of the same type are never merged; the first one wins
// even when it is disabled.
func (o *GameObject) Behavior(t BehaviorType) *GameBehavior {
	if o == nil {
		return nil
	}
	for i := range o.Behaviors {
		if o.Behaviors[i].Type == t {
			return &o.Behaviors[i]
		}
	}
	return nil
}

// PropFloat reads a numeric property with a fallback. Scene files decode
// numbers as int or float64 depending on their lexical shape.
func (o *GameObject) PropFloat(key string, fallback float64) float64 {
	if o == nil || o.Properties == nil {
		return fallback
	}
	switch v := o.Properties[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}
