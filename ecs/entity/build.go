package entity

import (
	"log"

	"github.com/d5/tengo/v2"

	"github.com/forgeplay/scenerun/common"
	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
	"github.com/forgeplay/scenerun/scene"
)

// Index is what scene construction hands back to the runtime: the id →
// entity table every other component works against, plus whether the
// scene asked for the on-screen virtual controller.
type Index struct {
	ByID     map[string]ecs.Entity
	Order    []ecs.Entity
	NeedsPad bool
}

// Lookup returns the live entity for a scene object id.
func (ix *Index) Lookup(id string) (ecs.Entity, bool) {
	if ix == nil {
		return 0, false
	}
	e, ok := ix.ByID[id]
	return e, ok
}

// BuildScene compiles a scene description into live entities. Controller
// objects turn into the virtual pad instead of simulated entities. A bad
// object is skipped with a diagnostic; the rest of the scene still loads.
func BuildScene(w *ecs.World, pw *ecs.PhysicsWorld, desc *scene.SceneDescription) *Index {
	ix := &Index{ByID: make(map[string]ecs.Entity)}
	if w == nil || desc == nil {
		return ix
	}

	pw.AddWorldBounds(common.BaseWidth, common.BaseHeight)

	var graphNodes []ecs.GraphNode

	for i := range desc.Objects {
		obj := &desc.Objects[i]

		if obj.Type == scene.ObjectController {
			ix.NeedsPad = true
			continue
		}
		if !scene.KnownObjectType(obj.Type) {
			log.Printf("loader: skipping object %q: unknown type %q", obj.ID, obj.Type)
			continue
		}

		cfg, err := scene.Resolve(obj)
		if err != nil {
			log.Printf("loader: skipping object %q: %v", obj.ID, err)
			continue
		}

		e := buildObject(w, pw, obj, cfg)
		if !e.Valid() {
			continue
		}
		ix.ByID[obj.ID] = e
		ix.Order = append(ix.Order, e)

		if cfg.Physics != nil {
			var obl *component.Oblique
			if o, ok := ecs.Get(w, e, component.ObliqueComponent); ok {
				obl = o
			}
			graphNodes = append(graphNodes, ecs.GraphNode{Entity: e, Oblique: obl})
		}
	}

	pw.SetGraph(ecs.BuildCollisionGraph(graphNodes))
	return ix
}

func buildObject(w *ecs.World, pw *ecs.PhysicsWorld, obj *scene.GameObject, cfg *scene.EffectiveConfig) ecs.Entity {
	e := w.CreateEntity()

	width, height := spriteSize(obj)
	fixed := cfg.Fixed != nil

	must(ecs.Add(w, e, component.TransformComponent, component.Transform{
		X:        obj.Position.X,
		Y:        obj.Position.Y,
		ScaleX:   defaultScale(obj.Scale.X),
		ScaleY:   defaultScale(obj.Scale.Y),
		Rotation: common.DegToRad(obj.Rotation),
	}))
	must(ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Kind:        string(obj.Type),
		Width:       width,
		Height:      height,
		ScreenSpace: fixed,
	}))
	must(ecs.Add(w, e, component.ObjectRefComponent, component.ObjectRef{Object: obj}))

	obliqueStatic := cfg.Oblique != nil && cfg.Oblique.Static
	caps := component.Caps{
		IsPhysics:     cfg.Physics != nil,
		IsCollidable:  cfg.Physics != nil,
		IsForceSource: obj.Type == scene.ObjectGravity,
		IsForceAffected: cfg.Physics != nil &&
			obj.Type != scene.ObjectGravity &&
			obj.Type != scene.ObjectBoundary &&
			!fixed && !obliqueStatic,
		IsFixed: fixed,
	}
	must(ecs.Add(w, e, component.CapsComponent, caps))

	if cfg.Oblique != nil {
		must(ecs.Add(w, e, component.ObliqueComponent, component.Oblique{
			Group:           cfg.Oblique.Group,
			OnlyWithOblique: cfg.Oblique.OnlyWithOblique,
			Static:          cfg.Oblique.Static,
			Padding:         cfg.Oblique.Padding,
		}))
	}

	if cfg.Physics != nil {
		must(ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
			Width:        width,
			Height:       height,
			Mass:         cfg.Physics.Mass,
			Bounce:       cfg.Physics.Bounce,
			Friction:     cfg.Physics.Friction,
			GravityScale: cfg.Physics.EffectiveGravityScale,
			Static:       obj.Type == scene.ObjectBoundary || obliqueStatic,
			WorldBounds:  cfg.Physics.WorldBounds,
		}))

		var accel *component.Acceleration
		if caps.IsForceAffected {
			must(ecs.Add(w, e, component.AccelerationComponent, component.Acceleration{}))
			accel, _ = ecs.Get(w, e, component.AccelerationComponent)
		}

		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		var obl *component.Oblique
		if o, ok := ecs.Get(w, e, component.ObliqueComponent); ok {
			obl = o
		}
		pw.AddBody(e, transform, body, obl, accel, cfg.Controls != nil)
	}

	if cfg.Controls != nil {
		must(ecs.Add(w, e, component.ControlsComponent, component.Controls{
			MoveSpeed:     cfg.Controls.MoveSpeed,
			JumpPower:     cfg.Controls.JumpPower,
			AllowVertical: cfg.Controls.AllowVertical,
			DoubleJump:    cfg.Controls.DoubleJump,
		}))
		must(ecs.Add(w, e, component.InputComponent, component.Input{}))
	}

	if fixed {
		must(ecs.Add(w, e, component.ScreenFixedComponent, component.ScreenFixed{
			X: cfg.Fixed.ScreenX,
			Y: cfg.Fixed.ScreenY,
		}))
	}

	if cfg.Camera != nil {
		must(ecs.Add(w, e, component.CameraFollowComponent, component.CameraFollow{
			Smoothing: cfg.Camera.Smoothing,
			OffsetX:   cfg.Camera.OffsetX,
			OffsetY:   cfg.Camera.OffsetY,
			DeadzoneW: cfg.Camera.DeadzoneW,
			DeadzoneH: cfg.Camera.DeadzoneH,
			Zoom:      cfg.Camera.Zoom,
		}))
	}

	if obj.Type == scene.ObjectGravity {
		zone := component.GravityZone{
			Strength:    obj.PropFloat("gravityStrength", common.DefaultZoneStrength),
			MaxDistance: common.DefaultZoneRange,
		}
		if cfg.Gravity != nil {
			zone.Strength = cfg.Gravity.Strength
			zone.MaxDistance = cfg.Gravity.MaxDistance
			zone.FromBehavior = cfg.Gravity.FromBehavior
		}
		must(ecs.Add(w, e, component.GravityZoneComponent, zone))
		must(ecs.Add(w, e, component.LabelComponent, component.Label{
			OffsetY: -height/2 - 12,
		}))
	}

	if cfg.Script != nil {
		must(ecs.Add(w, e, component.ScriptComponent, compileScript(obj.ID, cfg.Script.Source)))
	}

	return e
}

func compileScript(id, source string) component.Script {
	sc := component.Script{Source: source}
	script := tengo.NewScript([]byte(source))
	for _, name := range []string{"x", "y", "vx", "vy", "t"} {
		_ = script.Add(name, 0.0)
	}
	compiled, err := script.Compile()
	if err != nil {
		log.Printf("loader: object %q script compile: %v", id, err)
		sc.Failed = true
		return sc
	}
	sc.Compiled = compiled
	return sc
}

func spriteSize(obj *scene.GameObject) (float64, float64) {
	var w, h float64
	switch obj.Type {
	case scene.ObjectPlayer:
		w, h = 32, 48
	case scene.ObjectPlatform:
		w, h = 128, 32
	case scene.ObjectCollectible:
		w, h = 24, 24
	case scene.ObjectEnemy:
		w, h = 32, 32
	case scene.ObjectGravity:
		w, h = 48, 48
	case scene.ObjectBoundary:
		w, h = 64, 64
	default:
		w, h = 64, 64
	}
	return obj.PropFloat("width", w), obj.PropFloat("height", h)
}

func defaultScale(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func must(err error) {
	if err != nil {
		panic("loader: add component: " + err.Error())
	}
}
