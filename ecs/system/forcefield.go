package system

import (
	"math"

	"github.com/forgeplay/scenerun/common"
	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
)

// ForceFieldSystem applies inverse-square attraction/repulsion from every
// gravity zone to every eligible target.
//
// The combination policy is overwrite, not sum: zones are visited in
// registration order and each in-range zone replaces the target's
// acceleration outright, so the last zone processed wins. Targets outside
// every zone's range end the pass at zero.
type ForceFieldSystem struct{}

func NewForceFieldSystem() *ForceFieldSystem {
	return &ForceFieldSystem{}
}

func (fs *ForceFieldSystem) Update(w *ecs.World) {
	if fs == nil || w == nil {
		return
	}

	type target struct {
		accel *component.Acceleration
		x, y  float64
	}

	var targets []target
	ecs.ForEach3(w, component.AccelerationComponent, component.CapsComponent, component.TransformComponent, func(e ecs.Entity, acc *component.Acceleration, caps *component.Caps, t *component.Transform) {
		if !caps.IsForceAffected {
			return
		}
		acc.X = 0
		acc.Y = 0
		x, y := t.X, t.Y
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && body.Body != nil && !body.Static {
			pos := body.Body.Position()
			x, y = pos.X, pos.Y
		}
		targets = append(targets, target{accel: acc, x: x, y: y})
	})

	if len(targets) == 0 {
		return
	}

	ecs.ForEach2(w, component.GravityZoneComponent, component.TransformComponent, func(e ecs.Entity, zone *component.GravityZone, zt *component.Transform) {
		strength := zone.Strength
		maxDist := zone.MaxDistance
		if maxDist <= 0 {
			maxDist = common.DefaultZoneRange
		}
		for _, tg := range targets {
			dx := zt.X - tg.x
			dy := zt.Y - tg.y
			d := math.Hypot(dx, dy)
			if d <= 0 || d >= maxDist {
				continue
			}
			mag := math.Abs(strength) / (d * d) * common.ZoneFalloff
			nx := dx / d
			ny := dy / d
			if strength < 0 {
				nx, ny = -nx, -ny
			}
			tg.accel.X = nx * mag
			tg.accel.Y = ny * mag
		}
	})
}
