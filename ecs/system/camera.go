package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/forgeplay/scenerun/common"
	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
)

// Camera is the view state shared with the renderer. X/Y are the world
// coordinates at the center of the view.
type Camera struct {
	X    float64
	Y    float64
	Zoom float64
}

// GeoM builds the world-to-screen transform for this view.
func (c Camera) GeoM() ebiten.GeoM {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	var m ebiten.GeoM
	m.Translate(-c.X, -c.Y)
	m.Scale(zoom, zoom)
	m.Translate(common.BaseWidth/2, common.BaseHeight/2)
	return m
}

// CameraSystem follows the entity carrying a camera behavior. When
// several entities declare one, later-registered entities silently
// replace earlier targets. Last wins, no error.
type CameraSystem struct {
	cam Camera
}

// NewCameraSystem starts the camera at the host-provided position and
// zoom so play mode opens aligned with the editor viewport.
func NewCameraSystem(x, y, zoom float64) *CameraSystem {
	if zoom <= 0 {
		zoom = 1
	}
	return &CameraSystem{cam: Camera{X: x, Y: y, Zoom: zoom}}
}

// Camera returns the current view state.
func (cs *CameraSystem) Camera() Camera {
	if cs == nil {
		return Camera{Zoom: 1}
	}
	return cs.cam
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	var follow *component.CameraFollow
	var target *component.Transform
	ecs.ForEach2(w, component.CameraFollowComponent, component.TransformComponent, func(e ecs.Entity, f *component.CameraFollow, t *component.Transform) {
		follow = f
		target = t
	})
	if follow == nil || target == nil {
		return
	}

	if follow.Zoom > 0 {
		cs.cam.Zoom = follow.Zoom
	}

	wantX := target.X + follow.OffsetX
	wantY := target.Y + follow.OffsetY

	smoothing := common.Clamp(follow.Smoothing, 0, 1)
	if smoothing == 0 {
		smoothing = 1 // no smoothing configured means snap
	}

	cs.cam.X = followAxis(cs.cam.X, wantX, follow.DeadzoneW/2, smoothing)
	cs.cam.Y = followAxis(cs.cam.Y, wantY, follow.DeadzoneH/2, smoothing)
}

// followAxis moves the camera toward want, but only by the amount the
// target has escaped the deadzone, scaled by the smoothing factor.
func followAxis(cur, want, halfDead, smoothing float64) float64 {
	delta := want - cur
	if math.Abs(delta) <= halfDead {
		return cur
	}
	excess := delta - math.Copysign(halfDead, delta)
	return cur + excess*smoothing
}
