package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
	"github.com/forgeplay/scenerun/ecs/system"
	"github.com/forgeplay/scenerun/placeholder"
)

var labelFace = ebtext.Face(ebtext.NewGoXFace(basicfont.Face7x13))

func (g *Game) Draw(screen *ebiten.Image) {
	cam := g.camSys.Camera()

	// World pass: sprites in scene registration order, camera applied.
	ecs.ForEach2(g.world, component.SpriteComponent, component.TransformComponent,
		func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
			if s.ScreenSpace {
				return
			}
			drawSprite(screen, s, t, &cam)
		})

	g.drawLabels(screen, &cam)

	// Screen-space pass: fixed sprites ignore the camera entirely.
	ecs.ForEach2(g.world, component.SpriteComponent, component.TransformComponent,
		func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
			if !s.ScreenSpace {
				return
			}
			drawSprite(screen, s, t, nil)
		})

	if g.padUI != nil {
		g.padUI.Draw(screen)
	}
	if g.paused {
		g.stopUI.Draw(screen)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()))
}

func drawSprite(screen *ebiten.Image, s *component.Sprite, t *component.Transform, cam *system.Camera) {
	img := placeholder.Image(s.Kind, int(s.Width), int(s.Height))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.Width/2, -s.Height/2)
	op.GeoM.Scale(t.ScaleX, t.ScaleY)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.X, t.Y)
	if cam != nil {
		op.GeoM.Concat(cam.GeoM())
	}
	screen.DrawImage(img, op)
}

func (g *Game) drawLabels(screen *ebiten.Image, cam *system.Camera) {
	geo := cam.GeoM()
	ecs.ForEach2(g.world, component.LabelComponent, component.TransformComponent,
		func(e ecs.Entity, l *component.Label, t *component.Transform) {
			if l.Text == "" {
				return
			}
			sx, sy := geo.Apply(t.X, t.Y+l.OffsetY)
			w, h := ebtext.Measure(l.Text, labelFace, 0)
			op := &ebtext.DrawOptions{}
			op.GeoM.Translate(sx-w/2, sy-h/2)
			ebtext.Draw(screen, l.Text, labelFace, op)
		})
}
