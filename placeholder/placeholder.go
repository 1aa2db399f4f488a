// Package placeholder generates procedural stand-in sprites. There is no
// asset pipeline: every object type gets a flat shape from a fixed
// palette, created on first use and cached.
package placeholder

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var palette = map[string]color.NRGBA{
	"player":      {R: 0x3a, G: 0x7b, B: 0xd5, A: 0xff},
	"platform":    {R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	"collectible": {R: 0xff, G: 0xc1, B: 0x07, A: 0xff},
	"enemy":       {R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
	"boundary":    {R: 0x75, G: 0x75, B: 0x75, A: 0xff},
	"gravity":     {R: 0x8e, G: 0x24, B: 0xaa, A: 0xff},
	"sprite":      {R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
}

var cache = map[string]*ebiten.Image{}

// Image returns the placeholder for an object kind at the given size.
func Image(kind string, w, h int) *ebiten.Image {
	if w <= 0 {
		w = 32
	}
	if h <= 0 {
		h = 32
	}
	key := fmt.Sprintf("%s:%dx%d", kind, w, h)
	if img, ok := cache[key]; ok {
		return img
	}

	fill, ok := palette[kind]
	if !ok {
		fill = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	}

	img := ebiten.NewImage(w, h)
	switch kind {
	case "collectible", "gravity":
		r := float32(min(w, h)) / 2
		vector.DrawFilledCircle(img, float32(w)/2, float32(h)/2, r, fill, true)
		if kind == "gravity" {
			vector.StrokeCircle(img, float32(w)/2, float32(h)/2, r-2, 2, darken(fill), true)
		}
	default:
		img.Fill(fill)
		vector.StrokeRect(img, 1, 1, float32(w)-2, float32(h)-2, 2, darken(fill), false)
	}

	cache[key] = img
	return img
}

func darken(c color.NRGBA) color.NRGBA {
	return color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
