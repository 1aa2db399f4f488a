package pad

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	dirButtonSize  = 56
	jumpButtonSize = 72
	padMargin      = 24
)

// New builds the virtual controller UI writing into state. Press sets the
// flag, release clears it, and so does dragging the pointer off a button
// while held, so input can never stick.
func New(state *State) *ebitenui.UI {
	face := ebtext.Face(ebtext.NewGoXFace(basicfont.Face7x13))

	dirImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xb0})
	textColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	dirButton := func(label string, flag *bool) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: dirImg, Pressed: dirImg}),
			widget.ButtonOpts.Text(label, &face, textColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(dirButtonSize, dirButtonSize)),
			widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
				*flag = true
			}),
			widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) {
				*flag = false
			}),
			widget.ButtonOpts.CursorExitedHandler(func(args *widget.ButtonHoverEventArgs) {
				*flag = false
			}),
		)
	}

	spacer := func() *widget.Container {
		return widget.NewContainer(
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(dirButtonSize, dirButtonSize)),
		)
	}

	// 3x3 grid, cross layout
	cross := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Spacing(4, 4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				Padding:            &widget.Insets{Left: padMargin, Bottom: padMargin},
			}),
		),
	)
	cross.AddChild(spacer())
	cross.AddChild(dirButton("^", &state.Up))
	cross.AddChild(spacer())
	cross.AddChild(dirButton("<", &state.Left))
	cross.AddChild(spacer())
	cross.AddChild(dirButton(">", &state.Right))
	cross.AddChild(spacer())
	cross.AddChild(dirButton("v", &state.Down))
	cross.AddChild(spacer())

	jump := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: circleNineSlice(), Pressed: circleNineSlice()}),
		widget.ButtonOpts.Text("J", &face, textColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(jumpButtonSize, jumpButtonSize),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				Padding:            &widget.Insets{Right: padMargin, Bottom: padMargin},
			}),
		),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			state.Jump = true
		}),
		widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) {
			state.Jump = false
		}),
		widget.ButtonOpts.CursorExitedHandler(func(args *widget.ButtonHoverEventArgs) {
			state.Jump = false
		}),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(cross)
	root.AddChild(jump)

	return &ebitenui.UI{Container: root}
}

func circleNineSlice() *imageui.NineSlice {
	img := ebiten.NewImage(jumpButtonSize, jumpButtonSize)
	r := float32(jumpButtonSize) / 2
	vector.DrawFilledCircle(img, r, r, r, color.NRGBA{R: 0x55, G: 0x55, B: 0x77, A: 0xb0}, true)
	return imageui.NewNineSliceSimple(img, 0, jumpButtonSize)
}
