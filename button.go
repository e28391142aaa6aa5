package ebitools

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var defaultFace text.Face

func ensureDefaultFace() text.Face {
	if defaultFace == nil {
		defaultFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return defaultFace
}

// Button is a filled rectangle with optional border and aligned text that
// reports hover and click events. Events raised during Update are queued
// and returned by Events until the next Update; the optional On* funcs are
// called as each event is raised.
type Button struct {
	Size            Vec2
	Position        Vec2
	Text            string
	TextColor       color.RGBA
	BackgroundColor color.RGBA
	TextAlignment   Alignment
	Border          *Border
	Alpha           float64
	// Face defaults to basicfont 7x13.
	Face text.Face

	OnClick      func(MouseEvent)
	OnMouseEnter func(MouseEvent)
	OnMouseLeave func(MouseEvent)

	hovering bool
	events   []MouseEvent
}

// NewButton creates a button with white middle-centred text on black.
func NewButton(size, position Vec2) *Button {
	return &Button{
		Size:            size,
		Position:        position,
		TextColor:       color.RGBA{255, 255, 255, 255},
		BackgroundColor: color.RGBA{0, 0, 0, 255},
		TextAlignment:   AlignMiddleCenter,
		Alpha:           1,
	}
}

// Bounds returns the screen rectangle the button occupies, border
// included.
func (b *Button) Bounds() Rect {
	r := Rect{X: b.Position.X, Y: b.Position.Y, Width: b.Size.X, Height: b.Size.Y}
	if b.Border != nil {
		t := b.Border.Thickness
		r.Width += float64(t.Left + t.Right)
		r.Height += float64(t.Top + t.Bottom)
	}
	return r
}

// Hovering reports whether the pointer was over the button at the last
// Update.
func (b *Button) Hovering() bool {
	return b.hovering
}

// Events returns the events raised by the last Update.
func (b *Button) Events() []MouseEvent {
	return b.events
}

// Update hit-tests the pointer. MouseEnter and MouseLeave are raised once
// per crossing; MouseClick is raised when a mouse button goes down while
// the pointer is over the button.
func (b *Button) Update(ctx *Context) {
	b.events = b.events[:0]
	in := ctx.Input
	p := in.MousePosition()
	x, y := int(p.X), int(p.Y)

	if !b.Bounds().Contains(p.X, p.Y) {
		if b.hovering {
			b.hovering = false
			b.raise(MouseEvent{Type: MouseLeave, X: x, Y: y}, b.OnMouseLeave)
		}
		return
	}
	if !b.hovering {
		b.hovering = true
		b.raise(MouseEvent{Type: MouseEnter, X: x, Y: y}, b.OnMouseEnter)
	}
	if pressed := in.JustPressedMouseButtons(); len(pressed) > 0 {
		b.raise(MouseEvent{Type: MouseClick, Button: pressed[0], Clicks: 1, X: x, Y: y}, b.OnClick)
	}
}

func (b *Button) raise(e MouseEvent, fn func(MouseEvent)) {
	b.events = append(b.events, e)
	if fn != nil {
		fn(e)
	}
}

// Draw renders border, background and text.
func (b *Button) Draw(dst *ebiten.Image) {
	alpha := clamp(b.Alpha, 0, 1)
	origin := b.Position
	if b.Border != nil {
		r := b.Bounds()
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			scaleAlpha(b.Border.Color, alpha), false)
		origin.X += float64(b.Border.Thickness.Left)
		origin.Y += float64(b.Border.Thickness.Top)
	}
	vector.DrawFilledRect(dst, float32(origin.X), float32(origin.Y), float32(b.Size.X), float32(b.Size.Y),
		scaleAlpha(b.BackgroundColor, alpha), false)

	if b.Text == "" {
		return
	}
	face := b.Face
	if face == nil {
		face = ensureDefaultFace()
	}
	w, h := text.Measure(b.Text, face, 0)
	off := alignOffset(b.TextAlignment, b.Size, Vec2{w, h})
	op := &text.DrawOptions{}
	op.GeoM.Translate(origin.X+off.X, origin.Y+off.Y)
	op.ColorScale.ScaleWithColor(b.TextColor)
	text.Draw(dst, b.Text, face, op)
}

// alignOffset positions content of the given size inside box. Offsets are
// truncated to whole pixels.
func alignOffset(a Alignment, box, content Vec2) Vec2 {
	var x, y float64
	switch a {
	case AlignTopCenter, AlignMiddleCenter, AlignBottomCenter:
		x = box.X/2 - content.X/2
	case AlignTopRight, AlignMiddleRight, AlignBottomRight:
		x = box.X - content.X
	}
	switch a {
	case AlignMiddleLeft, AlignMiddleCenter, AlignMiddleRight:
		y = box.Y/2 - content.Y/2
	case AlignBottomLeft, AlignBottomCenter, AlignBottomRight:
		y = box.Y - content.Y
	}
	return Vec2{float64(int(x)), float64(int(y))}
}

// scaleAlpha multiplies a premultiplied color by a.
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
