package ebitools

import "image/color"

// Thickness is a per-side width in pixels.
type Thickness struct {
	Top, Right, Bottom, Left int
}

// Uniform returns a thickness of n on every side.
func Uniform(n int) Thickness {
	return Thickness{n, n, n, n}
}

// Symmetric returns a thickness of vertical on top and bottom and
// horizontal on left and right.
func Symmetric(vertical, horizontal int) Thickness {
	return Thickness{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Border is a solid frame drawn around a Button.
type Border struct {
	Color     color.RGBA
	Thickness Thickness
}

// NewBorder returns a one-pixel border of color c.
func NewBorder(c color.RGBA) *Border {
	return &Border{Color: c, Thickness: Uniform(1)}
}

// MouseEventType identifies a Button event.
type MouseEventType uint8

const (
	MouseEnter MouseEventType = iota
	MouseLeave
	MouseClick
)

func (t MouseEventType) String() string {
	switch t {
	case MouseEnter:
		return "enter"
	case MouseLeave:
		return "leave"
	case MouseClick:
		return "click"
	}
	return "unknown"
}

// MouseEvent describes one Button interaction. Button and Clicks are only
// meaningful for MouseClick.
type MouseEvent struct {
	Type   MouseEventType
	Button MouseButton
	Clicks int
	X, Y   int
	Delta  int
}
