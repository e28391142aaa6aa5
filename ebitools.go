package ebitools

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for positions, velocities, sizes, and scales
// throughout the API.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Random returns a random float64 in [Min, Max] drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// RGB is an opaque 8-bit color. It is the color form used in configuration
// files.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RGBA returns the opaque color.RGBA for c.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Common colors.
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)

// Alignment positions content (button text) inside a box.
type Alignment uint8

const (
	AlignTopLeft Alignment = iota
	AlignTopCenter
	AlignTopRight
	AlignMiddleLeft
	AlignMiddleCenter
	AlignMiddleRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft    MouseButton = iota // primary (left) mouse button
	MouseButtonRight                      // secondary (right) mouse button
	MouseButtonMiddle                     // middle mouse button (scroll wheel click)
	MouseButtonBack                       // first extra button (XButton1)
	MouseButtonForward                    // second extra button (XButton2)

	mouseButtonCount
)

// ebiten returns the engine button for b.
func (b MouseButton) ebiten() ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	case MouseButtonBack:
		return ebiten.MouseButton3
	case MouseButtonForward:
		return ebiten.MouseButton4
	default:
		return ebiten.MouseButtonLeft
	}
}

// UnmarshalText lets mouse buttons be written by name in YAML.
func (b *MouseButton) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "left":
		*b = MouseButtonLeft
	case "right":
		*b = MouseButtonRight
	case "middle":
		*b = MouseButtonMiddle
	case "back":
		*b = MouseButtonBack
	case "forward":
		*b = MouseButtonForward
	default:
		return fmt.Errorf("ebitools: unknown mouse button %q", text)
	}
	return nil
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// BlendMode selects a compositing operation for particles.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	if b == BlendAdd {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}

// UnmarshalText lets blend modes be written as "normal" or "add" in YAML.
func (b *BlendMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "normal":
		*b = BlendNormal
	case "add", "additive":
		*b = BlendAdd
	default:
		return fmt.Errorf("ebitools: unknown blend mode %q", text)
	}
	return nil
}

// whitePixel is a 1x1 white image used for solid fills and untextured
// particles. Created lazily; the package is single-threaded.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
