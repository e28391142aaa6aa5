package ebitools

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EffectKind is the per-tick behaviour of an ImageEffect. The set of kinds
// is closed: Fade, Flash, Zoom and Tween.
type EffectKind interface {
	// attach prepares the kind for a fresh run on img.
	attach(img *Image)
	// step advances the effect by dt seconds and reports whether a terminal
	// bound was reached and the effect must stop.
	step(dt float64, img *Image, repeat bool) bool
}

// ImageEffect animates one visual property of an Image. It is Inactive
// until Activate attaches it to a target, and returns to Inactive when a
// non-repeating run reaches its terminal bound or Deactivate is called.
// The target is referenced, not owned.
type ImageEffect struct {
	// Repeat restarts the effect at its opposite bound instead of stopping.
	Repeat bool
	Kind   EffectKind

	active bool
	target *Image
}

// NewEffect creates a detached, inactive effect.
func NewEffect(kind EffectKind, repeat bool) *ImageEffect {
	return &ImageEffect{Kind: kind, Repeat: repeat}
}

// Activate attaches the effect to img and starts it.
func (e *ImageEffect) Activate(img *Image) {
	if img == nil || e.Kind == nil {
		return
	}
	e.target = img
	e.active = true
	e.Kind.attach(img)
}

// Deactivate stops the effect. The target keeps its current values.
func (e *ImageEffect) Deactivate() {
	e.active = false
}

// IsActive reports whether the effect runs on Update.
func (e *ImageEffect) IsActive() bool {
	return e.active
}

// Target returns the image the effect was last attached to.
func (e *ImageEffect) Target() *Image {
	return e.target
}

// Update steps the effect by dt seconds. Nothing happens while the effect
// is inactive or its target is invisible.
func (e *ImageEffect) Update(dt float64) {
	if !e.active || e.target == nil || !e.target.Visible {
		return
	}
	if e.Kind.step(dt, e.target, e.Repeat) {
		e.active = false
	}
}

// Fade moves the target's alpha linearly by Speed per second, down toward
// 0 or, with FadeIn, up toward 1.
type Fade struct {
	Speed  float64
	FadeIn bool
}

// NewFade returns a Fade effect.
func NewFade(speed float64, fadeIn, repeat bool) *ImageEffect {
	return NewEffect(&Fade{Speed: speed, FadeIn: fadeIn}, repeat)
}

func (f *Fade) attach(*Image) {}

func (f *Fade) step(dt float64, img *Image, repeat bool) bool {
	if f.FadeIn {
		img.Alpha += f.Speed * dt
	} else {
		img.Alpha -= f.Speed * dt
	}
	if img.Alpha >= 0 && img.Alpha <= 1 {
		return false
	}
	if !repeat {
		img.Alpha = clamp(img.Alpha, 0, 1)
		return true
	}
	switch {
	case img.Alpha < 0 && !f.FadeIn:
		img.Alpha = 1
	case img.Alpha > 1 && f.FadeIn:
		img.Alpha = 0
	default:
		// Started outside [0, 1] and moving back in.
		img.Alpha = clamp(img.Alpha, 0, 1)
	}
	return false
}

// Flash snaps the target's alpha between MinAlpha and MaxAlpha every
// Period seconds. Bounds are clamped to [0, 1]; the effect idles while
// MaxAlpha <= MinAlpha.
type Flash struct {
	Period   float64
	MinAlpha float64
	MaxAlpha float64

	elapsed float64
}

// NewFlash returns a Flash effect.
func NewFlash(period, minAlpha, maxAlpha float64, repeat bool) *ImageEffect {
	return NewEffect(&Flash{Period: period, MinAlpha: minAlpha, MaxAlpha: maxAlpha}, repeat)
}

func (f *Flash) attach(*Image) {
	f.elapsed = 0
}

func (f *Flash) step(dt float64, img *Image, repeat bool) bool {
	f.elapsed += dt
	if f.MaxAlpha <= f.MinAlpha {
		return false
	}
	lo := math.Max(f.MinAlpha, 0)
	hi := math.Min(f.MaxAlpha, 1)
	if f.elapsed < f.Period {
		return false
	}
	img.Alpha = flipAlpha(img.Alpha, lo, hi)
	f.elapsed = 0
	return !repeat
}

// flipAlpha jumps to the bound opposite the one v is nearest to. Values
// equidistant from both bounds go to hi.
func flipAlpha(v, lo, hi float64) float64 {
	switch {
	case v == lo:
		return hi
	case v == hi:
		return lo
	case math.Abs(v-hi) < math.Abs(v-lo):
		return lo
	default:
		return hi
	}
}

// Zoom scales the target linearly by Speed per second on each axis, up
// toward MaxScale or, with ZoomOut, down toward MinScale. Activation snaps
// the scale to the starting bound.
type Zoom struct {
	Speed    float64
	MinScale Vec2
	MaxScale Vec2
	ZoomOut  bool
}

// NewZoom returns a Zoom effect.
func NewZoom(speed float64, minScale, maxScale Vec2, zoomOut, repeat bool) *ImageEffect {
	return NewEffect(&Zoom{Speed: speed, MinScale: minScale, MaxScale: maxScale, ZoomOut: zoomOut}, repeat)
}

func (z *Zoom) attach(img *Image) {
	if z.ZoomOut {
		img.Scale = z.MaxScale
	} else {
		img.Scale = z.MinScale
	}
}

func (z *Zoom) step(dt float64, img *Image, repeat bool) bool {
	s := img.Scale
	if z.MinScale.X < z.MaxScale.X || z.MinScale.Y < z.MaxScale.Y {
		d := z.Speed * dt
		if z.ZoomOut {
			if s.X > z.MinScale.X {
				s.X = math.Max(s.X-d, z.MinScale.X)
			}
			if s.Y > z.MinScale.Y {
				s.Y = math.Max(s.Y-d, z.MinScale.Y)
			}
		} else {
			if s.X < z.MaxScale.X {
				s.X = math.Min(s.X+d, z.MaxScale.X)
			}
			if s.Y < z.MaxScale.Y {
				s.Y = math.Min(s.Y+d, z.MaxScale.Y)
			}
		}
		img.Scale = s
	}

	switch {
	case s.X <= z.MinScale.X && s.Y <= z.MinScale.Y:
		if !repeat {
			return true
		}
		img.Scale = z.MaxScale
	case s.X >= z.MaxScale.X && s.Y >= z.MaxScale.Y:
		if !repeat {
			return true
		}
		img.Scale = z.MinScale
	}
	return false
}

// TweenProperty selects the image property a Tween drives.
type TweenProperty uint8

const (
	TweenAlpha TweenProperty = iota // Image.Alpha
	TweenScale                      // both axes of Image.Scale
)

// Tween eases one image property from From to To over Duration seconds.
// A repeating Tween restarts from From.
type Tween struct {
	Property TweenProperty
	From, To float64
	Duration float64
	// Ease defaults to ease.Linear.
	Ease ease.TweenFunc

	tween *gween.Tween
}

// NewTween returns a Tween effect.
func NewTween(prop TweenProperty, from, to, duration float64, fn ease.TweenFunc, repeat bool) *ImageEffect {
	return NewEffect(&Tween{Property: prop, From: from, To: to, Duration: duration, Ease: fn}, repeat)
}

func (t *Tween) attach(img *Image) {
	t.restart()
	t.apply(img, t.From)
}

func (t *Tween) restart() {
	fn := t.Ease
	if fn == nil {
		fn = ease.Linear
	}
	t.tween = gween.New(float32(t.From), float32(t.To), float32(t.Duration), fn)
}

func (t *Tween) step(dt float64, img *Image, repeat bool) bool {
	val, finished := t.tween.Update(float32(dt))
	t.apply(img, float64(val))
	if !finished {
		return false
	}
	if !repeat {
		return true
	}
	t.restart()
	return false
}

func (t *Tween) apply(img *Image, v float64) {
	switch t.Property {
	case TweenScale:
		img.Scale = Vec2{v, v}
	default:
		img.Alpha = v
	}
}
