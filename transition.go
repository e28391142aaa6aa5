package ebitools

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TransitionKind is the animation run by a ScreenTransition. The set of
// kinds is closed; FadeTransition is the only one.
type TransitionKind interface {
	// reset prepares a fresh run.
	reset()
	// step advances by dt seconds. It returns change=true on the tick the
	// outgoing screen is fully covered and done=true once the transition
	// has finished revealing the incoming screen.
	step(dt float64, changing bool) (change, done bool)
	draw(dst *ebiten.Image, size Vec2)
}

// ScreenTransition gates a screen change. While active it runs its kind's
// animation; it raises DoChange at the instant the owner should swap
// screens and keeps animating once the owner clears the flag. It never
// swaps screens itself.
type ScreenTransition struct {
	Kind TransitionKind

	active   bool
	doChange bool
	current  Screen
	next     Screen
}

// NewTransition wraps kind in an inactive transition.
func NewTransition(kind TransitionKind) *ScreenTransition {
	return &ScreenTransition{Kind: kind}
}

// Activate starts the transition from current to next.
func (t *ScreenTransition) Activate(current, next Screen) {
	t.active = true
	t.doChange = false
	t.current = current
	t.next = next
	if t.Kind != nil {
		t.Kind.reset()
	}
}

// Deactivate stops the transition.
func (t *ScreenTransition) Deactivate() {
	t.active = false
}

// IsActive reports whether the transition is running.
func (t *ScreenTransition) IsActive() bool {
	return t.active
}

// DoChange reports whether the owner should swap to the next screen now.
func (t *ScreenTransition) DoChange() bool {
	return t.doChange
}

// ClearChange acknowledges the swap and lets the transition continue.
func (t *ScreenTransition) ClearChange() {
	t.doChange = false
}

// Current returns the screen being transitioned away from.
func (t *ScreenTransition) Current() Screen {
	return t.current
}

// Next returns the screen being transitioned to.
func (t *ScreenTransition) Next() Screen {
	return t.next
}

// Update advances the transition by dt seconds.
func (t *ScreenTransition) Update(dt float64) {
	if !t.active || t.Kind == nil {
		return
	}
	change, done := t.Kind.step(dt, t.doChange)
	if change {
		t.doChange = true
	}
	if done {
		t.active = false
	}
}

// Draw renders the transition overlay over a screen of the given size.
func (t *ScreenTransition) Draw(dst *ebiten.Image, size Vec2) {
	if !t.active || t.Kind == nil {
		return
	}
	t.Kind.draw(dst, size)
}

// FadeTransition covers the screen with Color, fading in at Speed alpha
// per second, then fades back out after the swap.
type FadeTransition struct {
	Color color.RGBA
	Speed float64

	alpha      float64
	increasing bool
}

// NewFadeTransition returns a fade-through-color transition.
func NewFadeTransition(c color.RGBA, speed float64) *ScreenTransition {
	return NewTransition(&FadeTransition{Color: c, Speed: speed})
}

// Alpha returns the current overlay opacity.
func (f *FadeTransition) Alpha() float64 {
	return f.alpha
}

func (f *FadeTransition) reset() {
	f.alpha = 0
	f.increasing = true
}

func (f *FadeTransition) step(dt float64, changing bool) (change, done bool) {
	// The owner is still swapping screens.
	if changing {
		return false, false
	}
	if f.increasing {
		f.alpha += f.Speed * dt
	} else {
		f.alpha -= f.Speed * dt
	}
	switch {
	case f.alpha <= 0:
		return false, !f.increasing
	case f.alpha >= 1:
		if f.increasing {
			f.increasing = false
			return true, false
		}
	}
	return false, false
}

func (f *FadeTransition) draw(dst *ebiten.Image, size Vec2) {
	overlay := scaleAlpha(f.Color, clamp(f.alpha, 0, 1))
	vector.DrawFilledRect(dst, 0, 0, float32(size.X), float32(size.Y), overlay, false)
}
