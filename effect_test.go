package ebitools

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const tick = 1.0 / 60

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEffectInactiveUntilActivated(t *testing.T) {
	img := NewImage("", Vec2{})
	e := NewFade(1, false, false)
	img.AddEffect("fade", e)

	img.Update(0.5)
	if img.Alpha != 1 {
		t.Errorf("inactive effect changed alpha to %v", img.Alpha)
	}
	if e.IsActive() {
		t.Error("effect should be inactive until activated")
	}
	if e.Target() != img {
		t.Error("AddEffect should set the target")
	}
}

func TestEffectSkippedWhileInvisible(t *testing.T) {
	img := NewImage("", Vec2{})
	img.AddEffect("fade", NewFade(1, false, false))
	img.ActivateEffect("fade")
	img.Visible = false

	img.Update(0.5)
	if img.Alpha != 1 {
		t.Errorf("invisible image alpha = %v, want 1", img.Alpha)
	}
}

func TestFadeOutDeactivatesOnCrossingTick(t *testing.T) {
	img := NewImage("", Vec2{})
	e := NewFade(1, false, false)
	img.AddEffect("fade", e)
	img.ActivateEffect("fade")

	img.Update(0.6)
	if !e.IsActive() || !approx(img.Alpha, 0.4) {
		t.Fatalf("after 0.6s: active=%v alpha=%v", e.IsActive(), img.Alpha)
	}
	img.Update(0.6)
	if e.IsActive() {
		t.Error("fade should deactivate on the tick alpha leaves [0, 1]")
	}
	if img.Alpha != 0 {
		t.Errorf("alpha = %v, want clamped to 0", img.Alpha)
	}
	img.Update(0.6)
	if img.Alpha != 0 {
		t.Errorf("deactivated fade kept changing alpha: %v", img.Alpha)
	}
}

func TestFadeInClampsToOne(t *testing.T) {
	img := NewImage("", Vec2{})
	img.Alpha = 0
	e := NewFade(2, true, false)
	e.Activate(img)

	for i := 0; i < 100 && e.IsActive(); i++ {
		e.Update(tick)
	}
	if e.IsActive() {
		t.Fatal("fade-in never finished")
	}
	if img.Alpha != 1 {
		t.Errorf("alpha = %v, want 1", img.Alpha)
	}
}

func TestFadeRepeatStaysInRange(t *testing.T) {
	tests := []struct {
		name   string
		fadeIn bool
		start  float64
	}{
		{"out", false, 1},
		{"in", true, 0},
		{"in from below range", true, -0.5},
		{"out from above range", false, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage("", Vec2{})
			img.Alpha = tt.start
			e := NewFade(3, tt.fadeIn, true)
			e.Activate(img)

			wraps := 0
			prev := img.Alpha
			for i := 0; i < 5000; i++ {
				e.Update(tick)
				if !e.IsActive() {
					t.Fatalf("tick %d: repeating fade deactivated", i)
				}
				if img.Alpha < 0 || img.Alpha > 1 {
					t.Fatalf("tick %d: alpha %v outside [0, 1]", i, img.Alpha)
				}
				if math.Abs(img.Alpha-prev) > 0.5 {
					wraps++
				}
				prev = img.Alpha
			}
			if wraps < 10 {
				t.Errorf("fade wrapped %d times, want many", wraps)
			}
		})
	}
}

func TestFlashFlipsEveryPeriod(t *testing.T) {
	img := NewImage("", Vec2{})
	e := NewFlash(0.5, 0.25, 1, true)
	e.Activate(img)

	e.Update(0.3)
	if img.Alpha != 1 {
		t.Fatalf("alpha changed before period elapsed: %v", img.Alpha)
	}
	e.Update(0.3)
	if img.Alpha != 0.25 {
		t.Fatalf("alpha = %v, want 0.25 after first period", img.Alpha)
	}
	e.Update(0.5)
	if img.Alpha != 1 {
		t.Fatalf("alpha = %v, want 1 after second period", img.Alpha)
	}
	if !e.IsActive() {
		t.Error("repeating flash should stay active")
	}
}

func TestFlashNonRepeatDeactivatesAfterOneFlip(t *testing.T) {
	img := NewImage("", Vec2{})
	e := NewFlash(0.1, 0, 1, false)
	e.Activate(img)
	e.Update(0.1)
	if img.Alpha != 0 {
		t.Errorf("alpha = %v, want 0", img.Alpha)
	}
	if e.IsActive() {
		t.Error("non-repeating flash should deactivate after flipping")
	}
}

func TestFlashIdleWhenBoundsInverted(t *testing.T) {
	img := NewImage("", Vec2{})
	img.Alpha = 0.7
	e := NewFlash(0.1, 0.8, 0.2, false)
	e.Activate(img)
	for i := 0; i < 10; i++ {
		e.Update(0.1)
	}
	if img.Alpha != 0.7 || !e.IsActive() {
		t.Errorf("alpha=%v active=%v, want untouched and active", img.Alpha, e.IsActive())
	}
}

func TestFlipAlpha(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0, 0, 1, 1},
		{1, 0, 1, 0},
		{0.1, 0, 1, 1},
		{0.9, 0, 1, 0},
		{0.5, 0, 1, 1},
		{-2, 0, 1, 1},
		{3, 0, 1, 0},
		{0.3, 0.25, 0.75, 0.75},
	}
	for _, tt := range tests {
		if got := flipAlpha(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("flipAlpha(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestFlashClampsBounds(t *testing.T) {
	img := NewImage("", Vec2{})
	img.Alpha = 1
	e := NewFlash(0.1, -1, 2, true)
	e.Activate(img)
	e.Update(0.1)
	if img.Alpha != 0 {
		t.Errorf("alpha = %v, want clamped min 0", img.Alpha)
	}
	e.Update(0.1)
	if img.Alpha != 1 {
		t.Errorf("alpha = %v, want clamped max 1", img.Alpha)
	}
}

func TestZoomActivationSnapsToStartBound(t *testing.T) {
	lo, hi := Vec2{0.25, 0.5}, Vec2{1, 2}

	img := NewImage("", Vec2{})
	NewZoom(1, lo, hi, false, false).Activate(img)
	if img.Scale != lo {
		t.Errorf("zoom-in start scale = %v, want %v", img.Scale, lo)
	}

	NewZoom(1, lo, hi, true, false).Activate(img)
	if img.Scale != hi {
		t.Errorf("zoom-out start scale = %v, want %v", img.Scale, hi)
	}
}

func TestZoomRepeatOscillatesWithoutOvershoot(t *testing.T) {
	lo, hi := Vec2{0.25, 0.25}, Vec2{1, 1}
	const near = 0.02 // more than one tick of motion at speed 1
	for _, zoomOut := range []bool{false, true} {
		img := NewImage("", Vec2{})
		e := NewZoom(1, lo, hi, zoomOut, true)
		e.Activate(img)

		nearLo, nearHi := false, false
		for i := 0; i < 2000; i++ {
			e.Update(tick)
			s := img.Scale
			if s.X < lo.X || s.Y < lo.Y || s.X > hi.X || s.Y > hi.Y {
				t.Fatalf("zoomOut=%v tick %d: scale %v outside [%v, %v]", zoomOut, i, s, lo, hi)
			}
			if s.X <= lo.X+near {
				nearLo = true
			}
			if s.X >= hi.X-near {
				nearHi = true
			}
		}
		if !e.IsActive() {
			t.Errorf("zoomOut=%v: repeating zoom deactivated", zoomOut)
		}
		if !nearLo || !nearHi {
			t.Errorf("zoomOut=%v: nearLo=%v nearHi=%v, want both bounds reached", zoomOut, nearLo, nearHi)
		}
	}
}

func TestZoomNonRepeatStopsAtBound(t *testing.T) {
	img := NewImage("", Vec2{})
	e := NewZoom(2, Vec2{0.5, 0.5}, Vec2{1, 1.5}, false, false)
	e.Activate(img)
	for i := 0; i < 200 && e.IsActive(); i++ {
		e.Update(tick)
	}
	if e.IsActive() {
		t.Fatal("zoom never finished")
	}
	if img.Scale != (Vec2{1, 1.5}) {
		t.Errorf("final scale = %v, want {1 1.5}", img.Scale)
	}
}

func TestTweenAlpha(t *testing.T) {
	img := NewImage("", Vec2{})
	e := NewTween(TweenAlpha, 0, 1, 1, ease.Linear, false)
	e.Activate(img)
	if img.Alpha != 0 {
		t.Fatalf("activation alpha = %v, want 0", img.Alpha)
	}
	e.Update(0.5)
	if math.Abs(img.Alpha-0.5) > 1e-4 {
		t.Errorf("alpha at half time = %v, want 0.5", img.Alpha)
	}
	e.Update(0.6)
	if img.Alpha != 1 {
		t.Errorf("final alpha = %v, want 1", img.Alpha)
	}
	if e.IsActive() {
		t.Error("finished tween should deactivate")
	}
}

func TestTweenScaleRepeat(t *testing.T) {
	img := NewImage("", Vec2{})
	e := NewTween(TweenScale, 1, 2, 0.5, nil, true)
	e.Activate(img)
	for i := 0; i < 200; i++ {
		e.Update(tick)
		if img.Scale.X < 1-1e-6 || img.Scale.X > 2+1e-6 || img.Scale.X != img.Scale.Y {
			t.Fatalf("tick %d: scale %v out of range", i, img.Scale)
		}
	}
	if !e.IsActive() {
		t.Error("repeating tween should stay active")
	}
}

func TestImageEffectRegistry(t *testing.T) {
	img := NewImage("", Vec2{})
	fade := NewFade(1, false, false)
	zoom := NewZoom(1, Vec2{0, 0}, Vec2{1, 1}, false, false)
	img.AddEffect("fade", fade)
	img.AddEffect("zoom", zoom)

	if got, ok := img.Effect("zoom"); !ok || got != zoom {
		t.Error("Effect(zoom) lookup failed")
	}
	if _, ok := img.Effect("missing"); ok {
		t.Error("Effect(missing) should report false")
	}
	if names := img.EffectNames(); len(names) != 2 || names[0] != "fade" || names[1] != "zoom" {
		t.Errorf("EffectNames = %v, want [fade zoom]", names)
	}
	if fades := EffectsOfKind[*Fade](img); len(fades) != 1 || fades[0] != fade {
		t.Errorf("EffectsOfKind[*Fade] = %v", fades)
	}
	if flashes := EffectsOfKind[*Flash](img); len(flashes) != 0 {
		t.Errorf("EffectsOfKind[*Flash] = %v, want none", flashes)
	}

	// Missing names are no-ops.
	img.ActivateEffect("missing")
	img.DeactivateEffect("missing")
	img.RemoveEffect("missing")

	img.ActivateEffect("fade")
	img.ActivateEffect("zoom")
	if !fade.IsActive() || !zoom.IsActive() {
		t.Fatal("both effects should be active")
	}
	img.DeactivateEffect("zoom")
	if !fade.IsActive() || zoom.IsActive() {
		t.Error("deactivating one effect must not affect the other")
	}

	replacement := NewFade(2, true, false)
	img.AddEffect("fade", replacement)
	if fade.IsActive() {
		t.Error("replaced effect should be deactivated")
	}
	if got, _ := img.Effect("fade"); got != replacement {
		t.Error("AddEffect should replace the existing entry")
	}
	if names := img.EffectNames(); names[0] != "fade" {
		t.Errorf("replacement should keep its position, names = %v", names)
	}

	img.ActivateEffect("fade")
	img.RemoveEffect("fade")
	if replacement.IsActive() {
		t.Error("removed effect should be deactivated")
	}
	if names := img.EffectNames(); len(names) != 1 || names[0] != "zoom" {
		t.Errorf("EffectNames after remove = %v, want [zoom]", names)
	}
}

func TestImageUnloadDeactivatesEffects(t *testing.T) {
	img := NewImage("", Vec2{})
	img.AddEffect("fade", NewFade(1, false, true))
	img.ActivateEffect("fade")
	img.UnloadContent()
	if e, _ := img.Effect("fade"); e.IsActive() {
		t.Error("UnloadContent should deactivate effects")
	}
}
