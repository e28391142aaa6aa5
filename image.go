package ebitools

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Image is a positioned, scalable, fadeable texture. It is the visual
// entity that ImageEffects animate; effects are registered by name and run
// independently of each other.
type Image struct {
	// Path is the content path loaded by LoadContent. Empty for images whose
	// texture is set directly with SetTexture.
	Path     string
	Position Vec2
	Scale    Vec2
	Visible  bool
	Alpha    float64
	Rotation float64
	// CenterOrigin rotates and scales around the texture centre, with
	// Position naming that centre. Otherwise Position is the top-left corner.
	CenterOrigin bool

	texture *ebiten.Image
	effects map[string]*ImageEffect
	order   []string
}

// NewImage creates a visible, opaque, unscaled image for the content at path.
func NewImage(path string, position Vec2) *Image {
	return &Image{
		Path:         path,
		Position:     position,
		Scale:        Vec2{1, 1},
		Visible:      true,
		Alpha:        1,
		CenterOrigin: true,
		effects:      make(map[string]*ImageEffect),
	}
}

// LoadContent resolves Path through content. An empty Path keeps the
// current texture.
func (img *Image) LoadContent(content *Content) error {
	if img.Path == "" {
		return nil
	}
	tex, err := content.Load(img.Path)
	if err != nil {
		return err
	}
	img.texture = tex
	return nil
}

// UnloadContent deactivates every effect and drops the texture.
func (img *Image) UnloadContent() {
	for _, name := range img.order {
		img.effects[name].Deactivate()
	}
	img.texture = nil
}

// SetTexture sets the texture directly.
func (img *Image) SetTexture(tex *ebiten.Image) {
	img.texture = tex
}

// Texture returns the loaded texture, or nil.
func (img *Image) Texture() *ebiten.Image {
	return img.texture
}

// Dimensions returns the unscaled texture size, or zero without a texture.
func (img *Image) Dimensions() Vec2 {
	if img.texture == nil {
		return Vec2{}
	}
	b := img.texture.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}
}

// AddEffect registers effect under name. An effect already registered
// under that name is deactivated and replaced.
func (img *Image) AddEffect(name string, effect *ImageEffect) {
	if effect == nil {
		return
	}
	if img.effects == nil {
		img.effects = make(map[string]*ImageEffect)
	}
	if old, ok := img.effects[name]; ok {
		old.Deactivate()
	} else {
		img.order = append(img.order, name)
	}
	effect.active = false
	effect.target = img
	img.effects[name] = effect
}

// RemoveEffect deactivates and unregisters the named effect.
func (img *Image) RemoveEffect(name string) {
	e, ok := img.effects[name]
	if !ok {
		return
	}
	e.Deactivate()
	delete(img.effects, name)
	for i, n := range img.order {
		if n == name {
			img.order = append(img.order[:i], img.order[i+1:]...)
			break
		}
	}
}

// Effect returns the named effect.
func (img *Image) Effect(name string) (*ImageEffect, bool) {
	e, ok := img.effects[name]
	return e, ok
}

// EffectNames returns registered effect names in insertion order.
func (img *Image) EffectNames() []string {
	return append([]string(nil), img.order...)
}

// EffectsOfKind returns every effect on img whose kind is K, in insertion
// order.
func EffectsOfKind[K EffectKind](img *Image) []*ImageEffect {
	var out []*ImageEffect
	for _, name := range img.order {
		e := img.effects[name]
		if _, ok := e.Kind.(K); ok {
			out = append(out, e)
		}
	}
	return out
}

// ActivateEffect starts the named effect on this image.
func (img *Image) ActivateEffect(name string) {
	if e, ok := img.effects[name]; ok {
		e.Activate(img)
	}
}

// DeactivateEffect stops the named effect.
func (img *Image) DeactivateEffect(name string) {
	if e, ok := img.effects[name]; ok {
		e.Deactivate()
	}
}

// Update steps every registered effect by dt seconds.
func (img *Image) Update(dt float64) {
	for _, name := range img.order {
		img.effects[name].Update(dt)
	}
}

// Draw renders the image to dst. Invisible or textureless images draw
// nothing.
func (img *Image) Draw(dst *ebiten.Image) {
	if !img.Visible || img.texture == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	img.geoM(&op.GeoM)
	op.ColorScale.ScaleAlpha(float32(clamp(img.Alpha, 0, 1)))
	dst.DrawImage(img.texture, op)
}

// geoM builds the image's local-to-screen transform.
func (img *Image) geoM(m *ebiten.GeoM) {
	var origin Vec2
	if img.CenterOrigin {
		d := img.Dimensions()
		origin = Vec2{d.X / 2, d.Y / 2}
	}
	m.Translate(-origin.X, -origin.Y)
	m.Scale(img.Scale.X, img.Scale.Y)
	m.Rotate(img.Rotation)
	m.Translate(img.Position.X, img.Position.Y)
}
