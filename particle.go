package ebitools

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Particle is a single animated point. Position, Angle and LifeSpan advance
// once per tick in Update; the owning ParticleEngine removes it when
// LifeSpan reaches zero.
type Particle struct {
	Texture         *ebiten.Image
	Position        Vec2
	Velocity        Vec2 // distance moved every tick
	Angle           float64
	AngularVelocity float64 // radians rotated every tick
	Color           color.RGBA
	Size            float64
	LifeSpan        int // remaining ticks
}

// Update advances the particle by one tick.
func (p *Particle) Update() {
	p.LifeSpan--
	p.Position = p.Position.Add(p.Velocity)
	p.Angle += p.AngularVelocity
}

// Draw renders the particle centred on its position.
func (p *Particle) Draw(dst *ebiten.Image, blend ebiten.Blend) {
	tex := p.Texture
	if tex == nil {
		tex = ensureWhitePixel()
	}
	b := tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(p.Size, p.Size)
	op.GeoM.Rotate(p.Angle)
	op.GeoM.Translate(p.Position.X, p.Position.Y)
	op.ColorScale.ScaleWithColor(p.Color)
	op.Blend = blend
	dst.DrawImage(tex, op)
}

// ParticleEngine owns an insertion-ordered list of particles. Every tick it
// appends MaximumParticles freshly generated particles, then advances all
// of them and reaps the expired ones.
type ParticleEngine struct {
	config    ParticleConfig
	textures  []*ebiten.Image
	particles []Particle
	rng       *rand.Rand
	stopped   bool
	debug     bool
	warned    bool
}

// NewParticleEngine creates an engine that draws its particle textures
// uniformly from textures. An empty texture set produces untextured
// (white pixel) particles.
func NewParticleEngine(cfg ParticleConfig, textures []*ebiten.Image) *ParticleEngine {
	return &ParticleEngine{
		config:   cfg,
		textures: textures,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// LoadParticleEngine resolves cfg.Textures through content and creates the
// engine.
func LoadParticleEngine(content *Content, cfg ParticleConfig) (*ParticleEngine, error) {
	textures, err := loadTextures(content, cfg.Textures)
	if err != nil {
		return nil, err
	}
	e := NewParticleEngine(cfg, textures)
	e.debug = content.debug
	return e, nil
}

func loadTextures(content *Content, paths []string) ([]*ebiten.Image, error) {
	textures := make([]*ebiten.Image, 0, len(paths))
	for _, path := range paths {
		img, err := content.Load(path)
		if err != nil {
			return nil, fmt.Errorf("ebitools: particle texture: %w", err)
		}
		textures = append(textures, img)
	}
	return textures, nil
}

// Config returns a pointer to the engine's config for live tuning.
func (e *ParticleEngine) Config() *ParticleConfig {
	return &e.config
}

// SetConfig replaces the generation parameters. Live particles keep the
// values they were generated with.
func (e *ParticleEngine) SetConfig(cfg ParticleConfig) {
	e.config = cfg
}

// SetTextures replaces the texture set new particles are drawn from.
func (e *ParticleEngine) SetTextures(textures []*ebiten.Image) {
	e.textures = textures
}

// SetSeed makes particle generation deterministic.
func (e *ParticleEngine) SetSeed(seed uint64) {
	e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SetDebug enables a warning when the live particle count grows very
// large.
func (e *ParticleEngine) SetDebug(enabled bool) {
	e.debug = enabled
	e.warned = false
}

// Start resumes spawning. A new engine is already spawning.
func (e *ParticleEngine) Start() {
	e.stopped = false
}

// Stop stops spawning new particles. Existing particles live out.
func (e *ParticleEngine) Stop() {
	e.stopped = true
}

// IsEmitting reports whether Update spawns new particles.
func (e *ParticleEngine) IsEmitting() bool {
	return !e.stopped
}

// Reset removes every live particle.
func (e *ParticleEngine) Reset() {
	clear(e.particles)
	e.particles = e.particles[:0]
}

// Count returns the number of live particles.
func (e *ParticleEngine) Count() int {
	return len(e.particles)
}

// Particles returns the live particles. The returned slice MUST NOT be
// retained across Update calls.
func (e *ParticleEngine) Particles() []Particle {
	return e.particles
}

// Each calls fn for every live particle in insertion order.
func (e *ParticleEngine) Each(fn func(*Particle)) {
	for i := range e.particles {
		fn(&e.particles[i])
	}
}

// Update spawns MaximumParticles new particles (while emitting), advances
// every particle by one tick, and removes those whose lifespan has run out.
func (e *ParticleEngine) Update() {
	if !e.stopped {
		for i := 0; i < e.config.MaximumParticles; i++ {
			e.particles = append(e.particles, e.generate())
		}
	}

	// Compact in place so no element is skipped and order is preserved.
	alive := 0
	for i := range e.particles {
		p := &e.particles[i]
		p.Update()
		if p.LifeSpan <= 0 {
			continue
		}
		if alive != i {
			e.particles[alive] = *p
		}
		alive++
	}
	clear(e.particles[alive:])
	e.particles = e.particles[:alive]

	if e.debug {
		debugCheckParticleCount(e)
	}
}

// Draw renders every live particle to dst.
func (e *ParticleEngine) Draw(dst *ebiten.Image) {
	blend := e.config.BlendMode.EbitenBlend()
	for i := range e.particles {
		e.particles[i].Draw(dst, blend)
	}
}

// generate builds one particle according to the current config.
func (e *ParticleEngine) generate() Particle {
	cfg := &e.config

	var tex *ebiten.Image
	if len(e.textures) > 0 {
		tex = e.textures[e.rng.IntN(len(e.textures))]
	}

	p := Particle{
		Texture:  tex,
		Position: cfg.Location,
		Velocity: Vec2{
			X: cfg.Spread * e.signed(),
			Y: cfg.Spread * e.signed(),
		},
		Angle:           cfg.Angle,
		AngularVelocity: cfg.AngularVelocity * e.signed(),
		Color:           cfg.Color.RGBA(),
		Size:            cfg.Size,
		LifeSpan:        cfg.LifeSpan,
	}

	if cfg.RandomizeSize {
		p.Size = Range{Min: cfg.Size, Max: cfg.RandomMaximumSize}.Random(e.rng)
	}
	if cfg.RandomizeLifeSpan {
		p.LifeSpan = cfg.LifeSpan + e.randomInt(0, cfg.RandomMaximumLifeSpan)
	}
	if cfg.RandomizeColor {
		p.Color = e.perturb(cfg.Color, cfg.RandomColorThreshold)
	}
	return p
}

// perturb moves each channel of c independently by up to threshold and
// clamps the result to [0, 255].
func (e *ParticleEngine) perturb(c RGB, threshold int) color.RGBA {
	channel := func(v uint8) uint8 {
		n := e.randomInt(int(v)-threshold, int(v)+threshold)
		return uint8(clampInt(n, 0, 255))
	}
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}

// signed returns a uniform value in [-1, 1).
func (e *ParticleEngine) signed() float64 {
	return e.rng.Float64()*2 - 1
}

// randomInt returns a uniform integer in [lo, hi), or lo when the range is
// empty.
func (e *ParticleEngine) randomInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.IntN(hi-lo)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
