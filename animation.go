package ebitools

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// AnimatedSprite plays the frames of a sprite sheet laid out as Rows x
// Columns equally sized cells, left to right and top to bottom.
//
// There is no global animation clock; callers either call Update once per
// tick or, with FrameTime set, Advance with the elapsed seconds.
type AnimatedSprite struct {
	Texture *ebiten.Image
	Rows    int
	Columns int
	// FrameTime is the number of seconds each frame is shown by Advance.
	// Zero advances one frame per Advance call.
	FrameTime float64

	frame   int
	elapsed float64
}

// NewAnimatedSprite creates a sprite starting at frame 0.
func NewAnimatedSprite(tex *ebiten.Image, rows, columns int) *AnimatedSprite {
	return &AnimatedSprite{Texture: tex, Rows: max(rows, 1), Columns: max(columns, 1)}
}

// TotalFrames returns Rows * Columns.
func (s *AnimatedSprite) TotalFrames() int {
	return s.Rows * s.Columns
}

// Update advances one frame, wrapping to the first after the last.
func (s *AnimatedSprite) Update() {
	s.frame++
	if s.frame >= s.TotalFrames() {
		s.frame = 0
	}
}

// Advance moves the animation on by dt seconds.
func (s *AnimatedSprite) Advance(dt float64) {
	if s.FrameTime <= 0 {
		s.Update()
		return
	}
	s.elapsed += dt
	for s.elapsed >= s.FrameTime {
		s.elapsed -= s.FrameTime
		s.Update()
	}
}

// Frame returns the current frame index.
func (s *AnimatedSprite) Frame() int {
	return s.frame
}

// SetFrame jumps to frame i, wrapped into range.
func (s *AnimatedSprite) SetFrame(i int) {
	n := s.TotalFrames()
	s.frame = ((i % n) + n) % n
	s.elapsed = 0
}

// FrameRect returns the source rectangle of the current frame within
// Texture.
func (s *AnimatedSprite) FrameRect() image.Rectangle {
	if s.Texture == nil {
		return image.Rectangle{}
	}
	b := s.Texture.Bounds()
	w := b.Dx() / s.Columns
	h := b.Dy() / s.Rows
	row := s.frame / s.Columns
	col := s.frame % s.Columns
	x := b.Min.X + w*col
	y := b.Min.Y + h*row
	return image.Rect(x, y, x+w, y+h)
}

// Draw renders the current frame with its top-left corner at location,
// tinted by tint.
func (s *AnimatedSprite) Draw(dst *ebiten.Image, location Vec2, tint color.Color) {
	r := s.FrameRect()
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(int(location.X)), float64(int(location.Y)))
	op.ColorScale.ScaleWithColor(tint)
	dst.DrawImage(s.Texture.SubImage(r).(*ebiten.Image), op)
}
