package ebitools

import "github.com/hajimehoshi/ebiten/v2"

// Cursor draws an image at the mouse position, clamped to the screen.
// Pair it with RunConfig.HideCursor to replace the OS cursor.
type Cursor struct {
	Visible bool
	Scale   Vec2

	path     string
	image    *Image
	position Vec2
}

// NewCursor creates a visible cursor drawn with the content at path.
func NewCursor(path string) *Cursor {
	return &Cursor{
		Visible: true,
		Scale:   Vec2{1, 1},
		path:    path,
	}
}

// LoadContent loads the cursor image. An empty path leaves the cursor
// without an image; it still tracks the mouse.
func (c *Cursor) LoadContent(ctx *Context) error {
	if c.path == "" {
		return nil
	}
	img := NewImage(c.path, c.position)
	img.CenterOrigin = false
	if err := img.LoadContent(ctx.Content); err != nil {
		return err
	}
	c.image = img
	return nil
}

// UnloadContent drops the cursor image.
func (c *Cursor) UnloadContent() {
	if c.image != nil {
		c.image.UnloadContent()
		c.image = nil
	}
}

// Update follows the mouse, clamped to [0, ctx.Dimensions].
func (c *Cursor) Update(ctx *Context) {
	p := ctx.Input.MousePosition()
	c.position = Vec2{
		X: clamp(p.X, 0, ctx.Dimensions.X),
		Y: clamp(p.Y, 0, ctx.Dimensions.Y),
	}
	if c.image != nil {
		c.image.Position = c.position
	}
}

// Draw renders the cursor image with its top-left corner at the pointer.
func (c *Cursor) Draw(dst *ebiten.Image) {
	if !c.Visible || c.image == nil {
		return
	}
	c.image.Scale = c.Scale
	c.image.Draw(dst)
}

// Position returns the clamped pointer position from the last Update.
func (c *Cursor) Position() Vec2 {
	return c.position
}
