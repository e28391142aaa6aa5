package ebitools

import "io/fs"

// Context carries the managers shared by every screen and widget. One
// Context is created per game and passed explicitly to LoadContent, Update
// and Draw calls.
type Context struct {
	Content *Content
	Input   *InputManager
	Screens *ScreenManager
	// Dimensions is the logical screen size in pixels.
	Dimensions Vec2
	// Debug enables verbose logging of content loads and screen changes.
	Debug bool

	exit bool
}

// NewContext creates a context loading content from fsys and polling input
// from Ebitengine. fsys may be nil for games that only use Content.Put.
func NewContext(fsys fs.FS, width, height int) *Context {
	ctx := &Context{
		Content:    NewContent(fsys),
		Input:      NewInputManager(EbitenInput{}),
		Dimensions: Vec2{float64(width), float64(height)},
	}
	ctx.Screens = NewScreenManager(ctx)
	return ctx
}

// SetDebug toggles verbose logging on the context and its content loader.
func (ctx *Context) SetDebug(enabled bool) {
	ctx.Debug = enabled
	if ctx.Content != nil {
		ctx.Content.debug = enabled
	}
}

// Exit asks the game loop to stop after the current tick.
func (ctx *Context) Exit() {
	ctx.exit = true
}

// Exiting reports whether Exit has been called.
func (ctx *Context) Exiting() bool {
	return ctx.exit
}
