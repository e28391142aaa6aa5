package ebitools

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is one game state (title, menu, level). Only the current screen
// is updated and drawn.
type Screen interface {
	// LoadContent is called when the screen becomes current.
	LoadContent(ctx *Context) error
	// UnloadContent is called when the screen stops being current.
	UnloadContent()
	Update(ctx *Context, dt float64)
	Draw(ctx *Context, dst *ebiten.Image)
}

// ScreenManager holds named screens and the single current one. Screen
// changes either swap immediately or are gated by a ScreenTransition that
// signals when the swap should happen.
type ScreenManager struct {
	ctx        *Context
	screens    map[string]Screen
	names      []string
	current    string
	next       string
	transition *ScreenTransition
}

// NewScreenManager creates an empty manager bound to ctx.
func NewScreenManager(ctx *Context) *ScreenManager {
	return &ScreenManager{
		ctx:     ctx,
		screens: make(map[string]Screen),
	}
}

// AddScreen registers screen under name. Names already in use are ignored.
// The first screen added becomes current and has its content loaded.
func (m *ScreenManager) AddScreen(name string, screen Screen) {
	if screen == nil {
		return
	}
	if _, ok := m.screens[name]; ok {
		return
	}
	m.screens[name] = screen
	m.names = append(m.names, name)
	if len(m.names) == 1 {
		m.setScreen(name)
	}
}

// ChangeScreen makes the named screen current. With a nil transition the
// swap happens immediately; otherwise the transition is activated and the
// swap happens on the tick it raises DoChange. Unknown names, and calls
// made while another transition is running, are ignored.
func (m *ScreenManager) ChangeScreen(name string, transition *ScreenTransition) {
	next, ok := m.screens[name]
	if !ok {
		return
	}
	if m.IsTransitioning() {
		if m.ctx.Debug {
			log.Printf("[ScreenManager] change to %q ignored: transition in progress", name)
		}
		return
	}
	if transition == nil {
		m.unloadCurrent()
		m.setScreen(name)
		return
	}
	m.next = name
	m.transition = transition
	transition.Activate(m.Current(), next)
	if m.ctx.Debug {
		log.Printf("[ScreenManager] transition %q -> %q", m.current, name)
	}
}

// Screen returns the screen registered under name, or nil.
func (m *ScreenManager) Screen(name string) Screen {
	return m.screens[name]
}

// ScreensOfType returns every registered screen of concrete type T, in
// registration order.
func ScreensOfType[T Screen](m *ScreenManager) []T {
	var out []T
	for _, name := range m.names {
		if s, ok := m.screens[name].(T); ok {
			out = append(out, s)
		}
	}
	return out
}

// Current returns the current screen, or nil before any screen is added.
func (m *ScreenManager) Current() Screen {
	return m.screens[m.current]
}

// CurrentName returns the name of the current screen.
func (m *ScreenManager) CurrentName() string {
	return m.current
}

// Names returns registered screen names in registration order.
func (m *ScreenManager) Names() []string {
	return append([]string(nil), m.names...)
}

// IsTransitioning reports whether a screen transition is running.
func (m *ScreenManager) IsTransitioning() bool {
	return m.transition != nil && m.transition.IsActive()
}

// ResetScreen reloads the named screen's content. Resetting the current
// screen restarts it in place.
func (m *ScreenManager) ResetScreen(name string) {
	s, ok := m.screens[name]
	if !ok {
		return
	}
	s.UnloadContent()
	if name != m.current {
		return
	}
	if err := s.LoadContent(m.ctx); err != nil {
		log.Printf("[ScreenManager] reset %q: %v", name, err)
	}
}

// Update advances the current screen and the running transition. When
// the transition raises DoChange the old screen is unloaded and the next
// one loaded and made current.
func (m *ScreenManager) Update(dt float64) {
	if s := m.Current(); s != nil {
		s.Update(m.ctx, dt)
	}
	t := m.transition
	if t == nil {
		return
	}
	t.Update(dt)
	switch {
	case t.IsActive() && t.DoChange():
		m.unloadCurrent()
		m.setScreen(m.next)
		t.ClearChange()
	case !t.IsActive():
		m.transition = nil
		m.next = ""
		if m.ctx.Debug {
			log.Printf("[ScreenManager] transition to %q finished", m.current)
		}
	}
}

// Draw renders the current screen and, while running, the transition
// overlay on top of it.
func (m *ScreenManager) Draw(dst *ebiten.Image) {
	if s := m.Current(); s != nil {
		s.Draw(m.ctx, dst)
	}
	if m.IsTransitioning() {
		m.transition.Draw(dst, m.ctx.Dimensions)
	}
}

// UnloadContent unloads the current screen.
func (m *ScreenManager) UnloadContent() {
	m.unloadCurrent()
}

func (m *ScreenManager) unloadCurrent() {
	if s := m.Current(); s != nil {
		s.UnloadContent()
	}
}

// setScreen makes name current and loads its content. A load failure is
// logged and the screen stays current.
func (m *ScreenManager) setScreen(name string) {
	m.current = name
	s := m.screens[name]
	if err := s.LoadContent(m.ctx); err != nil {
		log.Printf("[ScreenManager] load %q: %v", name, err)
		return
	}
	if m.ctx.Debug {
		log.Printf("[ScreenManager] switched to %q", name)
	}
}
