package ebitools

import "github.com/hajimehoshi/ebiten/v2"

// Injected input replaces polled input one tick per queued frame. Screen
// coordinates are used, matching what a scripted test sees in screenshots.
// The cursor stays where the last frame left it unless a frame moves it.

// InjectKey queues a frame with keys held followed by a frame with them
// released. Consumes two ticks.
func (m *InputManager) InjectKey(keys ...ebiten.Key) {
	press := m.nextFrame()
	for _, k := range keys {
		if validKey(k) {
			press.Keys[k] = true
		}
	}
	m.queue = append(m.queue, press)
	m.queue = append(m.queue, m.nextFrame())
}

// InjectPress queues a frame with button held at the given screen
// coordinates.
func (m *InputManager) InjectPress(x, y float64, button MouseButton) {
	f := m.nextFrame()
	f.Cursor = Vec2{x, y}
	if button < mouseButtonCount {
		f.Mouse[button] = true
	}
	m.queue = append(m.queue, f)
}

// InjectRelease queues a frame with no buttons held at the given screen
// coordinates.
func (m *InputManager) InjectRelease(x, y float64) {
	m.InjectMove(x, y)
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two ticks.
func (m *InputManager) InjectClick(x, y float64, button MouseButton) {
	m.InjectPress(x, y, button)
	m.InjectRelease(x, y)
}

// InjectMove queues a frame moving the cursor to the given screen
// coordinates with no buttons held.
func (m *InputManager) InjectMove(x, y float64) {
	f := m.nextFrame()
	f.Cursor = Vec2{x, y}
	m.queue = append(m.queue, f)
}

// InjectGamepadButton queues a press and a release of button on player's
// gamepad. The gamepad reports connected for both ticks.
func (m *InputManager) InjectGamepadButton(player int, button ebiten.StandardGamepadButton) {
	if player < 0 || player >= MaxPlayers || !validButton(button) {
		return
	}
	press := m.nextFrame()
	press.Gamepads[player].Connected = true
	press.Gamepads[player].Buttons[button] = true
	release := m.nextFrame()
	release.Gamepads[player].Connected = true
	m.queue = append(m.queue, press, release)
}

// Pending returns the number of queued frames not yet consumed.
func (m *InputManager) Pending() int {
	return len(m.queue)
}

// nextFrame returns an empty frame carrying the cursor position the
// previous frame ends on.
func (m *InputManager) nextFrame() InputState {
	cursor := m.cur.Cursor
	if n := len(m.queue); n > 0 {
		cursor = m.queue[n-1].Cursor
	}
	return InputState{Cursor: cursor}
}
