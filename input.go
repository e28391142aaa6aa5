package ebitools

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// MaxPlayers is the number of gamepads tracked by InputManager.
const MaxPlayers = 4

// GamepadState is one player's gamepad in the standard layout.
type GamepadState struct {
	Connected bool
	Buttons   [ebiten.StandardGamepadButtonMax + 1]bool
}

// InputState is a snapshot of every device for a single tick.
type InputState struct {
	Keys     [ebiten.KeyMax + 1]bool
	Mouse    [mouseButtonCount]bool
	Cursor   Vec2
	Gamepads [MaxPlayers]GamepadState
}

// InputSource fills an InputState with the devices' current state.
type InputSource interface {
	Poll(s *InputState)
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func(s *InputState)

// Poll calls f(s).
func (f InputSourceFunc) Poll(s *InputState) { f(s) }

// EbitenInput polls keyboard, mouse and gamepads through Ebitengine.
// Gamepads are assigned to players in connection order; only gamepads
// with a standard layout report buttons.
type EbitenInput struct{}

// Poll implements InputSource.
func (EbitenInput) Poll(s *InputState) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		s.Keys[k] = ebiten.IsKeyPressed(k)
	}
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		s.Mouse[b] = ebiten.IsMouseButtonPressed(b.ebiten())
	}
	mx, my := ebiten.CursorPosition()
	s.Cursor = Vec2{float64(mx), float64(my)}

	var buf [MaxPlayers * 2]ebiten.GamepadID
	ids := ebiten.AppendGamepadIDs(buf[:0])
	for i := 0; i < MaxPlayers && i < len(ids); i++ {
		pad := &s.Gamepads[i]
		pad.Connected = true
		if !ebiten.IsStandardGamepadLayoutAvailable(ids[i]) {
			continue
		}
		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			pad.Buttons[b] = ebiten.IsStandardGamepadButtonPressed(ids[i], b)
		}
	}
}

// InputManager keeps the current and previous input snapshots and answers
// edge queries ("pressed this tick") from them. Call Update exactly once
// per tick, before anything queries it.
type InputManager struct {
	source InputSource
	cur    InputState
	prev   InputState
	queue  []InputState
}

// NewInputManager creates a manager polling src. A nil src reports no
// input except injected frames.
func NewInputManager(src InputSource) *InputManager {
	return &InputManager{source: src}
}

// SetSource replaces the polled input source.
func (m *InputManager) SetSource(src InputSource) {
	m.source = src
}

// Update moves the current snapshot to previous and takes a new one. A
// queued injected frame, if any, replaces this tick's polled input.
func (m *InputManager) Update() {
	m.prev = m.cur
	if len(m.queue) > 0 {
		m.cur = m.queue[0]
		copy(m.queue, m.queue[1:])
		m.queue = m.queue[:len(m.queue)-1]
		return
	}
	m.cur = InputState{}
	if m.source != nil {
		m.source.Poll(&m.cur)
	}
}

// State returns the current snapshot.
func (m *InputManager) State() *InputState {
	return &m.cur
}

func validKey(k ebiten.Key) bool {
	return k >= 0 && k <= ebiten.KeyMax
}

// KeyDown reports whether k is held this tick.
func (m *InputManager) KeyDown(k ebiten.Key) bool {
	return validKey(k) && m.cur.Keys[k]
}

// KeyPressed reports whether any of keys went down this tick.
func (m *InputManager) KeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if validKey(k) && m.cur.Keys[k] && !m.prev.Keys[k] {
			return true
		}
	}
	return false
}

// KeyReleased reports whether any of keys went up this tick.
func (m *InputManager) KeyReleased(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if validKey(k) && !m.cur.Keys[k] && m.prev.Keys[k] {
			return true
		}
	}
	return false
}

// PressedKeys returns every key held this tick.
func (m *InputManager) PressedKeys() []ebiten.Key {
	var keys []ebiten.Key
	for k, down := range m.cur.Keys {
		if down {
			keys = append(keys, ebiten.Key(k))
		}
	}
	return keys
}

// AnyKeyPressed reports whether any key is held this tick.
func (m *InputManager) AnyKeyPressed() bool {
	for _, down := range m.cur.Keys {
		if down {
			return true
		}
	}
	return false
}

// JustPressedKeys returns the keys that went down this tick.
func (m *InputManager) JustPressedKeys() []ebiten.Key {
	var keys []ebiten.Key
	for k := range m.cur.Keys {
		if m.cur.Keys[k] && !m.prev.Keys[k] {
			keys = append(keys, ebiten.Key(k))
		}
	}
	return keys
}

// AnyKeyReleased reports whether any key went up this tick.
func (m *InputManager) AnyKeyReleased() bool {
	return len(m.JustReleasedKeys()) > 0
}

// JustReleasedKeys returns the keys that went up this tick.
func (m *InputManager) JustReleasedKeys() []ebiten.Key {
	var keys []ebiten.Key
	for k := range m.cur.Keys {
		if !m.cur.Keys[k] && m.prev.Keys[k] {
			keys = append(keys, ebiten.Key(k))
		}
	}
	return keys
}

// Modifiers returns the modifier keys held this tick.
func (m *InputManager) Modifiers() KeyModifiers {
	var mods KeyModifiers
	if m.KeyDown(ebiten.KeyShift) || m.KeyDown(ebiten.KeyShiftLeft) || m.KeyDown(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if m.KeyDown(ebiten.KeyControl) || m.KeyDown(ebiten.KeyControlLeft) || m.KeyDown(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if m.KeyDown(ebiten.KeyAlt) || m.KeyDown(ebiten.KeyAltLeft) || m.KeyDown(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if m.KeyDown(ebiten.KeyMeta) || m.KeyDown(ebiten.KeyMetaLeft) || m.KeyDown(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// MouseButtonDown reports whether b is held this tick.
func (m *InputManager) MouseButtonDown(b MouseButton) bool {
	return b < mouseButtonCount && m.cur.Mouse[b]
}

// MouseButtonPressed reports whether any of buttons went down this tick.
func (m *InputManager) MouseButtonPressed(buttons ...MouseButton) bool {
	for _, b := range buttons {
		if b < mouseButtonCount && m.cur.Mouse[b] && !m.prev.Mouse[b] {
			return true
		}
	}
	return false
}

// MouseButtonReleased reports whether any of buttons went up this tick.
func (m *InputManager) MouseButtonReleased(buttons ...MouseButton) bool {
	for _, b := range buttons {
		if b < mouseButtonCount && !m.cur.Mouse[b] && m.prev.Mouse[b] {
			return true
		}
	}
	return false
}

// AnyMouseButtonPressed reports whether any mouse button went down this
// tick.
func (m *InputManager) AnyMouseButtonPressed() bool {
	return len(m.JustPressedMouseButtons()) > 0
}

// AnyMouseButtonReleased reports whether any mouse button went up this
// tick.
func (m *InputManager) AnyMouseButtonReleased() bool {
	for b := range m.cur.Mouse {
		if !m.cur.Mouse[b] && m.prev.Mouse[b] {
			return true
		}
	}
	return false
}

// JustPressedMouseButtons returns the mouse buttons that went down this
// tick.
func (m *InputManager) JustPressedMouseButtons() []MouseButton {
	var buttons []MouseButton
	for b := range m.cur.Mouse {
		if m.cur.Mouse[b] && !m.prev.Mouse[b] {
			buttons = append(buttons, MouseButton(b))
		}
	}
	return buttons
}

// MousePosition returns the cursor position in screen pixels.
func (m *InputManager) MousePosition() Vec2 {
	return m.cur.Cursor
}

func (m *InputManager) pads(player int) (cur, prev *GamepadState, ok bool) {
	if player < 0 || player >= MaxPlayers || !m.cur.Gamepads[player].Connected {
		return nil, nil, false
	}
	return &m.cur.Gamepads[player], &m.prev.Gamepads[player], true
}

func validButton(b ebiten.StandardGamepadButton) bool {
	return b >= 0 && b <= ebiten.StandardGamepadButtonMax
}

// GamepadConnected reports whether player has a gamepad this tick.
func (m *InputManager) GamepadConnected(player int) bool {
	_, _, ok := m.pads(player)
	return ok
}

// ButtonPressed reports whether any of buttons went down this tick on
// player's gamepad.
func (m *InputManager) ButtonPressed(player int, buttons ...ebiten.StandardGamepadButton) bool {
	cur, prev, ok := m.pads(player)
	if !ok {
		return false
	}
	for _, b := range buttons {
		if validButton(b) && cur.Buttons[b] && !prev.Buttons[b] {
			return true
		}
	}
	return false
}

// ButtonReleased reports whether any of buttons went up this tick on
// player's gamepad.
func (m *InputManager) ButtonReleased(player int, buttons ...ebiten.StandardGamepadButton) bool {
	cur, prev, ok := m.pads(player)
	if !ok {
		return false
	}
	for _, b := range buttons {
		if validButton(b) && !cur.Buttons[b] && prev.Buttons[b] {
			return true
		}
	}
	return false
}

// AnyButtonPressed reports whether any gamepad button went down this tick
// on player's gamepad.
func (m *InputManager) AnyButtonPressed(player int) bool {
	cur, prev, ok := m.pads(player)
	if !ok {
		return false
	}
	for b := range cur.Buttons {
		if cur.Buttons[b] && !prev.Buttons[b] {
			return true
		}
	}
	return false
}

// AnyButtonReleased reports whether any gamepad button went up this tick
// on player's gamepad.
func (m *InputManager) AnyButtonReleased(player int) bool {
	cur, prev, ok := m.pads(player)
	if !ok {
		return false
	}
	for b := range cur.Buttons {
		if !cur.Buttons[b] && prev.Buttons[b] {
			return true
		}
	}
	return false
}
