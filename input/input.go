// Package input keeps one frame's view of keyboard, mouse and wheel state.
// Events are fed in at the start of a frame and every consumer of that
// frame sees the same pressed/held/released answers.
package input

// Key identifies a keyboard key. Values are opaque to this package.
type Key int

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
)

type State struct {
	pressedKeys  map[Key]bool
	releasedKeys map[Key]bool
	heldKeys     map[Key]bool

	pressedButtons  map[Button]bool
	releasedButtons map[Button]bool
	heldButtons     map[Button]bool

	scroll float64
	mods   Modifier
}

func New() *State {
	return &State{
		pressedKeys:     make(map[Key]bool),
		releasedKeys:    make(map[Key]bool),
		heldKeys:        make(map[Key]bool),
		pressedButtons:  make(map[Button]bool),
		releasedButtons: make(map[Button]bool),
		heldButtons:     make(map[Button]bool),
	}
}

// BeginFrame clears the edge-triggered state and the scroll delta. Held
// state carries over until a release arrives.
func (s *State) BeginFrame() {
	clear(s.pressedKeys)
	clear(s.releasedKeys)
	clear(s.pressedButtons)
	clear(s.releasedButtons)
	s.scroll = 0
}

func (s *State) KeyDown(k Key) {
	s.pressedKeys[k] = true
	s.heldKeys[k] = true
}

func (s *State) KeyUp(k Key) {
	s.releasedKeys[k] = true
	s.heldKeys[k] = false
}

func (s *State) ButtonDown(b Button) {
	s.pressedButtons[b] = true
	s.heldButtons[b] = true
}

func (s *State) ButtonUp(b Button) {
	s.releasedButtons[b] = true
	s.heldButtons[b] = false
}

// SetModifiers records which modifier keys are held this frame. Modifiers
// are level state sampled once per frame rather than edges.
func (s *State) SetModifiers(m Modifier) { s.mods = m }

// HasModifiers reports whether every modifier in m is held.
func (s *State) HasModifiers(m Modifier) bool { return s.mods&m == m }

// Scroll accumulates wheel movement for the current frame.
func (s *State) Scroll(delta float64) { s.scroll += delta }

func (s *State) IsKeyPressed(k Key) bool  { return s.pressedKeys[k] }
func (s *State) IsKeyReleased(k Key) bool { return s.releasedKeys[k] }
func (s *State) IsKeyHeld(k Key) bool     { return s.heldKeys[k] }

func (s *State) IsButtonPressed(b Button) bool  { return s.pressedButtons[b] }
func (s *State) IsButtonReleased(b Button) bool { return s.releasedButtons[b] }
func (s *State) IsButtonHeld(b Button) bool     { return s.heldButtons[b] }

func (s *State) ScrollDelta() float64 { return s.scroll }
