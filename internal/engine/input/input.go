// Package input holds the per-frame input snapshot read by controllers.
package input

// Key is a logical movement key.
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	keyCount
)

var keyNames = [keyCount]string{"forward", "backward", "left", "right", "up", "down"}

// String returns the binding name of the key.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// ParseKey returns the key with the given binding name.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return 0, false
}

// MouseButton identifies one bit of the 5-bit button mask.
type MouseButton uint8

const (
	MousePrimary MouseButton = iota
	MouseSecondary
	MouseAuxiliary
	MouseFourth
	MouseFifth
)

// ButtonMask covers the five supported mouse buttons.
const ButtonMask uint16 = 0b1_1111

// Mouse is the mouse part of a snapshot.
type Mouse struct {
	DX, DY  int32
	Buttons uint16
}

// IsDown reports whether the button is held.
func (m Mouse) IsDown(b MouseButton) bool {
	if b > MouseFifth {
		return false
	}
	return m.Buttons&(1<<b) != 0
}

// IsUp reports whether the button is released.
func (m Mouse) IsUp(b MouseButton) bool {
	return !m.IsDown(b)
}

// Keyboard is the keyboard part of a snapshot.
type Keyboard struct {
	down [keyCount]bool
}

// IsDown reports whether the key is held.
func (k Keyboard) IsDown(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return k.down[key]
}

// Input is an immutable view of the input for one frame.
type Input struct {
	mouse    Mouse
	keyboard Keyboard
}

// Mouse returns the mouse snapshot.
func (i *Input) Mouse() Mouse {
	if i == nil {
		return Mouse{}
	}
	return i.mouse
}

// Keyboard returns the keyboard snapshot.
func (i *Input) Keyboard() Keyboard {
	if i == nil {
		return Keyboard{}
	}
	return i.keyboard
}

// State is the writer side of the input: event capture updates it,
// and the frame loop takes a Snapshot once per tick. Last write wins.
type State struct {
	cur Input
}

// NewState creates an empty input state.
func NewState() *State {
	return &State{}
}

// SetKey records a key press or release.
func (s *State) SetKey(k Key, down bool) {
	if k < 0 || k >= keyCount {
		return
	}
	s.cur.keyboard.down[k] = down
}

// MoveMouse records relative mouse motion. Motion within a frame accumulates.
func (s *State) MoveMouse(dx, dy int32) {
	s.cur.mouse.DX += dx
	s.cur.mouse.DY += dy
}

// SetButtons replaces the mouse button mask.
func (s *State) SetButtons(mask uint16) {
	s.cur.mouse.Buttons = mask & ButtonMask
}

// Leave resets the mouse when the pointer leaves the window.
func (s *State) Leave() {
	s.cur.mouse = Mouse{}
}

// Snapshot returns a copy of the current input.
func (s *State) Snapshot() *Input {
	snap := s.cur
	return &snap
}

// EndFrame clears per-frame deltas after the snapshot was consumed.
func (s *State) EndFrame() {
	s.cur.mouse.DX = 0
	s.cur.mouse.DY = 0
}
