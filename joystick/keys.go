package joystick

// Direction is a logical stick direction. Each one is backed by two physical
// keys, an arrow key and its WASD alias.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	directionCount
)

// Directions lists all logical directions in dispatch order.
var Directions = [directionCount]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Key identifies a physical key the way a browser keyboard event does.
type Key struct {
	Name    string // KeyboardEvent.key
	Code    string // KeyboardEvent.code
	KeyCode int    // legacy KeyboardEvent.keyCode
}

var (
	KeyArrowUp    = Key{Name: "ArrowUp", Code: "ArrowUp", KeyCode: 38}
	KeyArrowDown  = Key{Name: "ArrowDown", Code: "ArrowDown", KeyCode: 40}
	KeyArrowLeft  = Key{Name: "ArrowLeft", Code: "ArrowLeft", KeyCode: 37}
	KeyArrowRight = Key{Name: "ArrowRight", Code: "ArrowRight", KeyCode: 39}
	KeyW          = Key{Name: "w", Code: "KeyW", KeyCode: 87}
	KeyS          = Key{Name: "s", Code: "KeyS", KeyCode: 83}
	KeyA          = Key{Name: "a", Code: "KeyA", KeyCode: 65}
	KeyD          = Key{Name: "d", Code: "KeyD", KeyCode: 68}
)

var directionKeys = [directionCount][2]Key{
	Up:    {KeyArrowUp, KeyW},
	Down:  {KeyArrowDown, KeyS},
	Left:  {KeyArrowLeft, KeyA},
	Right: {KeyArrowRight, KeyD},
}

// KeysFor returns the arrow key and the letter key backing d.
func KeysFor(d Direction) [2]Key {
	return directionKeys[d]
}

// TransitionKind is the edge a key goes through.
type TransitionKind int

const (
	Press TransitionKind = iota
	Release
)

func (k TransitionKind) String() string {
	if k == Press {
		return "press"
	}
	return "release"
}

// Transition is a single key edge to be delivered to an InputSink.
type Transition struct {
	Key       Key
	Direction Direction
	Kind      TransitionKind
}

// KeyState tracks which logical directions are currently held.
// The zero value has every direction released.
type KeyState struct {
	held [directionCount]bool
}

// Held reports whether d is currently pressed.
func (s *KeyState) Held(d Direction) bool {
	return s.held[d]
}

// Update compares the directions requested by v against the held state and
// returns the transitions needed to get there, flipping the held state as it
// goes. Both physical keys of a direction always transition together, and
// all releases come before any press. An unchanged request produces no
// transitions.
func (s *KeyState) Update(v Vector, threshold float64) []Transition {
	desired := [directionCount]bool{
		Up:    v.Y > threshold,
		Down:  v.Y < -threshold,
		Left:  v.X < -threshold,
		Right: v.X > threshold,
	}

	var out []Transition
	for _, kind := range [...]TransitionKind{Release, Press} {
		for _, d := range Directions {
			if desired[d] == s.held[d] || desired[d] != (kind == Press) {
				continue
			}
			for _, k := range directionKeys[d] {
				out = append(out, Transition{Key: k, Direction: d, Kind: kind})
			}
			s.held[d] = desired[d]
		}
	}
	return out
}
