package joystick

import "fmt"

// DefaultThreshold is the axis value past which a direction counts as held.
const DefaultThreshold = 0.3

// Mode selects how the analog vector is turned into key state.
type Mode int

const (
	// ModeAnalog thresholds the continuous vector per axis.
	ModeAnalog Mode = iota
	// ModeDigital8 snaps the vector to one of eight headings first.
	ModeDigital8
)

func (m Mode) String() string {
	if m == ModeDigital8 {
		return "digital8"
	}
	return "analog"
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "analog":
		return ModeAnalog, nil
	case "digital8":
		return ModeDigital8, nil
	}
	return ModeAnalog, fmt.Errorf("unknown joystick mode %q", s)
}

// InputSink receives key transitions. Implementations forward them to
// whatever consumes keyboard input on the host side.
type InputSink interface {
	Press(k Key)
	Release(k Key)
}

// Settings are fixed for the lifetime of a Mapper.
type Settings struct {
	Geometry  Geometry
	Threshold float64
	Mode      Mode
}

// Validate checks the geometry and the threshold.
func (s Settings) Validate() error {
	if err := s.Geometry.Validate(); err != nil {
		return err
	}
	if s.Threshold < 0 || s.Threshold >= 1 {
		return fmt.Errorf("%w: threshold %v must be in [0, 1)", ErrInvalidGeometry, s.Threshold)
	}
	return nil
}

// Mapper owns the vector and key state of one joystick. It is not safe for
// concurrent use; the game loop is its only caller.
type Mapper struct {
	settings Settings
	sink     InputSink

	vector Vector
	knob   Point
	keys   KeyState
}

// NewMapper returns a Mapper that delivers transitions to sink.
func NewMapper(settings Settings, sink InputSink) (*Mapper, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = discardSink{}
	}
	return &Mapper{settings: settings, sink: sink}, nil
}

// Settings returns the settings the mapper was built with.
func (m *Mapper) Settings() Settings {
	return m.settings
}

// SetSink replaces the sink. Held keys are released on the old sink first so
// it never sees a press without its release.
func (m *Mapper) SetSink(sink InputSink) {
	m.Reset()
	if sink == nil {
		sink = discardSink{}
	}
	m.sink = sink
}

// Move applies a pointer sample and returns the resulting vector.
func (m *Mapper) Move(sample Point) Vector {
	v, knob := Map(sample, m.settings.Geometry)
	m.knob = knob
	if m.settings.Mode == ModeDigital8 {
		v = Quantize8(v)
	}
	m.apply(v)
	return v
}

// UpdateKeys applies v directly, bypassing the geometry. It returns the
// transitions that were delivered to the sink.
func (m *Mapper) UpdateKeys(v Vector) []Transition {
	return m.apply(v)
}

// Reset returns the stick to neutral. Every held key receives exactly one
// release.
func (m *Mapper) Reset() []Transition {
	m.knob = Point{}
	return m.apply(Vector{})
}

func (m *Mapper) apply(v Vector) []Transition {
	m.vector = v
	transitions := m.keys.Update(v, m.settings.Threshold)
	for _, t := range transitions {
		if t.Kind == Press {
			m.sink.Press(t.Key)
		} else {
			m.sink.Release(t.Key)
		}
	}
	return transitions
}

// Vector returns the current analog state.
func (m *Mapper) Vector() Vector {
	return m.vector
}

// Knob returns the knob offset from the center, capped at the max radius.
func (m *Mapper) Knob() Point {
	return m.knob
}

// Held reports whether d is currently pressed.
func (m *Mapper) Held(d Direction) bool {
	return m.keys.Held(d)
}

// Compass returns the indicator heading for the current vector.
func (m *Mapper) Compass() Compass {
	return CompassOf(m.vector)
}

type discardSink struct{}

func (discardSink) Press(Key)   {}
func (discardSink) Release(Key) {}
