package joystick

// PointerID identifies a touch or the mouse.
type PointerID int

// MousePointer is the PointerID used for mouse drags. Touch IDs from the
// host are expected to be non-negative.
const MousePointer PointerID = -1

// Stick tracks which pointer is dragging the knob and feeds its samples to
// the Mapper. Only one pointer drives the stick at a time.
type Stick struct {
	*Mapper

	HitRadius  float64 // pointers must start inside this radius
	AllowMouse bool

	active   PointerID
	dragging bool
}

// NewStick wraps m. A hitRadius of zero falls back to the mapper's max radius.
func NewStick(m *Mapper, hitRadius float64, allowMouse bool) *Stick {
	if hitRadius <= 0 {
		hitRadius = m.Settings().Geometry.MaxRadius
	}
	return &Stick{Mapper: m, HitRadius: hitRadius, AllowMouse: allowMouse}
}

// Dragging reports whether a pointer currently owns the stick.
func (s *Stick) Dragging() bool {
	return s.dragging
}

// Active returns the owning pointer, if any.
func (s *Stick) Active() (PointerID, bool) {
	return s.active, s.dragging
}

// Contains reports whether p is inside the hit area.
func (s *Stick) Contains(p Point) bool {
	d := p.Sub(s.Settings().Geometry.Center)
	return d.X*d.X+d.Y*d.Y <= s.HitRadius*s.HitRadius
}

// Begin starts a drag for id when nothing else owns the stick and p lies in
// the hit area. The sample is applied immediately.
func (s *Stick) Begin(id PointerID, p Point) bool {
	if s.dragging {
		return false
	}
	if id == MousePointer && !s.AllowMouse {
		return false
	}
	if !s.Contains(p) {
		return false
	}
	s.active = id
	s.dragging = true
	s.Mapper.Move(p)
	return true
}

// Move applies p if id owns the stick.
func (s *Stick) Move(id PointerID, p Point) {
	if !s.dragging || id != s.active {
		return
	}
	s.Mapper.Move(p)
}

// End finishes the drag owned by id and releases all keys.
func (s *Stick) End(id PointerID) {
	if !s.dragging || id != s.active {
		return
	}
	s.Cancel()
}

// Cancel drops whatever drag is in progress and releases all keys.
func (s *Stick) Cancel() {
	s.dragging = false
	s.Mapper.Reset()
}
