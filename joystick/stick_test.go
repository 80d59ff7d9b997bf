package joystick

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func newTestStick(t *testing.T, allowMouse bool) (*Stick, *recordingSink) {
	t.Helper()
	m, sink := newTestMapper(t, ModeAnalog)
	return NewStick(m, 60, allowMouse), sink
}

func TestStickBeginOutsideHitArea(t *testing.T) {
	s, sink := newTestStick(t, false)
	if s.Begin(1, Point{300, 300}) {
		t.Fatalf("touch outside the hit area should be ignored")
	}
	if s.Dragging() || len(sink.events) != 0 {
		t.Fatalf("stick changed state on a rejected touch")
	}
}

func TestStickSinglePointerOwnership(t *testing.T) {
	s, sink := newTestStick(t, false)

	if !s.Begin(3, Point{140, 100}) {
		t.Fatalf("touch inside hit area rejected")
	}
	if s.Begin(4, Point{100, 140}) {
		t.Fatalf("second touch must not steal the stick")
	}
	sink.take()

	s.Move(4, Point{100, 140})
	if len(sink.events) != 0 {
		t.Fatalf("foreign touch moved the stick: %+v", sink.events)
	}
	s.End(4)
	if !s.Dragging() {
		t.Fatalf("foreign touch ended the drag")
	}

	s.Move(3, Point{100, 60})
	if !s.Held(Up) || s.Held(Right) {
		t.Fatalf("expected up held after move")
	}

	s.End(3)
	if s.Dragging() {
		t.Fatalf("drag should end with its pointer")
	}
	for _, d := range Directions {
		if s.Held(d) {
			t.Fatalf("%v held after end", d)
		}
	}
}

func TestStickMouseGate(t *testing.T) {
	s, _ := newTestStick(t, false)
	if s.Begin(MousePointer, Point{140, 100}) {
		t.Fatalf("mouse accepted while disabled")
	}

	s, _ = newTestStick(t, true)
	if !s.Begin(MousePointer, Point{140, 100}) {
		t.Fatalf("mouse rejected while enabled")
	}
	if id, ok := s.Active(); !ok || id != MousePointer {
		t.Fatalf("expected mouse to own the stick, got %v %v", id, ok)
	}
}

func TestStickCancel(t *testing.T) {
	s, sink := newTestStick(t, false)
	s.Begin(0, Point{60, 60})
	sink.take()

	s.Cancel()
	if got := sink.take(); len(got) != 4 {
		t.Fatalf("expected 4 releases on cancel, got %+v", got)
	}
	if s.Dragging() {
		t.Fatalf("still dragging after cancel")
	}
}

type fakeLocator struct {
	found   atomic.Bool
	sink    InputSink
	changed chan struct{}
}

func (f *fakeLocator) Lookup() (InputSink, bool) {
	if !f.found.Load() {
		return nil, false
	}
	return f.sink, true
}

func (f *fakeLocator) Changed() <-chan struct{} { return f.changed }

func TestAwaitSurfaceImmediate(t *testing.T) {
	want := &recordingSink{}
	loc := &fakeLocator{sink: want, changed: make(chan struct{})}
	loc.found.Store(true)
	got, err := AwaitSurface(context.Background(), loc)
	if err != nil {
		t.Fatalf("AwaitSurface: %v", err)
	}
	if got != want {
		t.Fatalf("wrong sink returned")
	}
}

func TestAwaitSurfaceAfterChange(t *testing.T) {
	want := &recordingSink{}
	loc := &fakeLocator{sink: want, changed: make(chan struct{}, 1)}

	done := make(chan error, 1)
	go func() {
		_, err := AwaitSurface(context.Background(), loc)
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	loc.found.Store(true)
	loc.changed <- struct{}{}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("AwaitSurface: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("AwaitSurface did not return after the surface appeared")
	}
}

func TestAwaitSurfaceTimeout(t *testing.T) {
	loc := &fakeLocator{changed: make(chan struct{})}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := AwaitSurface(ctx, loc)
	if !errors.Is(err, ErrSurfaceTimeout) {
		t.Fatalf("expected ErrSurfaceTimeout, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected the context error to be wrapped, got %v", err)
	}
}

func TestAwaitSurfaceClosedChannel(t *testing.T) {
	loc := &fakeLocator{changed: make(chan struct{})}
	close(loc.changed)
	_, err := AwaitSurface(context.Background(), loc)
	if !errors.Is(err, ErrSurfaceTimeout) {
		t.Fatalf("expected ErrSurfaceTimeout, got %v", err)
	}
}
