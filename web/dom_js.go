//go:build js && wasm

package web

import (
	"syscall/js"

	"github.com/automoto/touchstick/joystick"
)

// IsMobile checks the browser's user agent.
func IsMobile() bool {
	return IsMobileAgent(js.Global().Get("navigator").Get("userAgent").String())
}

// CanvasSink turns joystick keys into KeyboardEvents dispatched on a page
// element. The game's own keyboard handling sees them as real keys.
type CanvasSink struct {
	target js.Value
}

func (c CanvasSink) Press(k joystick.Key)   { c.dispatch("keydown", k) }
func (c CanvasSink) Release(k joystick.Key) { c.dispatch("keyup", k) }

func (c CanvasSink) dispatch(kind string, k joystick.Key) {
	init := js.Global().Get("Object").New()
	init.Set("key", k.Name)
	init.Set("code", k.Code)
	init.Set("keyCode", k.KeyCode)
	init.Set("which", k.KeyCode)
	init.Set("bubbles", true)
	init.Set("cancelable", true)

	event := js.Global().Get("KeyboardEvent").New(kind, init)
	c.target.Call("dispatchEvent", event)
}

// Locator finds the element matching Selector, watching the document for
// insertions until Close.
type Locator struct {
	Selector string

	changed  chan struct{}
	observer js.Value
	callback js.Func
}

// NewLocator starts observing the document.
func NewLocator(selector string) (*Locator, error) {
	document := js.Global().Get("document")
	if document.IsUndefined() {
		return nil, ErrUnsupported
	}

	l := &Locator{
		Selector: selector,
		changed:  make(chan struct{}, 1),
	}
	l.callback = js.FuncOf(func(_ js.Value, _ []js.Value) any {
		// Coalesce bursts of mutations
		select {
		case l.changed <- struct{}{}:
		default:
		}
		return nil
	})

	opts := js.Global().Get("Object").New()
	opts.Set("childList", true)
	opts.Set("subtree", true)

	l.observer = js.Global().Get("MutationObserver").New(l.callback)
	l.observer.Call("observe", document.Get("documentElement"), opts)
	return l, nil
}

func (l *Locator) Lookup() (joystick.InputSink, bool) {
	el := js.Global().Get("document").Call("querySelector", l.Selector)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return CanvasSink{target: el}, true
}

func (l *Locator) Changed() <-chan struct{} {
	return l.changed
}

// Close stops observing the document.
func (l *Locator) Close() {
	l.observer.Call("disconnect")
	l.callback.Release()
}
