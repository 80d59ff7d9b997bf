//go:build !(js && wasm)

package web

import (
	"runtime"

	"github.com/automoto/touchstick/joystick"
)

// IsMobile reports whether the binary was built for a phone or tablet.
func IsMobile() bool {
	return runtime.GOOS == "android" || runtime.GOOS == "ios"
}

// Locator is only functional in the browser.
type Locator struct {
	Selector string
}

func NewLocator(selector string) (*Locator, error) {
	return nil, ErrUnsupported
}

func (l *Locator) Lookup() (joystick.InputSink, bool) { return nil, false }
func (l *Locator) Changed() <-chan struct{}           { return nil }
func (l *Locator) Close()                             {}
