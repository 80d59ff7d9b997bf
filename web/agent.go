// Package web connects the joystick to the page it runs in.
package web

import (
	"errors"
	"regexp"
)

// ErrUnsupported is returned outside the browser.
var ErrUnsupported = errors.New("web: not running in a browser")

var mobileAgent = regexp.MustCompile(`(?i)iPhone|iPad|iPod|Android`)

// IsMobileAgent reports whether a user agent string belongs to a phone or
// tablet.
func IsMobileAgent(ua string) bool {
	return mobileAgent.MatchString(ua)
}
