package scenes

import "github.com/automoto/touchstick/joystick"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Options carries startup choices from scene to scene.
type Options struct {
	Arena string
	// Where the joystick's keys go. Nil means the scene's own virtual
	// keyboard.
	Sink joystick.InputSink
}
