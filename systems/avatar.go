package systems

import (
	"math"

	"github.com/automoto/touchstick/components"
	cfg "github.com/automoto/touchstick/config"
	"github.com/automoto/touchstick/shared/gamemath"
	"github.com/automoto/touchstick/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAvatar turns the movement actions into avatar speed and moves it
// through the arena, stopping at walls.
func UpdateAvatar(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Avatar.Each(ecs.World, func(e *donburi.Entry) {
		avatar := components.Avatar.Get(e)
		obj := components.Object.Get(e)

		avatar.InputX = axis(input, cfg.ActionMoveLeft, cfg.ActionMoveRight)
		avatar.InputY = axis(input, cfg.ActionMoveUp, cfg.ActionMoveDown)

		avatar.SpeedX = accelerate(avatar.SpeedX, avatar.InputX)
		avatar.SpeedY = accelerate(avatar.SpeedY, avatar.InputY)

		speed := math.Max(math.Abs(avatar.SpeedX), math.Abs(avatar.SpeedY))
		avatar.SpeedX = moveX(obj.Object, avatar.SpeedX)
		avatar.SpeedY = moveY(obj.Object, avatar.SpeedY)

		if bumped(avatar, speed) {
			TriggerScreenShake(ecs, cfg.Camera.BumpIntensity, cfg.Camera.BumpFrames)
		}
	})
}

// bumped reports a wall hit at close to full speed.
func bumped(avatar *components.AvatarData, speed float64) bool {
	stopped := (avatar.InputX != 0 && avatar.SpeedX == 0) || (avatar.InputY != 0 && avatar.SpeedY == 0)
	return stopped && speed >= cfg.Avatar.MaxSpeed*cfg.Camera.BumpSpeedRatio
}

// axis returns -1, 0 or 1. Opposite actions held together cancel out.
func axis(input *components.InputData, negative, positive cfg.ActionID) int {
	v := 0
	if input.Current[negative] {
		v--
	}
	if input.Current[positive] {
		v++
	}
	return v
}

func accelerate(speed float64, dir int) float64 {
	if dir == 0 {
		return gamemath.ApplyFriction(speed, cfg.Avatar.Friction)
	}
	speed += float64(dir) * cfg.Avatar.Acceleration
	return gamemath.ClampSpeed(speed, cfg.Avatar.MaxSpeed)
}

// moveX moves the object horizontally and returns the speed left after any
// wall contact.
func moveX(object *resolv.Object, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		object.X += check.ContactWithObject(check.Objects[0]).X()
		return 0
	}
	object.X += dx
	return dx
}

func moveY(object *resolv.Object, dy float64) float64 {
	if dy == 0 {
		return 0
	}
	if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
		object.Y += check.ContactWithObject(check.Objects[0]).Y()
		return 0
	}
	object.Y += dy
	return dy
}
