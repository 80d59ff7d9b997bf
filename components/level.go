package components

import (
	"github.com/automoto/touchstick/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ArenaData is the loaded arena the playground runs in.
type ArenaData struct {
	Name string
	Data *leveldata.CollisionData
}

var Arena = donburi.NewComponentType[ArenaData]()
