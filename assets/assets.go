package assets

import (
	"embed"
	"fmt"

	cfg "github.com/automoto/touchstick/config"
	"github.com/automoto/touchstick/shared/leveldata"
)

var (
	//go:embed all:arenas
	assetFS embed.FS
)

// Arena is a named, parsed arena map.
type Arena struct {
	Name string
	Data *leveldata.CollisionData
}

type ArenaLoader struct {
	arenas map[string]*leveldata.CollisionData
	names  []string
}

func NewArenaLoader() *ArenaLoader {
	return &ArenaLoader{}
}

// MustLoadArenas parses every embedded arena. The embedded maps ship with
// the binary, so a parse failure is a build problem and panics.
func (l *ArenaLoader) MustLoadArenas() []Arena {
	if l.arenas == nil {
		arenas, names, err := leveldata.LoadAllLevels(assetFS, cfg.Arena.Dir)
		if err != nil {
			panic(fmt.Sprintf("Failed to load arenas: %v", err))
		}
		l.arenas, l.names = arenas, names
	}

	out := make([]Arena, 0, len(l.names))
	for _, name := range l.names {
		out = append(out, Arena{Name: name, Data: l.arenas[name]})
	}
	return out
}

// MustLoadArena returns the arena called name, falling back to the first
// arena when name is unknown.
func (l *ArenaLoader) MustLoadArena(name string) Arena {
	all := l.MustLoadArenas()
	for _, a := range all {
		if a.Name == name {
			return a
		}
	}
	return all[0]
}

var arenaLoader = NewArenaLoader()

// GetArena returns the named arena from the shared loader.
func GetArena(name string) Arena {
	return arenaLoader.MustLoadArena(name)
}

// ArenaNames lists the embedded arenas.
func ArenaNames() []string {
	arenas := arenaLoader.MustLoadArenas()
	names := make([]string, len(arenas))
	for i, a := range arenas {
		names[i] = a.Name
	}
	return names
}
