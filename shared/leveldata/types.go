// Package leveldata parses Tiled arena maps into plain collision data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// CollisionData holds everything the playground needs from a TMX arena.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// SolidRect is a wall the avatar cannot enter.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint is where an avatar starts.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn point with the lowest index, or the map center if
// the arena defines none.
func (d *CollisionData) Spawn() SpawnPoint {
	if len(d.SpawnPoints) == 0 {
		return SpawnPoint{X: float64(d.MapWidth) / 2, Y: float64(d.MapHeight) / 2}
	}
	return d.SpawnPoints[0]
}
