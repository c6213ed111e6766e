// Package leveldata parses level geometry from TMX maps. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

import "github.com/automoto/ghostblade/shared/gamemath"

// Level is the collision-relevant content of a level map.
type Level struct {
	Name        string
	Width       int
	Height      int
	Colliders   []gamemath.Rect
	PlayerSpawn SpawnPoint
	EnemySpawn  SpawnBand
}

// SpawnPoint is a sprite origin.
type SpawnPoint struct {
	X, Y float64
}

// SpawnBand is the horizontal range enemies appear in, at a fixed height.
// Positions are sprite origins.
type SpawnBand struct {
	MinX, MaxX float64
	Y          float64
}

// Default is the built-in arena, identical to levels/arena.tmx.
func Default() *Level {
	return &Level{
		Name:   "arena",
		Width:  432,
		Height: 128,
		Colliders: []gamemath.Rect{
			{X: 0, Y: 101, W: 432, H: 16},
			{X: 0, Y: 0, W: 4, H: 101},
			{X: 428, Y: 0, W: 4, H: 101},
		},
		PlayerSpawn: SpawnPoint{X: 40, Y: 53},
		EnemySpawn:  SpawnBand{MinX: 60, MaxX: 340, Y: 52},
	}
}
