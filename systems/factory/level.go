package factory

import (
	"github.com/automoto/ghostblade/archetypes"
	"github.com/automoto/ghostblade/components"
	"github.com/automoto/ghostblade/shared/leveldata"
	"github.com/yohamta/donburi"
)

const spaceCellSize = 16

// CreateLevel stores the level and builds its collision space and walls.
func CreateLevel(w donburi.World, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})

	CreateSpace(w, level.Width, level.Height, spaceCellSize, spaceCellSize)
	for _, r := range level.Colliders {
		CreateWall(w, r)
	}
	return entry
}
