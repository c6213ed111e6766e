package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/automoto/ghostblade/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

var ErrIncompleteLevel = errors.New("incomplete level")

// Object group and object names read from the map.
const (
	groupColliders = "Colliders"
	groupSpawns    = "Spawns"
	spawnPlayer    = "player"
	spawnEnemies   = "enemies"
)

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// the embedded levels or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	var havePlayer, haveEnemies bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupColliders:
			for _, o := range og.Objects {
				level.Colliders = append(level.Colliders, gamemath.Rect{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				})
			}
		case groupSpawns:
			for _, o := range og.Objects {
				switch o.Name {
				case spawnPlayer:
					level.PlayerSpawn = SpawnPoint{X: o.X, Y: o.Y}
					havePlayer = true
				case spawnEnemies:
					level.EnemySpawn = SpawnBand{MinX: o.X, MaxX: o.X + o.Width, Y: o.Y}
					haveEnemies = true
				}
			}
		}
	}

	var errs []error
	if len(level.Colliders) == 0 {
		errs = append(errs, fmt.Errorf("%s: no %s objects: %w", tmxPath, groupColliders, ErrIncompleteLevel))
	}
	if !havePlayer {
		errs = append(errs, fmt.Errorf("%s: no %q spawn: %w", tmxPath, spawnPlayer, ErrIncompleteLevel))
	}
	if !haveEnemies {
		errs = append(errs, fmt.Errorf("%s: no %q spawn band: %w", tmxPath, spawnEnemies, ErrIncompleteLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return level, nil
}
