package leveldata_test

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/ghostblade/assets"
	"github.com/automoto/ghostblade/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedArenaMatchesDefault(t *testing.T) {
	level, err := leveldata.Load(assets.Levels, "levels/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, leveldata.Default(), level)
}

func TestLoadRejectsMapWithoutSpawns(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Colliders">
  <object id="1" x="0" y="48" width="64" height="16"/>
 </objectgroup>
</map>
`)},
	}

	_, err := leveldata.Load(fsys, "empty.tmx")
	assert.ErrorIs(t, err, leveldata.ErrIncompleteLevel)
}
