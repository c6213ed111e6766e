package factory

import (
	"testing"

	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/shared/leveldata"
	"github.com/automoto/ghostblade/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func TestCreateRound(t *testing.T) {
	w := donburi.NewWorld()
	round, err := CreateRound(w, RoundOptions{Seed: 4})
	require.NoError(t, err)

	rd := components.Round.Get(round)
	assert.Equal(t, cfg.RoundIntro, rd.State)
	assert.Equal(t, uint64(4), rd.Seed)
	assert.Equal(t, 1.0, rd.Alpha)
	assert.NotNil(t, rd.Fade)
	assert.Equal(t, cfg.SoundIntro, components.Audio.Get(round).Music)

	enc := components.Encounter.Get(round)
	assert.Equal(t, cfg.Encounter.MaxSpawns, enc.SpawnsRemaining)
	assert.Equal(t, cfg.Encounter.InitialDelay, enc.SpawnTimer)

	level := leveldata.Default()
	assert.Equal(t, len(level.Colliders), count(w, tags.Wall))

	pe, ok := tags.Player.First(w)
	require.True(t, ok)
	x, y := components.Body.Get(pe).Origin(components.Object.Get(pe).Object)
	assert.Equal(t, level.PlayerSpawn.X, x)
	assert.Equal(t, level.PlayerSpawn.Y, y)
	assert.NotNil(t, components.Physics.Get(pe).OnGround, "spawns standing on the floor")
	assert.Equal(t, cfg.Player.MaxHealth(), components.Health.Get(pe).Current)
}

func TestCreateRoundRejectsBrokenSetup(t *testing.T) {
	t.Run("missing clip", func(t *testing.T) {
		clip := cfg.PlayerClips[cfg.Jump]
		delete(cfg.PlayerClips, cfg.Jump)
		t.Cleanup(func() { cfg.PlayerClips[cfg.Jump] = clip })

		_, err := CreateRound(donburi.NewWorld(), RoundOptions{})
		assert.ErrorIs(t, err, cfg.ErrMissingClip)
	})

	t.Run("missing attack", func(t *testing.T) {
		spec := cfg.Attacks[cfg.AirDashAttack]
		delete(cfg.Attacks, cfg.AirDashAttack)
		t.Cleanup(func() { cfg.Attacks[cfg.AirDashAttack] = spec })

		_, err := CreateRound(donburi.NewWorld(), RoundOptions{})
		assert.ErrorIs(t, err, cfg.ErrMissingAttack)
	})

	t.Run("empty spawn band", func(t *testing.T) {
		level := leveldata.Default()
		level.EnemySpawn.MinX, level.EnemySpawn.MaxX = 300, 100

		w := donburi.NewWorld()
		_, err := CreateRound(w, RoundOptions{Level: level})
		assert.ErrorIs(t, err, ErrBadLevel)
		_, ok := tags.Player.First(w)
		assert.False(t, ok, "nothing is built for a bad level")
	})
}

func TestRestartRound(t *testing.T) {
	w := donburi.NewWorld()
	round, err := CreateRound(w, RoundOptions{Seed: 9})
	require.NoError(t, err)

	old, _ := tags.Player.First(w)
	components.Health.Get(old).Current = 0
	CreateEnemy(w, 100, 52)
	CreateEnemy(w, 200, 52)
	enc := components.Encounter.Get(round)
	enc.SpawnsRemaining = 0
	enc.Spawned = 2
	components.Random.Get(round).Uint64()

	RestartRound(w)

	assert.False(t, w.Valid(old.Entity()))
	assert.Zero(t, count(w, tags.Enemy))
	pe, ok := tags.Player.First(w)
	require.True(t, ok)
	assert.Equal(t, cfg.Player.MaxHealth(), components.Health.Get(pe).Current)
	assert.Equal(t, cfg.Encounter.MaxSpawns, enc.SpawnsRemaining)
	assert.Zero(t, enc.Spawned)
	assert.Equal(t, components.NewRandom(9).Uint64(), components.Random.Get(round).Uint64())

	// Removed actors leave the collision space too.
	space := components.Space.Get(components.Space.MustFirst(w))
	assert.Len(t, space.Objects(), len(leveldata.Default().Colliders)+1)
}

func TestStartFade(t *testing.T) {
	rd := &components.RoundData{Alpha: 0.4}

	StartFade(rd, true)
	assert.True(t, rd.FadingOut)
	assert.Equal(t, 0.4, rd.Alpha)
	alpha, done := rd.Fade.Update(float32(cfg.Round.FadeTicks))
	assert.True(t, done)
	assert.Equal(t, float32(1), alpha)

	StartFade(rd, false)
	assert.False(t, rd.FadingOut)
	assert.Equal(t, 1.0, rd.Alpha)
	alpha, done = rd.Fade.Update(float32(cfg.Round.FadeTicks))
	assert.True(t, done)
	assert.Zero(t, alpha)
}
