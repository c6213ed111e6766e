package systems

import (
	"testing"

	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/shared/leveldata"
	"github.com/automoto/ghostblade/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSpawnBudgetIsNeverExceeded(t *testing.T) {
	w := newRound(t, 3, func(tu *cfg.Tuning) {
		tu.Encounter.MaxSpawns = 5
		tu.Encounter.InitialDelay = 1
		tu.Encounter.MinInterval = 1
		tu.Encounter.MaxInterval = 1
	})
	enc := encounter(t, w)

	created := map[donburi.Entity]bool{}
	for i := 0; i < 600; i++ {
		step(w, 0)
		for _, e := range collect(w, tags.Enemy) {
			created[e.Entity()] = true
		}
		require.LessOrEqual(t, enemyCount(w), 5)
	}

	assert.Len(t, created, 5)
	assert.Equal(t, 5, enc.Spawned)
	assert.Zero(t, enc.SpawnsRemaining)
}

func TestSpawnTimingAndPlacement(t *testing.T) {
	w := newRound(t, 11, func(tu *cfg.Tuning) {
		tu.Encounter.MaxSpawns = 20
		tu.Encounter.MinInterval = 10
		tu.Encounter.MaxInterval = 30
		tu.Enemy.BobChance = 0
	})
	enc := encounter(t, w)
	band := leveldata.Default().EnemySpawn

	for i := 1; i < cfg.Encounter.InitialDelay; i++ {
		step(w, 0)
	}
	require.Zero(t, enemyCount(w))

	step(w, 0)
	require.Equal(t, 1, enemyCount(w))

	for n := 0; n < 5; n++ {
		assert.GreaterOrEqual(t, enc.SpawnTimer, cfg.Encounter.MinInterval)
		assert.LessOrEqual(t, enc.SpawnTimer, cfg.Encounter.MaxInterval)

		wait := enc.SpawnTimer
		spawned := enc.Spawned
		for i := 0; i < wait; i++ {
			step(w, 0)
		}
		require.Equal(t, spawned+1, enc.Spawned)
	}

	for _, e := range collect(w, tags.Enemy) {
		x, y := origin(e)
		assert.GreaterOrEqual(t, x, band.MinX)
		assert.LessOrEqual(t, x, band.MaxX)
		assert.Equal(t, band.Y, y)
	}
}

func TestRoundWonWhenBudgetSpentAndGhostsGone(t *testing.T) {
	w := newRound(t, 1, func(tu *cfg.Tuning) {
		quiet(tu)
		tu.Encounter.InitialDelay = 1
	})
	rd := roundData(t, w)
	enc := encounter(t, w)

	step(w, 0)
	require.Equal(t, 1, enemyCount(w))
	require.Zero(t, enc.SpawnsRemaining)
	require.Equal(t, cfg.RoundActive, rd.State)

	e := collect(w, tags.Enemy)[0]
	components.Enemy.Get(e).Active = false
	step(w, 0)

	assert.Equal(t, cfg.RoundWin, rd.State)
	assert.Zero(t, enemyCount(w))
	assert.Equal(t, 1, enc.Defeated)
	assert.Equal(t, cfg.Sound.RoundMusic[cfg.RoundWin], components.Audio.Get(audioEntry(t, w)).Music)

	// The outcome freezes the fight.
	pe := player(t, w)
	health := components.Health.Get(pe).Current
	for i := 0; i < 30; i++ {
		step(w, 1, cfg.ActionAttack1)
	}
	assert.Equal(t, health, components.Health.Get(pe).Current)
	assert.Equal(t, cfg.RoundWin, rd.State)
}

func TestRoundLostWhenPlayerDies(t *testing.T) {
	w := newRound(t, 1, quiet)
	pe := settle(t, w)
	rd := roundData(t, w)

	components.Health.Get(pe).Current = 0
	stepUntil(t, w, 300, func() bool { return stateOf(pe) == cfg.Dead })
	assert.Equal(t, cfg.RoundLose, rd.State)
}

func audioEntry(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	entry, ok := components.Audio.First(w)
	require.True(t, ok)
	return entry
}
