package systems

import (
	"testing"

	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntroWaitsForPrompt(t *testing.T) {
	w := newRound(t, 1, func(tu *cfg.Tuning) {
		quiet(tu)
		tu.Round.SkipIntro = false
		tu.Round.FadeTicks = 10
	})
	rd := roundData(t, w)
	pe := player(t, w)
	health := components.Health.Get(pe).Current

	require.Equal(t, cfg.RoundIntro, rd.State)
	assert.Equal(t, 1.0, rd.Alpha)
	assert.Equal(t, cfg.SoundIntro, components.Audio.Get(audioEntry(t, w)).Music)

	assert.False(t, BetweenRounds(w), "the intro runs on the round as built")

	// Too dark to start yet.
	step(w, 0, cfg.ActionRestart)
	assert.False(t, rd.FadingOut)
	assert.False(t, PromptVisible(rd))

	for i := 1; i < cfg.Round.FadeTicks; i++ {
		step(w, 0)
	}
	require.True(t, PromptVisible(rd))
	assert.Equal(t, health, components.Health.Get(pe).Current, "nothing moves during the intro")
	assert.Equal(t, cfg.Idle, stateOf(pe))

	step(w, 0, cfg.ActionRestart)
	require.True(t, rd.FadingOut)
	assert.False(t, PromptVisible(rd))

	stepUntil(t, w, 30, func() bool { return rd.State == cfg.RoundActive })
	assert.True(t, w.Valid(pe.Entity()), "starting from the intro keeps the player")
	assert.False(t, rd.FadingOut)
	assert.Equal(t, cfg.SoundBeat, components.Audio.Get(audioEntry(t, w)).Music)

	stepUntil(t, w, 30, func() bool { return rd.Fade == nil })
	assert.Zero(t, rd.Alpha)
	assert.Less(t, components.Health.Get(pe).Current, health)
}

func TestRestartAfterLoss(t *testing.T) {
	w := newRound(t, 5, func(tu *cfg.Tuning) {
		quiet(tu)
		tu.Round.FadeTicks = 3
	})
	pe := settle(t, w)
	rd := roundData(t, w)
	enc := encounter(t, w)

	// Restart means nothing mid-fight.
	step(w, 0, cfg.ActionRestart)
	require.Nil(t, rd.Fade)
	assert.False(t, BetweenRounds(w))

	components.Health.Get(pe).Current = 0
	stepUntil(t, w, 300, func() bool { return rd.State == cfg.RoundLose })
	assert.True(t, BetweenRounds(w))

	// Tuning installed between rounds shapes the restart.
	tu := cfg.Current()
	tu.Encounter.MaxSpawns = 4
	require.NoError(t, cfg.Apply(tu))

	step(w, 0, cfg.ActionRestart)
	require.True(t, rd.FadingOut)
	stepUntil(t, w, 10, func() bool { return rd.State == cfg.RoundActive })

	assert.False(t, w.Valid(pe.Entity()))
	fresh := player(t, w)
	assert.Equal(t, cfg.Idle, stateOf(fresh))
	assert.True(t, components.Player.Get(fresh).Hitable)
	assert.Equal(t, cfg.Player.MaxHealth()-cfg.Player.HealthDecay, components.Health.Get(fresh).Current)
	assert.Zero(t, enemyCount(w))
	assert.Equal(t, 4, enc.SpawnsRemaining)
	assert.Zero(t, enc.Spawned)
	assert.Equal(t, 1.0, rd.Alpha)
	assert.NotNil(t, rd.Fade)

	entry, _ := components.Random.First(w)
	assert.Equal(t, components.NewRandom(5).Uint64(), components.Random.Get(entry).Uint64(), "restart reseeds")
}
