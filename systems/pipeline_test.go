package systems

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// mash feeds pseudo-random play input, restarting whenever a round ends.
type mash struct {
	rng *rand.Rand
}

func newMash(seed uint64) *mash {
	return &mash{rng: rand.New(rand.NewPCG(seed, 1))}
}

func (m *mash) step(w donburi.World) {
	axis := float64(m.rng.IntN(3) - 1)
	var actions []cfg.ActionID
	for _, a := range []cfg.ActionID{cfg.ActionJump, cfg.ActionAttack1, cfg.ActionAttack2, cfg.ActionRestart} {
		if m.rng.IntN(6) == 0 {
			actions = append(actions, a)
		}
	}
	step(w, axis, actions...)
}

func snapshot(w donburi.World) string {
	var b strings.Builder
	if rd, ok := round(w); ok {
		fmt.Fprintf(&b, "round %s %d %.4f|", rd.State, rd.Ticks, rd.Alpha)
	}
	tags.Player.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		fmt.Fprintf(&b, "player %s %d %.4f,%.4f|", stateOf(e), components.Health.Get(e).Current, obj.X, obj.Y)
	})
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		fmt.Fprintf(&b, "ghost %s %d %.4f,%.4f|", stateOf(e), components.Health.Get(e).Current, obj.X, obj.Y)
	})
	if entry, ok := components.Audio.First(w); ok {
		fmt.Fprintf(&b, "sfx %d", len(components.Audio.Get(entry).PendingSFX))
	}
	return b.String()
}

func fastRounds(tu *cfg.Tuning) {
	tu.Encounter.InitialDelay = 10
	tu.Encounter.MinInterval = 20
	tu.Encounter.MaxInterval = 60
	tu.Enemy.BobChance = 0.05
	tu.Player.LifeTime = 10
	tu.Round.FadeTicks = 5
}

func TestSameSeedSameFight(t *testing.T) {
	a := newRound(t, 42, fastRounds)
	b := newRound(t, 42, fastRounds)
	inA, inB := newMash(9), newMash(9)

	for i := 0; i < 4000; i++ {
		inA.step(a)
		inB.step(b)
		require.Equal(t, snapshot(a), snapshot(b), "tick %d", i)
	}
}

func TestRandomPlayHoldsInvariants(t *testing.T) {
	w := newRound(t, 8, fastRounds)
	in := newMash(3)

	var last donburi.Entity
	health := 0
	rounds := 0
	var prevState cfg.RoundState
	for i := 0; i < 6000; i++ {
		in.step(w)

		rd := roundData(t, w)
		if rd.State != prevState && (rd.State == cfg.RoundWin || rd.State == cfg.RoundLose) {
			rounds++
		}
		prevState = rd.State

		pe := player(t, w)
		h := components.Health.Get(pe).Current
		require.GreaterOrEqual(t, h, 0)
		require.LessOrEqual(t, h, cfg.Player.MaxHealth())
		if pe.Entity() == last {
			require.LessOrEqual(t, h, health, "tick %d: health went up", i)
		}
		last, health = pe.Entity(), h

		require.LessOrEqual(t, encounter(t, w).Spawned, cfg.Encounter.MaxSpawns)
		for _, e := range collect(w, tags.Enemy) {
			eh := components.Health.Get(e)
			require.GreaterOrEqual(t, eh.Current, 0)
			if stateOf(e) == cfg.Dead {
				require.False(t, components.Enemy.Get(e).Hitable)
			}
		}
	}
	assert.Positive(t, rounds, "no round finished")
}

func TestAttackSoundCues(t *testing.T) {
	w := newRound(t, 1, quiet)
	pe := settle(t, w)
	audio := components.Audio.Get(audioEntry(t, w))
	audio.PendingSFX = nil

	step(w, 0, cfg.ActionAttack1)
	stepUntil(t, w, 100, func() bool { return stateOf(pe) == cfg.Idle })
	assert.Equal(t, []cfg.SoundID{cfg.SoundSword1, cfg.SoundSword2}, audio.PendingSFX)

	audio.PendingSFX = nil
	step(w, 0, cfg.ActionDebugStrike)
	require.Len(t, audio.PendingSFX, 1)
	assert.Contains(t, []cfg.SoundID{cfg.SoundHuh1, cfg.SoundHuh2, cfg.SoundHuh3}, audio.PendingSFX[0])
}

func TestGameplayPausedOutsideActiveRound(t *testing.T) {
	w := newRound(t, 1, quiet)
	pe := settle(t, w)
	rd := roundData(t, w)
	obj := components.Object.Get(pe)

	rd.State = cfg.RoundWin
	x := obj.X
	for i := 0; i < 20; i++ {
		step(w, 1)
	}
	assert.Equal(t, x, obj.X)
	assert.Equal(t, cfg.Idle, stateOf(pe))
}
