package systems

import (
	"testing"

	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/systems/factory"
	"github.com/automoto/ghostblade/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// quiet keeps enemies from spawning on their own and from drifting, so a
// test can place them by hand.
func quiet(t *cfg.Tuning) {
	t.Encounter.MaxSpawns = 1
	t.Encounter.InitialDelay = 1 << 20
	t.Enemy.BobChance = 0
}

// useTuning installs the default tuning changed by edit, skipping the
// intro, and restores the previous tuning when the test ends.
func useTuning(t *testing.T, edit func(*cfg.Tuning)) {
	t.Helper()
	saved := cfg.Current()
	t.Cleanup(func() {
		require.NoError(t, cfg.Apply(saved))
	})

	tu := cfg.Current()
	tu.Round.SkipIntro = true
	if edit != nil {
		edit(&tu)
	}
	require.NoError(t, cfg.Apply(tu))
}

func newRound(t *testing.T, seed uint64, edit func(*cfg.Tuning)) donburi.World {
	t.Helper()
	useTuning(t, edit)

	w := donburi.NewWorld()
	_, err := factory.CreateRound(w, factory.RoundOptions{Seed: seed})
	require.NoError(t, err)
	return w
}

// settle runs the ticks the player needs to find the floor after spawning.
func settle(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	step(w, 0)
	step(w, 0)
	pe := player(t, w)
	require.Equal(t, cfg.Idle, components.State.Get(pe).CurrentState)
	require.NotNil(t, components.Physics.Get(pe).OnGround)
	return pe
}

// step feeds one tick of input and runs the pipeline.
func step(w donburi.World, axis float64, actions ...cfg.ActionID) {
	entry, _ := components.PlayerInput.First(w)
	in := components.PlayerInput.Get(entry)
	in.Next()
	in.Axis = axis
	for _, a := range actions {
		in.Current[a] = true
	}
	Tick(w)
}

// stepUntil ticks with no input until done holds, failing after limit ticks.
func stepUntil(t *testing.T, w donburi.World, limit int, done func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if done() {
			return
		}
		step(w, 0)
	}
	require.True(t, done(), "condition not reached within %d ticks", limit)
}

func player(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	pe, ok := tags.Player.First(w)
	require.True(t, ok, "no player")
	return pe
}

func roundData(t *testing.T, w donburi.World) *components.RoundData {
	t.Helper()
	rd, ok := round(w)
	require.True(t, ok, "no round")
	return rd
}

func encounter(t *testing.T, w donburi.World) *components.EncounterData {
	t.Helper()
	entry, ok := components.Encounter.First(w)
	require.True(t, ok, "no encounter")
	return components.Encounter.Get(entry)
}

func stateOf(e *donburi.Entry) cfg.StateID {
	return components.State.Get(e).CurrentState
}

func frameOf(e *donburi.Entry) int {
	return components.Animation.Get(e).CurrentAnimation.Frame()
}

func enemyCount(w donburi.World) int {
	return len(collect(w, tags.Enemy))
}

// bornEnemy places a ghost and waits for it to finish its birth clip.
func bornEnemy(t *testing.T, w donburi.World, x, y float64) *donburi.Entry {
	t.Helper()
	e := factory.CreateEnemy(w, x, y)
	stepUntil(t, w, 200, func() bool { return stateOf(e) == cfg.Idle })
	require.True(t, components.Enemy.Get(e).Hitable)
	return e
}
