package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/ghostblade/archetypes"
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/shared/leveldata"
	"github.com/automoto/ghostblade/tags"
	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

var ErrBadLevel = errors.New("unusable level")

type RoundOptions struct {
	Seed  uint64
	Level *leveldata.Level // nil uses leveldata.Default
}

// CreateRound builds everything a round needs to tick: the level with its
// collision space, the player and the round singletons. Configuration is
// validated first so a broken clip or attack table fails here rather than
// mid-fight.
func CreateRound(w donburi.World, opts RoundOptions) (*donburi.Entry, error) {
	if err := cfg.Current().Validate(); err != nil {
		return nil, fmt.Errorf("create round: %w", err)
	}
	level := opts.Level
	if level == nil {
		level = leveldata.Default()
	}
	if level.EnemySpawn.MinX > level.EnemySpawn.MaxX {
		return nil, fmt.Errorf("create round: level %s enemy band [%g, %g]: %w",
			level.Name, level.EnemySpawn.MinX, level.EnemySpawn.MaxX, ErrBadLevel)
	}

	CreateLevel(w, level)

	round := archetypes.Round.Spawn(w)
	components.Random.SetValue(round, components.NewRandom(opts.Seed))

	rd := components.Round.Get(round)
	rd.Seed = opts.Seed
	if cfg.Round.SkipIntro {
		rd.State = cfg.RoundActive
	} else {
		rd.State = cfg.RoundIntro
		StartFade(rd, false)
	}
	components.Audio.Get(round).Music = cfg.Sound.RoundMusic[rd.State]

	resetEncounter(components.Encounter.Get(round))
	CreatePlayer(w, level.PlayerSpawn.X, level.PlayerSpawn.Y)

	log.Debug("round created", "seed", opts.Seed, "level", level.Name, "state", rd.State)
	return round, nil
}

// RestartRound clears every actor, rebuilds the player at full health,
// refills the spawn budget and reseeds the random source.
func RestartRound(w donburi.World) {
	var actors []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		actors = append(actors, e)
	})
	tags.Player.Each(w, func(e *donburi.Entry) {
		actors = append(actors, e)
	})
	for _, e := range actors {
		RemoveActor(w, e)
	}

	if entry, ok := components.Round.First(w); ok {
		resetEncounter(components.Encounter.Get(entry))
		components.Random.SetValue(entry, components.NewRandom(components.Round.Get(entry).Seed))
	}
	if entry, ok := components.Level.First(w); ok {
		spawn := components.Level.Get(entry).CurrentLevel.PlayerSpawn
		CreatePlayer(w, spawn.X, spawn.Y)
	}
}

// StartFade starts a screen fade: out goes to black from the current
// alpha, in comes back from black.
func StartFade(rd *components.RoundData, out bool) {
	from, to := float32(1), float32(0)
	if out {
		from, to = float32(rd.Alpha), 1
	}
	rd.Fade = gween.New(from, to, float32(cfg.Round.FadeTicks), ease.Linear)
	rd.FadingOut = out
	rd.Alpha = float64(from)
}

func resetEncounter(enc *components.EncounterData) {
	*enc = components.EncounterData{
		SpawnsRemaining: cfg.Encounter.MaxSpawns,
		SpawnTimer:      cfg.Encounter.InitialDelay,
	}
}
