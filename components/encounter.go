package components

import (
	cfg "github.com/automoto/ghostblade/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type EncounterData struct {
	SpawnsRemaining int
	SpawnTimer      int // ticks until the next spawn attempt
	Spawned         int
	Defeated        int
}

type RoundData struct {
	State cfg.RoundState
	Ticks int // ticks spent in State

	// Fade is the running screen fade, nil when none is playing. Alpha is
	// the overlay opacity: 1 is a black screen.
	Fade      *gween.Tween
	FadingOut bool
	Alpha     float64

	// Seed the round was built from; restarts reuse it so a replay with the
	// same inputs is identical.
	Seed uint64
}

var Encounter = donburi.NewComponentType[EncounterData]()
var Round = donburi.NewComponentType[RoundData]()
