package systems

import (
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/systems/factory"
	"github.com/automoto/ghostblade/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// UpdateEncounter removes expired enemies, spawns new ones on a randomized
// timer until the budget runs out, and decides the round.
func UpdateEncounter(w donburi.World) {
	entry, ok := components.Encounter.First(w)
	if !ok {
		return
	}
	enc := components.Encounter.Get(entry)
	rng := random(w)

	live := 0
	for _, e := range collect(w, tags.Enemy) {
		if components.Enemy.Get(e).Active {
			live++
			continue
		}
		factory.RemoveActor(w, e)
		enc.Defeated++
		log.Debug("enemy removed", "defeated", enc.Defeated)
	}

	enc.SpawnTimer--
	if enc.SpawnTimer <= 0 {
		if enc.SpawnsRemaining > 0 {
			spawnEnemy(w, rng)
			enc.SpawnsRemaining--
			enc.Spawned++
			live++
		}
		enc.SpawnTimer = cfg.Encounter.MinInterval + rng.IntN(cfg.Encounter.MaxInterval-cfg.Encounter.MinInterval+1)
	}

	rd, ok := round(w)
	if !ok || rd.State != cfg.RoundActive {
		return
	}
	if pe, ok := tags.Player.First(w); ok && components.State.Get(pe).CurrentState == cfg.Dead {
		setRoundState(w, rd, cfg.RoundLose)
		return
	}
	if enc.SpawnsRemaining == 0 && live == 0 {
		setRoundState(w, rd, cfg.RoundWin)
	}
}

func spawnEnemy(w donburi.World, rng components.RandomData) {
	le, ok := components.Level.First(w)
	if !ok {
		return
	}
	band := components.Level.Get(le).CurrentLevel.EnemySpawn
	x := band.MinX + rng.Float64()*(band.MaxX-band.MinX)
	factory.CreateEnemy(w, x, band.Y)
	log.Debug("enemy spawned", "x", x, "y", band.Y)
}
