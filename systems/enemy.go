package systems

import (
	"math"

	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// UpdateEnemies runs every ghost's state machine.
func UpdateEnemies(w donburi.World) {
	rng := random(w)

	playerX, hasPlayer := 0.0, false
	if pe, ok := tags.Player.First(w); ok {
		playerX, _ = origin(pe)
		hasPlayer = true
	}

	for _, e := range collect(w, tags.Enemy) {
		enemy := components.Enemy.Get(e)
		state := components.State.Get(e)
		anim := components.Animation.Get(e)

		prev := state.CurrentState
		state.StateTimer++

		if ev, struck := takeStruck(e); struck && state.CurrentState != cfg.Dead {
			enemy.Hitable = false
			state.Set(cfg.Hit)
			log.Debug("ghost struck", "damage", ev.Amount, "health", components.Health.Get(e).Current)
		} else {
			updateEnemyState(e, enemy, state, anim, rng)
		}

		if hasPlayer {
			if x, _ := origin(e); playerX < x {
				enemy.Direction.X = cfg.DirectionLeft
			} else {
				enemy.Direction.X = cfg.DirectionRight
			}
		}

		if state.CurrentState != prev {
			anim.SetAnimation(state.CurrentState)
		}
	}
}

func updateEnemyState(e *donburi.Entry, enemy *components.EnemyData, state *components.StateData, anim *components.AnimationData, rng components.RandomData) {
	switch state.CurrentState {
	case cfg.Birth:
		if anim.CurrentAnimation.IsFinished() {
			enemy.Hitable = true
			state.Set(cfg.Idle)
		}

	case cfg.Idle:
		wander(enemy, components.Object.Get(e), rng)

	case cfg.Hit:
		if !anim.CurrentAnimation.IsFinished() {
			return
		}
		if components.Health.Get(e).Current <= 0 {
			state.Set(cfg.Dead)
			return
		}
		enemy.Hitable = true
		state.Set(cfg.Idle)

	case cfg.Dead:
		enemy.Hitable = false
		if enemy.Active && anim.CurrentAnimation.IsFinished() {
			enemy.Active = false
			log.Debug("enemy expired", "entity", e.Entity())
		}
	}
}

// wander occasionally starts an idle ghost bobbing; once bobbing it keeps
// bobbing.
func wander(enemy *components.EnemyData, obj *components.ObjectData, rng components.RandomData) {
	switch b := enemy.Behavior.(type) {
	case components.StandBy:
		if rng.Float64() < cfg.Enemy.BobChance {
			enemy.Behavior = components.VerticalBob{OriginY: obj.Y, Speed: cfg.Enemy.BobSpeed}
		}
	case components.VerticalBob:
		b.Phase += b.Speed
		obj.Y = b.OriginY + cfg.Enemy.BobAmplitude*math.Sin(b.Phase)
		enemy.Behavior = b
	case nil:
		enemy.Behavior = components.StandBy{}
	}
}
