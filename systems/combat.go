package systems

import (
	"github.com/automoto/ghostblade/combat"
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/shared/gamemath"
	"github.com/automoto/ghostblade/tags"
	"github.com/yohamta/donburi"
)

// UpdateCombat resolves hits between the player and the enemies. While
// the player holds an attack only its hitbox is checked; body contact is
// checked only when no attack is held.
func UpdateCombat(w donburi.World) {
	pe, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(pe)
	enemies := collect(w, tags.Enemy)

	if input(w).Pressed(cfg.ActionDebugStrike) {
		px, py := origin(pe)
		StrikePlayer(w, px+player.Direction.X, py)
	}

	if player.Attack != nil {
		resolveAttack(pe, player, enemies)
		return
	}
	if !player.Hitable {
		return
	}

	box := components.Object.Get(pe).Rect()
	var by *donburi.Entry
	for _, e := range enemies {
		if !components.Enemy.Get(e).Hitable {
			continue
		}
		if box.Overlaps(components.Object.Get(e).Rect()) {
			by = e
		}
	}
	if by != nil {
		ex, ey := origin(by)
		StrikePlayer(w, ex, ey)
	}
}

func resolveAttack(pe *donburi.Entry, player *components.PlayerData, enemies []*donburi.Entry) {
	anim := components.Animation.Get(pe)
	px, py := origin(pe)
	hitbox, ok := combat.WorldHitbox(player.Attack, anim.CurrentAnimation.Frame(), player.Direction.X < 0, px, py)
	if !ok {
		return
	}

	damage := combat.Damage(player.Attack)
	for _, e := range enemies {
		if !components.Enemy.Get(e).Hitable {
			continue
		}
		if !hitbox.Overlaps(components.Object.Get(e).Rect()) {
			continue
		}
		components.Health.Get(e).Drain(damage)
		markStruck(e, components.DamageEventData{Amount: damage})
	}
}

// StrikePlayer queues a hit reaction that knocks the player away from
// (fromX, fromY) on the player's next state update.
func StrikePlayer(w donburi.World, fromX, fromY float64) {
	pe, ok := tags.Player.First(w)
	if !ok || isDown(components.State.Get(pe).CurrentState) {
		return
	}
	player := components.Player.Get(pe)

	px, py := origin(pe)
	nx, ny := gamemath.Normalize(fromX-px, fromY-py)
	if nx == 0 && ny == 0 {
		nx = player.Direction.X
	}
	kx, ky := -cfg.Player.Knockback*nx, -cfg.Player.Knockback*ny

	markStruck(pe, components.DamageEventData{KnockbackX: kx, KnockbackY: ky})
}

// origin is the sprite origin of an actor.
func origin(e *donburi.Entry) (float64, float64) {
	return components.Body.Get(e).Origin(components.Object.Get(e).Object)
}
