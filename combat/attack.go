// Package combat holds the player's attack descriptors and the hitbox and
// damage lookups driven by the attack table in config.
package combat

import (
	"fmt"

	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/shared/gamemath"
)

// Attack is the player's active attack. The set of variants is closed;
// consumers switch over all of them.
type Attack interface {
	Kind() cfg.AttackKind
	attack()
}

type Light struct{}
type Heavy struct{}

// RepeatHeavy is the follow-up swing chained from a late Heavy.
type RepeatHeavy struct{}

type GroundDash struct {
	TicksRemaining int
	Direction      float64 // -1 or 1
}

type AirDash struct {
	TicksRemaining int
	Direction      float64
}

func (Light) Kind() cfg.AttackKind       { return cfg.LightAttack }
func (Heavy) Kind() cfg.AttackKind       { return cfg.HeavyAttack }
func (RepeatHeavy) Kind() cfg.AttackKind { return cfg.RepeatHeavyAttack }
func (GroundDash) Kind() cfg.AttackKind  { return cfg.GroundDashAttack }
func (AirDash) Kind() cfg.AttackKind     { return cfg.AirDashAttack }

func (Light) attack()       {}
func (Heavy) attack()       {}
func (RepeatHeavy) attack() {}
func (GroundDash) attack()  {}
func (AirDash) attack()     {}

// Damage is the health removed from an enemy struck by a.
func Damage(a Attack) int {
	return cfg.Attacks[a.Kind()].Damage
}

// ActiveHitbox returns the hitbox of a on the given animation frame in
// actor-local space, mirrored when the actor faces left.
func ActiveHitbox(a Attack, frame int, flipped bool) (gamemath.Rect, bool) {
	for _, w := range cfg.Attacks[a.Kind()].Windows {
		if frame < w.StartFrame || frame > w.EndFrame {
			continue
		}
		box := w.Box
		if flipped {
			box = box.MirrorX(float64(cfg.Player.FrameWidth))
		}
		return box, true
	}
	return gamemath.Rect{}, false
}

// WorldHitbox is ActiveHitbox translated to an actor whose sprite origin is
// at (x, y).
func WorldHitbox(a Attack, frame int, flipped bool, x, y float64) (gamemath.Rect, bool) {
	box, ok := ActiveHitbox(a, frame, flipped)
	if !ok {
		return box, false
	}
	return box.Translate(x, y), true
}

// Dash reports the remaining ticks and direction of a dash descriptor.
func Dash(a Attack) (ticks int, dir float64, ok bool) {
	switch d := a.(type) {
	case GroundDash:
		return d.TicksRemaining, d.Direction, true
	case AirDash:
		return d.TicksRemaining, d.Direction, true
	case Light, Heavy, RepeatHeavy:
		return 0, 0, false
	default:
		panic(fmt.Sprintf("combat: unknown attack %T", a))
	}
}

// Tick consumes one tick of a dash. Other attacks are returned unchanged.
func Tick(a Attack) Attack {
	switch d := a.(type) {
	case GroundDash:
		d.TicksRemaining--
		return d
	case AirDash:
		d.TicksRemaining--
		return d
	case Light, Heavy, RepeatHeavy:
		return a
	default:
		panic(fmt.Sprintf("combat: unknown attack %T", a))
	}
}
