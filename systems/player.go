package systems

import (
	"github.com/automoto/ghostblade/combat"
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/shared/gamemath"
	"github.com/automoto/ghostblade/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// UpdatePlayer runs the player's state machine, then sets its velocity and
// drains its health for the tick.
func UpdatePlayer(w donburi.World) {
	pe, ok := tags.Player.First(w)
	if !ok {
		return
	}
	in := input(w)

	player := components.Player.Get(pe)
	state := components.State.Get(pe)
	physics := components.Physics.Get(pe)
	health := components.Health.Get(pe)
	anim := components.Animation.Get(pe)

	prev := state.CurrentState
	state.StateTimer++
	grounded := physics.OnGround != nil

	// A strike and running out of health both override the state table.
	// Dying is checked after the strike and wins over it.
	overridden := false
	if ev, struck := takeStruck(pe); struck && !isDown(state.CurrentState) {
		player.Attack = nil
		player.Hitable = false
		physics.SpeedX, physics.SpeedY = ev.KnockbackX, ev.KnockbackY
		state.Set(cfg.Hit)
		overridden = true
	}
	if health.Current <= 0 && grounded && !isDown(state.CurrentState) {
		player.Attack = nil
		player.Hitable = false
		state.Set(cfg.Dying)
		overridden = true
	}
	if !overridden {
		startAttack(player, state, in, grounded)
		updatePlayerState(player, state, anim, in, grounded)
	}

	updateFacing(player, state, in)

	if state.CurrentState != prev {
		anim.SetAnimation(state.CurrentState)
		log.Debug("player state", "from", prev, "to", state.CurrentState)
	}

	updatePlayerVelocity(player, state, physics, in, grounded)

	if !isDown(state.CurrentState) {
		health.Drain(cfg.Player.HealthDecay)
		if player.Attack != nil {
			health.Drain(cfg.Player.AttackCost)
		}
	}
}

func isDown(s cfg.StateID) bool {
	return s == cfg.Dying || s == cfg.Dead
}

// startAttack turns this tick's attack presses into an attack descriptor.
// Attack-2 wins when both are pressed.
func startAttack(player *components.PlayerData, state *components.StateData, in *components.PlayerInputData, grounded bool) {
	switch state.CurrentState {
	case cfg.Idle, cfg.Walk, cfg.Jump:
	default:
		return
	}
	if player.Attack != nil {
		return
	}

	axis := gamemath.Sign(in.Axis)
	if in.Pressed(cfg.ActionAttack1) {
		switch {
		case axis != 0 && grounded:
			player.Attack = combat.GroundDash{TicksRemaining: cfg.Player.DashTicks, Direction: axis}
		case axis != 0:
			player.Attack = combat.AirDash{TicksRemaining: cfg.Player.DashTicks, Direction: axis}
		default:
			player.Attack = combat.Light{}
		}
	}
	if in.Pressed(cfg.ActionAttack2) && grounded {
		player.Attack = combat.Heavy{}
	}
}

func updatePlayerState(player *components.PlayerData, state *components.StateData, anim *components.AnimationData, in *components.PlayerInputData, grounded bool) {
	switch state.CurrentState {
	case cfg.Idle, cfg.Walk:
		updateGrounded(player, state, in, grounded)

	case cfg.Jump:
		if grounded {
			if player.Attack == nil {
				state.Set(cfg.Idle)
				return
			}
			updateGrounded(player, state, in, grounded)
			return
		}
		switch player.Attack.(type) {
		case nil:
		case combat.Light:
			state.Set(cfg.AttackLight)
		case combat.AirDash:
			state.Set(cfg.AirDash)
		case combat.Heavy, combat.RepeatHeavy, combat.GroundDash:
			player.Attack = nil
		}

	case cfg.AttackLight, cfg.AttackHeavy, cfg.RepeatAttack:
		if state.CurrentState == cfg.AttackHeavy {
			_, heavy := player.Attack.(combat.Heavy)
			if heavy && anim.CurrentAnimation.Frame() > cfg.Player.RepeatHeavyMinFrame && in.Pressed(cfg.ActionAttack2) {
				player.Attack = combat.RepeatHeavy{}
				state.Set(cfg.RepeatAttack)
				return
			}
		}
		if anim.CurrentAnimation.IsFinished() {
			player.Attack = nil
			state.Set(cfg.Idle)
		}

	case cfg.GroundDash, cfg.AirDash:
		if state.CurrentState == cfg.AirDash && grounded {
			player.Attack = nil
			state.Set(cfg.Idle)
			return
		}
		if _, _, ok := combat.Dash(player.Attack); !ok {
			player.Attack = nil
			state.Set(cfg.Idle)
			return
		}
		player.Attack = combat.Tick(player.Attack)
		if ticks, _, _ := combat.Dash(player.Attack); ticks > 0 {
			return
		}
		player.Attack = nil
		if state.CurrentState == cfg.GroundDash {
			state.Set(cfg.Idle)
		} else {
			state.Set(cfg.Walk)
		}

	case cfg.Hit:
		if anim.CurrentAnimation.IsFinished() {
			player.Hitable = true
			state.Set(cfg.Idle)
		}

	case cfg.Dying:
		if anim.CurrentAnimation.IsFinished() {
			state.Set(cfg.Dead)
		}

	case cfg.Dead:
	}
}

// updateGrounded handles Idle and Walk, and Jump on the tick it lands.
func updateGrounded(player *components.PlayerData, state *components.StateData, in *components.PlayerInputData, grounded bool) {
	switch player.Attack.(type) {
	case nil:
	case combat.Light:
		state.Set(cfg.AttackLight)
		return
	case combat.Heavy:
		state.Set(cfg.AttackHeavy)
		return
	case combat.GroundDash:
		state.Set(cfg.GroundDash)
		return
	case combat.AirDash, combat.RepeatHeavy:
		player.Attack = nil
	}

	switch {
	case !grounded:
		state.Set(cfg.Jump)
	case in.Axis != 0:
		state.Set(cfg.Walk)
	default:
		state.Set(cfg.Idle)
	}
}

func updateFacing(player *components.PlayerData, state *components.StateData, in *components.PlayerInputData) {
	switch state.CurrentState {
	case cfg.Hit, cfg.Dying, cfg.Dead, cfg.AttackHeavy:
	case cfg.GroundDash, cfg.AirDash:
		if _, dir, ok := combat.Dash(player.Attack); ok {
			player.Direction.X = dir
		}
	default:
		if s := gamemath.Sign(in.Axis); s != 0 {
			player.Direction.X = s
		}
	}
}

func updatePlayerVelocity(player *components.PlayerData, state *components.StateData, physics *components.PhysicsData, in *components.PlayerInputData, grounded bool) {
	switch state.CurrentState {
	case cfg.Hit:
		physics.SpeedX *= cfg.Player.HitDamping
		physics.SpeedY *= cfg.Player.HitDamping
		physics.Driven = true

	case cfg.Dying, cfg.Dead:

	case cfg.AttackLight, cfg.AttackHeavy, cfg.RepeatAttack:
		physics.SpeedX = 0
		physics.Driven = true

	case cfg.GroundDash, cfg.AirDash:
		ticks, dir, ok := combat.Dash(player.Attack)
		if !ok || ticks <= 0 {
			return
		}
		speed := cfg.Player.GroundDashSpeed
		if state.CurrentState == cfg.AirDash {
			speed = cfg.Player.AirDashSpeed
		}
		physics.SpeedX = dir * speed
		physics.Driven = true

	case cfg.Idle, cfg.Walk, cfg.Jump:
		if in.Axis != 0 {
			physics.SpeedX = in.Axis * cfg.Player.WalkSpeed
			physics.Driven = true
		}
	}

	// Jumping is open to every state but the hit reaction and death, so a
	// dash or a swing can leave the ground.
	if grounded && in.Pressed(cfg.ActionJump) && state.CurrentState != cfg.Hit && !isDown(state.CurrentState) {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = nil
	}
}
