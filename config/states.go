package config

// StateID names a behavioral state. Player and enemy states share the type
// so clips, sound cues and logging can key on it uniformly.
type StateID int

const (
	StateNone StateID = iota

	// Player
	Idle
	Walk
	Jump
	AttackLight
	AttackHeavy
	RepeatAttack
	GroundDash
	AirDash
	Hit
	Dying
	Dead

	// Enemy only; enemies reuse Idle, Hit and Dead.
	Birth
)

var stateNames = map[StateID]string{
	StateNone:    "none",
	Idle:         "idle",
	Walk:         "walk",
	Jump:         "jump",
	AttackLight:  "attack_light",
	AttackHeavy:  "attack_heavy",
	RepeatAttack: "repeat_attack",
	GroundDash:   "ground_dash",
	AirDash:      "air_dash",
	Hit:          "hit",
	Dying:        "dying",
	Dead:         "dead",
	Birth:        "birth",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// PlayerStates lists every state the player can be in.
var PlayerStates = []StateID{
	Idle, Walk, Jump, AttackLight, AttackHeavy, RepeatAttack,
	GroundDash, AirDash, Hit, Dying, Dead,
}

// EnemyStates lists every state an enemy can be in.
var EnemyStates = []StateID{Birth, Idle, Hit, Dead}

// RoundState is the encounter-level state of a round.
type RoundState int

const (
	RoundIntro RoundState = iota
	RoundActive
	RoundWin
	RoundLose
)

func (r RoundState) String() string {
	switch r {
	case RoundIntro:
		return "intro"
	case RoundActive:
		return "active"
	case RoundWin:
		return "win"
	case RoundLose:
		return "lose"
	}
	return "unknown"
}
