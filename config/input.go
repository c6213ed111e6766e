package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack1
	ActionAttack2
	ActionRestart
	ActionDebugStrike
	ActionDebugHitboxes
	ActionCount // Must be last - used for array sizing
)

// AnalogDeadzone is the stick travel ignored before it counts as movement.
const AnalogDeadzone = 0.25
