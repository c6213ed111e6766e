package config

import "github.com/automoto/ghostblade/shared/gamemath"

// AttackKind identifies an attack descriptor variant for table lookups.
type AttackKind int

const (
	LightAttack AttackKind = iota
	HeavyAttack
	RepeatHeavyAttack
	GroundDashAttack
	AirDashAttack
)

// AttackKinds lists every attack kind.
var AttackKinds = []AttackKind{
	LightAttack, HeavyAttack, RepeatHeavyAttack, GroundDashAttack, AirDashAttack,
}

func (k AttackKind) String() string {
	switch k {
	case LightAttack:
		return "light"
	case HeavyAttack:
		return "heavy"
	case RepeatHeavyAttack:
		return "repeat_heavy"
	case GroundDashAttack:
		return "ground_dash"
	case AirDashAttack:
		return "air_dash"
	}
	return "unknown"
}

// HitWindow is an inclusive frame range during which Box is live. Box is in
// actor-local, unflipped sprite space.
type HitWindow struct {
	StartFrame int
	EndFrame   int
	Box        gamemath.Rect
}

type AttackSpec struct {
	Damage  int
	Windows []HitWindow // frame ranges must not overlap
}

var dashBox = gamemath.Rect{X: 36, Y: 32, W: 11, H: 14}
var heavyBox = gamemath.Rect{X: 34, Y: 4, W: 27, H: 44}

// Attacks is the hitbox table. RepeatHeavy plays the tail of the heavy swing
// from column 10, so its window is the heavy window shifted by 10 frames.
var Attacks = map[AttackKind]AttackSpec{
	LightAttack: {
		Damage: 1,
		Windows: []HitWindow{
			{StartFrame: 6, EndFrame: 9, Box: gamemath.Rect{X: 41, Y: 31, W: 16, H: 16}},
			{StartFrame: 13, EndFrame: 15, Box: gamemath.Rect{X: 9, Y: 31, W: 16, H: 16}},
		},
	},
	HeavyAttack: {
		Damage:  2,
		Windows: []HitWindow{{StartFrame: 12, EndFrame: 14, Box: heavyBox}},
	},
	RepeatHeavyAttack: {
		Damage:  2,
		Windows: []HitWindow{{StartFrame: 2, EndFrame: 4, Box: heavyBox}},
	},
	GroundDashAttack: {
		Damage:  0,
		Windows: []HitWindow{{StartFrame: 0, EndFrame: 6, Box: dashBox}},
	},
	AirDashAttack: {
		Damage:  0,
		Windows: []HitWindow{{StartFrame: 0, EndFrame: 6, Box: dashBox}},
	},
}
