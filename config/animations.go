package config

import "github.com/automoto/ghostblade/assets/animations"

// PlayerClips maps every player state to its strip on the hero sheet
// (64x64 frames).
var PlayerClips = map[StateID]animations.Clip{
	AirDash:      {X: 0, Y: 0, W: 64, H: 64, Frames: 7, Speed: 4, PivotX: 0, PivotY: 0},
	GroundDash:   {X: 0, Y: 64, W: 64, H: 64, Frames: 7, Speed: 4, PivotX: 0, PivotY: 0},
	Walk:         {X: 0, Y: 128, W: 64, H: 64, Frames: 8, Speed: 4, PivotX: 0, PivotY: 0},
	Idle:         {X: 0, Y: 192, W: 64, H: 64, Frames: 8, Speed: 4, PivotX: 0, PivotY: 0},
	Jump:         {X: 0, Y: 256, W: 64, H: 64, Frames: 12, Speed: 4, PivotX: 0, PivotY: 0},
	AttackLight:  {X: 0, Y: 384, W: 64, H: 64, Frames: 19, Speed: 2, PivotX: 0, PivotY: 0},
	AttackHeavy:  {X: 0, Y: 448, W: 64, H: 64, Frames: 17, Speed: 4, PivotX: 0, PivotY: 0},
	RepeatAttack: {X: 640, Y: 448, W: 64, H: 64, Frames: 7, Speed: 4, PivotX: 0, PivotY: 0},
	Hit:          {X: 128, Y: 512, W: 64, H: 64, Frames: 5, Speed: 2, PivotX: 0, PivotY: 0},
	Dying:        {X: 384, Y: 320, W: 64, H: 64, Frames: 13, Speed: 10, PivotX: 0, PivotY: 0},
	Dead:         {X: 1152, Y: 320, W: 64, H: 64, Frames: 1, Speed: 2, PivotX: 0, PivotY: 0},
}

// EnemyClips maps every ghost state to its strip on the ghost sheet.
var EnemyClips = map[StateID]animations.Clip{
	Idle:  {X: 0, Y: 0, W: 64, H: 64, Frames: 5, Speed: 8, PivotX: 0, PivotY: 0},
	Hit:   {X: 0, Y: 64, W: 64, H: 64, Frames: 10, Speed: 4, PivotX: 0, PivotY: 0},
	Dead:  {X: 0, Y: 128, W: 64, H: 64, Frames: 10, Speed: 8, PivotX: 0, PivotY: 0},
	Birth: {X: 0, Y: 192, W: 64, H: 64, Frames: 13, Speed: 8, PivotX: 0, PivotY: 0},
}
