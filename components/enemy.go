package components

import "github.com/yohamta/donburi"

// Behavior is what an idle ghost does between hits.
type Behavior interface {
	behavior()
}

type StandBy struct{}

// VerticalBob floats the ghost around OriginY on a sine wave.
type VerticalBob struct {
	OriginY float64
	Phase   float64
	Speed   float64 // radians per tick
}

func (StandBy) behavior()     {}
func (VerticalBob) behavior() {}

type EnemyData struct {
	Direction Vector
	Behavior  Behavior
	Hitable   bool

	// Active turns false once the death clip has played and never turns
	// back; the encounter removes inactive enemies.
	Active bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
