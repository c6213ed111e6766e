package components

import (
	cfg "github.com/automoto/ghostblade/config"
	"github.com/yohamta/donburi"
)

// PlayerInputData is the per-tick input snapshot. The host fills Current
// and Axis before each tick.
type PlayerInputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Axis     float64 // horizontal movement in [-1, 1]
}

// Next rolls the snapshot over to a new tick.
func (i *PlayerInputData) Next() {
	i.Previous = i.Current
	i.Current = [cfg.ActionCount]bool{}
	i.Axis = 0
}

// Pressed reports an action that went down this tick.
func (i *PlayerInputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
