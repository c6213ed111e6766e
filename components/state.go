package components

import (
	"github.com/automoto/ghostblade/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // ticks spent in CurrentState
}

// Set moves to s. It reports whether the state changed.
func (s *StateData) Set(next config.StateID) bool {
	if s.CurrentState == next {
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
	return true
}

var State = donburi.NewComponentType[StateData]()
