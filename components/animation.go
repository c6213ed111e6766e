package components

import (
	"github.com/automoto/ghostblade/assets/animations"
	"github.com/automoto/ghostblade/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Clips            map[config.StateID]animations.Clip

	// CueFrame is the last frame sound cues were checked for; -1 after a
	// clip change so frame 0 of the new clip fires its cues.
	CueFrame int
}

// SetAnimation installs the clip bound to state and restarts playback.
func (a *AnimationData) SetAnimation(state config.StateID) {
	clip, ok := a.Clips[state]
	if !ok {
		return
	}
	if a.CurrentAnimation == nil {
		a.CurrentAnimation = animations.NewAnimation(clip)
	} else {
		a.CurrentAnimation.SetClip(clip)
	}
	a.CurrentAnimation.Play()
	a.CurrentSheet = state
	a.CueFrame = -1
}

var Animation = donburi.NewComponentType[AnimationData]()
