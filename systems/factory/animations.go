package factory

import (
	"github.com/automoto/ghostblade/assets/animations"
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
)

// newAnimationData binds a clip table and starts the clip for state.
func newAnimationData(clips map[cfg.StateID]animations.Clip, state cfg.StateID) components.AnimationData {
	anim := components.AnimationData{Clips: clips}
	anim.SetAnimation(state)
	return anim
}
