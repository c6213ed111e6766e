package systems

import (
	"github.com/automoto/ghostblade/components"
	"github.com/yohamta/donburi"
)

func UpdateAnimations(w donburi.World) {
	components.Animation.Each(w, func(e *donburi.Entry) {
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
