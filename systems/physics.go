package systems

import (
	"github.com/automoto/ghostblade/components"
	"github.com/yohamta/donburi"
)

// UpdatePhysics applies gravity to every actor, and friction to horizontal
// speed nothing drove this tick.
func UpdatePhysics(w donburi.World) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		physics.SpeedY += physics.Gravity
		if !physics.Driven {
			physics.SpeedX *= physics.Friction
		}
		physics.Driven = false
	})
}
