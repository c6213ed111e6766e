package systems

import (
	"github.com/automoto/ghostblade/components"
	"github.com/yohamta/donburi"
)

// UpdateObjects re-registers moved collision objects with the space.
func UpdateObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
