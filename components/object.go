package components

import (
	"github.com/automoto/ghostblade/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the actor's collision box in world space.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the collision box as a plain rectangle.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// BodyData places the collision box inside the actor's sprite frame.
type BodyData struct {
	Box         gamemath.Rect
	FrameWidth  int
	FrameHeight int
}

// Origin returns the sprite origin for a collision box at (x, y).
func (b *BodyData) Origin(o *resolv.Object) (float64, float64) {
	return o.X - b.Box.X, o.Y - b.Box.Y
}

var Object = donburi.NewComponentType[ObjectData]()
var Body = donburi.NewComponentType[BodyData]()
var Space = donburi.NewComponentType[resolv.Space]()
