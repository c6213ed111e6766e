package systems

import (
	"github.com/automoto/ghostblade/components"
	"github.com/automoto/ghostblade/shared/gamemath"
	"github.com/automoto/ghostblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateCollisions moves every actor by its speed, one axis at a time,
// stopping it flush against level solids.
func UpdateCollisions(w donburi.World) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)
	})
}

func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if wall := blockingSolid(object, dx, 0); wall != nil {
		if dx > 0 {
			object.X = wall.X - object.W
		} else {
			object.X = wall.X + wall.W
		}
		physics.SpeedX = 0
		return
	}
	object.X += dx
}

func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	// Probe a pixel further when falling or resting so standing actors keep
	// finding the ground.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	solid := blockingSolid(object, 0, checkDistance)
	if solid == nil {
		object.Y += dy
		return
	}

	if dy >= 0 {
		object.Y = solid.Y - object.H
		physics.OnGround = solid
	} else {
		object.Y = solid.Y + solid.H
	}
	physics.SpeedY = 0
}

// blockingSolid returns the nearest solid that object would overlap after
// moving by (dx, dy). Resolv's cell query is only a broad phase; the exact
// overlap test is done here.
func blockingSolid(object *resolv.Object, dx, dy float64) *resolv.Object {
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	moved := gamemath.Rect{X: object.X + dx, Y: object.Y + dy, W: object.W, H: object.H}
	var nearest *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !moved.Overlaps(gamemath.Rect{X: solid.X, Y: solid.Y, W: solid.W, H: solid.H}) {
			continue
		}
		if nearest == nil || closer(solid, nearest, dx, dy) {
			nearest = solid
		}
	}
	return nearest
}

// closer reports whether a is met before b when moving along (dx, dy).
func closer(a, b *resolv.Object, dx, dy float64) bool {
	switch {
	case dx > 0:
		return a.X < b.X
	case dx < 0:
		return a.X+a.W > b.X+b.W
	case dy < 0:
		return a.Y+a.H > b.Y+b.H
	default:
		return a.Y < b.Y
	}
}
