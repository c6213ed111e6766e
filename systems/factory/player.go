package factory

import (
	"github.com/automoto/ghostblade/archetypes"
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/shared/gamemath"
	"github.com/automoto/ghostblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player with its sprite origin at (x, y).
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	box := cfg.Player.Collision
	obj := resolv.NewObject(x+box.X, y+box.Y, box.W, box.H)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Body.SetValue(player, components.BodyData{
		Box:         box,
		FrameWidth:  cfg.Player.FrameWidth,
		FrameHeight: cfg.Player.FrameHeight,
	})

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight},
		Hitable:   true,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth(),
		Max:     cfg.Player.MaxHealth(),
	})
	components.Animation.SetValue(player, newAnimationData(cfg.PlayerClips, cfg.Idle))

	addToSpace(w, obj)
	components.Physics.Get(player).OnGround = groundUnder(obj)
	return player
}

// groundUnder returns the solid obj is standing on, if any.
func groundUnder(obj *resolv.Object) *resolv.Object {
	if obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 1, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	feet := gamemath.Rect{X: obj.X, Y: obj.Y + 1, W: obj.W, H: obj.H}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if feet.Overlaps(gamemath.Rect{X: solid.X, Y: solid.Y, W: solid.W, H: solid.H}) {
			return solid
		}
	}
	return nil
}
