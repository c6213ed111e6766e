package factory

import (
	"github.com/automoto/ghostblade/archetypes"
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns a ghost in its Birth state with its sprite origin at
// (x, y).
func CreateEnemy(w donburi.World, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	box := cfg.Enemy.Collision
	obj := resolv.NewObject(x+box.X, y+box.Y, box.W, box.H)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Body.SetValue(enemy, components.BodyData{
		Box:         box,
		FrameWidth:  cfg.Enemy.FrameWidth,
		FrameHeight: cfg.Enemy.FrameHeight,
	})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Direction: components.Vector{X: cfg.DirectionLeft},
		Behavior:  components.StandBy{},
		Active:    true,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Birth,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:  cfg.Enemy.Gravity,
		Friction: cfg.Enemy.Friction,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.Health,
	})
	components.Animation.SetValue(enemy, newAnimationData(cfg.EnemyClips, cfg.Birth))

	addToSpace(w, obj)
	return enemy
}
