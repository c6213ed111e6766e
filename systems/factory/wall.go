package factory

import (
	"github.com/automoto/ghostblade/archetypes"
	"github.com/automoto/ghostblade/components"
	"github.com/automoto/ghostblade/shared/gamemath"
	"github.com/automoto/ghostblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, r gamemath.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return wall
}
