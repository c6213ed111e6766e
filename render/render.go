// Package render draws the combat world with placeholder shapes: level
// solids, actor boxes, the HUD and the round overlays.
package render

import (
	"image/color"

	"github.com/automoto/ghostblade/combat"
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/shared/gamemath"
	"github.com/automoto/ghostblade/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const LayerDefault ecs.LayerID = 0

// facingNotch is the width of the marker drawn on an actor's facing side.
const facingNotch = 3

// toScreen moves a level rectangle below the HUD strip.
func toScreen(r gamemath.Rect) (x, y, w, h float32) {
	return float32(r.X), float32(r.Y + cfg.UI.LevelOffsetY), float32(r.W), float32(r.H)
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y, w, h := toScreen(r)
	vector.FillRect(screen, x, y, w, h, c, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y, w, h := toScreen(r)
	vector.StrokeRect(screen, x, y, w, h, 1, c, false)
}

func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		fillRect(screen, components.Object.Get(entry).Rect(), cfg.UI.WallColor)
	})
}

// DrawActors draws every actor as its collision box with a notch on the
// side it faces. Ghosts fade in while being born and out while dying.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		c := withAlpha(cfg.UI.EnemyColor, ghostOpacity(entry))
		drawActor(screen, entry, enemy.Direction.X, c)
	})
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		c := color.Color(cfg.UI.PlayerColor)
		if !player.Hitable {
			c = withAlpha(cfg.UI.PlayerColor, 0.5)
		}
		drawActor(screen, entry, player.Direction.X, c)
	})
}

func drawActor(screen *ebiten.Image, entry *donburi.Entry, facing float64, c color.Color) {
	box := components.Object.Get(entry).Rect()
	fillRect(screen, box, c)

	notch := gamemath.Rect{X: box.Right() - facingNotch, Y: box.Y, W: facingNotch, H: box.H / 3}
	if facing < 0 {
		notch.X = box.X
	}
	fillRect(screen, notch, cfg.White)
}

// ghostOpacity follows the birth and death clips.
func ghostOpacity(entry *donburi.Entry) float64 {
	anim := components.Animation.Get(entry)
	if anim.CurrentAnimation == nil {
		return 1
	}
	frames := anim.CurrentAnimation.Clip().Frames
	if frames <= 1 {
		return 1
	}
	progress := float64(anim.CurrentAnimation.Frame()) / float64(frames-1)
	switch components.State.Get(entry).CurrentState {
	case cfg.Birth:
		return progress
	case cfg.Dead:
		return 1 - progress
	}
	return 1
}

// spriteFrame is the screen-space region the actor's current frame covers.
func spriteFrame(entry *donburi.Entry) gamemath.Rect {
	anim := components.Animation.Get(entry).CurrentAnimation
	x, y := components.Body.Get(entry).Origin(components.Object.Get(entry).Object)
	x, y = anim.Place(x, y)
	_, _, w, h := anim.Source()
	return gamemath.Rect{X: x, Y: y, W: float64(w), H: float64(h)}
}

func withAlpha(c color.RGBA, opacity float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * gamemath.Clamp(opacity, 0, 1))
	return n
}

// DrawHitboxes outlines collision boxes, sprite frames and the player's
// live attack hitbox.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		strokeRect(screen, obj.Rect(), cfg.UI.BodyBoxColor)

		anim := components.Animation.Get(entry)
		if anim.CurrentAnimation == nil {
			return
		}
		strokeRect(screen, spriteFrame(entry), cfg.UI.FrameColor)
	})

	pe, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(pe)
	if player.Attack == nil {
		return
	}
	x, y := components.Body.Get(pe).Origin(components.Object.Get(pe).Object)
	frame := components.Animation.Get(pe).CurrentAnimation.Frame()
	if box, ok := combat.WorldHitbox(player.Attack, frame, player.Direction.X < 0, x, y); ok {
		fillRect(screen, box, cfg.UI.HitboxColor)
	}
}
