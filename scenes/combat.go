package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/render"
	"github.com/automoto/ghostblade/shared/leveldata"
	"github.com/automoto/ghostblade/sound"
	"github.com/automoto/ghostblade/systems"
	"github.com/automoto/ghostblade/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Options struct {
	Seed  uint64
	Level *leveldata.Level

	// Sound plays the queued audio; nil runs silent.
	Sound *sound.Player
	// Watcher delivers tuning file reloads; nil disables hot reload.
	Watcher *cfg.Watcher
}

// CombatScene hosts one round of the fight in the game window.
type CombatScene struct {
	ecs     *ecs.ECS
	opts    Options
	pending *cfg.Tuning
}

func NewCombatScene(opts Options) (*CombatScene, error) {
	w := donburi.NewWorld()
	if _, err := factory.CreateRound(w, factory.RoundOptions{Seed: opts.Seed, Level: opts.Level}); err != nil {
		return nil, fmt.Errorf("combat scene: %w", err)
	}

	cs := &CombatScene{opts: opts}
	e := ecs.NewECS(w)

	e.AddSystem(cs.updateInput)
	e.AddSystem(func(e *ecs.ECS) { systems.Tick(e.World) })
	if opts.Sound != nil {
		e.AddSystem(func(e *ecs.ECS) { opts.Sound.Update(e.World) })
	}

	e.AddRenderer(render.LayerDefault, render.DrawLevel)
	e.AddRenderer(render.LayerDefault, render.DrawActors)
	e.AddRenderer(render.LayerDefault, render.DrawHitboxes)
	e.AddRenderer(render.LayerDefault, render.DrawHUD)
	e.AddRenderer(render.LayerDefault, render.DrawRound)

	cs.ecs = e
	return cs, nil
}

func (cs *CombatScene) Update() {
	cs.receiveTuning()
	cs.ecs.Update()
}

func (cs *CombatScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	cs.ecs.Draw(screen)
}

func (cs *CombatScene) updateInput(e *ecs.ECS) {
	entry, ok := components.PlayerInput.First(e.World)
	if !ok {
		return
	}
	in := components.PlayerInput.Get(entry)
	sampleInput(in)

	if in.Pressed(cfg.ActionDebugHitboxes) {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	}
}

// receiveTuning collects reloaded tuning and installs it once the round is
// decided, so a change lands with the restart.
func (cs *CombatScene) receiveTuning() {
	if w := cs.opts.Watcher; w != nil {
		select {
		case t := <-w.Updates:
			cs.pending = &t
			log.Info("tuning reloaded", "applies", "next round")
		case err := <-w.Errors:
			log.Error("tuning reload failed", "err", err)
		default:
		}
	}

	if cs.pending == nil {
		return
	}
	if !systems.BetweenRounds(cs.ecs.World) {
		return
	}
	if err := cfg.Apply(*cs.pending); err != nil {
		log.Error("tuning rejected", "err", err)
	}
	cs.pending = nil
}
