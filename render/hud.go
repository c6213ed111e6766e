package render

import (
	"fmt"

	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/fonts"
	"github.com/automoto/ghostblade/systems"
	"github.com/automoto/ghostblade/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the player's health bar and the ghost tally.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	pe, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(pe)

	vector.FillRect(screen,
		float32(cfg.UI.HealthBarX), float32(cfg.UI.HealthBarY),
		float32(cfg.UI.HealthBarWidth), float32(cfg.UI.HealthBarHeight),
		cfg.UI.HealthBarBg, false)

	vector.FillRect(screen,
		float32(cfg.UI.HealthBarX), float32(cfg.UI.HealthBarY),
		float32(cfg.UI.HealthBarWidth*hp.Fraction()), float32(cfg.UI.HealthBarHeight),
		cfg.UI.HealthBarFg, false)

	entry, ok := components.Encounter.First(e.World)
	if !ok {
		return
	}
	enc := components.Encounter.Get(entry)
	tally := fmt.Sprintf("ghosts %d/%d", enc.Defeated, cfg.Encounter.MaxSpawns)
	face := fonts.HUD.Get()
	x := int(cfg.UI.HealthBarX+cfg.UI.HealthBarWidth) + 12
	text.Draw(screen, tally, face, x, int(cfg.UI.HealthBarY+cfg.UI.HealthBarHeight), cfg.UI.TextColor)
}

// DrawRound darkens the screen by the fade alpha and shows the banner for
// the intro and outcome states.
func DrawRound(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Round.First(e.World)
	if !ok {
		return
	}
	rd := components.Round.Get(entry)
	width := float64(screen.Bounds().Dx())

	if rd.State != cfg.RoundActive || rd.Alpha > 0 {
		a := rd.Alpha
		if rd.State == cfg.RoundWin || rd.State == cfg.RoundLose {
			// Outcome banners sit on a dimmed fight.
			a = max(a, 0.5)
		}
		overlay := withAlpha(cfg.BlackOverlay, a)
		vector.FillRect(screen, 0, 0, float32(width), float32(screen.Bounds().Dy()), overlay, false)
	}

	var banner, prompt string
	switch rd.State {
	case cfg.RoundIntro:
		banner = cfg.UI.Title
		if systems.PromptVisible(rd) {
			prompt = cfg.UI.StartPrompt
		}
	case cfg.RoundWin:
		banner, prompt = cfg.UI.WinBanner, cfg.UI.RetryPrompt
	case cfg.RoundLose:
		banner, prompt = cfg.UI.LoseBanner, cfg.UI.RetryPrompt
	case cfg.RoundActive:
		return
	}
	if rd.FadingOut && rd.State != cfg.RoundIntro {
		prompt = ""
	}

	title := fonts.Title.Get()
	text.Draw(screen, banner, title, centerTextX(banner, title, width), cfg.UI.BannerY, cfg.UI.TextColor)
	if prompt != "" {
		face := fonts.HUD.Get()
		text.Draw(screen, prompt, face, centerTextX(prompt, face, width), cfg.UI.PromptY, cfg.UI.TextColor)
	}
}

func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
