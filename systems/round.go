package systems

import (
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// UpdateRound plays screen fades and moves the round between its intro,
// play and outcome states. The start/restart input is honoured on the
// intro once the screen has mostly faded in, and on either outcome.
func UpdateRound(w donburi.World) {
	rd, ok := round(w)
	if !ok {
		return
	}
	rd.Ticks++

	if rd.Fade != nil {
		alpha, done := rd.Fade.Update(1)
		rd.Alpha = float64(alpha)
		if done {
			rd.Fade = nil
			if rd.FadingOut {
				finishFadeOut(w, rd)
				return
			}
		}
	}

	if !input(w).Pressed(cfg.ActionRestart) || (rd.FadingOut && rd.Fade != nil) {
		return
	}
	switch rd.State {
	case cfg.RoundIntro:
		if rd.Alpha <= cfg.Round.PromptAlpha {
			factory.StartFade(rd, true)
		}
	case cfg.RoundWin, cfg.RoundLose:
		factory.StartFade(rd, true)
	case cfg.RoundActive:
	}
}

// PromptVisible reports whether the intro is ready for the start input.
func PromptVisible(rd *components.RoundData) bool {
	return rd.State == cfg.RoundIntro && !rd.FadingOut && rd.Alpha <= cfg.Round.PromptAlpha
}

// BetweenRounds reports whether the current round is decided. Tuning
// installed now is what the next RestartRound builds from; the intro and
// the fight already run on the round as built.
func BetweenRounds(w donburi.World) bool {
	rd, ok := round(w)
	if !ok {
		return true
	}
	return rd.State == cfg.RoundWin || rd.State == cfg.RoundLose
}

func finishFadeOut(w donburi.World, rd *components.RoundData) {
	if rd.State != cfg.RoundIntro {
		factory.RestartRound(w)
	}
	setRoundState(w, rd, cfg.RoundActive)
	factory.StartFade(rd, false)
}

func setRoundState(w donburi.World, rd *components.RoundData, next cfg.RoundState) {
	log.Debug("round state", "from", rd.State, "to", next)
	rd.State = next
	rd.Ticks = 0
	PlayMusic(w, cfg.Sound.RoundMusic[next])
}
