package systems

import (
	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/tags"
	"github.com/yohamta/donburi"
)

// UpdateSoundCues queues the sounds keyed to the frame each actor's
// animation just reached. A cue fires once per arrival on its frame.
func UpdateSoundCues(w donburi.World) {
	rng := random(w)

	components.Animation.Each(w, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}
		frame := anim.CurrentAnimation.Frame()
		if frame == anim.CueFrame {
			return
		}
		anim.CueFrame = frame

		actor := cfg.ActorEnemy
		if e.HasComponent(tags.Player) {
			actor = cfg.ActorPlayer
		}
		for _, cue := range cfg.Sound.Cues {
			if cue.Actor != actor || cue.State != anim.CurrentSheet || cue.Frame != frame || len(cue.Sounds) == 0 {
				continue
			}
			PlaySFX(w, cue.Sounds[rng.IntN(len(cue.Sounds))])
		}
	})
}

// PlaySFX queues a sound effect for the audio player.
func PlaySFX(w donburi.World, id cfg.SoundID) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// PlayMusic switches the looping track. SoundNone stops it.
func PlayMusic(w donburi.World, id cfg.SoundID) {
	if entry, ok := components.Audio.First(w); ok {
		components.Audio.Get(entry).Music = id
	}
}
