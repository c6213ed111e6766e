// Package sound plays the effects and music the simulation queues in its
// audio component.
package sound

import (
	"io/fs"

	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// Player drains the world's sound queue once per frame.
type Player struct {
	loader      *Loader
	music       *audio.Player
	musicID     cfg.SoundID
	musicVolume float64
	sfxVolume   float64
	missing     map[cfg.SoundID]bool
}

func NewPlayer(ctx *audio.Context, fsys fs.FS) *Player {
	return &Player{
		loader:      NewLoader(ctx, fsys),
		musicVolume: cfg.Audio.DefaultMusicVol,
		sfxVolume:   cfg.Audio.DefaultSFXVol,
		missing:     map[cfg.SoundID]bool{},
	}
}

// Preload decodes every effect up front so the first hit does not stall.
func (p *Player) Preload() {
	for id, path := range cfg.Sound.Paths {
		if id == cfg.SoundIntro || id == cfg.SoundBeat {
			continue
		}
		if err := p.loader.Preload(path); err != nil {
			p.warn(id, err)
		}
	}
}

// Update plays queued effects and switches the music track when the
// world asks for a different one.
func (p *Player) Update(w donburi.World) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	data := components.Audio.Get(entry)

	for _, id := range data.PendingSFX {
		p.playSFX(id)
	}
	data.PendingSFX = data.PendingSFX[:0]

	if data.Music != p.musicID {
		p.playMusic(data.Music)
	}
}

func (p *Player) playSFX(id cfg.SoundID) {
	if p.sfxVolume <= 0 || p.missing[id] {
		return
	}
	path, ok := cfg.Sound.Paths[id]
	if !ok {
		return
	}

	player, err := p.loader.SFX(path)
	if err != nil {
		p.warn(id, err)
		return
	}

	volume := p.sfxVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

func (p *Player) playMusic(id cfg.SoundID) {
	p.Stop()
	p.musicID = id
	if id == cfg.SoundNone || p.missing[id] {
		return
	}

	player, err := p.loader.Music(cfg.Sound.Paths[id])
	if err != nil {
		p.warn(id, err)
		return
	}
	player.SetVolume(p.musicVolume)
	player.Play()
	p.music = player
}

// Stop silences the music.
func (p *Player) Stop() {
	if p.music != nil {
		_ = p.music.Close()
		p.music = nil
	}
	p.musicID = cfg.SoundNone
}

// warn logs a sound that cannot be played, once, and skips it from then on.
func (p *Player) warn(id cfg.SoundID, err error) {
	if p.missing[id] {
		return
	}
	p.missing[id] = true
	log.Warn("sound unavailable", "sound", cfg.Sound.Paths[id], "err", err)
}
