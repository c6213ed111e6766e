package components

import (
	cfg "github.com/automoto/ghostblade/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound requests for the audio player (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
	Music      cfg.SoundID // SoundNone stops the music
}

var Audio = donburi.NewComponentType[AudioData]()
