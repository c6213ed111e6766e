package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundHuh1
	SoundHuh2
	SoundHuh3
	SoundDeath
	SoundHeavy
	SoundSword1
	SoundSword2
	// Music
	SoundIntro
	SoundBeat
)

// Actor selects whose state a sound cue listens to.
type Actor int

const (
	ActorPlayer Actor = iota
	ActorEnemy
)

// SoundCue fires once when the actor's animation enters Frame while in
// State. With several Sounds one is picked at random.
type SoundCue struct {
	Actor  Actor
	State  StateID
	Frame  int
	Sounds []SoundID
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	Dir             string // directory the sound files are read from
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Paths             map[SoundID]string
	VolumeMultipliers map[SoundID]float64
	Cues              []SoundCue
	RoundMusic        map[RoundState]SoundID
}

var Audio AudioConfig
var Sound SoundConfig

var huh = []SoundID{SoundHuh1, SoundHuh2, SoundHuh3}

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
		Dir:             "assets/sounds",
	}

	Sound = SoundConfig{
		Paths: map[SoundID]string{
			SoundHuh1:   "huh1.wav",
			SoundHuh2:   "huh2.wav",
			SoundHuh3:   "huh3.wav",
			SoundDeath:  "death.wav",
			SoundHeavy:  "heavy.wav",
			SoundSword1: "sword1.wav",
			SoundSword2: "sword2.wav",
			SoundIntro:  "intro.ogg",
			SoundBeat:   "beat.ogg",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHeavy: 1.2,
		},
		Cues: []SoundCue{
			{Actor: ActorPlayer, State: AttackLight, Frame: 6, Sounds: []SoundID{SoundSword1}},
			{Actor: ActorPlayer, State: AttackLight, Frame: 13, Sounds: []SoundID{SoundSword2}},
			{Actor: ActorPlayer, State: AttackHeavy, Frame: 12, Sounds: []SoundID{SoundHeavy}},
			{Actor: ActorPlayer, State: RepeatAttack, Frame: 2, Sounds: []SoundID{SoundHeavy}},
			{Actor: ActorPlayer, State: Hit, Frame: 0, Sounds: huh},
			{Actor: ActorPlayer, State: Dying, Frame: 0, Sounds: []SoundID{SoundDeath}},
			{Actor: ActorEnemy, State: Hit, Frame: 0, Sounds: huh},
			{Actor: ActorEnemy, State: Dead, Frame: 0, Sounds: []SoundID{SoundDeath}},
		},
		RoundMusic: map[RoundState]SoundID{
			RoundIntro:  SoundIntro,
			RoundActive: SoundBeat,
		},
	}
}
