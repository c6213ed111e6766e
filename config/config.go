package config

import (
	"image/color"

	"github.com/automoto/ghostblade/shared/gamemath"
)

// TicksPerSecond is the fixed simulation rate.
const TicksPerSecond = 60

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Scale  int // window scale factor
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// LifeTime is the number of seconds of idle standing the health pool
	// lasts; health starts at LifeTime * TicksPerSecond.
	LifeTime int `yaml:"life_time"`

	// Movement
	Gravity         float64 `yaml:"gravity"`
	JumpSpeed       float64 `yaml:"jump_speed"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	GroundDashSpeed float64 `yaml:"ground_dash_speed"`
	AirDashSpeed    float64 `yaml:"air_dash_speed"`
	DashTicks       int     `yaml:"dash_ticks"`
	Friction        float64 `yaml:"friction"`
	HitDamping      float64 `yaml:"hit_damping"`

	// Combat
	Knockback           float64 `yaml:"knockback"`
	HealthDecay         int     `yaml:"health_decay"` // per tick while alive
	AttackCost          int     `yaml:"attack_cost"`  // extra per tick while an attack is held
	RepeatHeavyMinFrame int     `yaml:"repeat_heavy_min_frame"`

	// Dimensions
	FrameWidth  int           `yaml:"frame_width"`
	FrameHeight int           `yaml:"frame_height"`
	Collision   gamemath.Rect `yaml:"collision"` // offset and size inside the frame
}

// MaxHealth is the full health pool derived from LifeTime.
func (p PlayerConfig) MaxHealth() int {
	return p.LifeTime * TicksPerSecond
}

// EnemyConfig contains ghost configuration
type EnemyConfig struct {
	Health   int     `yaml:"health"`
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"`

	// Wander
	BobChance    float64 `yaml:"bob_chance"` // per tick, while idle and standing by
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobSpeed     float64 `yaml:"bob_speed"` // radians per tick

	// Dimensions
	FrameWidth  int           `yaml:"frame_width"`
	FrameHeight int           `yaml:"frame_height"`
	Collision   gamemath.Rect `yaml:"collision"`
}

// EncounterConfig contains the enemy spawner configuration
type EncounterConfig struct {
	MaxSpawns    int `yaml:"max_spawns"`
	InitialDelay int `yaml:"initial_delay"` // ticks
	MinInterval  int `yaml:"min_interval"`  // ticks
	MaxInterval  int `yaml:"max_interval"`  // ticks
}

// RoundConfig contains round flow configuration
type RoundConfig struct {
	FadeTicks   int     `yaml:"fade_ticks"`
	PromptAlpha float64 `yaml:"prompt_alpha"` // intro prompt shows once the fade is below this
	SkipIntro   bool    `yaml:"skip_intro"`
}

// LevelConfig selects the level map
type LevelConfig struct {
	Path string `yaml:"path"`
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarX      float64
	HealthBarY      float64
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
	LevelOffsetY    float64 // screen y of the level origin
	FontSize        float64
	TitleFontSize   float64

	PlayerColor  color.RGBA
	EnemyColor   color.RGBA
	WallColor    color.RGBA
	HitboxColor  color.RGBA
	BodyBoxColor color.RGBA
	FrameColor   color.RGBA
	TextColor    color.RGBA

	// Round banners
	Title       string
	StartPrompt string
	WinBanner   string
	LoseBanner  string
	RetryPrompt string
	BannerY     int
	PromptY     int
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Enabled      bool // debug key bindings (strike, hitbox toggle)
	ShowHitboxes bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Encounter EncounterConfig
var Round RoundConfig
var Level LevelConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkRed      = color.RGBA{R: 90, G: 10, B: 10, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Ghost        = color.RGBA{R: 157, G: 172, B: 200, A: 200}
	Stone        = color.RGBA{R: 70, G: 60, B: 80, A: 255}
	Orange       = color.RGBA{R: 160, G: 88, B: 0, A: 160}
	Green        = color.RGBA{R: 0, G: 160, B: 38, A: 160}
	Grey         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  432,
		Height: 160,
		Scale:  3,
	}

	Player = PlayerConfig{
		LifeTime: 20,

		Gravity:         0.5,
		JumpSpeed:       8,
		WalkSpeed:       2,
		GroundDashSpeed: 6,
		AirDashSpeed:    8,
		DashTicks:       10,
		Friction:        0.8,
		HitDamping:      0.7,

		Knockback:           8,
		HealthDecay:         1,
		AttackCost:          1,
		RepeatHeavyMinFrame: 13,

		FrameWidth:  64,
		FrameHeight: 64,
		Collision:   gamemath.Rect{X: 27, Y: 28, W: 10, H: 20},
	}

	Enemy = EnemyConfig{
		Health:   3,
		Gravity:  0,
		Friction: 0.8,

		BobChance:    0.005,
		BobAmplitude: 4,
		BobSpeed:     0.05,

		FrameWidth:  64,
		FrameHeight: 64,
		Collision:   gamemath.Rect{X: 26, Y: 19, W: 14, H: 22},
	}

	Encounter = EncounterConfig{
		MaxSpawns:    10,
		InitialDelay: 60,
		MinInterval:  90,
		MaxInterval:  240,
	}

	Round = RoundConfig{
		FadeTicks:   60,
		PromptAlpha: 0.2,
	}

	Level = LevelConfig{
		Path: "levels/arena.tmx",
	}

	UI = UIConfig{
		HealthBarWidth:  240,
		HealthBarHeight: 6,
		HealthBarX:      8,
		HealthBarY:      8,
		HealthBarBg:     DarkRed,
		HealthBarFg:     Red,
		LevelOffsetY:    32,
		FontSize:        8,
		TitleFontSize:   16,

		PlayerColor:  LightBlue,
		EnemyColor:   Ghost,
		WallColor:    Stone,
		HitboxColor:  Orange,
		BodyBoxColor: Green,
		FrameColor:   Grey,
		TextColor:    White,

		Title:       "GHOSTBLADE",
		StartPrompt: "press enter",
		WinBanner:   "THE GHOSTS ARE GONE",
		LoseBanner:  "YOU DIED",
		RetryPrompt: "press enter to fight again",
		BannerY:     70,
		PromptY:     100,
	}
}
