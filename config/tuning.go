package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/automoto/ghostblade/assets/animations"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingClip   = errors.New("missing animation clip")
	ErrMissingAttack = errors.New("missing attack table entry")
	ErrInvalidTuning = errors.New("invalid tuning")
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Values not present in the file keep their current setting.
type Tuning struct {
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Encounter EncounterConfig `yaml:"encounter"`
	Round     RoundConfig     `yaml:"round"`
	Level     LevelConfig     `yaml:"level"`
}

// Current returns a snapshot of the active tuning.
func Current() Tuning {
	return Tuning{
		Player:    Player,
		Enemy:     Enemy,
		Encounter: Encounter,
		Round:     Round,
		Level:     Level,
	}
}

// Apply validates t and installs it as the active tuning.
func Apply(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	Player = t.Player
	Enemy = t.Enemy
	Encounter = t.Encounter
	Round = t.Round
	Level = t.Level
	return nil
}

// Load overlays a YAML document onto the current tuning and validates the
// result. The active tuning is not changed.
func Load(data []byte) (Tuning, error) {
	t := Current()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func LoadFile(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := Load(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate reports every problem with t and with the clip and attack
// tables at once.
func (t Tuning) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidTuning))
	}

	p := t.Player
	if p.LifeTime < 1 {
		bad("player.life_time must be at least 1, got %d", p.LifeTime)
	}
	if p.DashTicks < 1 {
		bad("player.dash_ticks must be at least 1, got %d", p.DashTicks)
	}
	if p.Friction < 0 || p.Friction > 1 {
		bad("player.friction must be in [0, 1], got %g", p.Friction)
	}
	if p.HitDamping < 0 || p.HitDamping > 1 {
		bad("player.hit_damping must be in [0, 1], got %g", p.HitDamping)
	}
	if p.HealthDecay < 0 || p.AttackCost < 0 {
		bad("player health drain must not be negative")
	}
	if p.Collision.W <= 0 || p.Collision.H <= 0 {
		bad("player.collision must have a positive size")
	}

	e := t.Enemy
	if e.Health < 1 {
		bad("enemy.health must be at least 1, got %d", e.Health)
	}
	if e.BobChance < 0 || e.BobChance > 1 {
		bad("enemy.bob_chance must be in [0, 1], got %g", e.BobChance)
	}
	if e.Friction < 0 || e.Friction > 1 {
		bad("enemy.friction must be in [0, 1], got %g", e.Friction)
	}
	if e.Collision.W <= 0 || e.Collision.H <= 0 {
		bad("enemy.collision must have a positive size")
	}

	enc := t.Encounter
	if enc.MaxSpawns < 0 {
		bad("encounter.max_spawns must not be negative, got %d", enc.MaxSpawns)
	}
	if enc.InitialDelay < 1 {
		bad("encounter.initial_delay must be at least 1, got %d", enc.InitialDelay)
	}
	if enc.MinInterval < 1 || enc.MinInterval > enc.MaxInterval {
		bad("encounter interval [%d, %d] is empty", enc.MinInterval, enc.MaxInterval)
	}

	if t.Round.FadeTicks < 1 {
		bad("round.fade_ticks must be at least 1, got %d", t.Round.FadeTicks)
	}

	errs = append(errs, validateClips("player", PlayerStates, PlayerClips)...)
	errs = append(errs, validateClips("enemy", EnemyStates, EnemyClips)...)
	errs = append(errs, validateAttacks()...)

	return errors.Join(errs...)
}

func validateClips(owner string, states []StateID, clips map[StateID]animations.Clip) []error {
	var errs []error
	for _, s := range states {
		c, ok := clips[s]
		if !ok || c.Frames < 1 || c.Speed < 1 {
			errs = append(errs, fmt.Errorf("%s state %s: %w", owner, s, ErrMissingClip))
		}
	}
	return errs
}

func validateAttacks() []error {
	var errs []error
	for _, k := range AttackKinds {
		spec, ok := Attacks[k]
		if !ok {
			errs = append(errs, fmt.Errorf("attack %s: %w", k, ErrMissingAttack))
			continue
		}
		windows := append([]HitWindow(nil), spec.Windows...)
		sort.Slice(windows, func(i, j int) bool { return windows[i].StartFrame < windows[j].StartFrame })
		for i, w := range windows {
			if w.StartFrame > w.EndFrame {
				errs = append(errs, fmt.Errorf("attack %s window %d-%d is reversed: %w", k, w.StartFrame, w.EndFrame, ErrMissingAttack))
			}
			if i > 0 && w.StartFrame <= windows[i-1].EndFrame {
				errs = append(errs, fmt.Errorf("attack %s windows overlap at frame %d: %w", k, w.StartFrame, ErrMissingAttack))
			}
		}
	}
	return errs
}
