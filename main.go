// ghostblade is a side-scrolling sword fight against waves of ghosts.
//
// Usage:
//
//	ghostblade               - Play in a window
//	ghostblade sim           - Run a round headless with scripted input
//
// Global flags:
//
//	--seed <value>       - RNG seed (0 = random based on time)
//	--tuning <path>      - YAML file overriding the built-in tuning
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/ghostblade/assets"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/fonts"
	"github.com/automoto/ghostblade/scenes"
	"github.com/automoto/ghostblade/shared/leveldata"
	"github.com/automoto/ghostblade/sound"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     uint64
	flagTuning   string
	flagLevel    string
	flagLogLevel string

	// Window flags
	flagWatch bool
	flagDebug bool
	flagScale int
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ghostblade",
	Short: "Ghostblade - cut down the ghosts before your life runs out",
	Long: `Ghostblade is a small side-scrolling action game: a swordsman in an
arena, ghosts appearing on a timer, and a health pool that drains every
second and faster with every swing.

Controls:
  Left/Right, A/D  - Walk
  Up/W/Space       - Jump
  Z/J              - Light attack, or dash while moving
  X/K              - Heavy attack, again late in the swing to follow up
  Enter            - Start / restart

Examples:
  ghostblade
  ghostblade --seed 42 --tuning tuning.yaml --watch
  ghostblade sim --ticks 7200`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runGame,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Path to a TMX level (default: built-in arena)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug keys (H: strike the player, F1: hitboxes)")
	rootCmd.Flags().IntVar(&flagScale, "scale", 3, "Window scale factor")

	rootCmd.AddCommand(simCmd)
}

// setup configures logging and installs the tuning file before any
// command runs.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetPrefix("ghostblade")
	log.SetReportTimestamp(true)

	if flagSeed == 0 {
		flagSeed = uint64(time.Now().UnixNano())
	}

	if flagTuning == "" {
		return nil
	}
	t, err := cfg.LoadFile(flagTuning)
	if err != nil {
		return err
	}
	if err := cfg.Apply(t); err != nil {
		return err
	}
	log.Info("tuning loaded", "path", flagTuning)
	return nil
}

// loadLevel reads --level from disk, or the configured level from the
// embedded assets.
func loadLevel() (*leveldata.Level, error) {
	if flagLevel != "" {
		return leveldata.Load(os.DirFS(filepath.Dir(flagLevel)), filepath.Base(flagLevel))
	}
	return leveldata.Load(assets.Levels, cfg.Level.Path)
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg.Debug.Enabled = flagDebug
	cfg.C.Scale = flagScale

	level, err := loadLevel()
	if err != nil {
		return err
	}
	if err := fonts.LoadDefaults(cfg.UI.FontSize, cfg.UI.TitleFontSize); err != nil {
		return err
	}

	player := sound.NewPlayer(audio.NewContext(cfg.Audio.SampleRate), os.DirFS(cfg.Audio.Dir))
	player.Preload()

	opts := scenes.Options{Seed: flagSeed, Level: level, Sound: player}
	if flagWatch {
		if flagTuning == "" {
			return fmt.Errorf("--watch needs --tuning")
		}
		watcher, err := cfg.Watch(flagTuning)
		if err != nil {
			return fmt.Errorf("watch %s: %w", flagTuning, err)
		}
		defer watcher.Close()
		opts.Watcher = watcher
	}

	scene, err := scenes.NewCombatScene(opts)
	if err != nil {
		return err
	}
	log.Info("starting", "seed", flagSeed, "level", level.Name)

	ebiten.SetWindowSize(cfg.C.Width*cfg.C.Scale, cfg.C.Height*cfg.C.Scale)
	ebiten.SetWindowTitle("Ghostblade")
	ebiten.SetTPS(cfg.TicksPerSecond)

	return ebiten.RunGame(&Game{scene: scene})
}
