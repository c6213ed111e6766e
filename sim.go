package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/ghostblade/components"
	cfg "github.com/automoto/ghostblade/config"
	"github.com/automoto/ghostblade/systems"
	"github.com/automoto/ghostblade/systems/factory"
	"github.com/automoto/ghostblade/tags"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"
)

var (
	// Sim flags
	flagTicks      int
	flagInputSeed  uint64
	flagPressEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run one round headless with random input",
	Long: `Run the fight without a window. A seeded random player walks, jumps
and swings until the round is won or lost, or the tick limit runs out,
then the outcome is printed.

Examples:
  ghostblade sim
  ghostblade sim --seed 7 --input-seed 3 --ticks 3600`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 60*cfg.TicksPerSecond, "Tick limit")
	simCmd.Flags().Uint64Var(&flagInputSeed, "input-seed", 1, "Seed for the scripted input")
	simCmd.Flags().IntVar(&flagPressEvery, "press-every", 6, "One in N ticks presses each button")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	if flagPressEvery <= 0 {
		return fmt.Errorf("--press-every must be positive, got %d", flagPressEvery)
	}
	cfg.Round.SkipIntro = true

	level, err := loadLevel()
	if err != nil {
		return err
	}

	w := donburi.NewWorld()
	round, err := factory.CreateRound(w, factory.RoundOptions{Seed: flagSeed, Level: level})
	if err != nil {
		return err
	}
	rd := components.Round.Get(round)
	log.Debug("sim starting", "seed", flagSeed, "input_seed", flagInputSeed, "ticks", flagTicks)

	rng := rand.New(rand.NewPCG(flagInputSeed, flagSeed))
	ticks := 0
	for ; ticks < flagTicks && rd.State == cfg.RoundActive; ticks++ {
		scriptInput(w, rng)
		systems.Tick(w)
	}

	enc := components.Encounter.Get(round)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "state:    %s\n", rd.State)
	fmt.Fprintf(out, "ticks:    %d\n", ticks)
	fmt.Fprintf(out, "spawned:  %d\n", enc.Spawned)
	fmt.Fprintf(out, "defeated: %d\n", enc.Defeated)
	if pe, ok := tags.Player.First(w); ok {
		h := components.Health.Get(pe)
		fmt.Fprintf(out, "health:   %d/%d\n", h.Current, h.Max)
	}
	return nil
}

// scriptInput rolls the player's input over and fills it with a random
// direction and button presses.
func scriptInput(w donburi.World, rng *rand.Rand) {
	entry, ok := components.PlayerInput.First(w)
	if !ok {
		return
	}
	in := components.PlayerInput.Get(entry)
	in.Next()
	in.Axis = float64(rng.IntN(3) - 1)
	for _, a := range []cfg.ActionID{cfg.ActionJump, cfg.ActionAttack1, cfg.ActionAttack2} {
		if rng.IntN(flagPressEvery) == 0 {
			in.Current[a] = true
		}
	}
}
