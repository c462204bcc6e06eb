package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/firmware"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/boardcfg"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/clock"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/rollstore"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/simboard"
)

func rollCmd() *cobra.Command {
	var cycles int
	var seed uint16
	var format string
	var save bool
	var outDir string

	c := &cobra.Command{
		Use:   "roll",
		Short: "Roll the dice headlessly on the simulated board",
		Long: "Runs the firmware against the simulated board with a virtual clock: each cycle " +
			"presses a player button, plays the full roll sequence instantly, and reports the " +
			"settled faces.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := boardcfg.Load(configPath)
			if err != nil {
				return err
			}
			if cycles < 1 {
				return fmt.Errorf("--cycles must be at least 1, got %d", cycles)
			}

			board := simboard.New()
			if cmd.Flags().Changed("seed") {
				board.SetNoise(seed)
			}

			ctrl := firmware.New(cfg, firmware.Deps{
				Pins:  board,
				Tone:  board,
				Clock: clock.NewVirtual(),
				Noise: board,
			})
			ctrl.Setup()

			session := domain.RollSession{
				StartedAt: time.Now(),
				Seed:      ctrl.Seed(),
			}
			for i := 0; i < cycles; i++ {
				// Alternate players so both inputs get exercised.
				button := cfg.Pins.Button1
				if i%2 == 1 {
					button = cfg.Pins.Button2
				}
				board.Press(button)

				res, ok := ctrl.Poll()
				if !ok {
					return fmt.Errorf("cycle %d: button press did not trigger a roll", i)
				}
				session.Rolls = append(session.Rolls, res)
			}
			session.EndedAt = time.Now()

			if err := printSession(os.Stdout, session, format); err != nil {
				return err
			}

			if save {
				store := rollstore.NewJSONStore(outDir)
				id, err := store.SaveSession(session)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "\nSaved: %s\n", id)
			}
			return nil
		},
	}

	c.Flags().IntVarP(&cycles, "cycles", "n", 1, "Number of roll cycles to run")
	c.Flags().Uint16Var(&seed, "seed", 0, "Pin the noise sample for reproducible rolls (default: floating)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&save, "save", false, "Save the session as a JSON artifact under runs/")
	c.Flags().StringVar(&outDir, "out", ".", "Root directory for saved artifacts")
	return c
}

func printSession(w io.Writer, s domain.RollSession, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "pretty", "":
		printPrettySession(w, s)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettySession(w io.Writer, s domain.RollSession) {
	fmt.Fprintf(w, "Seed:   %d\n", s.Seed)
	fmt.Fprintf(w, "Cycles: %d\n\n", len(s.Rolls))

	for i, r := range s.Rolls {
		player := 1 + i%2
		fmt.Fprintf(w, "- roll %2d (player %d): %d + %d = %d\n", i+1, player, r.Die1, r.Die2, int(r.Die1)+int(r.Die2))
	}

	if len(s.Rolls) > 1 {
		d1, d2 := s.FaceCounts()
		fmt.Fprintf(w, "\nFace counts (die1/die2):\n")
		for f := domain.FaceMin; f <= domain.FaceMax; f++ {
			fmt.Fprintf(w, "  %d: %d / %d\n", f, d1[f], d2[f])
		}
	}
}
