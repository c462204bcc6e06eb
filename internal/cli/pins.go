package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/boardcfg"
)

func pinsCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "pins",
		Short: "Print the effective pin map",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := boardcfg.Load(configPath)
			if err != nil {
				return err
			}
			return printPinMap(os.Stdout, cfg.Pins, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printPinMap(w io.Writer, m domain.PinMap, format string) error {
	switch format {
	case "json":
		payload := map[string]any{
			"die1":    m.Die1,
			"die2":    m.Die2,
			"buzzer":  m.Buzzer,
			"button1": m.Button1,
			"button2": m.Button2,
			"noise":   m.Noise,
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty", "":
		fmt.Fprintf(w, "Die 1 BCD (A,B,C): %d, %d, %d\n", m.Die1[0], m.Die1[1], m.Die1[2])
		fmt.Fprintf(w, "Die 2 BCD (A,B,C): %d, %d, %d\n", m.Die2[0], m.Die2[1], m.Die2[2])
		fmt.Fprintf(w, "Buzzer:            %d\n", m.Buzzer)
		fmt.Fprintf(w, "Player 1 button:   %d (active low)\n", m.Button1)
		fmt.Fprintf(w, "Player 2 button:   %d (active low)\n", m.Button2)
		fmt.Fprintf(w, "Noise channel:     A%d\n", m.Noise)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
