package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/boardcfg"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/logger"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var configPath string

	cmd := &cobra.Command{
		Use:          "diceroller",
		Short:        "diceroller — two-player dice roller board, simulated in your terminal",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := boardcfg.Load(configPath)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  ".",
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				Config: cfg,
				Logger: logger.L(),
				Debug:  debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .diceroller/logs/diceroller.log")
	cmd.PersistentFlags().StringVar(&configPath, "config", boardcfg.DefaultFile, "board configuration file")

	cmd.AddCommand(rollCmd())
	cmd.AddCommand(pinsCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
