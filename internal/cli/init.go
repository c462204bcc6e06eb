package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/boardcfg"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default board.yaml and create runs/",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			if err := boardcfg.Save(configPath, force); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Join(filepath.Dir(configPath), "runs"), 0o755); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Wrote %s\n", configPath)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing board.yaml")
	return c
}
