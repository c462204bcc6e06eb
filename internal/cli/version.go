package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/buildinfo"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, buildinfo.String())
		},
	}
}
