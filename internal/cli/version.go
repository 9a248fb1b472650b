package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version returns the hidden version subcommand. Version is normally
// shown via the --version flag; this exists for discoverability and
// for scripts that prefer a subcommand over a flag.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:    "version",
		Short:  "Show version information",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cmd.Root().Version)
			return err
		},
	}
}
