package cli

import (
	"github.com/spf13/cobra"

	"github.com/go-passcheck/passcheck/internal/tui"
)

// Meter returns the meter command, which launches an interactive
// terminal strength meter that re-evaluates the password on every
// keystroke.
func Meter() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "meter",
		Short: "Launch an interactive live password-strength meter",
		Long: `Launch a full-screen terminal UI that evaluates the password
you are typing on every keystroke, showing its score, estimated crack
times, and feedback without ever echoing the password to the screen
in the clear.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(locale)
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "BCP-47 locale for warnings and suggestions (e.g. fr-CA)")

	return cmd
}
