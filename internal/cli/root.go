// Package cli provides the passcheck command-line interface.
package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags accepted by the root command.
type rootOptions struct {
	json           bool
	verbose        bool
	noColor        bool
	locale         string
	userInputs     []string
	hibp           bool
	rejectBreached bool
	minScore       int
}

// Execute runs the passcheck CLI and returns any error from cobra.
func Execute(version string) error {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "passcheck [password]",
		Short: "Estimate how hard a password would be to guess",
		Long: heredoc.Doc(`
			passcheck estimates password strength the way an attacker would:
			by decomposing the password into the patterns a guessing attack
			tries first (dictionary words, leetspeak variants, keyboard
			walks, repeats, sequences, dates) and costing the cheapest
			explanation.

			Reads the password from the first positional argument, or from
			stdin if no argument is given. Reports a 0-4 score, estimated
			crack times at several attacker speeds, and feedback.
		`),
		Example: heredoc.Doc(`
			# Check a password given as an argument
			passcheck "correct horse battery staple"

			# Check a password piped on stdin
			echo "hunter2" | passcheck

			# Treat an account's username/email as weak, user-specific terms
			passcheck "jsmith2024" --user-input jsmith --user-input jsmith@example.com

			# Also check the Have I Been Pwned breach database
			passcheck "password123" --hibp

			# Get machine-readable output
			passcheck "qwerty" --json
		`),
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(args, opts)
		},
	}

	root.SetVersionTemplate("{{ .Version }}\n")
	root.SetHelpCommand(&cobra.Command{Hidden: true})

	root.Flags().SortFlags = false
	root.PersistentFlags().SortFlags = false

	root.CompletionOptions.DisableDefaultCmd = true
	cobra.EnableCommandSorting = false

	root.Flags().BoolVar(&opts.json, "json", false, "Output the result as JSON")
	root.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Show the full match sequence and crack times at every attacker speed")
	root.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	root.Flags().StringVar(&opts.locale, "locale", "", "BCP-47 locale for warnings and suggestions (e.g. fr-CA)")
	root.Flags().StringArrayVar(&opts.userInputs, "user-input", nil,
		"Account-specific term (username, email, ...) to weight as weak context; repeatable")
	root.Flags().BoolVar(&opts.hibp, "hibp", false,
		"Also check the password against the Have I Been Pwned breach database")
	root.Flags().BoolVar(&opts.rejectBreached, "reject-breached", false,
		"Exit nonzero if the password has been breached, regardless of score")
	root.Flags().IntVar(&opts.minScore, "min-score", 0, "Minimum acceptable score (0-4); exit nonzero if not met")

	root.AddCommand(Meter(), Version())

	return root.Execute()
}
