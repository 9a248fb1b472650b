package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-passcheck/passcheck"
	"github.com/go-passcheck/passcheck/hibp"
	"github.com/go-passcheck/passcheck/internal/outfmt"
)

// stdinReadTimeout bounds how long runCheck waits for a password on
// stdin when no positional argument was given.
const stdinReadTimeout = 100 * time.Millisecond

// ErrRejected signals that the password failed the --min-score or
// --reject-breached gate. The result has already been printed to
// stdout; callers should exit nonzero without printing anything else.
var ErrRejected = errors.New("password rejected")

func runCheck(args []string, opts *rootOptions) error {
	password, err := readPassword(args)
	if err != nil {
		return err
	}

	engine, err := passcheck.DefaultEngine()
	if err != nil {
		return fmt.Errorf("building password checker: %w", err)
	}
	if opts.locale != "" {
		if err := engine.SetLocale(opts.locale); err != nil {
			return err
		}
	}

	result := engine.Evaluate(password, opts.userInputs)
	defer result.Destroy()

	var breached bool
	var breachCount int
	if opts.hibp {
		breached, breachCount, err = hibp.NewClient().Check(password)
		if err != nil {
			// Graceful degradation: a breach-lookup failure (network,
			// API outage) does not block reporting the core result.
			breached, breachCount = false, 0
		}
	}

	format := outfmt.FormatText
	if opts.json {
		format = outfmt.FormatJSON
	}
	formatter := outfmt.NewFormatter(format, os.Stdout, outfmt.Options{
		Colors:  !opts.json && !opts.noColor && os.Getenv("NO_COLOR") == "",
		Verbose: opts.verbose,
	})

	if err := formatter.FormatResult(result, outfmt.BreachInfo{Checked: opts.hibp, Breached: breached, Count: breachCount}); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	if (opts.rejectBreached && breached) || result.Score < opts.minScore {
		return ErrRejected
	}

	return nil
}

// readPassword returns the password from args[0] if given, otherwise
// reads a single line from stdin with a short timeout so the command
// does not hang when invoked with neither an argument nor piped input.
func readPassword(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	done := make(chan struct{})

	var (
		password string
		scanErr  error
	)

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			password = strings.TrimRight(scanner.Text(), "\r\n")
		}
		scanErr = scanner.Err()
		close(done)
	}()

	select {
	case <-done:
		if scanErr != nil {
			return "", fmt.Errorf("reading from stdin: %w", scanErr)
		}
		if password == "" {
			return "", errors.New("no password provided: pass it as an argument or pipe it on stdin")
		}
		return password, nil
	case <-time.After(stdinReadTimeout):
		return "", errors.New("no password provided: pass it as an argument or pipe it on stdin")
	}
}
