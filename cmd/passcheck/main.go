// Command passcheck estimates password strength from the command line.
//
// Usage:
//
//	passcheck "correct horse battery staple"
//	echo "hunter2" | passcheck --json
//	passcheck meter
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-passcheck/passcheck/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	err := cli.Execute(version)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrRejected):
		return 1
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}
}
