// Package outfmt renders a [passcheck.Result] for the passcheck CLI, as
// either colored human-readable text or machine-readable JSON.
package outfmt

import (
	"io"

	"github.com/go-passcheck/passcheck"
)

// Output format names accepted by [NewFormatter].
const (
	FormatText = "text"
	FormatJSON = "json"
)

// BreachInfo carries the outcome of an optional Have I Been Pwned
// lookup alongside the core result.
type BreachInfo struct {
	Checked  bool
	Breached bool
	Count    int
}

// Formatter renders an evaluation result to an output stream.
type Formatter interface {
	FormatResult(result passcheck.Result, breach BreachInfo) error
}

// Options configures formatter behavior.
type Options struct {
	Verbose bool
	Colors  bool
}

// NewFormatter returns a Formatter for format ("text" or "json";
// anything else falls back to text).
func NewFormatter(format string, writer io.Writer, opts Options) Formatter { //nolint:ireturn
	switch format {
	case FormatJSON:
		return NewJSONFormatter(writer)
	default:
		return NewTextFormatter(writer, opts.Verbose, opts.Colors)
	}
}
