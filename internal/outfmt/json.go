package outfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-passcheck/passcheck"
)

// JSONFormatter formats a result as indented JSON.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(writer io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: writer}
}

// jsonResult is the wire shape for JSON output: the result plus the
// optional breach-check outcome, which is not part of [passcheck.Result]
// itself since breach checking is opt-in and not a core concern.
type jsonResult struct {
	passcheck.Result
	Breached      bool `json:"breached,omitempty"`
	BreachCount   int  `json:"breachCount,omitempty"`
	BreachChecked bool `json:"breachChecked"`
}

// FormatResult writes result as indented JSON.
func (f *JSONFormatter) FormatResult(result passcheck.Result, breach BreachInfo) error {
	out := jsonResult{
		Result:        result,
		Breached:      breach.Breached,
		BreachCount:   breach.Count,
		BreachChecked: breach.Checked,
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")

	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("marshaling result JSON: %w", err)
	}

	return nil
}
