package passcheck

import (
	"fmt"

	"golang.org/x/text/language"
)

// Config holds configuration for constructing an [Engine].
//
// Use [DefaultConfig] to obtain a Config with recommended defaults, then
// override individual fields:
//
//	cfg := passcheck.DefaultConfig()
//	cfg.Locale = "fr-CA"
//	engine, err := passcheck.NewEngineWithConfig(src, loc, cfg)
type Config struct {
	// Locale is the BCP-47 tag used to translate warnings and
	// suggestions (e.g. "fr-CA", "de-DE"). Empty means English, the
	// canonical locale every warning/suggestion string is written in.
	Locale string
}

// DefaultConfig returns the recommended configuration: English output.
func DefaultConfig() Config {
	return Config{Locale: ""}
}

// Validate checks the configuration for invalid values and returns an
// error describing the first problem found.
func (c Config) Validate() error {
	if c.Locale == "" {
		return nil
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("passcheck: Locale %q is not a valid BCP-47 tag: %w", c.Locale, err)
	}
	return nil
}
