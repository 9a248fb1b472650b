// Package middleware provides HTTP middleware for password strength
// validation using passcheck. It supports net/http and optional
// adapters for Echo, Gin, Fiber, and Chi. Use [Config] to set the
// minimum score, password extraction, and failure handling.
//
// # net/http (zero additional dependencies)
//
//	http.Handle("/register", middleware.HTTP(middleware.Config{
//	    MinScore:      3,
//	    PasswordField: "password",
//	}, registrationHandler))
//
// # Chi (net/http compatible)
//
//	r.Use(middleware.Chi(middleware.Config{MinScore: 3}))
//
// # Echo, Gin, Fiber (optional)
//
// Adapters are in build-tagged files. To use them, add the framework
// dependency and build with the tag, for example:
//
//	go get github.com/labstack/echo/v4
//	go build -tags=echo ./...
//
// Then use middleware.Echo(cfg), middleware.Gin(cfg), or middleware.Fiber(cfg).
package middleware

import (
	"strings"
	"sync"

	"github.com/go-passcheck/passcheck"
	"github.com/go-passcheck/passcheck/hibp"
)

// Config configures the password validation middleware.
//
// Use [DefaultConfig] for sensible defaults, then override as needed.
type Config struct {
	// MinScore is the minimum passcheck score (0-4) required to allow
	// the request. If the password scores below this, the middleware
	// rejects with HTTP 400. Default: 3 ("Safely unguessable").
	MinScore int

	// PasswordField is the name of the form or JSON field containing the password.
	// Used by the default extractor for form and JSON body. Default: "password".
	PasswordField string

	// OnFailure is an optional hook called when the password fails the
	// policy. It receives the full evaluation result; when it returns
	// nil the middleware still writes the 400 response, and when it
	// returns an error the middleware responds with 500 and that
	// error's message instead. Use for logging, metrics, or custom side
	// effects. Default: nil.
	OnFailure func(result passcheck.Result) error

	// SkipIfEmpty, when true, skips validation when the extracted password is empty
	// and calls the next handler (useful for optional password fields). When false,
	// an empty password is treated as a failed check. Default: false.
	SkipIfEmpty bool

	// Engine is the [passcheck.Engine] used to evaluate passwords. If
	// nil, a process-wide [passcheck.DefaultEngine] is built once (on
	// first use) and shared across every request. Constructing one
	// Engine per request would rebuild every built-in dictionary on
	// each call, so supply a long-lived Engine in production.
	Engine *passcheck.Engine

	// UserInputsField, if set, is the name of a form/JSON field holding
	// a comma-separated list of account-specific terms (username,
	// email, ...) to treat as additional dictionary entries. Empty
	// means no user-inputs extraction.
	UserInputsField string

	// BreachChecker, if set, is consulted after the entropy score is
	// computed. A breached password is reported alongside the score
	// (see weakPasswordBody.Breached) and rejected regardless of
	// MinScore when RejectIfBreached is true. This is an opt-in extra
	// signal, separate from the entropy-derived score; passcheck's
	// core engine never performs network calls. Use [hibp.NewClient].
	BreachChecker BreachChecker

	// RejectIfBreached, when true and BreachChecker is set, rejects a
	// request whose password was found in the breach corpus even if it
	// scores at or above MinScore.
	RejectIfBreached bool
}

// BreachChecker reports whether a password appears in a known breach
// corpus. [*hibp.Client] and [*hibp.MockClient] both implement it.
type BreachChecker interface {
	Check(password string) (breached bool, count int, err error)
}

var _ BreachChecker = (*hibp.Client)(nil)
var _ BreachChecker = (*hibp.MockClient)(nil)

// DefaultConfig returns a config with recommended defaults. Engine is
// left nil; see [Config.Engine].
func DefaultConfig() Config {
	return Config{
		MinScore:      3,
		PasswordField: "password",
	}
}

var (
	fallbackEngine     *passcheck.Engine
	fallbackEngineOnce sync.Once
	fallbackEngineErr  error
)

// resolveEngine returns cfg.Engine, or a lazily built process-wide
// default engine if cfg.Engine is nil.
func resolveEngine(cfg Config) (*passcheck.Engine, error) {
	if cfg.Engine != nil {
		return cfg.Engine, nil
	}
	fallbackEngineOnce.Do(func() {
		fallbackEngine, fallbackEngineErr = passcheck.DefaultEngine()
	})
	return fallbackEngine, fallbackEngineErr
}

// Extractor extracts a password from an incoming request.
// The default HTTP middleware uses an extractor that checks form values
// and JSON body (see [DefaultHTTPExtractor]). Framework adapters use
// their own extraction logic.
type Extractor interface {
	// ExtractPassword returns the password from the request, or ("", nil) if none.
	// The request type is framework-specific (*http.Request for net/http).
	ExtractPassword(req interface{}) (string, error)
}

// weakPasswordBody is the JSON body written when a password fails the
// configured policy.
type weakPasswordBody struct {
	Error       string   `json:"error"`
	Score       int      `json:"score"`
	ScoreText   string   `json:"score_text"`
	Warning     string   `json:"warning,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Breached    bool     `json:"breached,omitempty"`
	BreachCount int      `json:"breach_count,omitempty"`
	RequestID   string   `json:"request_id"`
}

// checkBreach consults cfg.BreachChecker, if set. A checker error is
// treated the same way the engine itself treats API failures: the
// check is skipped rather than failing the request.
func checkBreach(cfg Config, password string) (breached bool, count int) {
	if cfg.BreachChecker == nil {
		return false, 0
	}
	breached, count, err := cfg.BreachChecker.Check(password)
	if err != nil {
		return false, 0
	}
	return breached, count
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.PasswordField == "" {
		cfg.PasswordField = def.PasswordField
	}
	if cfg.MinScore == 0 {
		cfg.MinScore = def.MinScore
	}
	return cfg
}

// splitCommaList splits a comma-separated user-inputs field into
// trimmed, non-empty terms.
func splitCommaList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
