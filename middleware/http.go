package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/google/uuid"
	"github.com/go-passcheck/passcheck"
)

// requestIDHeader is the response header carrying the per-request
// identifier attached to every response, so a caller can correlate a
// weak-password rejection with server-side logs.
const requestIDHeader = "X-Request-Id"

// DefaultHTTPExtractor extracts the password from an *http.Request by
// checking (1) the JSON body for Content-Type application/json, and (2)
// the form value otherwise. The field name comes from Config.PasswordField.
func DefaultHTTPExtractor(cfg Config) Extractor {
	return &httpExtractor{field: cfg.PasswordField}
}

type httpExtractor struct {
	field string
}

func (e *httpExtractor) ExtractPassword(req interface{}) (string, error) {
	r, ok := req.(*http.Request)
	if !ok {
		return "", nil
	}
	return extractHTTPField(r, e.field)
}

func extractHTTPField(r *http.Request, field string) (string, error) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if contentType == "application/json" {
		if r.Body == nil {
			return "", nil
		}
		raw, err := io.ReadAll(r.Body)
		r.Body.Close()
		if err != nil {
			return "", err
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))

		var body map[string]interface{}
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", err
		}
		if v, ok := body[field].(string); ok {
			return v, nil
		}
		return "", nil
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			return "", err
		}
	}
	return r.FormValue(field), nil
}

func extractUserInputsHTTP(r *http.Request, field string) []string {
	if field == "" {
		return nil
	}
	raw, err := extractHTTPField(r, field)
	if err != nil || raw == "" {
		return nil
	}
	return splitCommaList(raw)
}

// HTTP returns a net/http middleware that validates the request password
// using passcheck. If the password is missing (and SkipIfEmpty is false),
// or scores below MinScore, the middleware responds with 400 and does not
// call next. Otherwise it calls next.ServeHTTP.
//
// Every response carries an X-Request-Id header so a rejection can be
// correlated with server-side logs.
func HTTP(cfg Config, next http.Handler) http.Handler {
	cfg = withDefaults(cfg)
	extractor := DefaultHTTPExtractor(cfg)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set(requestIDHeader, requestID)

		password, err := extractor.ExtractPassword(r)
		if err != nil {
			writeError(w, requestID, http.StatusBadRequest, "invalid request body")
			return
		}
		if password == "" {
			if cfg.SkipIfEmpty {
				next.ServeHTTP(w, r)
				return
			}
			writeWeakPasswordResponse(w, requestID, passcheck.Result{}, false, 0, "password is required")
			return
		}

		engine, err := resolveEngine(cfg)
		if err != nil {
			writeError(w, requestID, http.StatusInternalServerError, "password checker unavailable")
			return
		}

		userInputs := extractUserInputsHTTP(r, cfg.UserInputsField)
		result := engine.Evaluate(password, userInputs)
		breached, breachCount := checkBreach(cfg, password)

		if result.Score < cfg.MinScore || (breached && cfg.RejectIfBreached) {
			if cfg.OnFailure != nil {
				if err := cfg.OnFailure(result); err != nil {
					writeError(w, requestID, http.StatusInternalServerError, err.Error())
					return
				}
			}
			writeWeakPasswordResponse(w, requestID, result, breached, breachCount, "password does not meet strength requirements")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeWeakPasswordResponse sends a 400 JSON response describing result.
func writeWeakPasswordResponse(w http.ResponseWriter, requestID string, result passcheck.Result, breached bool, breachCount int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(weakPasswordBody{
		Error:       message,
		Score:       result.Score,
		ScoreText:   result.ScoreText,
		Warning:     result.WarningText,
		Suggestions: result.SuggestionsText,
		Breached:    breached,
		BreachCount: breachCount,
		RequestID:   requestID,
	})
}

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, requestID string, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(weakPasswordBody{Error: message, RequestID: requestID})
}
