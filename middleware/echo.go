//go:build echo

package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Echo returns an Echo middleware that validates the request password.
// Build with -tags=echo to enable. Password is extracted from form or JSON body
// using Config.PasswordField (default "password").
//
//	e.POST("/register", handler, middleware.Echo(middleware.Config{MinScore: 3}))
func Echo(cfg Config) echo.MiddlewareFunc {
	cfg = withDefaults(cfg)
	extractor := DefaultHTTPExtractor(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := uuid.NewString()
			c.Response().Header().Set(requestIDHeader, requestID)

			password, err := extractor.ExtractPassword(c.Request())
			if err != nil {
				return c.JSON(http.StatusBadRequest, weakPasswordBody{Error: "invalid request body", RequestID: requestID})
			}
			if password == "" {
				if cfg.SkipIfEmpty {
					return next(c)
				}
				return c.JSON(http.StatusBadRequest, weakPasswordBody{Error: "password is required", RequestID: requestID})
			}

			engine, err := resolveEngine(cfg)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, weakPasswordBody{Error: "password checker unavailable", RequestID: requestID})
			}

			userInputs := extractUserInputsHTTP(c.Request(), cfg.UserInputsField)
			result := engine.Evaluate(password, userInputs)
			breached, breachCount := checkBreach(cfg, password)

			if result.Score < cfg.MinScore || (breached && cfg.RejectIfBreached) {
				if cfg.OnFailure != nil {
					if err := cfg.OnFailure(result); err != nil {
						return c.JSON(http.StatusInternalServerError, weakPasswordBody{Error: err.Error(), RequestID: requestID})
					}
				}
				return c.JSON(http.StatusBadRequest, weakPasswordBody{
					Error:       "password does not meet strength requirements",
					Score:       result.Score,
					ScoreText:   result.ScoreText,
					Warning:     result.WarningText,
					Suggestions: result.SuggestionsText,
					Breached:    breached,
					BreachCount: breachCount,
					RequestID:   requestID,
				})
			}
			return next(c)
		}
	}
}
