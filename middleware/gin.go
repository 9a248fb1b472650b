//go:build gin

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gin returns a Gin middleware that validates the request password.
// Build with -tags=gin to enable. Password is extracted from form or JSON body
// using Config.PasswordField (default "password").
//
//	r.POST("/register", middleware.Gin(middleware.Config{MinScore: 3}), registerHandler)
func Gin(cfg Config) gin.HandlerFunc {
	cfg = withDefaults(cfg)
	extractor := DefaultHTTPExtractor(cfg)

	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header(requestIDHeader, requestID)

		password, err := extractor.ExtractPassword(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, weakPasswordBody{Error: "invalid request body", RequestID: requestID})
			return
		}
		if password == "" {
			if cfg.SkipIfEmpty {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, weakPasswordBody{Error: "password is required", RequestID: requestID})
			return
		}

		engine, err := resolveEngine(cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, weakPasswordBody{Error: "password checker unavailable", RequestID: requestID})
			return
		}

		userInputs := extractUserInputsHTTP(c.Request, cfg.UserInputsField)
		result := engine.Evaluate(password, userInputs)
		breached, breachCount := checkBreach(cfg, password)

		if result.Score < cfg.MinScore || (breached && cfg.RejectIfBreached) {
			if cfg.OnFailure != nil {
				if err := cfg.OnFailure(result); err != nil {
					c.AbortWithStatusJSON(http.StatusInternalServerError, weakPasswordBody{Error: err.Error(), RequestID: requestID})
					return
				}
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, weakPasswordBody{
				Error:       "password does not meet strength requirements",
				Score:       result.Score,
				ScoreText:   result.ScoreText,
				Warning:     result.WarningText,
				Suggestions: result.SuggestionsText,
				Breached:    breached,
				BreachCount: breachCount,
				RequestID:   requestID,
			})
			return
		}
		c.Next()
	}
}
