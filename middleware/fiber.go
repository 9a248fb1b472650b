//go:build fiber

package middleware

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Fiber returns a Fiber middleware that validates the request password.
// Build with -tags=fiber to enable. Password is extracted from form or JSON body
// using Config.PasswordField (default "password").
//
//	app.Post("/register", middleware.Fiber(middleware.Config{MinScore: 3}), registerHandler)
func Fiber(cfg Config) fiber.Handler {
	cfg = withDefaults(cfg)

	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Set(requestIDHeader, requestID)

		password, err := extractPasswordFiber(c, cfg.PasswordField)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(weakPasswordBody{Error: "invalid request body", RequestID: requestID})
		}
		if password == "" {
			if cfg.SkipIfEmpty {
				return c.Next()
			}
			return c.Status(fiber.StatusBadRequest).JSON(weakPasswordBody{Error: "password is required", RequestID: requestID})
		}

		engine, err := resolveEngine(cfg)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(weakPasswordBody{Error: "password checker unavailable", RequestID: requestID})
		}

		userInputs := extractUserInputsFiber(c, cfg.UserInputsField)
		result := engine.Evaluate(password, userInputs)
		breached, breachCount := checkBreach(cfg, password)

		if result.Score < cfg.MinScore || (breached && cfg.RejectIfBreached) {
			if cfg.OnFailure != nil {
				if err := cfg.OnFailure(result); err != nil {
					return c.Status(fiber.StatusInternalServerError).JSON(weakPasswordBody{Error: err.Error(), RequestID: requestID})
				}
			}
			return c.Status(fiber.StatusBadRequest).JSON(weakPasswordBody{
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
		return c.Next()
	}
}

func extractPasswordFiber(c *fiber.Ctx, field string) (string, error) {
	ct := string(c.Request().Header.ContentType())
	if strings.HasPrefix(strings.TrimSpace(ct), "application/json") {
		var raw map[string]interface{}
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return "", nil
		}
		if v, ok := raw[field]; ok {
			if s, ok := v.(string); ok {
				return s, nil
			}
		}
		return "", nil
	}
	return c.FormValue(field), nil
}

func extractUserInputsFiber(c *fiber.Ctx, field string) []string {
	if field == "" {
		return nil
	}
	raw, err := extractPasswordFiber(c, field)
	if err != nil || raw == "" {
		return nil
	}
	return splitCommaList(raw)
}
