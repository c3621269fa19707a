package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateAPIKey picks the per-request credential, preferring the
// supplied header value over the configured fallback. The key is
// opaque: the only check before spending a fetch on it is that it is
// non-empty.
func ValidateAPIKey(headerValue, fallback string) (string, string) {
	key := strings.TrimSpace(headerValue)
	if key == "" {
		key = strings.TrimSpace(fallback)
	}
	if key == "" {
		return "", "API key is required (X-Api-Key header or server configuration)"
	}
	return key, ""
}

// ValidateMaxResults parses the optional max_results parameter. An
// absent value means the fallback; a present value must be a positive
// integer.
func ValidateMaxResults(raw string, fallback int) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "max_results must be an integer"
	}
	if n <= 0 {
		return 0, "max_results must be positive"
	}
	return n, ""
}
