package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/florette/internal/services"
)

var errInvalidJSONBody = errors.New("invalid json body")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiFieldError(c *fiber.Ctx, status int, message string, fields []string) error {
	return c.Status(status).JSON(fiber.Map{"error": message, "fields": fields})
}

// optionalDayQuery parses a YYYY-MM-DD query value. An absent value yields the
// zero time.
func (handler *Handler) optionalDayQuery(c *fiber.Ctx, key string) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return time.Time{}, nil
	}
	return services.ParseDay(raw, handler.location)
}

func isJSONRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON)
}

func parseJSONBody(c *fiber.Ctx, out any) error {
	if !isJSONRequest(c) {
		return errInvalidJSONBody
	}
	if err := c.BodyParser(out); err != nil {
		return errInvalidJSONBody
	}
	return nil
}
