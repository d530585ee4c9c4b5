package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

// parseDate parses a YYYY-MM-DD or RFC 3339 value from a form payload into a
// calendar date at midnight.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(t), nil
}

// serviceError maps a service failure to the right HTTP status: guard
// violations are conflicts the frontend shows to the user, everything else is
// a plain 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDatesInvalides),
		errors.Is(err, domain.ErrSejourSansNuit),
		errors.Is(err, domain.ErrPrixInvalide):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrChambreIndisponible),
		errors.Is(err, domain.ErrClientAvecReservations):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
