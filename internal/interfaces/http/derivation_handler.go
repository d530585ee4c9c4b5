package http

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/setraniainabruno/gestion-chambre-app/internal/application"
)

type DerivationHandler struct {
	service *application.StatusDerivationService
}

func NewDerivationHandler(service *application.StatusDerivationService) *DerivationHandler {
	return &DerivationHandler{
		service: service,
	}
}

// RunPass triggers a derivation pass on demand, outside the daily schedule,
// and returns the transitions it applied.
func (h *DerivationHandler) RunPass(c *fiber.Ctx) error {
	applied, err := h.service.RunPass()
	if err != nil {
		log.Printf("Erreur lors de la dérivation des statuts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors de la dérivation des statuts",
		})
	}
	return c.JSON(fiber.Map{
		"transitions": applied,
		"total":       len(applied),
	})
}
