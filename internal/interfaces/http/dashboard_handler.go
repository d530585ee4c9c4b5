package http

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/setraniainabruno/gestion-chambre-app/internal/application"
)

type DashboardHandler struct {
	service *application.DashboardService
}

func NewDashboardHandler(service *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// GetStats serves every metric of the dashboard page in one call.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats()
	if err != nil {
		log.Printf("Erreur agrégation du tableau de bord: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors du calcul des statistiques",
		})
	}
	return c.JSON(stats)
}
