package http

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/setraniainabruno/gestion-chambre-app/internal/application"
)

type ReportHandler struct {
	service *application.ReportService
}

func NewReportHandler(service *application.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

func (h *ReportHandler) annee(c *fiber.Ctx) int {
	annee := c.QueryInt("annee")
	if annee <= 0 {
		annee = time.Now().Year()
	}
	return annee
}

// GetReport serves the yearly series of the reports page. The year defaults
// to the current one when the annee query parameter is missing.
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.service.GetReport(h.annee(c))
	if err != nil {
		log.Printf("Erreur génération du rapport: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors de la génération du rapport",
		})
	}
	return c.JSON(report)
}

// Export streams the yearly report as an Excel workbook.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	content, filename, err := h.service.ExportExcel(h.annee(c))
	if err != nil {
		log.Printf("Erreur export du rapport: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors de l'export du rapport",
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(content)
}

// Archiver exports the yearly report and uploads it to the report storage,
// returning the public URL of the workbook.
func (h *ReportHandler) Archiver(c *fiber.Ctx) error {
	url, err := h.service.ExportVersS3(h.annee(c))
	if err != nil {
		log.Printf("Erreur archivage du rapport: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors de l'archivage du rapport",
		})
	}
	return c.JSON(fiber.Map{"url": url})
}
