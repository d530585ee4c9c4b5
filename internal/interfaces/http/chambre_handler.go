package http

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/setraniainabruno/gestion-chambre-app/internal/application"
	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

type ChambreHandler struct {
	service *application.ChambreService
}

func NewChambreHandler(service *application.ChambreService) *ChambreHandler {
	return &ChambreHandler{
		service: service,
	}
}

func (h *ChambreHandler) GetAll(c *fiber.Ctx) error {
	chambres, err := h.service.GetAll()
	if err != nil {
		log.Printf("Erreur récupération des chambres: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors de la récupération des chambres",
		})
	}
	return c.JSON(chambres)
}

func (h *ChambreHandler) GetByID(c *fiber.Ctx) error {
	chambre, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "chambre introuvable"})
	}
	return c.JSON(chambre)
}

// ProchainNumero suggests the number preselected in the add dialog.
func (h *ChambreHandler) ProchainNumero(c *fiber.Ctx) error {
	numero, err := h.service.ProchainNumero()
	if err != nil {
		log.Printf("Erreur suggestion de numéro: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors de la suggestion du numéro",
		})
	}
	return c.JSON(fiber.Map{"numero": numero})
}

func (h *ChambreHandler) Create(c *fiber.Ctx) error {
	var input application.ChambreInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corps de requête invalide"})
	}

	created, err := h.service.Create(input)
	if err != nil {
		log.Printf("Erreur création de chambre: %v", err)
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ChambreHandler) Update(c *fiber.Ctx) error {
	var input application.ChambreInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corps de requête invalide"})
	}

	updated, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		log.Printf("Erreur modification de chambre: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(updated)
}

// UpdateStatut changes only the room status. The value is read from the
// statut query parameter, the shape the old frontend already used.
func (h *ChambreHandler) UpdateStatut(c *fiber.Ctx) error {
	statut := domain.ChambreStatus(c.Query("statut"))
	if statut == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "statut requis"})
	}

	if err := h.service.UpdateStatut(c.Params("id"), statut); err != nil {
		log.Printf("Erreur mise à jour du statut de chambre: %v", err)
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ChambreHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		log.Printf("Erreur suppression de chambre: %v", err)
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
