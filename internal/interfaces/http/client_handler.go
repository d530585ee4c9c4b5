package http

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/setraniainabruno/gestion-chambre-app/internal/application"
)

type ClientHandler struct {
	service *application.ClientService
}

func NewClientHandler(service *application.ClientService) *ClientHandler {
	return &ClientHandler{
		service: service,
	}
}

func (h *ClientHandler) GetAll(c *fiber.Ctx) error {
	clients, err := h.service.GetAll()
	if err != nil {
		log.Printf("Erreur récupération des clients: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors de la récupération des clients",
		})
	}
	return c.JSON(clients)
}

func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "client introuvable"})
	}
	return c.JSON(client)
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var input application.ClientInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corps de requête invalide"})
	}

	created, err := h.service.Create(input)
	if err != nil {
		log.Printf("Erreur création de client: %v", err)
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var input application.ClientInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corps de requête invalide"})
	}

	updated, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		log.Printf("Erreur modification de client: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(updated)
}

// Delete refuses to remove a client that still has reservations; the guard
// lives in the service so it runs even when the frontend forgets to check.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		log.Printf("Erreur suppression de client: %v", err)
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
