package http

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/setraniainabruno/gestion-chambre-app/internal/application"
	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

type ReservationHandler struct {
	service *application.ReservationService
}

func NewReservationHandler(service *application.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		service: service,
	}
}

// reservationRequest is the JSON body of the reservation dialog. Dates arrive
// as strings so a malformed value yields a 400 instead of a decode panic.
type reservationRequest struct {
	ChambreID       string `json:"chambreId"`
	ClientID        string `json:"clientId"`
	DateArrivee     string `json:"dateArrivee"`
	DateDepart      string `json:"dateDepart"`
	NombrePersonnes int    `json:"nombrePersonnes"`
	Statut          string `json:"statut"`
	Commentaires    string `json:"commentaires"`
}

func (r reservationRequest) toInput() (*application.ReservationInput, error) {
	arrivee, err := parseDate(r.DateArrivee)
	if err != nil {
		return nil, fmt.Errorf("dateArrivee invalide, format attendu YYYY-MM-DD")
	}
	depart, err := parseDate(r.DateDepart)
	if err != nil {
		return nil, fmt.Errorf("dateDepart invalide, format attendu YYYY-MM-DD")
	}

	return &application.ReservationInput{
		ChambreID:       r.ChambreID,
		ClientID:        r.ClientID,
		DateArrivee:     arrivee,
		DateDepart:      depart,
		NombrePersonnes: r.NombrePersonnes,
		Statut:          domain.ReservationStatus(r.Statut),
		Commentaires:    r.Commentaires,
	}, nil
}

func (h *ReservationHandler) GetAll(c *fiber.Ctx) error {
	reservations, err := h.service.GetAll()
	if err != nil {
		log.Printf("Erreur récupération des réservations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors de la récupération des réservations",
		})
	}
	return c.JSON(reservations)
}

func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
	reservation, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "réservation introuvable"})
	}
	return c.JSON(reservation)
}

func (h *ReservationHandler) Count(c *fiber.Ctx) error {
	count, err := h.service.Count()
	if err != nil {
		log.Printf("Erreur comptage des réservations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors du comptage des réservations",
		})
	}
	return c.JSON(count)
}

// CountByClient backs the client deletion guard of the frontend.
func (h *ReservationHandler) CountByClient(c *fiber.Ctx) error {
	count, err := h.service.CountByClient(c.Params("clientId"))
	if err != nil {
		log.Printf("Erreur comptage des réservations du client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors du comptage des réservations",
		})
	}
	return c.JSON(count)
}

func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var req reservationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corps de requête invalide"})
	}

	input, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := h.service.Create(*input)
	if err != nil {
		log.Printf("Erreur création de réservation: %v", err)
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	var req reservationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corps de requête invalide"})
	}

	input, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := h.service.Update(c.Params("id"), *input)
	if err != nil {
		log.Printf("Erreur modification de réservation: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(updated)
}

func (h *ReservationHandler) UpdateStatut(c *fiber.Ctx) error {
	statut := domain.ReservationStatus(c.Query("statut"))
	if statut == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "statut requis"})
	}

	if err := h.service.UpdateStatut(c.Params("id"), statut); err != nil {
		log.Printf("Erreur mise à jour du statut de réservation: %v", err)
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReservationHandler) Confirmer(c *fiber.Ctx) error {
	if err := h.service.Confirmer(c.Params("id")); err != nil {
		log.Printf("Erreur confirmation de réservation: %v", err)
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReservationHandler) Annuler(c *fiber.Ctx) error {
	if err := h.service.Annuler(c.Params("id")); err != nil {
		log.Printf("Erreur annulation de réservation: %v", err)
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReservationHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		log.Printf("Erreur suppression de réservation: %v", err)
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
