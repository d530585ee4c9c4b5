package http

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/setraniainabruno/gestion-chambre-app/internal/application"
	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

type SessionHandler struct {
	service *application.SessionService
}

func NewSessionHandler(service *application.SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

type loginRequest struct {
	Email string `json:"email"`
	Mdp   string `json:"mdp"`
}

// Login opens a session and returns it, token included, so the frontend can
// keep it as an explicit value instead of reading ambient storage.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corps de requête invalide"})
	}

	session, err := h.service.Login(req.Email, req.Mdp)
	if err != nil {
		log.Printf("Échec de connexion pour %s: %v", req.Email, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "email ou mot de passe incorrect"})
	}
	return c.JSON(session)
}

// Logout closes the session named by the Authorization header.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "token requis"})
	}
	h.service.Logout(token)
	return c.SendStatus(fiber.StatusNoContent)
}

// GetUtilisateur serves the account backing the settings page.
func (h *SessionHandler) GetUtilisateur(c *fiber.Ctx) error {
	utilisateur, err := h.service.GetUtilisateur(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "utilisateur introuvable"})
	}
	return c.JSON(utilisateur)
}

func (h *SessionHandler) UpdateUtilisateur(c *fiber.Ctx) error {
	var utilisateur domain.Utilisateur
	if err := c.BodyParser(&utilisateur); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corps de requête invalide"})
	}

	if err := h.service.UpdateUtilisateur(c.Params("id"), &utilisateur); err != nil {
		log.Printf("Erreur modification de l'utilisateur: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(utilisateur)
}

type motDePasseRequest struct {
	AncienMdp  string `json:"ancienMdp"`
	NouveauMdp string `json:"nouveauMdp"`
}

func (h *SessionHandler) UpdateMotDePasse(c *fiber.Ctx) error {
	var req motDePasseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corps de requête invalide"})
	}

	if err := h.service.UpdateMotDePasse(c.Params("id"), req.AncienMdp, req.NouveauMdp); err != nil {
		log.Printf("Erreur changement de mot de passe: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Erreur lors du changement de mot de passe"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
