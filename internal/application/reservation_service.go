package application

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

// ReservationInput carries the form fields of the reservation dialog. The
// total price is deliberately absent: it is always recomputed from the dates
// and the room's nightly price, never trusted from the caller.
type ReservationInput struct {
	ChambreID       string                   `json:"chambreId" validate:"required"`
	ClientID        string                   `json:"clientId" validate:"required"`
	DateArrivee     time.Time                `json:"dateArrivee" validate:"required"`
	DateDepart      time.Time                `json:"dateDepart" validate:"required"`
	NombrePersonnes int                      `json:"nombrePersonnes" validate:"required,min=1"`
	Statut          domain.ReservationStatus `json:"statut" validate:"omitempty,oneof=Confirmée En_attente Annulée Terminée"`
	Commentaires    string                   `json:"commentaires"`
}

type ReservationService struct {
	reservationRepo domain.ReservationRepository
	chambreRepo     domain.ChambreRepository
	clientRepo      domain.ClientRepository
	validate        *validator.Validate
}

// NewReservationService creates a new reservation service
func NewReservationService(
	reservationRepo domain.ReservationRepository,
	chambreRepo domain.ChambreRepository,
	clientRepo domain.ClientRepository,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		chambreRepo:     chambreRepo,
		clientRepo:      clientRepo,
		validate:        validator.New(),
	}
}

func (s *ReservationService) GetAll() ([]domain.Reservation, error) {
	return s.reservationRepo.GetAll()
}

func (s *ReservationService) GetByID(id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(id)
}

func (s *ReservationService) Count() (int, error) {
	return s.reservationRepo.Count()
}

// CountByClient returns the number of reservations held by a client. The
// client deletion guard relies on it.
func (s *ReservationService) CountByClient(clientID string) (int, error) {
	return s.reservationRepo.CountByClient(clientID)
}

// Create validates the input, recomputes the total price and registers the
// reservation with the hotel API.
func (s *ReservationService) Create(input ReservationInput) (*domain.Reservation, error) {
	reservation, err := s.buildReservation(input)
	if err != nil {
		return nil, err
	}
	reservation.DateCreation = time.Now()

	created, err := s.reservationRepo.Create(reservation, input.ClientID, input.ChambreID)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la réservation: %w", err)
	}
	return created, nil
}

// Update revalidates the form fields and recomputes the price before saving,
// so a stale total can never survive a date or room change.
func (s *ReservationService) Update(id string, input ReservationInput) (*domain.Reservation, error) {
	existing, err := s.reservationRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("réservation %s introuvable: %w", id, err)
	}

	reservation, err := s.buildReservation(input)
	if err != nil {
		return nil, err
	}
	reservation.ID = existing.ID
	reservation.DateCreation = existing.DateCreation

	if err := s.reservationRepo.Update(id, reservation); err != nil {
		return nil, fmt.Errorf("erreur lors de la modification de la réservation: %w", err)
	}
	return reservation, nil
}

func (s *ReservationService) Delete(id string) error {
	return s.reservationRepo.Delete(id)
}

// UpdateStatut applies an explicit status change requested from the table's
// dropdown, without touching the room.
func (s *ReservationService) UpdateStatut(id string, statut domain.ReservationStatus) error {
	return s.reservationRepo.UpdateStatut(id, statut)
}

// Confirmer is the only path from En_attente to Confirmée; the derivation
// engine never confirms. The room is marked Réservée alongside.
func (s *ReservationService) Confirmer(id string) error {
	reservation, err := s.reservationRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("réservation %s introuvable: %w", id, err)
	}
	if reservation.Statut != domain.ReservationEnAttente {
		return fmt.Errorf("seule une réservation en attente peut être confirmée (statut actuel: %s)", reservation.Statut)
	}

	if err := s.reservationRepo.UpdateStatut(id, domain.ReservationConfirmee); err != nil {
		return fmt.Errorf("erreur lors de la confirmation: %w", err)
	}
	if err := s.chambreRepo.UpdateStatut(reservation.Chambre.ID, domain.ChambreReservee); err != nil {
		return fmt.Errorf("erreur lors de la mise à jour de la chambre %s: %w", reservation.Chambre.ID, err)
	}
	return nil
}

// Annuler cancels a reservation and releases its room when no other active
// reservation still holds it.
func (s *ReservationService) Annuler(id string) error {
	reservation, err := s.reservationRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("réservation %s introuvable: %w", id, err)
	}
	if reservation.Statut == domain.ReservationAnnulee || reservation.Statut == domain.ReservationTerminee {
		return fmt.Errorf("la réservation %s est déjà %s", id, reservation.Statut)
	}

	if err := s.reservationRepo.UpdateStatut(id, domain.ReservationAnnulee); err != nil {
		return fmt.Errorf("erreur lors de l'annulation: %w", err)
	}

	libre, err := s.chambreLibre(reservation.Chambre.ID, id)
	if err != nil {
		return err
	}
	if libre {
		if err := s.chambreRepo.UpdateStatut(reservation.Chambre.ID, domain.ChambreDisponible); err != nil {
			return fmt.Errorf("erreur lors de la libération de la chambre %s: %w", reservation.Chambre.ID, err)
		}
	}
	return nil
}

// chambreLibre reports whether no reservation other than excludeID still
// holds the room (confirmed or pending).
func (s *ReservationService) chambreLibre(chambreID, excludeID string) (bool, error) {
	reservations, err := s.reservationRepo.GetAll()
	if err != nil {
		return false, fmt.Errorf("erreur lors de la vérification de la chambre %s: %w", chambreID, err)
	}
	for _, r := range reservations {
		if r.ID == excludeID || r.Chambre.ID != chambreID {
			continue
		}
		if r.Statut == domain.ReservationConfirmee || r.Statut == domain.ReservationEnAttente {
			return false, nil
		}
	}
	return true, nil
}

// buildReservation validates the form fields and assembles a reservation with
// its recomputed price.
func (s *ReservationService) buildReservation(input ReservationInput) (*domain.Reservation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("données de réservation invalides: %w", err)
	}

	arrivee := domain.DateOnly(input.DateArrivee)
	depart := domain.DateOnly(input.DateDepart)
	if depart.Before(arrivee) {
		return nil, domain.ErrDatesInvalides
	}
	if depart.Equal(arrivee) {
		return nil, domain.ErrSejourSansNuit
	}

	chambre, err := s.chambreRepo.GetByID(input.ChambreID)
	if err != nil {
		return nil, fmt.Errorf("chambre %s introuvable: %w", input.ChambreID, err)
	}
	client, err := s.clientRepo.GetByID(input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client %s introuvable: %w", input.ClientID, err)
	}

	prixTotal := float64(domain.Nights(arrivee, depart)) * chambre.Prix
	if prixTotal <= 0 {
		return nil, domain.ErrPrixInvalide
	}

	statut := input.Statut
	if statut == "" {
		statut = domain.ReservationEnAttente
	}

	return &domain.Reservation{
		Chambre:         *chambre,
		Client:          *client,
		DateArrivee:     arrivee,
		DateDepart:      depart,
		NombrePersonnes: input.NombrePersonnes,
		Statut:          statut,
		PrixTotal:       prixTotal,
		Commentaires:    input.Commentaires,
	}, nil
}
