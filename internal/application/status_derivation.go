package application

import (
	"fmt"
	"log"
	"time"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

// StatusChange is one transition proposed by the derivation pass: at most one
// reservation status change and at most one derived room status change. Nil
// pointers mean "leave as is".
type StatusChange struct {
	ReservationID        string                    `json:"reservationId"`
	NouveauStatut        *domain.ReservationStatus `json:"nouveauStatut,omitempty"`
	ChambreID            string                    `json:"chambreId,omitempty"`
	NouveauStatutChambre *domain.ChambreStatus     `json:"nouveauStatutChambre,omitempty"`
}

// DeriveStatusChange evaluates one reservation against today and returns the
// transition to apply, or nil when nothing changes. chambre is the current
// state of the referenced room, nil when the reference could not be resolved;
// the reservation's own transition is still evaluated in that case.
//
// Rules, on calendar days only:
//   - En_attente auto-cancels once its arrival day is reached: it was never
//     confirmed in time. No room change ever accompanies this rule.
//   - Confirmée occupies its room while arrivée <= today < départ, and
//     completes on its departure day. The occupied-range check runs first, so
//     a zero-night record (arrivée == départ) skips straight to completion on
//     its single day.
//   - Annulée and Terminée are terminal. En_attente never auto-confirms;
//     confirmation is an explicit action.
func DeriveStatusChange(today time.Time, reservation domain.Reservation, chambre *domain.Chambre) *StatusChange {
	today = domain.DateOnly(today)
	arrivee := domain.DateOnly(reservation.DateArrivee)
	depart := domain.DateOnly(reservation.DateDepart)

	if reservation.DateArrivee.IsZero() || reservation.DateDepart.IsZero() {
		return nil
	}

	switch reservation.Statut {
	case domain.ReservationEnAttente:
		if !today.Before(arrivee) {
			statut := domain.ReservationAnnulee
			return &StatusChange{
				ReservationID: reservation.ID,
				NouveauStatut: &statut,
			}
		}

	case domain.ReservationConfirmee:
		if !today.Before(arrivee) && today.Before(depart) {
			if chambre == nil || chambre.Statut == domain.ChambreOccupee {
				// Unknown room, or already occupied: applying again would
				// break idempotence.
				return nil
			}
			statut := domain.ChambreOccupee
			return &StatusChange{
				ReservationID:        reservation.ID,
				ChambreID:            chambre.ID,
				NouveauStatutChambre: &statut,
			}
		}
		if today.Equal(depart) {
			statut := domain.ReservationTerminee
			return &StatusChange{
				ReservationID: reservation.ID,
				NouveauStatut: &statut,
			}
		}
	}

	return nil
}

// DeriveStatusChanges runs DeriveStatusChange over a snapshot. today is
// normalized once so every reservation in the pass sees the same cutover day.
// Missing room references are logged and skipped, never fatal.
func DeriveStatusChanges(today time.Time, reservations []domain.Reservation, chambres []domain.Chambre) []StatusChange {
	today = domain.DateOnly(today)

	parID := make(map[string]*domain.Chambre, len(chambres))
	for i := range chambres {
		parID[chambres[i].ID] = &chambres[i]
	}

	var changes []StatusChange
	for _, reservation := range reservations {
		chambre := parID[reservation.Chambre.ID]
		if chambre == nil && reservation.Statut == domain.ReservationConfirmee {
			log.Printf("Chambre %s introuvable pour la réservation %s", reservation.Chambre.ID, reservation.ID)
		}
		if change := DeriveStatusChange(today, reservation, chambre); change != nil {
			changes = append(changes, *change)
		}
	}
	return changes
}

// DerivationNotifier receives a summary of the transitions applied by a pass.
// Satisfied by the email client; nil-safe at the service level.
type DerivationNotifier interface {
	SendDerivationSummary(date time.Time, changes []StatusChange) error
}

// StatusDerivationService runs derivation passes against the hotel API: it
// fetches a snapshot, derives the transitions and applies each one through the
// status-update endpoints, one call per changed entity. It never writes
// anything else.
type StatusDerivationService struct {
	reservationRepo domain.ReservationRepository
	chambreRepo     domain.ChambreRepository
	notifier        DerivationNotifier
}

// NewStatusDerivationService creates a new derivation service. notifier may
// be nil; the pass then runs without sending summaries.
func NewStatusDerivationService(
	reservationRepo domain.ReservationRepository,
	chambreRepo domain.ChambreRepository,
	notifier DerivationNotifier,
) *StatusDerivationService {
	return &StatusDerivationService{
		reservationRepo: reservationRepo,
		chambreRepo:     chambreRepo,
		notifier:        notifier,
	}
}

// RunPass executes one derivation pass and returns the changes it applied.
// A failed update is logged and skipped so one bad record never aborts the
// batch.
func (s *StatusDerivationService) RunPass() ([]StatusChange, error) {
	reservations, err := s.reservationRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la récupération des réservations: %w", err)
	}
	chambres, err := s.chambreRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la récupération des chambres: %w", err)
	}

	changes := DeriveStatusChanges(time.Now(), reservations, chambres)

	applied := make([]StatusChange, 0, len(changes))
	for _, change := range changes {
		if change.NouveauStatut != nil {
			if err := s.reservationRepo.UpdateStatut(change.ReservationID, *change.NouveauStatut); err != nil {
				log.Printf("Erreur mise à jour réservation %s: %v", change.ReservationID, err)
				continue
			}
		}
		if change.NouveauStatutChambre != nil {
			if err := s.chambreRepo.UpdateStatut(change.ChambreID, *change.NouveauStatutChambre); err != nil {
				log.Printf("Erreur mise à jour chambre %s: %v", change.ChambreID, err)
				continue
			}
		}
		applied = append(applied, change)
	}

	if s.notifier != nil && len(applied) > 0 {
		if err := s.notifier.SendDerivationSummary(time.Now(), applied); err != nil {
			log.Printf("Erreur envoi du résumé de dérivation: %v", err)
		}
	}

	return applied, nil
}
