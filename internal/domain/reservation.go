package domain

import "time"

type ReservationStatus string

const (
	ReservationConfirmee ReservationStatus = "Confirmée"
	ReservationEnAttente ReservationStatus = "En_attente"
	ReservationAnnulee   ReservationStatus = "Annulée"
	ReservationTerminee  ReservationStatus = "Terminée"
)

// ReservationStatuses lists the canonical statuses in display order.
var ReservationStatuses = []ReservationStatus{
	ReservationConfirmee,
	ReservationEnAttente,
	ReservationAnnulee,
	ReservationTerminee,
}

// Reservation links one client to one room over a date range. Dates carry a
// calendar-day meaning: DateArrivee is check-in day, DateDepart check-out day.
// A date left at its zero value means the hotel API sent something unparseable
// for that field; aggregation and derivation skip such records instead of
// failing.
type Reservation struct {
	ID              string            `json:"id"`
	Chambre         Chambre           `json:"chambre"`
	Client          Client            `json:"client"`
	DateArrivee     time.Time         `json:"dateArrivee"`
	DateDepart      time.Time         `json:"dateDepart"`
	NombrePersonnes int               `json:"nombrePersonnes"`
	Statut          ReservationStatus `json:"statut"`
	PrixTotal       float64           `json:"prixTotal"`
	Commentaires    string            `json:"commentaires,omitempty"`
	DateCreation    time.Time         `json:"dateCreation"`
}

// ReservationRepository defines the operations available on reservations
type ReservationRepository interface {
	// GetAll returns all reservations with their room and client embedded
	GetAll() ([]Reservation, error)
	// GetByID returns a single reservation
	GetByID(id string) (*Reservation, error)
	// Count returns the total number of reservations, no status filter
	Count() (int, error)
	// CountByClient returns the number of reservations held by a client
	CountByClient(clientID string) (int, error)
	// Create registers a new reservation for the given client and room
	Create(reservation *Reservation, clientID, chambreID string) (*Reservation, error)
	// Update replaces the stored fields of a reservation
	Update(id string, reservation *Reservation) error
	// UpdateStatut changes only the status of a reservation
	UpdateStatut(id string, statut ReservationStatus) error
	// Delete removes a reservation
	Delete(id string) error
}
