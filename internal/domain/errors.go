package domain

import "errors"

// Guard errors surfaced by the application services so handlers can map them
// to the right HTTP status instead of a blanket 500.
var (
	// ErrDatesInvalides is returned when the departure date is before the
	// arrival date.
	ErrDatesInvalides = errors.New("la date de départ doit être postérieure à la date d'arrivée")
	// ErrSejourSansNuit is returned when arrival and departure fall on the
	// same day: the total price would be 0, which the form rules forbid.
	ErrSejourSansNuit = errors.New("la réservation doit compter au moins une nuit")
	// ErrPrixInvalide is returned when a computed or submitted price is not
	// strictly positive.
	ErrPrixInvalide = errors.New("le prix doit être supérieur à 0")
	// ErrChambreIndisponible is returned when deleting a room that is
	// currently occupied or reserved.
	ErrChambreIndisponible = errors.New("la chambre est occupée ou réservée")
	// ErrClientAvecReservations is returned when deleting a client that
	// still has reservations.
	ErrClientAvecReservations = errors.New("le client a des réservations associées")
)
