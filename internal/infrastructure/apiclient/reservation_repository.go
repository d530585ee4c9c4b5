package apiclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

// reservationDTO is the wire shape of a reservation. Dates come in as
// ISO-8601 strings and are decoded leniently; everything else maps directly
// onto the domain type.
type reservationDTO struct {
	ID              string                   `json:"id"`
	Chambre         domain.Chambre           `json:"chambre"`
	Client          clientDTO                `json:"client"`
	DateArrivee     apiDate                  `json:"dateArrivee"`
	DateDepart      apiDate                  `json:"dateDepart"`
	NombrePersonnes int                      `json:"nombrePersonnes"`
	Statut          domain.ReservationStatus `json:"statut"`
	PrixTotal       float64                  `json:"prixTotal"`
	Commentaires    string                   `json:"commentaires,omitempty"`
	DateCreation    apiDate                  `json:"dateCreation"`
}

func (d reservationDTO) toDomain() domain.Reservation {
	return domain.Reservation{
		ID:              d.ID,
		Chambre:         d.Chambre,
		Client:          d.Client.toDomain(),
		DateArrivee:     d.DateArrivee.Time(),
		DateDepart:      d.DateDepart.Time(),
		NombrePersonnes: d.NombrePersonnes,
		Statut:          d.Statut,
		PrixTotal:       d.PrixTotal,
		Commentaires:    d.Commentaires,
		DateCreation:    d.DateCreation.Time(),
	}
}

func fromDomainReservation(r *domain.Reservation) reservationDTO {
	return reservationDTO{
		ID:              r.ID,
		Chambre:         r.Chambre,
		Client:          fromDomainClient(&r.Client),
		DateArrivee:     apiDate(r.DateArrivee),
		DateDepart:      apiDate(r.DateDepart),
		NombrePersonnes: r.NombrePersonnes,
		Statut:          r.Statut,
		PrixTotal:       r.PrixTotal,
		Commentaires:    r.Commentaires,
		DateCreation:    apiDate(r.DateCreation),
	}
}

type reservationRepository struct {
	client *Client
}

// NewReservationRepository creates a reservation repository backed by the
// hotel API
func NewReservationRepository(client *Client) domain.ReservationRepository {
	return &reservationRepository{client: client}
}

func (r *reservationRepository) GetAll() ([]domain.Reservation, error) {
	var dtos []reservationDTO
	if err := r.client.get("/reservations", &dtos); err != nil {
		return nil, err
	}
	reservations := make([]domain.Reservation, 0, len(dtos))
	for _, dto := range dtos {
		reservations = append(reservations, dto.toDomain())
	}
	return reservations, nil
}

func (r *reservationRepository) GetByID(id string) (*domain.Reservation, error) {
	var dto reservationDTO
	if err := r.client.get("/reservations/"+url.PathEscape(id), &dto); err != nil {
		return nil, err
	}
	reservation := dto.toDomain()
	return &reservation, nil
}

func (r *reservationRepository) Count() (int, error) {
	var count int
	if err := r.client.get("/reservations/count", &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reservationRepository) CountByClient(clientID string) (int, error) {
	var count int
	if err := r.client.get("/reservations/nombre-client/"+url.PathEscape(clientID), &count); err != nil {
		return 0, err
	}
	return count, nil
}

// Create posts the reservation; the owning client and room travel as query
// parameters, the way the API links the three records.
func (r *reservationRepository) Create(reservation *domain.Reservation, clientID, chambreID string) (*domain.Reservation, error) {
	query := url.Values{
		"clientId":  {clientID},
		"chambreId": {chambreID},
	}
	var created reservationDTO
	if err := r.client.do(http.MethodPost, "/reservations", query, fromDomainReservation(reservation), &created); err != nil {
		return nil, err
	}
	result := created.toDomain()
	return &result, nil
}

func (r *reservationRepository) Update(id string, reservation *domain.Reservation) error {
	return r.client.do(http.MethodPut, "/reservations/"+url.PathEscape(id), nil, fromDomainReservation(reservation), nil)
}

func (r *reservationRepository) UpdateStatut(id string, statut domain.ReservationStatus) error {
	query := url.Values{"statut": {string(statut)}}
	body := map[string]domain.ReservationStatus{"status": statut}
	path := fmt.Sprintf("/reservations/%s/statut", url.PathEscape(id))
	return r.client.do(http.MethodPut, path, query, body, nil)
}

func (r *reservationRepository) Delete(id string) error {
	return r.client.do(http.MethodDelete, "/reservations/"+url.PathEscape(id), nil, nil, nil)
}
