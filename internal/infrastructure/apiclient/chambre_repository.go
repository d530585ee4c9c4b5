package apiclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

type chambreRepository struct {
	client *Client
}

// NewChambreRepository creates a room repository backed by the hotel API
func NewChambreRepository(client *Client) domain.ChambreRepository {
	return &chambreRepository{client: client}
}

func (r *chambreRepository) GetAll() ([]domain.Chambre, error) {
	var chambres []domain.Chambre
	if err := r.client.get("/chambres", &chambres); err != nil {
		return nil, err
	}
	return chambres, nil
}

func (r *chambreRepository) GetByID(id string) (*domain.Chambre, error) {
	var chambre domain.Chambre
	if err := r.client.get("/chambres/"+url.PathEscape(id), &chambre); err != nil {
		return nil, err
	}
	return &chambre, nil
}

func (r *chambreRepository) Create(chambre *domain.Chambre) (*domain.Chambre, error) {
	var created domain.Chambre
	if err := r.client.do(http.MethodPost, "/chambres", nil, chambre, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *chambreRepository) Update(id string, chambre *domain.Chambre) error {
	return r.client.do(http.MethodPut, "/chambres/"+url.PathEscape(id), nil, chambre, nil)
}

// UpdateStatut hits the dedicated status endpoint. The status travels both as
// a query parameter and in the body, matching what the API expects.
func (r *chambreRepository) UpdateStatut(id string, statut domain.ChambreStatus) error {
	query := url.Values{"statut": {string(statut)}}
	body := map[string]domain.ChambreStatus{"status": statut}
	path := fmt.Sprintf("/chambres/%s/statut", url.PathEscape(id))
	return r.client.do(http.MethodPut, path, query, body, nil)
}

func (r *chambreRepository) Delete(id string) error {
	return r.client.do(http.MethodDelete, "/chambres/"+url.PathEscape(id), nil, nil, nil)
}
