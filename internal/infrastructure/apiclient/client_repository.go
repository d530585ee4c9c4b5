package apiclient

import (
	"net/http"
	"net/url"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

type clientDTO struct {
	ID                  string  `json:"id"`
	Nom                 string  `json:"nom"`
	Prenom              string  `json:"prenom"`
	Email               string  `json:"email"`
	Telephone           string  `json:"telephone"`
	Adresse             string  `json:"adresse,omitempty"`
	NumeroPieceIdentite string  `json:"numeroPieceIdentite,omitempty"`
	TypePieceIdentite   string  `json:"typePieceIdentite,omitempty"`
	DateCreation        apiDate `json:"dateCreation"`
}

func (d clientDTO) toDomain() domain.Client {
	return domain.Client{
		ID:                  d.ID,
		Nom:                 d.Nom,
		Prenom:              d.Prenom,
		Email:               d.Email,
		Telephone:           d.Telephone,
		Adresse:             d.Adresse,
		NumeroPieceIdentite: d.NumeroPieceIdentite,
		TypePieceIdentite:   d.TypePieceIdentite,
		DateCreation:        d.DateCreation.Time(),
	}
}

func fromDomainClient(c *domain.Client) clientDTO {
	return clientDTO{
		ID:                  c.ID,
		Nom:                 c.Nom,
		Prenom:              c.Prenom,
		Email:               c.Email,
		Telephone:           c.Telephone,
		Adresse:             c.Adresse,
		NumeroPieceIdentite: c.NumeroPieceIdentite,
		TypePieceIdentite:   c.TypePieceIdentite,
		DateCreation:        apiDate(c.DateCreation),
	}
}

type clientRepository struct {
	client *Client
}

// NewClientRepository creates a client repository backed by the hotel API
func NewClientRepository(client *Client) domain.ClientRepository {
	return &clientRepository{client: client}
}

func (r *clientRepository) GetAll() ([]domain.Client, error) {
	var dtos []clientDTO
	if err := r.client.get("/clients", &dtos); err != nil {
		return nil, err
	}
	clients := make([]domain.Client, 0, len(dtos))
	for _, dto := range dtos {
		clients = append(clients, dto.toDomain())
	}
	return clients, nil
}

func (r *clientRepository) GetByID(id string) (*domain.Client, error) {
	var dto clientDTO
	if err := r.client.get("/clients/"+url.PathEscape(id), &dto); err != nil {
		return nil, err
	}
	client := dto.toDomain()
	return &client, nil
}

func (r *clientRepository) Create(client *domain.Client) (*domain.Client, error) {
	var created clientDTO
	if err := r.client.do(http.MethodPost, "/clients", nil, fromDomainClient(client), &created); err != nil {
		return nil, err
	}
	result := created.toDomain()
	return &result, nil
}

func (r *clientRepository) Update(id string, client *domain.Client) error {
	return r.client.do(http.MethodPut, "/clients/"+url.PathEscape(id), nil, fromDomainClient(client), nil)
}

func (r *clientRepository) Delete(id string) error {
	return r.client.do(http.MethodDelete, "/clients/"+url.PathEscape(id), nil, nil, nil)
}
