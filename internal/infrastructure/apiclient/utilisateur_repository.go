package apiclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

type utilisateurRepository struct {
	client *Client
}

// NewUtilisateurRepository creates an account repository backed by the hotel
// API
func NewUtilisateurRepository(client *Client) domain.UtilisateurRepository {
	return &utilisateurRepository{client: client}
}

type loginRequest struct {
	Email string `json:"email"`
	Mdp   string `json:"mdp"`
}

type loginResponse struct {
	Utilisateur domain.Utilisateur `json:"utilisateur"`
	Token       string             `json:"token"`
}

func (r *utilisateurRepository) Login(email, motDePasse string) (*domain.Utilisateur, error) {
	var resp loginResponse
	body := loginRequest{Email: email, Mdp: motDePasse}
	if err := r.client.do(http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	if resp.Utilisateur.ID == "" {
		return nil, fmt.Errorf("réponse de connexion invalide")
	}
	return &resp.Utilisateur, nil
}

func (r *utilisateurRepository) GetByID(id string) (*domain.Utilisateur, error) {
	var utilisateur domain.Utilisateur
	if err := r.client.get("/utilisateurs/"+url.PathEscape(id), &utilisateur); err != nil {
		return nil, err
	}
	return &utilisateur, nil
}

func (r *utilisateurRepository) Update(id string, utilisateur *domain.Utilisateur) error {
	return r.client.do(http.MethodPut, "/utilisateurs/"+url.PathEscape(id), nil, utilisateur, nil)
}

func (r *utilisateurRepository) UpdateMotDePasse(id, ancien, nouveau string) error {
	body := map[string]string{
		"ancienMdp":  ancien,
		"nouveauMdp": nouveau,
	}
	path := fmt.Sprintf("/utilisateurs/%s/mot-de-passe", url.PathEscape(id))
	return r.client.do(http.MethodPut, path, nil, body, nil)
}
