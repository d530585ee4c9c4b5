package application

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

// ClientInput carries the form fields of the client dialog.
type ClientInput struct {
	Nom                 string `json:"nom" validate:"required"`
	Prenom              string `json:"prenom" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	Telephone           string `json:"telephone" validate:"required"`
	Adresse             string `json:"adresse"`
	NumeroPieceIdentite string `json:"numeroPieceIdentite"`
	TypePieceIdentite   string `json:"typePieceIdentite"`
}

type ClientService struct {
	clientRepo      domain.ClientRepository
	reservationRepo domain.ReservationRepository
	validate        *validator.Validate
	controle        ControleChamps
}

// NewClientService creates a new client service
func NewClientService(clientRepo domain.ClientRepository, reservationRepo domain.ReservationRepository) *ClientService {
	return &ClientService{
		clientRepo:      clientRepo,
		reservationRepo: reservationRepo,
		validate:        validator.New(),
	}
}

func (s *ClientService) GetAll() ([]domain.Client, error) {
	return s.clientRepo.GetAll()
}

func (s *ClientService) GetByID(id string) (*domain.Client, error) {
	return s.clientRepo.GetByID(id)
}

func (s *ClientService) Create(input ClientInput) (*domain.Client, error) {
	client, err := s.buildClient(input)
	if err != nil {
		return nil, err
	}
	client.DateCreation = time.Now()

	created, err := s.clientRepo.Create(client)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création du client: %w", err)
	}
	return created, nil
}

func (s *ClientService) Update(id string, input ClientInput) (*domain.Client, error) {
	existing, err := s.clientRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("client %s introuvable: %w", id, err)
	}

	client, err := s.buildClient(input)
	if err != nil {
		return nil, err
	}
	client.ID = existing.ID
	client.DateCreation = existing.DateCreation

	if err := s.clientRepo.Update(id, client); err != nil {
		return nil, fmt.Errorf("erreur lors de la modification du client: %w", err)
	}
	return client, nil
}

// Delete removes a client unless reservations still reference them. The guard
// runs before the delete call ever reaches the hotel API.
func (s *ClientService) Delete(id string) error {
	count, err := s.reservationRepo.CountByClient(id)
	if err != nil {
		return fmt.Errorf("erreur lors de la vérification des réservations du client %s: %w", id, err)
	}
	if count > 0 {
		return domain.ErrClientAvecReservations
	}
	return s.clientRepo.Delete(id)
}

func (s *ClientService) buildClient(input ClientInput) (*domain.Client, error) {
	// Same masking the old form applied while typing.
	input.Nom = s.controle.Lettres(input.Nom)
	input.Prenom = s.controle.Lettres(input.Prenom)
	input.Telephone = s.controle.Taille(s.controle.Chiffres(input.Telephone), 15)
	input.NumeroPieceIdentite = s.controle.LettresChiffres(input.NumeroPieceIdentite)

	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("données de client invalides: %w", err)
	}

	return &domain.Client{
		Nom:                 input.Nom,
		Prenom:              input.Prenom,
		Email:               input.Email,
		Telephone:           input.Telephone,
		Adresse:             input.Adresse,
		NumeroPieceIdentite: input.NumeroPieceIdentite,
		TypePieceIdentite:   input.TypePieceIdentite,
	}, nil
}
