package application

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

// ChambreInput carries the form fields of the room dialog. Etage is a pointer
// so an omitted floor gets the dialog default while an explicit 0 stays a
// ground floor.
type ChambreInput struct {
	Numero      string               `json:"numero" validate:"required"`
	Type        domain.ChambreType   `json:"type" validate:"omitempty,oneof=Simple Double Suite Familiale Deluxe"`
	Etage       *int                 `json:"etage" validate:"omitempty,min=0"`
	Prix        float64              `json:"prix" validate:"required,gt=0"`
	Capacite    int                  `json:"capacite" validate:"required,min=1"`
	Statut      domain.ChambreStatus `json:"statut" validate:"omitempty,oneof=Disponible Occupée Maintenance Réservée"`
	Description string               `json:"description"`
}

type ChambreService struct {
	chambreRepo domain.ChambreRepository
	validate    *validator.Validate
	controle    ControleChamps
}

// NewChambreService creates a new room service
func NewChambreService(chambreRepo domain.ChambreRepository) *ChambreService {
	return &ChambreService{
		chambreRepo: chambreRepo,
		validate:    validator.New(),
	}
}

func (s *ChambreService) GetAll() ([]domain.Chambre, error) {
	return s.chambreRepo.GetAll()
}

func (s *ChambreService) GetByID(id string) (*domain.Chambre, error) {
	return s.chambreRepo.GetByID(id)
}

// Create registers a new room. Defaults mirror the add dialog: type Simple,
// floor 1, status Disponible.
func (s *ChambreService) Create(input ChambreInput) (*domain.Chambre, error) {
	chambre, err := s.buildChambre(input)
	if err != nil {
		return nil, err
	}

	created, err := s.chambreRepo.Create(chambre)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la chambre: %w", err)
	}
	return created, nil
}

func (s *ChambreService) Update(id string, input ChambreInput) (*domain.Chambre, error) {
	if _, err := s.chambreRepo.GetByID(id); err != nil {
		return nil, fmt.Errorf("chambre %s introuvable: %w", id, err)
	}

	chambre, err := s.buildChambre(input)
	if err != nil {
		return nil, err
	}
	chambre.ID = id

	if err := s.chambreRepo.Update(id, chambre); err != nil {
		return nil, fmt.Errorf("erreur lors de la modification de la chambre: %w", err)
	}
	return chambre, nil
}

// Delete removes a room unless it is currently occupied or reserved.
func (s *ChambreService) Delete(id string) error {
	chambre, err := s.chambreRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("chambre %s introuvable: %w", id, err)
	}
	if chambre.Statut == domain.ChambreOccupee || chambre.Statut == domain.ChambreReservee {
		return domain.ErrChambreIndisponible
	}
	return s.chambreRepo.Delete(id)
}

func (s *ChambreService) UpdateStatut(id string, statut domain.ChambreStatus) error {
	return s.chambreRepo.UpdateStatut(id, statut)
}

// ProchainNumero suggests the next free room number: one past the highest
// numeric numero in use. Non-numeric numbers are ignored.
func (s *ChambreService) ProchainNumero() (string, error) {
	chambres, err := s.chambreRepo.GetAll()
	if err != nil {
		return "", fmt.Errorf("erreur lors de la récupération des chambres: %w", err)
	}

	max := 0
	for _, chambre := range chambres {
		if n, err := strconv.Atoi(chambre.Numero); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}

func (s *ChambreService) buildChambre(input ChambreInput) (*domain.Chambre, error) {
	input.Numero = s.controle.Chiffres(input.Numero)

	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("données de chambre invalides: %w", err)
	}

	chambre := &domain.Chambre{
		Numero:      input.Numero,
		Type:        input.Type,
		Etage:       1,
		Prix:        input.Prix,
		Capacite:    input.Capacite,
		Statut:      input.Statut,
		Description: input.Description,
	}
	if input.Etage != nil {
		chambre.Etage = *input.Etage
	}
	if chambre.Type == "" {
		chambre.Type = domain.ChambreSimple
	}
	if chambre.Statut == "" {
		chambre.Statut = domain.ChambreDisponible
	}
	return chambre, nil
}
