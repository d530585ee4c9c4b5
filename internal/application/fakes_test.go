package application

import (
	"fmt"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

// In-memory repository fakes shared by the service tests. They record status
// updates in maps so assertions can check exactly what was applied.

type fakeReservationRepo struct {
	reservations []domain.Reservation
	statuts      map[string]domain.ReservationStatus
	created      *domain.Reservation
	updateErr    error
}

func (f *fakeReservationRepo) GetAll() ([]domain.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeReservationRepo) GetByID(id string) (*domain.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			return &f.reservations[i], nil
		}
	}
	return nil, fmt.Errorf("réservation %s introuvable", id)
}

func (f *fakeReservationRepo) Count() (int, error) {
	return len(f.reservations), nil
}

func (f *fakeReservationRepo) CountByClient(clientID string) (int, error) {
	count := 0
	for _, r := range f.reservations {
		if r.Client.ID == clientID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReservationRepo) Create(reservation *domain.Reservation, clientID, chambreID string) (*domain.Reservation, error) {
	created := *reservation
	created.ID = "res-new"
	f.created = &created
	return &created, nil
}

func (f *fakeReservationRepo) Update(id string, reservation *domain.Reservation) error {
	return nil
}

func (f *fakeReservationRepo) UpdateStatut(id string, statut domain.ReservationStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.statuts == nil {
		f.statuts = make(map[string]domain.ReservationStatus)
	}
	f.statuts[id] = statut
	return nil
}

func (f *fakeReservationRepo) Delete(id string) error {
	return nil
}

type fakeChambreRepo struct {
	chambres  []domain.Chambre
	statuts   map[string]domain.ChambreStatus
	deleted   []string
	updateErr error
}

func (f *fakeChambreRepo) GetAll() ([]domain.Chambre, error) {
	return f.chambres, nil
}

func (f *fakeChambreRepo) GetByID(id string) (*domain.Chambre, error) {
	for i := range f.chambres {
		if f.chambres[i].ID == id {
			return &f.chambres[i], nil
		}
	}
	return nil, fmt.Errorf("chambre %s introuvable", id)
}

func (f *fakeChambreRepo) Create(chambre *domain.Chambre) (*domain.Chambre, error) {
	created := *chambre
	created.ID = "ch-new"
	f.chambres = append(f.chambres, created)
	return &created, nil
}

func (f *fakeChambreRepo) Update(id string, chambre *domain.Chambre) error {
	return nil
}

func (f *fakeChambreRepo) UpdateStatut(id string, statut domain.ChambreStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.statuts == nil {
		f.statuts = make(map[string]domain.ChambreStatus)
	}
	f.statuts[id] = statut
	return nil
}

func (f *fakeChambreRepo) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeClientRepo struct {
	clients []domain.Client
	deleted []string
}

func (f *fakeClientRepo) GetAll() ([]domain.Client, error) {
	return f.clients, nil
}

func (f *fakeClientRepo) GetByID(id string) (*domain.Client, error) {
	for i := range f.clients {
		if f.clients[i].ID == id {
			return &f.clients[i], nil
		}
	}
	return nil, fmt.Errorf("client %s introuvable", id)
}

func (f *fakeClientRepo) Create(client *domain.Client) (*domain.Client, error) {
	created := *client
	created.ID = "cl-new"
	f.clients = append(f.clients, created)
	return &created, nil
}

func (f *fakeClientRepo) Update(id string, client *domain.Client) error {
	return nil
}

func (f *fakeClientRepo) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}
