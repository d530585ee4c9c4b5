package application

import (
	"errors"
	"testing"
	"time"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

func jour(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveStatusChange(t *testing.T) {
	today := jour(2024, time.June, 10)
	libre := &domain.Chambre{ID: "ch-1", Statut: domain.ChambreDisponible}
	occupee := &domain.Chambre{ID: "ch-1", Statut: domain.ChambreOccupee}

	tests := []struct {
		name          string
		reservation   domain.Reservation
		chambre       *domain.Chambre
		wantStatut    *domain.ReservationStatus
		wantChambre   *domain.ChambreStatus
		wantChambreID string
	}{
		{
			name: "en attente, arrivée aujourd'hui: annulée",
			reservation: domain.Reservation{
				ID:          "r1",
				Statut:      domain.ReservationEnAttente,
				DateArrivee: jour(2024, time.June, 10),
				DateDepart:  jour(2024, time.June, 12),
			},
			chambre:    libre,
			wantStatut: statutPtr(domain.ReservationAnnulee),
		},
		{
			name: "en attente, arrivée dépassée: annulée",
			reservation: domain.Reservation{
				ID:          "r2",
				Statut:      domain.ReservationEnAttente,
				DateArrivee: jour(2024, time.June, 1),
				DateDepart:  jour(2024, time.June, 3),
			},
			chambre:    libre,
			wantStatut: statutPtr(domain.ReservationAnnulee),
		},
		{
			name: "en attente, arrivée demain: aucun changement",
			reservation: domain.Reservation{
				ID:          "r3",
				Statut:      domain.ReservationEnAttente,
				DateArrivee: jour(2024, time.June, 11),
				DateDepart:  jour(2024, time.June, 13),
			},
			chambre: libre,
		},
		{
			name: "confirmée en cours de séjour: chambre occupée",
			reservation: domain.Reservation{
				ID:          "r4",
				Statut:      domain.ReservationConfirmee,
				DateArrivee: jour(2024, time.June, 9),
				DateDepart:  jour(2024, time.June, 12),
			},
			chambre:       libre,
			wantChambre:   chambreStatutPtr(domain.ChambreOccupee),
			wantChambreID: "ch-1",
		},
		{
			name: "confirmée en cours, chambre déjà occupée: aucun changement",
			reservation: domain.Reservation{
				ID:          "r5",
				Statut:      domain.ReservationConfirmee,
				DateArrivee: jour(2024, time.June, 9),
				DateDepart:  jour(2024, time.June, 12),
			},
			chambre: occupee,
		},
		{
			name: "confirmée en cours, chambre inconnue: aucun changement",
			reservation: domain.Reservation{
				ID:          "r6",
				Statut:      domain.ReservationConfirmee,
				DateArrivee: jour(2024, time.June, 9),
				DateDepart:  jour(2024, time.June, 12),
			},
			chambre: nil,
		},
		{
			name: "confirmée, départ aujourd'hui: terminée",
			reservation: domain.Reservation{
				ID:          "r7",
				Statut:      domain.ReservationConfirmee,
				DateArrivee: jour(2024, time.June, 7),
				DateDepart:  jour(2024, time.June, 10),
			},
			chambre:    libre,
			wantStatut: statutPtr(domain.ReservationTerminee),
		},
		{
			name: "confirmée sans nuit, son unique jour: terminée",
			reservation: domain.Reservation{
				ID:          "r8",
				Statut:      domain.ReservationConfirmee,
				DateArrivee: jour(2024, time.June, 10),
				DateDepart:  jour(2024, time.June, 10),
			},
			chambre:    libre,
			wantStatut: statutPtr(domain.ReservationTerminee),
		},
		{
			name: "confirmée future: aucun changement",
			reservation: domain.Reservation{
				ID:          "r9",
				Statut:      domain.ReservationConfirmee,
				DateArrivee: jour(2024, time.June, 20),
				DateDepart:  jour(2024, time.June, 22),
			},
			chambre: libre,
		},
		{
			name: "annulée: terminale",
			reservation: domain.Reservation{
				ID:          "r10",
				Statut:      domain.ReservationAnnulee,
				DateArrivee: jour(2024, time.June, 9),
				DateDepart:  jour(2024, time.June, 12),
			},
			chambre: libre,
		},
		{
			name: "terminée: terminale",
			reservation: domain.Reservation{
				ID:          "r11",
				Statut:      domain.ReservationTerminee,
				DateArrivee: jour(2024, time.June, 1),
				DateDepart:  jour(2024, time.June, 5),
			},
			chambre: libre,
		},
		{
			name: "dates illisibles: ignorée",
			reservation: domain.Reservation{
				ID:     "r12",
				Statut: domain.ReservationEnAttente,
			},
			chambre: libre,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := DeriveStatusChange(today, tt.reservation, tt.chambre)

			if tt.wantStatut == nil && tt.wantChambre == nil {
				if change != nil {
					t.Fatalf("changement inattendu: %+v", change)
				}
				return
			}
			if change == nil {
				t.Fatal("changement attendu, reçu nil")
			}
			if change.ReservationID != tt.reservation.ID {
				t.Errorf("ReservationID = %s, attendu %s", change.ReservationID, tt.reservation.ID)
			}
			if (tt.wantStatut == nil) != (change.NouveauStatut == nil) {
				t.Fatalf("NouveauStatut = %v, attendu %v", change.NouveauStatut, tt.wantStatut)
			}
			if tt.wantStatut != nil && *change.NouveauStatut != *tt.wantStatut {
				t.Errorf("NouveauStatut = %s, attendu %s", *change.NouveauStatut, *tt.wantStatut)
			}
			if (tt.wantChambre == nil) != (change.NouveauStatutChambre == nil) {
				t.Fatalf("NouveauStatutChambre = %v, attendu %v", change.NouveauStatutChambre, tt.wantChambre)
			}
			if tt.wantChambre != nil {
				if *change.NouveauStatutChambre != *tt.wantChambre {
					t.Errorf("NouveauStatutChambre = %s, attendu %s", *change.NouveauStatutChambre, *tt.wantChambre)
				}
				if change.ChambreID != tt.wantChambreID {
					t.Errorf("ChambreID = %s, attendu %s", change.ChambreID, tt.wantChambreID)
				}
			}
		})
	}
}

// A pending auto-cancel never touches the room, even when the room would
// otherwise look occupiable.
func TestDeriveStatusChangeAnnulationSansChambre(t *testing.T) {
	today := jour(2024, time.June, 10)
	chambre := &domain.Chambre{ID: "ch-1", Statut: domain.ChambreDisponible}
	reservation := domain.Reservation{
		ID:          "r1",
		Statut:      domain.ReservationEnAttente,
		DateArrivee: jour(2024, time.June, 8),
		DateDepart:  jour(2024, time.June, 12),
	}

	change := DeriveStatusChange(today, reservation, chambre)
	if change == nil || change.NouveauStatut == nil {
		t.Fatal("annulation attendue")
	}
	if change.NouveauStatutChambre != nil {
		t.Errorf("la chambre ne doit pas changer lors d'une annulation automatique, reçu %s", *change.NouveauStatutChambre)
	}
}

// Running the derivation twice on the resulting state produces no further
// changes.
func TestDeriveStatusChangesIdempotence(t *testing.T) {
	today := jour(2024, time.June, 10)
	chambres := []domain.Chambre{
		{ID: "ch-1", Statut: domain.ChambreReservee},
		{ID: "ch-2", Statut: domain.ChambreReservee},
	}
	reservations := []domain.Reservation{
		{
			ID: "r1", Statut: domain.ReservationConfirmee,
			Chambre:     domain.Chambre{ID: "ch-1"},
			DateArrivee: jour(2024, time.June, 9), DateDepart: jour(2024, time.June, 12),
		},
		{
			ID: "r2", Statut: domain.ReservationEnAttente,
			Chambre:     domain.Chambre{ID: "ch-2"},
			DateArrivee: jour(2024, time.June, 10), DateDepart: jour(2024, time.June, 12),
		},
	}

	changes := DeriveStatusChanges(today, reservations, chambres)
	if len(changes) != 2 {
		t.Fatalf("première passe: %d changement(s), attendu 2", len(changes))
	}

	// Apply the pass on the in-memory snapshot.
	for _, change := range changes {
		for i := range reservations {
			if reservations[i].ID == change.ReservationID && change.NouveauStatut != nil {
				reservations[i].Statut = *change.NouveauStatut
			}
		}
		for i := range chambres {
			if chambres[i].ID == change.ChambreID && change.NouveauStatutChambre != nil {
				chambres[i].Statut = *change.NouveauStatutChambre
			}
		}
	}

	if again := DeriveStatusChanges(today, reservations, chambres); len(again) != 0 {
		t.Fatalf("seconde passe: %d changement(s), attendu 0: %+v", len(again), again)
	}
}

func TestRunPassApplique(t *testing.T) {
	// RunPass derives against the real clock, so the fixture is anchored on
	// the current day: r1 has its arrival behind it, r2 departs today.
	today := domain.DateOnly(time.Now())
	reservationRepo := &fakeReservationRepo{
		reservations: []domain.Reservation{
			{
				ID: "r1", Statut: domain.ReservationEnAttente,
				Chambre:     domain.Chambre{ID: "ch-1"},
				DateArrivee: today.AddDate(0, 0, -1), DateDepart: today.AddDate(0, 0, 1),
			},
			{
				ID: "r2", Statut: domain.ReservationConfirmee,
				Chambre:     domain.Chambre{ID: "ch-1"},
				DateArrivee: today.AddDate(0, 0, -2), DateDepart: today,
			},
		},
	}
	chambreRepo := &fakeChambreRepo{
		chambres: []domain.Chambre{{ID: "ch-1", Statut: domain.ChambreReservee}},
	}

	service := NewStatusDerivationService(reservationRepo, chambreRepo, nil)
	applied, err := service.RunPass()
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if len(applied) != 2 {
		t.Fatalf("%d transition(s) appliquée(s), attendu 2", len(applied))
	}
	if reservationRepo.statuts["r1"] != domain.ReservationAnnulee {
		t.Errorf("r1 = %s, attendu Annulée", reservationRepo.statuts["r1"])
	}
	if reservationRepo.statuts["r2"] != domain.ReservationTerminee {
		t.Errorf("r2 = %s, attendu Terminée", reservationRepo.statuts["r2"])
	}
}

// A failing status update is skipped, not fatal.
func TestRunPassContinueSurErreur(t *testing.T) {
	reservationRepo := &fakeReservationRepo{
		reservations: []domain.Reservation{
			{
				ID: "r1", Statut: domain.ReservationEnAttente,
				DateArrivee: jour(2000, time.January, 1), DateDepart: jour(2000, time.January, 3),
			},
		},
		updateErr: errors.New("api indisponible"),
	}
	chambreRepo := &fakeChambreRepo{}

	service := NewStatusDerivationService(reservationRepo, chambreRepo, nil)
	applied, err := service.RunPass()
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("%d transition(s) appliquée(s), attendu 0", len(applied))
	}
}

func statutPtr(s domain.ReservationStatus) *domain.ReservationStatus {
	return &s
}

func chambreStatutPtr(s domain.ChambreStatus) *domain.ChambreStatus {
	return &s
}
