package application

import (
	"fmt"
	"math"
	"time"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

// HistogramBucket is one day of the 7-day reservation-creation histogram.
type HistogramBucket struct {
	Date  time.Time `json:"date"`
	Jour  string    `json:"jour"` // dd/MM, chart axis label
	Total int       `json:"total"`
}

// TypeCount is the number of rooms of one type.
type TypeCount struct {
	Type  domain.ChambreType `json:"type"`
	Total int                `json:"total"`
}

// DashboardStats holds every metric rendered on the dashboard page.
type DashboardStats struct {
	TauxChambresDisponibles  int                  `json:"tauxChambresDisponibles"`
	RevenuTotal              float64              `json:"revenuTotal"`
	NombreReservations       int                  `json:"nombreReservations"`
	ArriveesAujourdhui       int                  `json:"arriveesAujourdhui"`
	DepartsAujourdhui        int                  `json:"departsAujourdhui"`
	ReservationsAVenir       int                  `json:"reservationsAVenir"`
	ClientsArriveeAujourdhui []domain.Reservation `json:"clientsArriveeAujourdhui"`
	ClientsDepartAujourdhui  []domain.Reservation `json:"clientsDepartAujourdhui"`
	RepartitionParType       []TypeCount          `json:"repartitionParType"`
	ReservationsParJour      []HistogramBucket    `json:"reservationsParJour"`
}

// BuildDashboardStats folds a snapshot of reservations and rooms into the
// dashboard metrics, one pass over each slice. Records with unparseable
// (zero) dates simply match no bucket or filter; nothing here fails on a
// single bad record. Nil slices count as empty.
func BuildDashboardStats(today time.Time, reservations []domain.Reservation, chambres []domain.Chambre) DashboardStats {
	today = domain.DateOnly(today)

	stats := DashboardStats{
		NombreReservations:       len(reservations),
		ClientsArriveeAujourdhui: []domain.Reservation{},
		ClientsDepartAujourdhui:  []domain.Reservation{},
	}

	// Histogram window: today-6 .. today, oldest first so the chart renders
	// left to right chronologically.
	buckets := make([]HistogramBucket, 7)
	for i := range buckets {
		jour := today.AddDate(0, 0, i-6)
		buckets[i] = HistogramBucket{Date: jour, Jour: jour.Format("02/01")}
	}

	for _, reservation := range reservations {
		if reservation.Statut == domain.ReservationConfirmee || reservation.Statut == domain.ReservationTerminee {
			stats.RevenuTotal += reservation.PrixTotal
		}

		if !reservation.DateCreation.IsZero() {
			for i := range buckets {
				if domain.SameDay(reservation.DateCreation, buckets[i].Date) {
					buckets[i].Total++
					break
				}
			}
		}

		if reservation.Statut == domain.ReservationAnnulee {
			continue
		}
		if !reservation.DateArrivee.IsZero() && domain.SameDay(reservation.DateArrivee, today) {
			stats.ArriveesAujourdhui++
			stats.ClientsArriveeAujourdhui = append(stats.ClientsArriveeAujourdhui, reservation)
		}
		if !reservation.DateDepart.IsZero() && domain.SameDay(reservation.DateDepart, today) {
			stats.DepartsAujourdhui++
			stats.ClientsDepartAujourdhui = append(stats.ClientsDepartAujourdhui, reservation)
		}
		if !reservation.DateArrivee.IsZero() && domain.DateOnly(reservation.DateArrivee).After(today) {
			stats.ReservationsAVenir++
		}
	}
	stats.ReservationsParJour = buckets

	disponibles := 0
	parType := make(map[domain.ChambreType]int, len(domain.ChambreTypes))
	for _, chambre := range chambres {
		parType[chambre.Type]++
		if chambre.Statut == domain.ChambreDisponible {
			disponibles++
		}
	}
	if len(chambres) > 0 {
		stats.TauxChambresDisponibles = int(math.Round(float64(disponibles) / float64(len(chambres)) * 100))
	}

	stats.RepartitionParType = make([]TypeCount, 0, len(domain.ChambreTypes))
	for _, t := range domain.ChambreTypes {
		stats.RepartitionParType = append(stats.RepartitionParType, TypeCount{Type: t, Total: parType[t]})
	}

	return stats
}

// DashboardService fetches a fresh snapshot from the hotel API and aggregates
// it for the dashboard page.
type DashboardService struct {
	reservationRepo domain.ReservationRepository
	chambreRepo     domain.ChambreRepository
}

func NewDashboardService(reservationRepo domain.ReservationRepository, chambreRepo domain.ChambreRepository) *DashboardService {
	return &DashboardService{
		reservationRepo: reservationRepo,
		chambreRepo:     chambreRepo,
	}
}

// GetStats returns the dashboard metrics for the current day.
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	reservations, err := s.reservationRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la récupération des réservations: %w", err)
	}
	chambres, err := s.chambreRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la récupération des chambres: %w", err)
	}

	stats := BuildDashboardStats(time.Now(), reservations, chambres)
	return &stats, nil
}
