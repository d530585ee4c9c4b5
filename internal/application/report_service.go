package application

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

// moisLabels are the chart axis labels of the reports page, January first.
var moisLabels = [12]string{"Jan", "Fév", "Mar", "Avr", "Mai", "Jun", "Juil", "Août", "Sept", "Oct", "Nov", "Déc"}

// MonthlyPoint is one month of a yearly series.
type MonthlyPoint struct {
	Mois   string  `json:"mois"`
	Valeur float64 `json:"valeur"`
}

// StatusCount is the number of reservations in one status.
type StatusCount struct {
	Statut domain.ReservationStatus `json:"statut"`
	Total  int                      `json:"total"`
}

// Report holds the four data sets of the reports page for one year.
type Report struct {
	Annee               int            `json:"annee"`
	TauxOccupation      []MonthlyPoint `json:"tauxOccupation"`
	Revenus             []MonthlyPoint `json:"revenus"`
	RepartitionParType  []TypeCount    `json:"repartitionParType"`
	StatutsReservations []StatusCount  `json:"statutsReservations"`
}

// ReportUploader archives an exported workbook and returns its public URL.
// Satisfied by the S3 report storage; nil-safe at the service level.
type ReportUploader interface {
	UploadReport(filename string, content []byte) (string, error)
}

type ReportService struct {
	reservationRepo domain.ReservationRepository
	chambreRepo     domain.ChambreRepository
	uploader        ReportUploader
}

// NewReportService creates a new report service. uploader may be nil; exports
// are then download-only.
func NewReportService(
	reservationRepo domain.ReservationRepository,
	chambreRepo domain.ChambreRepository,
	uploader ReportUploader,
) *ReportService {
	return &ReportService{
		reservationRepo: reservationRepo,
		chambreRepo:     chambreRepo,
		uploader:        uploader,
	}
}

// GetReport aggregates the yearly report from a fresh snapshot.
func (s *ReportService) GetReport(annee int) (*Report, error) {
	reservations, err := s.reservationRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la récupération des réservations: %w", err)
	}
	chambres, err := s.chambreRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la récupération des chambres: %w", err)
	}

	report := BuildReport(annee, reservations, chambres)
	return &report, nil
}

// BuildReport folds a snapshot into the yearly report series. Like the
// dashboard aggregation it degrades per record: zero dates match no month.
func BuildReport(annee int, reservations []domain.Reservation, chambres []domain.Chambre) Report {
	report := Report{Annee: annee}

	nuitsOccupees := [12]int{}
	revenus := [12]float64{}
	parStatut := make(map[domain.ReservationStatus]int, len(domain.ReservationStatuses))

	for _, reservation := range reservations {
		parStatut[reservation.Statut]++

		if reservation.DateArrivee.IsZero() || reservation.DateDepart.IsZero() {
			continue
		}

		// Revenue is booked on the arrival month, confirmed and completed
		// stays only.
		if reservation.Statut == domain.ReservationConfirmee || reservation.Statut == domain.ReservationTerminee {
			if reservation.DateArrivee.Year() == annee {
				revenus[reservation.DateArrivee.Month()-1] += reservation.PrixTotal
			}
		}

		// Occupied nights, spread over the months the stay touches.
		if reservation.Statut != domain.ReservationAnnulee {
			nuit := domain.DateOnly(reservation.DateArrivee)
			depart := domain.DateOnly(reservation.DateDepart)
			for nuit.Before(depart) {
				if nuit.Year() == annee {
					nuitsOccupees[nuit.Month()-1]++
				}
				nuit = nuit.AddDate(0, 0, 1)
			}
		}
	}

	report.TauxOccupation = make([]MonthlyPoint, 12)
	report.Revenus = make([]MonthlyPoint, 12)
	for m := 0; m < 12; m++ {
		taux := 0.0
		if len(chambres) > 0 {
			joursDuMois := time.Date(annee, time.Month(m+2), 0, 0, 0, 0, 0, time.UTC).Day()
			taux = float64(nuitsOccupees[m]) / float64(len(chambres)*joursDuMois) * 100
			if taux > 100 {
				taux = 100
			}
		}
		report.TauxOccupation[m] = MonthlyPoint{Mois: moisLabels[m], Valeur: taux}
		report.Revenus[m] = MonthlyPoint{Mois: moisLabels[m], Valeur: revenus[m]}
	}

	parType := make(map[domain.ChambreType]int, len(domain.ChambreTypes))
	for _, chambre := range chambres {
		parType[chambre.Type]++
	}
	report.RepartitionParType = make([]TypeCount, 0, len(domain.ChambreTypes))
	for _, t := range domain.ChambreTypes {
		report.RepartitionParType = append(report.RepartitionParType, TypeCount{Type: t, Total: parType[t]})
	}

	report.StatutsReservations = make([]StatusCount, 0, len(domain.ReservationStatuses))
	for _, st := range domain.ReservationStatuses {
		report.StatutsReservations = append(report.StatutsReservations, StatusCount{Statut: st, Total: parStatut[st]})
	}

	return report
}

// ExportExcel renders the yearly report as an Excel workbook and returns its
// bytes along with the suggested filename.
func (s *ReportService) ExportExcel(annee int) ([]byte, string, error) {
	report, err := s.GetReport(annee)
	if err != nil {
		return nil, "", err
	}

	content, err := buildWorkbook(report)
	if err != nil {
		return nil, "", err
	}
	return content, fmt.Sprintf("rapport_%d.xlsx", annee), nil
}

// ExportVersS3 exports the yearly report and archives it, returning the
// public URL of the uploaded workbook.
func (s *ReportService) ExportVersS3(annee int) (string, error) {
	if s.uploader == nil {
		return "", fmt.Errorf("aucun stockage de rapports configuré")
	}

	content, filename, err := s.ExportExcel(annee)
	if err != nil {
		return "", err
	}

	url, err := s.uploader.UploadReport(filename, content)
	if err != nil {
		return "", fmt.Errorf("erreur lors de l'archivage du rapport: %w", err)
	}
	return url, nil
}

func buildWorkbook(report *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Rapport %d", report.Annee)
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Mois", "Taux d'occupation (%)", "Revenus"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for m := 0; m < 12; m++ {
		row := m + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), report.TauxOccupation[m].Mois)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%.1f", report.TauxOccupation[m].Valeur))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%.2f", report.Revenus[m].Valeur))
	}

	// Breakdowns beneath the monthly table.
	row := 15
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Types de chambres")
	for _, tc := range report.RepartitionParType {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), string(tc.Type))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tc.Total)
	}

	row += 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Statuts des réservations")
	for _, sc := range report.StatutsReservations {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), string(sc.Statut))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sc.Total)
	}

	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "B", 20)
	f.SetColWidth(sheet, "C", "C", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la génération du fichier Excel: %w", err)
	}
	return buf.Bytes(), nil
}
