package scheduler

import (
	"log"
	"time"

	"github.com/setraniainabruno/gestion-chambre-app/internal/application"
)

// StatusScheduler triggers the daily status derivation pass. The old
// dashboard re-derived statuses as a side effect of every list fetch; here
// the cadence is explicit: once at startup, then every day shortly after
// midnight so the calendar cutover is applied as soon as the day changes.
type StatusScheduler struct {
	derivation *application.StatusDerivationService
	ticker     *time.Ticker
}

// NewStatusScheduler creates a new status scheduler
func NewStatusScheduler(derivation *application.StatusDerivationService) *StatusScheduler {
	return &StatusScheduler{
		derivation: derivation,
	}
}

// Start runs a pass immediately, then schedules one every 24 hours at 00:01.
func (s *StatusScheduler) Start() {
	log.Println("Scheduler de statuts démarré - exécution quotidienne à 00:01")

	s.RunPass()

	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())
	log.Printf("Prochaine exécution programmée: %s", nextRun.Format("2006-01-02 15:04:05"))

	time.AfterFunc(time.Until(nextRun), func() {
		s.RunPass()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.RunPass()
			}
		}()
	})
}

// Stop halts the scheduler
func (s *StatusScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("Scheduler de statuts arrêté")
	}
}

// RunPass executes one derivation pass and logs the outcome.
func (s *StatusScheduler) RunPass() {
	log.Println("Exécution de la dérivation des statuts...")

	applied, err := s.derivation.RunPass()
	if err != nil {
		log.Printf("Erreur lors de la dérivation des statuts: %v", err)
		return
	}
	log.Printf("Dérivation terminée: %d transition(s) appliquée(s)", len(applied))
}
