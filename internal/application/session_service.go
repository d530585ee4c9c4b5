package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

// SessionService authenticates against the hotel API and keeps the resulting
// sessions in memory. Sessions are explicit values handed back to the caller;
// no handler reads ambient session state.
type SessionService struct {
	utilisateurRepo domain.UtilisateurRepository

	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionService(utilisateurRepo domain.UtilisateurRepository) *SessionService {
	return &SessionService{
		utilisateurRepo: utilisateurRepo,
		sessions:        make(map[string]domain.Session),
	}
}

// Login authenticates the user and opens a session.
func (s *SessionService) Login(email, motDePasse string) (*domain.Session, error) {
	if email == "" || motDePasse == "" {
		return nil, fmt.Errorf("email et mot de passe requis")
	}

	utilisateur, err := s.utilisateurRepo.Login(email, motDePasse)
	if err != nil {
		return nil, fmt.Errorf("échec de la connexion: %w", err)
	}

	session := domain.Session{
		Token:       uuid.NewString(),
		Utilisateur: *utilisateur,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return &session, nil
}

// Get returns the session for a token, if it is still open.
func (s *SessionService) Get(token string) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	return &session, true
}

// Logout closes a session. Closing an unknown token is a no-op.
func (s *SessionService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// GetUtilisateur fetches the account backing the settings page.
func (s *SessionService) GetUtilisateur(id string) (*domain.Utilisateur, error) {
	return s.utilisateurRepo.GetByID(id)
}

// UpdateUtilisateur saves profile changes and refreshes every open session of
// that account so the explicit session values stay current.
func (s *SessionService) UpdateUtilisateur(id string, utilisateur *domain.Utilisateur) error {
	if err := s.utilisateurRepo.Update(id, utilisateur); err != nil {
		return fmt.Errorf("erreur lors de la modification de l'utilisateur: %w", err)
	}

	s.mu.Lock()
	for token, session := range s.sessions {
		if session.Utilisateur.ID == id {
			session.Utilisateur = *utilisateur
			s.sessions[token] = session
		}
	}
	s.mu.Unlock()
	return nil
}

// UpdateMotDePasse changes the account password.
func (s *SessionService) UpdateMotDePasse(id, ancien, nouveau string) error {
	if nouveau == "" {
		return fmt.Errorf("le nouveau mot de passe est requis")
	}
	return s.utilisateurRepo.UpdateMotDePasse(id, ancien, nouveau)
}
