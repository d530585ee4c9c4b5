package application

import (
	"fmt"
	"testing"

	"github.com/setraniainabruno/gestion-chambre-app/internal/domain"
)

type fakeUtilisateurRepo struct {
	utilisateur domain.Utilisateur
	motDePasse  string
}

func (f *fakeUtilisateurRepo) Login(email, motDePasse string) (*domain.Utilisateur, error) {
	if email != f.utilisateur.Email || motDePasse != f.motDePasse {
		return nil, fmt.Errorf("identifiants invalides")
	}
	u := f.utilisateur
	return &u, nil
}

func (f *fakeUtilisateurRepo) GetByID(id string) (*domain.Utilisateur, error) {
	if id != f.utilisateur.ID {
		return nil, fmt.Errorf("utilisateur %s introuvable", id)
	}
	u := f.utilisateur
	return &u, nil
}

func (f *fakeUtilisateurRepo) Update(id string, utilisateur *domain.Utilisateur) error {
	f.utilisateur = *utilisateur
	f.utilisateur.ID = id
	return nil
}

func (f *fakeUtilisateurRepo) UpdateMotDePasse(id, ancien, nouveau string) error {
	if ancien != f.motDePasse {
		return fmt.Errorf("ancien mot de passe incorrect")
	}
	f.motDePasse = nouveau
	return nil
}

func newSessionFixture() (*SessionService, *fakeUtilisateurRepo) {
	repo := &fakeUtilisateurRepo{
		utilisateur: domain.Utilisateur{
			ID:    "u-1",
			Nom:   "Rabe",
			Email: "admin@example.com",
			Roles: domain.RoleAdmin,
		},
		motDePasse: "secret",
	}
	return NewSessionService(repo), repo
}

func TestLoginOuvreUneSession(t *testing.T) {
	service, _ := newSessionFixture()

	session, err := service.Login("admin@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Token == "" {
		t.Fatal("token vide")
	}
	if session.Utilisateur.ID != "u-1" {
		t.Errorf("utilisateur = %s, attendu u-1", session.Utilisateur.ID)
	}

	retrouvee, ok := service.Get(session.Token)
	if !ok {
		t.Fatal("session introuvable après login")
	}
	if retrouvee.Utilisateur.Email != "admin@example.com" {
		t.Errorf("email = %s", retrouvee.Utilisateur.Email)
	}
}

func TestLoginRefuse(t *testing.T) {
	service, _ := newSessionFixture()

	if _, err := service.Login("admin@example.com", "faux"); err == nil {
		t.Fatal("erreur attendue pour un mauvais mot de passe")
	}
	if _, err := service.Login("", ""); err == nil {
		t.Fatal("erreur attendue pour des identifiants vides")
	}
}

func TestLogoutFermeLaSession(t *testing.T) {
	service, _ := newSessionFixture()

	session, err := service.Login("admin@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	service.Logout(session.Token)
	if _, ok := service.Get(session.Token); ok {
		t.Fatal("session encore ouverte après logout")
	}

	// Unknown token: no-op.
	service.Logout("inconnu")
}

// Profile updates propagate into the open sessions, so the value the frontend
// holds never drifts from the stored account.
func TestUpdateUtilisateurRafraichitLesSessions(t *testing.T) {
	service, _ := newSessionFixture()

	session, err := service.Login("admin@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	modifie := session.Utilisateur
	modifie.Nom = "Randria"
	if err := service.UpdateUtilisateur("u-1", &modifie); err != nil {
		t.Fatalf("UpdateUtilisateur: %v", err)
	}

	retrouvee, ok := service.Get(session.Token)
	if !ok {
		t.Fatal("session perdue après mise à jour du profil")
	}
	if retrouvee.Utilisateur.Nom != "Randria" {
		t.Errorf("nom en session = %s, attendu Randria", retrouvee.Utilisateur.Nom)
	}
}

func TestUpdateMotDePasse(t *testing.T) {
	service, repo := newSessionFixture()

	if err := service.UpdateMotDePasse("u-1", "secret", "nouveau"); err != nil {
		t.Fatalf("UpdateMotDePasse: %v", err)
	}
	if repo.motDePasse != "nouveau" {
		t.Errorf("mot de passe = %s, attendu nouveau", repo.motDePasse)
	}

	if err := service.UpdateMotDePasse("u-1", "faux", "autre"); err == nil {
		t.Fatal("erreur attendue pour un ancien mot de passe incorrect")
	}
	if err := service.UpdateMotDePasse("u-1", "nouveau", ""); err == nil {
		t.Fatal("erreur attendue pour un nouveau mot de passe vide")
	}
}
