package domain

import "time"

type UserRole string

const RoleAdmin UserRole = "ADMIN"

// Utilisateur is a dashboard user account managed by the hotel API.
type Utilisateur struct {
	ID     string   `json:"id"`
	Nom    string   `json:"nom"`
	Prenom string   `json:"prenom"`
	Email  string   `json:"email"`
	Roles  UserRole `json:"roles"`
}

// Session is the explicit, passed-in session value handed to the frontend at
// login. It replaces the ambient session-storage state of the old dashboard:
// nothing in this service reads session data from anywhere but a Session.
type Session struct {
	Token       string      `json:"token"`
	Utilisateur Utilisateur `json:"utilisateur"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// UtilisateurRepository defines the account operations of the hotel API
type UtilisateurRepository interface {
	// Login authenticates against the hotel API and returns the account
	Login(email, motDePasse string) (*Utilisateur, error)
	GetByID(id string) (*Utilisateur, error)
	Update(id string, utilisateur *Utilisateur) error
	// UpdateMotDePasse changes the account password
	UpdateMotDePasse(id, ancien, nouveau string) error
}
