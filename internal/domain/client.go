package domain

import "time"

// Client is a hotel guest as stored by the hotel API.
type Client struct {
	ID                  string    `json:"id"`
	Nom                 string    `json:"nom"`
	Prenom              string    `json:"prenom"`
	Email               string    `json:"email"`
	Telephone           string    `json:"telephone"`
	Adresse             string    `json:"adresse,omitempty"`
	NumeroPieceIdentite string    `json:"numeroPieceIdentite,omitempty"`
	TypePieceIdentite   string    `json:"typePieceIdentite,omitempty"`
	DateCreation        time.Time `json:"dateCreation"`
}

// ClientRepository defines the operations available on clients
type ClientRepository interface {
	GetAll() ([]Client, error)
	GetByID(id string) (*Client, error)
	Create(client *Client) (*Client, error)
	Update(id string, client *Client) error
	Delete(id string) error
}
