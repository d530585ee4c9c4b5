package domain

// ChambreType is the room category as stored by the hotel API.
type ChambreType string

const (
	ChambreSimple    ChambreType = "Simple"
	ChambreDouble    ChambreType = "Double"
	ChambreSuite     ChambreType = "Suite"
	ChambreFamiliale ChambreType = "Familiale"
	ChambreDeluxe    ChambreType = "Deluxe"
)

// ChambreTypes lists the known types in display order. Dashboard and report
// breakdowns are zero-filled over this slice.
var ChambreTypes = []ChambreType{
	ChambreSimple,
	ChambreDouble,
	ChambreSuite,
	ChambreFamiliale,
	ChambreDeluxe,
}

type ChambreStatus string

const (
	ChambreDisponible  ChambreStatus = "Disponible"
	ChambreOccupee     ChambreStatus = "Occupée"
	ChambreMaintenance ChambreStatus = "Maintenance"
	ChambreReservee    ChambreStatus = "Réservée"
)

// Chambre represents a hotel room. The id is an opaque string owned by the
// hotel API; numero is the human-facing room number, unique across the hotel.
type Chambre struct {
	ID          string        `json:"id"`
	Numero      string        `json:"numero"`
	Type        ChambreType   `json:"type"`
	Etage       int           `json:"etage"`
	Prix        float64       `json:"prix"`
	Capacite    int           `json:"capacite"`
	Statut      ChambreStatus `json:"statut"`
	Description string        `json:"description,omitempty"`
}

// ChambreRepository defines the operations available on rooms
type ChambreRepository interface {
	// GetAll returns all rooms
	GetAll() ([]Chambre, error)
	// GetByID returns a single room by its id
	GetByID(id string) (*Chambre, error)
	// Create registers a new room and returns it with its assigned id
	Create(chambre *Chambre) (*Chambre, error)
	// Update replaces the stored fields of a room
	Update(id string, chambre *Chambre) error
	// UpdateStatut changes only the status of a room
	UpdateStatut(id string, statut ChambreStatus) error
	// Delete removes a room
	Delete(id string) error
}
