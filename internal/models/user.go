package models

// Profile est le rôle applicatif d'un utilisateur (ADMIN, CUSTOMER, ...).
type Profile struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// Principal est l'identité authentifiée retournée par le backend au login.
// C'est la seule source de vérité "utilisateur connecté" de toute l'application.
type Principal struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	LastName string  `json:"lastName,omitempty"`
	Email    string  `json:"email"`
	CPF      string  `json:"cpf,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Status   string  `json:"status,omitempty"`
	Profile  Profile `json:"profile"`
}

// IsAdmin indique si le principal a le profil ADMIN.
func (p *Principal) IsAdmin() bool {
	return p.Profile.Name == ProfileAdmin
}

const (
	ProfileAdmin    = "ADMIN"
	ProfileCustomer = "CUSTOMER"
)

// User est un utilisateur du back-office (panneau de gestion des utilisateurs).
type User struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name"`
	LastName string  `json:"lastName,omitempty"`
	Email    string  `json:"email"`
	Password string  `json:"password,omitempty"`
	CPF      string  `json:"cpf,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Status   string  `json:"status,omitempty"`
	Profile  Profile `json:"profile"`
}
