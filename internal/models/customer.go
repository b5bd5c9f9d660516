package models

// Customer est un client de la boutique (panneau de gestion des clients).
type Customer struct {
	ID        int64     `json:"id,omitempty"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName,omitempty"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	BirthDate string    `json:"birthDate,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	Status    string    `json:"status,omitempty"`
	Addresses []Address `json:"addresses,omitempty"`
}

// Address est une adresse de livraison ou de facturation d'un client.
type Address struct {
	ID           int64  `json:"id,omitempty"`
	Street       string `json:"street"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	ZipCode      string `json:"zipCode,omitempty"`
	Kind         string `json:"kind,omitempty"`
}
