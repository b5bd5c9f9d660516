package models

// Product est un article du catalogue tel que retourné par le backend.
type Product struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage,omitempty"`
	Stock              int      `json:"stock"`
	SKU                string   `json:"sku,omitempty"`
	CategoryID         int64    `json:"categoryId,omitempty"`
	ImageURLs          []string `json:"imageUrls,omitempty"`
	Status             string   `json:"status,omitempty"`
}

// FirstImage retourne la première image du produit, pour l'aperçu panier.
func (p *Product) FirstImage() string {
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs[0]
	}
	return ""
}

// Promotion est une promotion active côté backend (lecture seule ici).
type Promotion struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	DiscountPercentage float64 `json:"discountPercentage,omitempty"`
	Status             string  `json:"status,omitempty"`
}
