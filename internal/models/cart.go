package models

// LineItem est une ligne du panier : le prix est figé au moment de l'ajout,
// il n'est jamais re-synchronisé avec le catalogue.
type LineItem struct {
	ProductID          int64   `json:"productId"`
	Name               string  `json:"name,omitempty"`
	UnitPrice          float64 `json:"unitPrice"`
	DiscountPercentage float64 `json:"discountPercentage,omitempty"`
	Quantity           int     `json:"quantity"`
	ImageURL           string  `json:"imageUrl,omitempty"`
}

// EffectiveUnitPrice retourne le prix unitaire après remise.
func (li LineItem) EffectiveUnitPrice() float64 {
	return li.UnitPrice * (1 - li.DiscountPercentage/100)
}

// Subtotal retourne la contribution de la ligne au total du panier.
func (li LineItem) Subtotal() float64 {
	return li.EffectiveUnitPrice() * float64(li.Quantity)
}

// CartSnapshot est l'état complet du panier à un instant donné.
// Total est dérivé : toujours recalculé depuis Items, jamais muté directement.
type CartSnapshot struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}

// ComputeTotal recalcule le total depuis zéro à partir des lignes.
// Pas de total incrémental : il ne peut donc jamais dériver de la source.
func (s *CartSnapshot) ComputeTotal() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Subtotal()
	}
	return total
}

// IsEmpty indique si le panier ne contient aucune ligne.
func (s *CartSnapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

// EmptyCart retourne un panier vide avec un total à zéro.
func EmptyCart() *CartSnapshot {
	return &CartSnapshot{Items: []LineItem{}, Total: 0}
}
