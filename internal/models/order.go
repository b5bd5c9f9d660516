package models

// Statuts initiaux envoyés au backend à la création d'une commande.
const (
	OrderStatusPending   = "PENDING"
	PaymentStatusPending = "PENDING"
)

// OrderItem est une ligne de commande envoyée au backend. Les montants sont
// calculés à la soumission depuis la ligne de panier correspondante.
type OrderItem struct {
	ProductID     int64   `json:"productId"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	DiscountValue float64 `json:"discountValue"`
	TotalPrice    float64 `json:"totalPrice"`
}

// Payment est le sous-objet paiement d'une commande.
type Payment struct {
	PaymentMethod   string `json:"paymentMethod"`
	Status          string `json:"status"`
	TransactionCode string `json:"transactionCode"`
}

// PaymentMethod est un moyen de paiement proposé par le backend.
type PaymentMethod struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// OrderRequest est le corps de POST /orders côté backend.
type OrderRequest struct {
	CustomerID      int64       `json:"customerId"`
	OrderItems      []OrderItem `json:"orderItems"`
	Status          string      `json:"status"`
	Payment         Payment     `json:"payment"`
	DeliveryAddress int64       `json:"deliveryAddress"`
	PromotionIDs    []int64     `json:"promotionIds"`
}

// Order est une commande telle que retournée par le backend.
type Order struct {
	ID              int64       `json:"id"`
	CustomerID      int64       `json:"customerId"`
	OrderItems      []OrderItem `json:"orderItems,omitempty"`
	Status          string      `json:"status"`
	Payment         *Payment    `json:"payment,omitempty"`
	DeliveryAddress int64       `json:"deliveryAddress,omitempty"`
	Total           float64     `json:"total,omitempty"`
	CreatedAt       string      `json:"createdAt,omitempty"`
}
