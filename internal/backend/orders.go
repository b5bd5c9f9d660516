package backend

import (
	"context"
	"fmt"
	"net/http"

	"bookbrew_bff/internal/models"
)

// CreateOrder soumet la commande construite au checkout. Un seul appel, pas
// de retry : soit la commande est créée, soit rien ne s'est passé côté BFF.
func (c *Client) CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders relaie la pagination du panneau commandes du back-office.
func (c *Client) ListOrders(ctx context.Context, params ListParams) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", params.values(), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListCustomerOrders retourne l'historique de commandes d'un client ("mes commandes").
func (c *Client) ListCustomerOrders(ctx context.Context, customerID int64) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d/orders", customerID), nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus change le statut d'une commande depuis le back-office.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/status", id), nil, orderStatusRequest{Status: status}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
