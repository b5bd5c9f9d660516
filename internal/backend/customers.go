package backend

import (
	"context"
	"fmt"
	"net/http"

	"bookbrew_bff/internal/models"
)

func (c *Client) ListCustomers(ctx context.Context, params ListParams) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.do(ctx, http.MethodGet, "/customers", params.values(), nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	var created models.Customer
	if err := c.do(ctx, http.MethodPost, "/customers", nil, customer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, customer *models.Customer) (*models.Customer, error) {
	var updated models.Customer
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), nil, customer, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil, nil)
}

// ListAddresses retourne les adresses d'un client (choix de livraison au checkout).
func (c *Client) ListAddresses(ctx context.Context, customerID int64) ([]models.Address, error) {
	var addresses []models.Address
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d/addresses", customerID), nil, nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *Client) CreateAddress(ctx context.Context, customerID int64, address *models.Address) (*models.Address, error) {
	var created models.Address
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/customers/%d/addresses", customerID), nil, address, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
