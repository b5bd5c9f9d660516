package backend

import (
	"context"
	"fmt"
	"net/http"

	"bookbrew_bff/internal/models"
)

// ListProducts relaie la pagination/le filtre du panneau produits.
func (c *Client) ListProducts(ctx context.Context, params ListParams) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", params.values(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct retourne un produit du catalogue. C'est ici que le panier fige
// le prix : le descripteur retourné est la source du LineItem.
func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, product *models.Product) (*models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, nil)
}

// ListPromotions retourne les promotions actives (données de la page checkout).
func (c *Client) ListPromotions(ctx context.Context) ([]models.Promotion, error) {
	var promotions []models.Promotion
	if err := c.do(ctx, http.MethodGet, "/promotions", nil, nil, &promotions); err != nil {
		return nil, err
	}
	return promotions, nil
}

// ListPaymentMethods retourne les moyens de paiement proposés au checkout.
func (c *Client) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := c.do(ctx, http.MethodGet, "/payment-methods", nil, nil, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}
