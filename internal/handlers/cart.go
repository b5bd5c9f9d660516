package handlers

import (
	"context"
	"errors"
	"net/http"

	"bookbrew_bff/internal/middleware"
	"bookbrew_bff/internal/models"
	"bookbrew_bff/internal/store"

	"github.com/gin-gonic/gin"
)

// ProductGetter est la vue du catalogue dont le panier a besoin : un seul
// produit, au moment de l'ajout. Le prix retourné est figé dans la ligne.
type ProductGetter interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

// CartHandler expose le Cart Store au navigateur.
type CartHandler struct {
	carts    *store.CartStore
	products ProductGetter
}

func NewCartHandler(carts *store.CartStore, products ProductGetter) *CartHandler {
	return &CartHandler{carts: carts, products: products}
}

// GET /bff/cart
func (h *CartHandler) Get(c *gin.Context) {
	snap := h.carts.Get(c.Request.Context(), middleware.PrincipalID(c))
	c.JSON(http.StatusOK, snap)
}

// POST /bff/cart/items
func (h *CartHandler) Add(c *gin.Context) {
	var input struct {
		ProductID int64 `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), input.ProductID)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	item := models.LineItem{
		ProductID:          product.ID,
		Name:               product.Name,
		UnitPrice:          product.Price,
		DiscountPercentage: product.DiscountPercentage,
		ImageURL:           product.FirstImage(),
	}

	snap := h.carts.AddItem(c.Request.Context(), middleware.PrincipalID(c), item)
	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"cart":    snap,
	})
}

// PUT /bff/cart/items/:productId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	snap, err := h.carts.UpdateQuantity(c.Request.Context(), middleware.PrincipalID(c), productID, input.Quantity)
	if errors.Is(err, store.ErrInvalidQuantity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour panier"})
		return
	}

	c.JSON(http.StatusOK, snap)
}

// DELETE /bff/cart/items/:productId
func (h *CartHandler) Remove(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	snap := h.carts.RemoveItem(c.Request.Context(), middleware.PrincipalID(c), productID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"cart":    snap,
	})
}

// DELETE /bff/cart
func (h *CartHandler) Clear(c *gin.Context) {
	snap := h.carts.Clear(c.Request.Context(), middleware.PrincipalID(c))
	c.JSON(http.StatusOK, gin.H{
		"message": "Panier vidé avec succès",
		"cart":    snap,
	})
}
