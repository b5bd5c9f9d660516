package handlers

import (
	"net/http"

	"bookbrew_bff/internal/backend"
	"bookbrew_bff/internal/models"

	"github.com/gin-gonic/gin"
)

// ProductHandler relaie le catalogue : lecture côté boutique, CRUD côté
// panneau de gestion. Aucun état local, tout vient du backend.
type ProductHandler struct {
	backend *backend.Client
}

func NewProductHandler(client *backend.Client) *ProductHandler {
	return &ProductHandler{backend: client}
}

// GET /bff/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.backend.ListProducts(c.Request.Context(), listParams(c))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /bff/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.backend.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// POST /bff/products
func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	created, err := h.backend.CreateProduct(c.Request.Context(), &product)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /bff/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	updated, err := h.backend.UpdateProduct(c.Request.Context(), id, &product)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /bff/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.backend.DeleteProduct(c.Request.Context(), id); err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
