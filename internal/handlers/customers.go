package handlers

import (
	"net/http"

	"bookbrew_bff/internal/backend"
	"bookbrew_bff/internal/models"

	"github.com/gin-gonic/gin"
)

// CustomerHandler relaie le panneau de gestion des clients.
type CustomerHandler struct {
	backend *backend.Client
}

func NewCustomerHandler(client *backend.Client) *CustomerHandler {
	return &CustomerHandler{backend: client}
}

// GET /bff/customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.backend.ListCustomers(c.Request.Context(), listParams(c))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// GET /bff/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	customer, err := h.backend.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// POST /bff/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	created, err := h.backend.CreateCustomer(c.Request.Context(), &customer)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /bff/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	updated, err := h.backend.UpdateCustomer(c.Request.Context(), id, &customer)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /bff/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.backend.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client supprimé"})
}
