package handlers

import (
	"net/http"

	"bookbrew_bff/internal/backend"
	"bookbrew_bff/internal/middleware"

	"github.com/gin-gonic/gin"
)

// OrderHandler relaie le panneau commandes du back-office et l'historique
// "mes commandes" côté boutique. La création passe par le checkout, pas ici.
type OrderHandler struct {
	backend *backend.Client
}

func NewOrderHandler(client *backend.Client) *OrderHandler {
	return &OrderHandler{backend: client}
}

// GET /bff/orders (back-office)
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.backend.ListOrders(c.Request.Context(), listParams(c))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GET /bff/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.backend.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PATCH /bff/orders/:id/status (back-office)
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut requis"})
		return
	}
	order, err := h.backend.UpdateOrderStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /bff/my-orders (boutique)
func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.backend.ListCustomerOrders(c.Request.Context(), middleware.PrincipalID(c))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
