package handlers

import (
	"net/http"

	"bookbrew_bff/internal/backend"
	"bookbrew_bff/internal/middleware"
	"bookbrew_bff/internal/models"

	"github.com/gin-gonic/gin"
)

// StorefrontHandler relaie les données de la page checkout : adresses du
// client connecté, moyens de paiement et promotions.
type StorefrontHandler struct {
	backend *backend.Client
}

func NewStorefrontHandler(client *backend.Client) *StorefrontHandler {
	return &StorefrontHandler{backend: client}
}

// GET /bff/my-addresses
func (h *StorefrontHandler) MyAddresses(c *gin.Context) {
	addresses, err := h.backend.ListAddresses(c.Request.Context(), middleware.PrincipalID(c))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// POST /bff/my-addresses
func (h *StorefrontHandler) CreateAddress(c *gin.Context) {
	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	created, err := h.backend.CreateAddress(c.Request.Context(), middleware.PrincipalID(c), &address)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /bff/payment-methods
func (h *StorefrontHandler) PaymentMethods(c *gin.Context) {
	methods, err := h.backend.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentMethods": methods})
}

// GET /bff/promotions
func (h *StorefrontHandler) Promotions(c *gin.Context) {
	promotions, err := h.backend.ListPromotions(c.Request.Context())
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"promotions": promotions})
}
