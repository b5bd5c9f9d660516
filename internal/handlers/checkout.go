package handlers

import (
	"errors"
	"net/http"

	"bookbrew_bff/internal/checkout"
	"bookbrew_bff/internal/middleware"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler expose la soumission de commande.
type CheckoutHandler struct {
	service *checkout.Service
}

func NewCheckoutHandler(service *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// POST /bff/checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var input struct {
		AddressID     int64  `json:"addressId"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	order, err := h.service.Submit(c.Request.Context(), middleware.PrincipalID(c), input.AddressID, input.PaymentMethod)
	switch {
	case errors.Is(err, checkout.ErrMissingAddress),
		errors.Is(err, checkout.ErrMissingPaymentMethod),
		errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, checkout.ErrAlreadyInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		respondBackendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Commande créée avec succès",
		"order":   order,
	})
}
