package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"bookbrew_bff/internal/backend"

	"github.com/gin-gonic/gin"
)

// respondBackendError relaie une erreur du backend vers le navigateur :
// le status upstream est conservé, tout le reste devient un 502.
func respondBackendError(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = "Erreur backend"
		}
		c.JSON(apiErr.Status, gin.H{"error": message})
		return
	}

	log.Printf("❌ Erreur appel backend: %v", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "Backend injoignable"})
}

// listParams relaie la pagination/tri/recherche des panneaux de gestion.
func listParams(c *gin.Context) backend.ListParams {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	return backend.ListParams{
		Page:     page,
		PageSize: pageSize,
		Sort:     c.Query("sort"),
		Search:   c.Query("search"),
	}
}

// pathID extrait un identifiant numérique du chemin, ou répond 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return 0, false
	}
	return id, true
}
