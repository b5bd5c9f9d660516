package middleware

import (
	"net/http"

	"bookbrew_bff/internal/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin réserve les panneaux de gestion au profil ADMIN.
// Doit être monté après AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("profile") != models.ProfileAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
			c.Abort()
			return
		}
		c.Next()
	}
}
