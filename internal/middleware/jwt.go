package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"bookbrew_bff/internal/cache"
	"bookbrew_bff/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthRequired vérifie le token de session (signature, expiration,
// révocation) et met user_id / email / profile dans le contexte Gin pour
// les handlers suivants.
func AuthRequired(blacklist *cache.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token manquant"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Format Authorization invalide"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
			}
			return []byte(config.JWTSecret()), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
			c.Abort()
			return
		}

		// Les nombres JSON arrivent en float64 dans MapClaims.
		rawID, ok := claims["user_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user_id manquant"})
			c.Abort()
			return
		}

		if jti, ok := claims["jti"].(string); ok {
			if blacklist != nil && blacklist.IsRevoked(c.Request.Context(), jti) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token révoqué"})
				c.Abort()
				return
			}
			c.Set("jti", jti)
		}
		if exp, ok := claims["exp"].(float64); ok {
			c.Set("exp", int64(exp))
		}

		c.Set("user_id", int64(rawID))
		if email, ok := claims["email"].(string); ok {
			c.Set("email", email)
		}
		if profile, ok := claims["profile"].(string); ok {
			c.Set("profile", profile)
		}

		c.Next()
	}
}

// PrincipalID retourne le user_id posé par AuthRequired.
func PrincipalID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}
