package handlers

import (
	"context"
	"net/http"
	"time"

	"bookbrew_bff/internal/cache"
	"bookbrew_bff/internal/middleware"
	"bookbrew_bff/internal/models"
	"bookbrew_bff/internal/store"
	"bookbrew_bff/internal/utils"

	"github.com/gin-gonic/gin"
)

// Authenticator est le service d'authentification du backend.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.Principal, error)
}

// AuthHandler relaie le login au backend et maintient le Session Store.
type AuthHandler struct {
	auth      Authenticator
	sessions  *store.SessionStore
	blacklist *cache.TokenBlacklist
}

func NewAuthHandler(auth Authenticator, sessions *store.SessionStore, blacklist *cache.TokenBlacklist) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, blacklist: blacklist}
}

// POST /bff/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	principal, err := h.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	if err := h.sessions.Login(c.Request.Context(), principal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création session"})
		return
	}

	token, err := utils.GenerateJWT(principal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  principal,
	})
}

// POST /bff/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	h.sessions.Logout(ctx, middleware.PrincipalID(c))

	// Révoque le token porté pour le reste de sa durée de vie : détruire la
	// session seule laisserait un JWT encore valide dans la nature.
	if jti := c.GetString("jti"); jti != "" && h.blacklist != nil {
		until := time.Until(time.Unix(c.GetInt64("exp"), 0))
		if err := h.blacklist.Revoke(ctx, jti, until); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur révocation token"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}

// GET /bff/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := h.sessions.Current(c.Request.Context(), middleware.PrincipalID(c))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}
	c.JSON(http.StatusOK, principal)
}
