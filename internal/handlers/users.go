package handlers

import (
	"net/http"

	"bookbrew_bff/internal/backend"
	"bookbrew_bff/internal/models"

	"github.com/gin-gonic/gin"
)

// UserHandler relaie le panneau de gestion des utilisateurs du back-office.
type UserHandler struct {
	backend *backend.Client
}

func NewUserHandler(client *backend.Client) *UserHandler {
	return &UserHandler{backend: client}
}

// GET /bff/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.backend.ListUsers(c.Request.Context(), listParams(c))
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GET /bff/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.backend.GetUser(c.Request.Context(), id)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /bff/users
func (h *UserHandler) Create(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	created, err := h.backend.CreateUser(c.Request.Context(), &user)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /bff/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	updated, err := h.backend.UpdateUser(c.Request.Context(), id, &user)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /bff/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.backend.DeleteUser(c.Request.Context(), id); err != nil {
		respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Utilisateur supprimé"})
}
