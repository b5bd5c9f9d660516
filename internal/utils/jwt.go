package utils

import (
	"time"

	"bookbrew_bff/internal/config"
	"bookbrew_bff/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenTTL est la durée de vie du token de session.
const SessionTokenTTL = 24 * time.Hour

// GenerateJWT émet le token de session porté par le navigateur après login.
// Il ne fait que référencer le principal (user_id) : la session Redis reste
// la source de vérité. Le jti permet la révocation au logout.
func GenerateJWT(principal *models.Principal) (string, error) {
	claims := jwt.MapClaims{
		"jti":     uuid.NewString(),
		"user_id": principal.ID,
		"email":   principal.Email,
		"profile": principal.Profile.Name,
		"exp":     time.Now().Add(SessionTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret()))
}
