package backend

import (
	"context"
	"net/http"

	"bookbrew_bff/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authentifie un couple email/mot de passe auprès du backend et
// retourne le principal. Le mot de passe n'est jamais stocké côté BFF.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Principal, error) {
	var principal models.Principal
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &principal)
	if err != nil {
		return nil, err
	}
	return &principal, nil
}
