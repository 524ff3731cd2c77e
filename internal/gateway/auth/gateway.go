package auth

import (
	"context"
	"fmt"
	"net/http"

	"panel/internal/entities"
)

type AuthGateway struct {
	client doer
}

func New(client doer) *AuthGateway {
	return &AuthGateway{client: client}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string  `json:"access_token"`
	User        userDTO `json:"user"`
}

type userDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Login exchanges credentials for a bearer token and the user profile.
func (g *AuthGateway) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	req := loginRequest{Username: username, Password: password}

	var resp loginResponse
	if err := g.client.Do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("gateway auth, login: %w", err)
	}

	return &entities.Session{
		AccessToken: resp.AccessToken,
		User: entities.User{
			ID:       resp.User.ID,
			Username: resp.User.Username,
			FullName: resp.User.FullName,
			Role:     entities.Role(resp.User.Role),
		},
	}, nil
}
