package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
)

const (
	loginPath    = "/api/v1/auth/login"
	registerPath = "/api/v1/auth/register"
)

// AuthGateway talks to the upstream authentication endpoints.
type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (g *AuthGateway) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	err := g.client.do(ctx, http.MethodPost, loginPath, "", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		// A 401 on login is a credentials failure, not an expired session.
		if errors.Is(err, domain.ErrSessionExpired) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if out.Token == "" {
		return "", domain.ErrInvalidPayload
	}
	return out.Token, nil
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Address   string `json:"address,omitempty"`
}

func (g *AuthGateway) Register(ctx context.Context, in ports.RegisterInput) error {
	return g.client.do(ctx, http.MethodPost, registerPath, "", registerRequest{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Address:   in.Address,
	}, nil)
}
