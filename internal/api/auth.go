package api

import (
	"context"
	"net/http"

	"github.com/carelinkhq/carectl/internal/model"
)

// Login authenticates a staff user with email and password. The request is
// sent unauthenticated; storing the returned access token is the caller's
// responsibility.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Envelope[model.LoginResult], error) {
	body := model.LoginRequest{Email: email, Password: password}
	return request[model.LoginResult](ctx, c, http.MethodPost, "/admin/login", nil, body)
}

// Profile fetches the signed-in admin principal.
func (c *Client) Profile(ctx context.Context) (*model.Envelope[model.Admin], error) {
	return request[model.Admin](ctx, c, http.MethodGet, "/admin/profile", nil, nil)
}
