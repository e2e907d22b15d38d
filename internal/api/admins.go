package api

import (
	"context"
	"net/http"

	"github.com/carelinkhq/carectl/internal/model"
)

// Admins lists all back-office staff accounts.
func (c *Client) Admins(ctx context.Context) (*model.Envelope[[]model.Admin], error) {
	return request[[]model.Admin](ctx, c, http.MethodGet, "/admin", nil, nil)
}

// CreateAdmin provisions a new staff account.
func (c *Client) CreateAdmin(ctx context.Context, req model.CreateAdminRequest) (*model.Envelope[model.Admin], error) {
	return request[model.Admin](ctx, c, http.MethodPost, "/admin", nil, req)
}
