package api

import (
	"context"
	"net/http"

	"github.com/carelinkhq/carectl/internal/model"
)

// Dashboard fetches the aggregate metric bundle for the overview screen.
func (c *Client) Dashboard(ctx context.Context) (*model.Envelope[model.DashboardMetrics], error) {
	return request[model.DashboardMetrics](ctx, c, http.MethodGet, "/admin/dashboard", nil, nil)
}
