package api

import (
	"context"
	"net/http"

	"github.com/carelinkhq/carectl/internal/model"
)

// CareSeekers fetches a page of the care-seeker roster with its summary
// metrics.
func (c *Client) CareSeekers(ctx context.Context, p ListParams) (*model.Envelope[model.CareSeekerList], error) {
	return request[model.CareSeekerList](ctx, c, http.MethodGet, "/users/careseekers", p.query(), nil)
}

// CareSeeker fetches a single care seeker's full profile.
func (c *Client) CareSeeker(ctx context.Context, id string) (*model.Envelope[model.CareSeekerDetail], error) {
	return request[model.CareSeekerDetail](ctx, c, http.MethodGet, "/users/careseekers/"+id, nil, nil)
}
