package api

import (
	"context"
	"net/http"

	"github.com/carelinkhq/carectl/internal/model"
)

// Caregivers fetches a page of the caregiver roster with its summary metrics.
func (c *Client) Caregivers(ctx context.Context, p ListParams) (*model.Envelope[model.CaregiverList], error) {
	return request[model.CaregiverList](ctx, c, http.MethodGet, "/users/caregivers", p.query(), nil)
}

// Caregiver fetches a single caregiver's full profile including the KYC
// document states.
func (c *Client) Caregiver(ctx context.Context, id string) (*model.Envelope[model.CaregiverDetail], error) {
	return request[model.CaregiverDetail](ctx, c, http.MethodGet, "/users/caregivers/"+id, nil, nil)
}
