package api

import (
	"context"
	"net/http"

	"github.com/carelinkhq/carectl/internal/model"
)

// SendEmail sends an ad-hoc transactional email to one recipient.
func (c *Client) SendEmail(ctx context.Context, req model.EmailRequest) (*model.Envelope[model.EmailResult], error) {
	return request[model.EmailResult](ctx, c, http.MethodPost, "/admin/send-email", nil, req)
}
