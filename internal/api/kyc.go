package api

import (
	"context"
	"net/http"

	"github.com/carelinkhq/carectl/internal/model"
)

// VerifyDocument approves or rejects one KYC document for a user. The doc
// slug is one of model.DocValidID, model.DocWorkAuthorization, or
// model.DocPassport; the endpoint is shared by caregivers and care seekers.
func (c *Client) VerifyDocument(ctx context.Context, userID, doc string, verified bool) (*model.Envelope[model.VerificationResult], error) {
	body := model.VerifyDocumentRequest{Verified: verified}
	return request[model.VerificationResult](ctx, c, http.MethodPost, "/kyc/admin/"+userID+"/verify-"+doc, nil, body)
}
