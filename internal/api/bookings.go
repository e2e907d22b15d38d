package api

import (
	"context"
	"net/http"

	"github.com/carelinkhq/carectl/internal/model"
)

// Bookings fetches a page of care bookings.
func (c *Client) Bookings(ctx context.Context, p ListParams) (*model.Envelope[model.BookingList], error) {
	return request[model.BookingList](ctx, c, http.MethodGet, "/bookings", p.query(), nil)
}

// Booking fetches a single booking.
func (c *Client) Booking(ctx context.Context, id string) (*model.Envelope[model.Booking], error) {
	return request[model.Booking](ctx, c, http.MethodGet, "/bookings/"+id, nil, nil)
}

// Transactions fetches a page of payment transactions.
func (c *Client) Transactions(ctx context.Context, p ListParams) (*model.Envelope[model.TransactionList], error) {
	return request[model.TransactionList](ctx, c, http.MethodGet, "/transactions", p.query(), nil)
}
