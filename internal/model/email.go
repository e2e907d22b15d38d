package model

import "time"

// EmailRequest is the body for POST /admin/send-email.
type EmailRequest struct {
	RecipientEmail string `json:"recipient_email"`
	Title          string `json:"title"`
	Body           string `json:"body"`
}

// EmailResult is the data payload returned after a transactional email is
// queued for delivery.
type EmailResult struct {
	MessageID string    `json:"message_id"`
	QueuedAt  time.Time `json:"queued_at"`
}
