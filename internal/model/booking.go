package model

import "time"

// Booking statuses reported by the API.
const (
	BookingPending   = "pending"
	BookingActive    = "active"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking is a care engagement between a care seeker and a caregiver.
type Booking struct {
	ID             string     `json:"id"`
	CaregiverID    string     `json:"caregiver_id"`
	CaregiverName  string     `json:"caregiver_name"`
	CareSeekerID   string     `json:"careseeker_id"`
	CareSeekerName string     `json:"careseeker_name"`
	Status         string     `json:"status"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	TotalAmount    float64    `json:"total_amount"`
	Currency       string     `json:"currency"`
	CreatedAt      time.Time  `json:"created_at"`
}

// BookingList is the data payload of GET /bookings.
type BookingList struct {
	Bookings   []Booking  `json:"bookings"`
	Pagination Pagination `json:"pagination"`
}

// Transaction is a payment transaction tied to a booking.
type Transaction struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Reference string    `json:"reference"`
	Type      string    `json:"type"` // "charge", "payout", "refund"
	Status    string    `json:"status"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionList is the data payload of GET /transactions.
type TransactionList struct {
	Transactions []Transaction `json:"transactions"`
	Pagination   Pagination    `json:"pagination"`
}
