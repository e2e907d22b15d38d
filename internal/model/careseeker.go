package model

import "time"

// CareSeeker is a care-seeker profile as it appears in roster listings.
type CareSeeker struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	City        string    `json:"city"`
	KYCStatus   string    `json:"kyc_status"`
	IsActive    bool      `json:"is_active"`
	IsSuspended bool      `json:"is_suspended"`
	CreatedAt   time.Time `json:"created_at"`
}

// CareSeekerDetail is the full profile returned by GET /users/careseekers/{id}.
type CareSeekerDetail struct {
	CareSeeker
	CareRecipients int         `json:"care_recipients"`
	BookingsMade   int         `json:"bookings_made"`
	KYC            *KYCProfile `json:"kyc,omitempty"`
	SuspendedAt    *time.Time  `json:"suspended_at,omitempty"`
	LastActivityAt *time.Time  `json:"last_activity_at,omitempty"`
}

// CareSeekerList is the data payload of GET /users/careseekers.
type CareSeekerList struct {
	CareSeekers []CareSeeker `json:"careseekers"`
	Pagination  Pagination   `json:"pagination"`
	Metrics     UserMetrics  `json:"metrics"`
}
