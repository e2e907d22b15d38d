package model

import "time"

// KYC document slugs accepted by the verification endpoints
// (POST /kyc/admin/{userId}/verify-<slug>).
const (
	DocValidID           = "valid-id"
	DocWorkAuthorization = "work-authorization"
	DocPassport          = "passport"
)

// KYC document review states reported by the API.
const (
	KYCPending  = "pending"
	KYCVerified = "verified"
	KYCRejected = "rejected"
)

// Caregiver is a caregiver profile as it appears in roster listings.
type Caregiver struct {
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

// KYCDocument is one identity document attached to a user's KYC profile.
type KYCDocument struct {
	Type       string     `json:"type"`
	Status     string     `json:"status"`
	URL        string     `json:"url,omitempty"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

// KYCProfile groups the documents reviewed during caregiver onboarding.
type KYCProfile struct {
	Status            string       `json:"status"`
	ValidID           *KYCDocument `json:"valid_id,omitempty"`
	WorkAuthorization *KYCDocument `json:"work_authorization,omitempty"`
	Passport          *KYCDocument `json:"passport,omitempty"`
}

// CaregiverDetail is the full profile returned by GET /users/caregivers/{id}.
type CaregiverDetail struct {
	Caregiver
	Bio            string      `json:"bio,omitempty"`
	YearsExp       int         `json:"years_experience"`
	HourlyRate     float64     `json:"hourly_rate"`
	CompletedJobs  int         `json:"completed_jobs"`
	Rating         float64     `json:"rating"`
	KYC            *KYCProfile `json:"kyc,omitempty"`
	SuspendedAt    *time.Time  `json:"suspended_at,omitempty"`
	LastActivityAt *time.Time  `json:"last_activity_at,omitempty"`
}

// CaregiverList is the data payload of GET /users/caregivers.
type CaregiverList struct {
	Caregivers []Caregiver `json:"caregivers"`
	Pagination Pagination  `json:"pagination"`
	Metrics    UserMetrics `json:"metrics"`
}

// UserMetrics summarizes a user roster alongside its listing.
type UserMetrics struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Suspended  int `json:"suspended"`
	PendingKYC int `json:"pending_kyc"`
}

// VerificationResult is the data payload returned by the KYC verification
// endpoints.
type VerificationResult struct {
	UserID    string `json:"user_id"`
	Document  string `json:"document"`
	Status    string `json:"status"`
	KYCStatus string `json:"kyc_status"`
}

// VerifyDocumentRequest is the body for the KYC verification endpoints.
type VerifyDocumentRequest struct {
	Verified bool `json:"verified"`
}
