package model

import "time"

// Admin role tags as defined by the CareLink admin API.
const (
	RoleSuperAdmin   = "super_admin"
	RoleAdmin        = "admin"
	RoleSupportAgent = "support_agent"
)

// Admin is the principal of a signed-in back-office staff user. It is created
// server-side; the client only reads it (on login and profile refresh).
type Admin struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	IsSuspended bool       `json:"is_suspended"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FullName returns the admin's display name.
func (a Admin) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// CreateAdminRequest is the body for POST /admin.
type CreateAdminRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Password  string `json:"password"`
}

// LoginRequest is the body for POST /admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the data payload returned by a successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	Admin       Admin  `json:"admin"`
}
