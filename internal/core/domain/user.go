package domain

import "time"

// Provider identifies how an account authenticates.
type Provider string

const (
	ProviderCredentials Provider = "credentials"
	ProviderGoogle      Provider = "google"
	ProviderNaver       Provider = "naver"
)

// User represents a user of the application in the domain.
// Exactly one of PasswordHash or SocialID is meaningfully set for the
// account's primary auth method; linking a social identity to a credential
// account clears PasswordHash.
type User struct {
	ID           int64     `json:"id"` // Primary key, store-generated
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`               // Empty for social-only accounts
	SocialID     string    `json:"-"`               // External identity, unique when present
	Image        string    `json:"image,omitempty"` // Profile image URI
	Provider     Provider  `json:"provider"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsSocialOnly reports whether the account has no credential login.
func (u *User) IsSocialOnly() bool {
	return u.PasswordHash == ""
}

// UserPatch carries a partial update; nil fields are left untouched.
// PasswordHash must already be hashed by the caller.
type UserPatch struct {
	Name          *string
	PasswordHash  *string
	SocialID      *string
	Image         *string
	Provider      *Provider
	ClearPassword bool // Set password to NULL, used when linking a social identity
}

// NewUserData carries the fields needed to create a user record.
type NewUserData struct {
	Email        string
	Name         string
	PasswordHash string // Empty for social accounts
	SocialID     string // Empty for credential accounts
	Image        string
	Provider     Provider
}
