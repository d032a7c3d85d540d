package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrUnknownEmail indicates that no user record matches the given email.
var ErrUnknownEmail = errors.New("no account registered for this email")

// ErrSocialOnlyAccount indicates the account authenticates via a social
// provider and has no password set. Checked before any hash comparison.
var ErrSocialOnlyAccount = errors.New("account uses social login only")

// ErrInvalidPassword indicates the submitted password did not match the stored hash.
var ErrInvalidPassword = errors.New("password does not match")

// ErrDuplicateEmail indicates an attempt to register an email that already exists.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrInvalidOrExpiredToken indicates a password-reset token that is absent,
// already consumed, or past its expiry.
var ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")

// ErrLinkFailure indicates the store failed while creating or linking a
// social-identity account. Callers must treat the authentication as failed.
var ErrLinkFailure = errors.New("failed to link social identity")

// ErrDeliveryFailure indicates the reset email could not be sent. The reset
// token stays valid regardless.
var ErrDeliveryFailure = errors.New("failed to deliver email")

// ErrStoreUnavailable indicates the backing store could not be reached.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrUnauthorized indicates a missing or invalid session.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationErrors maps a field name to its ordered list of human-readable
// violations. Rules are syntactic only; see internal/core/validation.
type ValidationErrors map[string][]string

func (v ValidationErrors) Error() string {
	return "validation failed"
}

// HasErrors reports whether any field accumulated a violation.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}
