// Package validation holds the syntactic signup/profile rules, applied
// before any authenticator or store call. Rules never touch the store.
// Each rule returns the full ordered list of violations for its field
// rather than stopping at the first failure, so forms can surface every
// problem at once.
package validation

import (
	"regexp"

	"github.com/minjaeoh/user_auth_app/internal/apperrors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)
	symbolPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// Email checks that the address is non-empty and structurally valid.
func Email(email string) []string {
	var violations []string
	if email == "" {
		violations = append(violations, "Email is required.")
		return violations
	}
	if !emailPattern.MatchString(email) {
		violations = append(violations, "Enter a valid email address.")
	}
	return violations
}

// Password checks length and all four character classes independently;
// every failing class is reported, none short-circuits another.
func Password(password string) []string {
	var violations []string
	if password == "" {
		violations = append(violations, "Password is required.")
		return violations
	}
	if len(password) < 8 {
		violations = append(violations, "Password must be at least 8 characters.")
	}
	if !upperPattern.MatchString(password) {
		violations = append(violations, "Password must contain at least one uppercase letter.")
	}
	if !lowerPattern.MatchString(password) {
		violations = append(violations, "Password must contain at least one lowercase letter.")
	}
	if !digitPattern.MatchString(password) {
		violations = append(violations, "Password must contain at least one digit.")
	}
	if !symbolPattern.MatchString(password) {
		violations = append(violations, "Password must contain at least one special character.")
	}
	return violations
}

// Name checks that the display name is non-empty and at least 2 characters.
func Name(name string) []string {
	var violations []string
	if name == "" {
		violations = append(violations, "Name is required.")
		return violations
	}
	if len([]rune(name)) < 2 {
		violations = append(violations, "Name must be at least 2 characters.")
	}
	return violations
}

// SignUp validates a full registration form. The returned map is empty
// (HasErrors false) when every field passes.
func SignUp(name, email, password string) apperrors.ValidationErrors {
	errs := apperrors.ValidationErrors{}
	if v := Name(name); len(v) > 0 {
		errs["name"] = v
	}
	if v := Email(email); len(v) > 0 {
		errs["email"] = v
	}
	if v := Password(password); len(v) > 0 {
		errs["password"] = v
	}
	return errs
}

// ProfileUpdate validates a partial profile patch; nil fields are skipped.
func ProfileUpdate(name, password *string) apperrors.ValidationErrors {
	errs := apperrors.ValidationErrors{}
	if name != nil {
		if v := Name(*name); len(v) > 0 {
			errs["name"] = v
		}
	}
	if password != nil {
		if v := Password(*password); len(v) > 0 {
			errs["password"] = v
		}
	}
	return errs
}

// ResetPassword validates the new password submitted with a reset token.
func ResetPassword(password string) apperrors.ValidationErrors {
	errs := apperrors.ValidationErrors{}
	if v := Password(password); len(v) > 0 {
		errs["password"] = v
	}
	return errs
}
