package domain

import "time"

// ResetToken is a short-lived single-use secret authorizing one password
// change. Valid only while Expires is in the future; deleted on first
// successful verification.
type ResetToken struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"userID"`
	Token   string    `json:"-"` // Opaque, never exposed in responses
	Expires time.Time `json:"expires"`
}
