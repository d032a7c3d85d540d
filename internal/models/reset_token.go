package models

import "time"

// ResetToken is the row shape of the password_reset_tokens table.
type ResetToken struct {
	ID      int64     `db:"id"`
	UserID  int64     `db:"user_id"`
	Token   string    `db:"token"`
	Expires time.Time `db:"expires"`
}
