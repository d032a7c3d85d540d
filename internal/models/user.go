package models

import (
	"database/sql"
	"time"
)

// User is the row shape of the users table. Password, social id and image
// are nullable: credential accounts have no social_id, social accounts have
// no password.
type User struct {
	ID        int64          `db:"id"`
	Email     string         `db:"email"`
	Name      string         `db:"name"`
	Password  sql.NullString `db:"password"`
	SocialID  sql.NullString `db:"social_id"`
	Image     sql.NullString `db:"image"`
	Provider  string         `db:"provider"`
	CreatedAt time.Time      `db:"created_at"`
}
