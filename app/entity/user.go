package entity

import (
	"database/sql"
	"time"
)

// User is a registered account. ResetToken and ResetTokenExpiresAt are
// either both set (an outstanding password-reset request) or both NULL.
type User struct {
	ID                  uint64
	Email               string
	PasswordHash        string
	ResetToken          sql.NullString
	ResetTokenExpiresAt sql.NullTime
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
