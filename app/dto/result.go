package dto

import "time"

type RequestPasswordResetResult struct {
	ResetToken string
	Recipient  string
	ExpiresAt  time.Time
}
