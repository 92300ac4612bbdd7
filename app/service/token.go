package service

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// resetTokenBytes is the entropy of a reset token: 20 random bytes give a
// 160-bit, 40-character hex token.
const resetTokenBytes = 20

// NewResetToken returns a fresh URL-safe reset token and its expiry,
// computed as now plus ttl.
func NewResetToken(ttl time.Duration) (string, time.Time, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}
	return hex.EncodeToString(buf), time.Now().Add(ttl), nil
}
