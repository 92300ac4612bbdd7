package service

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt verifier for the plaintext. The salt
// and cost are embedded in the output, so verification is self-contained.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored verifier, using
// bcrypt's constant-time comparison.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
