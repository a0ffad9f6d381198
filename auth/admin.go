package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AdminCreds holds the single admin account the console authenticates
// against. The password is stored only as a bcrypt hash.
type AdminCreds struct {
	Email        string
	PasswordHash []byte
}

func (c AdminCreds) Configured() bool {
	return c.Email != "" && len(c.PasswordHash) > 0
}

// Verify checks a login attempt. Email comparison is case-insensitive
// and constant-time.
func (c AdminCreds) Verify(email, password string) bool {
	if !c.Configured() {
		return false
	}
	want := strings.ToLower(c.Email)
	got := strings.ToLower(email)
	if subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)) == nil
}
