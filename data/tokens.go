package data

import (
	"time"

	"github.com/emzola/kritika/internal/validator"
)

// ScopeAuthentication is the scope for access tokens issued in exchange for
// an email and confirmation code.
const ScopeAuthentication = "authentication"

// Token defines an opaque bearer token. Only the SHA-256 hash is persisted.
type Token struct {
	Plaintext string    `json:"token"`
	Hash      []byte    `json:"-"`
	UserID    int64     `json:"-"`
	Expiry    time.Time `json:"expiry"`
	Scope     string    `json:"-"`
}

func ValidateTokenPlaintext(v *validator.Validator, tokenPlaintext string) {
	v.Check(tokenPlaintext != "", "token", "must be provided")
	v.Check(len(tokenPlaintext) == 26, "token", "must be 26 bytes long")
}
