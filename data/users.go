package data

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/emzola/kritika/internal/validator"
	"golang.org/x/crypto/bcrypt"
)

// ConfirmationCodeLength is the length of the one-time code mailed to a
// user on registration.
const ConfirmationCodeLength = 6

// GenerateConfirmationCode returns a random code of uppercase letters.
func GenerateConfirmationCode() (string, error) {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	code := make([]byte, ConfirmationCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		code[i] = letters[n.Int64()]
	}
	return string(code), nil
}

// Role determines the authorization outcomes for a user. There is no
// implicit default: every persisted user carries an explicit role.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
	RoleSuperuser Role = "superuser"
)

// Roles lists every valid role value.
var Roles = []string{string(RoleUser), string(RoleModerator), string(RoleAdmin), string(RoleSuperuser)}

// IsAdmin reports whether the role carries full administrative rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperuser
}

// IsModerator reports whether the role may moderate other users' reviews and comments.
func (r Role) IsModerator() bool {
	return r == RoleModerator || r.IsAdmin()
}

var AnonymousUser = &User{}

// User defines a user model.
type User struct {
	ID               int64     `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name,omitempty"`
	LastName         string    `json:"last_name,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	Role             Role      `json:"role"`
	ConfirmationCode secret    `json:"-"`
	Version          int32     `json:"-"`
}

// Check if a user instance is the anonymous user.
func (u *User) IsAnonymous() bool {
	return u == AnonymousUser
}

// secret holds the plaintext and hashed versions of a user's one-time
// confirmation code. The code stands in for a password during token
// issuance, so it is stored the same way a password would be.
// The plaintext field is a *pointer* to a string, so that we're able
// to distinguish between a plaintext code not being present in the
// struct at all, versus a plaintext code which is the empty string.
type secret struct {
	Plaintext *string
	Hash      []byte
}

// Set calculates the bcrypt hash of a plaintext confirmation code.
func (s *secret) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	s.Plaintext = &plaintext
	s.Hash = hash
	return nil
}

// Matches checks whether the provided plaintext code matches the stored hash,
// returning true if it matches and false otherwise.
func (s *secret) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(s.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}
	return true, nil
}

func ValidateEmail(v *validator.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(validator.Matches(email, validator.EmailRX), "email", "must be a valid email address")
}

func ValidateUsername(v *validator.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(len(username) <= 150, "username", "must not be more than 150 bytes long")
}

func ValidateRole(v *validator.Validator, role Role) {
	v.Check(role != "", "role", "must be provided")
	v.Check(validator.PermittedValue(string(role), Roles...), "role", "must be one of user, moderator, admin or superuser")
}

func ValidateConfirmationCodePlaintext(v *validator.Validator, code string) {
	v.Check(code != "", "confirmation_code", "must be provided")
	v.Check(len(code) == ConfirmationCodeLength, "confirmation_code", "must be exactly 6 characters long")
}

func ValidateUser(v *validator.Validator, user *User) {
	ValidateUsername(v, user.Username)
	ValidateEmail(v, user.Email)
	ValidateRole(v, user.Role)
	v.Check(len(user.Bio) <= 500, "bio", "must not be more than 500 bytes long")
	if user.ConfirmationCode.Hash == nil {
		panic("missing confirmation code hash for user")
	}
}
