package data

import (
	"strings"
	"testing"

	"github.com/emzola/kritika/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationCode(t *testing.T) {
	code, err := GenerateConfirmationCode()
	require.NoError(t, err)
	assert.Len(t, code, ConfirmationCodeLength)
	for _, r := range code {
		assert.True(t, r >= 'A' && r <= 'Z', "code %q contains %q", code, r)
	}
}

func TestConfirmationCodeMatches(t *testing.T) {
	var user User
	err := user.ConfirmationCode.Set("QWERTY")
	require.NoError(t, err)

	match, err := user.ConfirmationCode.Matches("QWERTY")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = user.ConfirmationCode.Matches("ZXCVBN")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestValidateUser(t *testing.T) {
	valid := func() *User {
		var user User
		user.Username = "alice"
		user.Email = "alice@example.com"
		user.Role = RoleUser
		err := user.ConfirmationCode.Set("ABCDEF")
		require.NoError(t, err)
		return &user
	}

	t.Run("valid user", func(t *testing.T) {
		v := validator.New()
		ValidateUser(v, valid())
		assert.True(t, v.Valid(), "errors: %v", v.Errors)
	})

	t.Run("missing email", func(t *testing.T) {
		user := valid()
		user.Email = ""
		v := validator.New()
		ValidateUser(v, user)
		assert.Contains(t, v.Errors, "email")
	})

	t.Run("malformed email", func(t *testing.T) {
		user := valid()
		user.Email = "not-an-email"
		v := validator.New()
		ValidateUser(v, user)
		assert.Contains(t, v.Errors, "email")
	})

	t.Run("missing username", func(t *testing.T) {
		user := valid()
		user.Username = ""
		v := validator.New()
		ValidateUser(v, user)
		assert.Contains(t, v.Errors, "username")
	})

	t.Run("overlong username", func(t *testing.T) {
		user := valid()
		user.Username = strings.Repeat("a", 600)
		v := validator.New()
		ValidateUser(v, user)
		assert.Contains(t, v.Errors, "username")
	})

	t.Run("unknown role", func(t *testing.T) {
		user := valid()
		user.Role = Role("wizard")
		v := validator.New()
		ValidateUser(v, user)
		assert.Contains(t, v.Errors, "role")
	})

	t.Run("empty role rejected", func(t *testing.T) {
		user := valid()
		user.Role = ""
		v := validator.New()
		ValidateUser(v, user)
		assert.Contains(t, v.Errors, "role")
	})
}

func TestAnonymousUser(t *testing.T) {
	assert.True(t, AnonymousUser.IsAnonymous())
	user := &User{ID: 1}
	assert.False(t, user.IsAnonymous())
}
