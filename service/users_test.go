package service

import (
	"testing"

	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterByEmail(t *testing.T) {
	t.Run("derives the username from the email local part", func(t *testing.T) {
		var registered *data.User
		repo := &stubRepo{
			registerUser: func(user *data.User) error {
				user.ID = 1
				user.Version = 1
				registered = user
				return nil
			},
		}
		svc := newTestService(repo)

		user, err := svc.RegisterByEmail("alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, data.RoleUser, user.Role)
		require.NotNil(t, registered)
		assert.NotEmpty(t, registered.ConfirmationCode.Hash)
	})

	t.Run("rejects a second registration with the same email", func(t *testing.T) {
		repo := &stubRepo{
			registerUser: func(user *data.User) error {
				return repository.ErrDuplicateRecord
			},
		}
		svc := newTestService(repo)

		_, err := svc.RegisterByEmail("alice@example.com")
		assert.ErrorIs(t, err, ErrFailedValidation)

		var fieldErr interface{ Fields() map[string]string }
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "email")
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		svc := newTestService(&stubRepo{})

		_, err := svc.RegisterByEmail("not-an-email")
		assert.ErrorIs(t, err, ErrFailedValidation)

		var fieldErr interface{ Fields() map[string]string }
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "email")
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("requires an explicit role", func(t *testing.T) {
		svc := newTestService(&stubRepo{})

		_, err := svc.CreateUser("carol", "carol@example.com", "", "", "", "")
		assert.ErrorIs(t, err, ErrFailedValidation)

		var fieldErr interface{ Fields() map[string]string }
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "role")
	})

	t.Run("creates a user with the given role", func(t *testing.T) {
		repo := &stubRepo{
			registerUser: func(user *data.User) error {
				user.ID = 2
				user.Version = 1
				return nil
			},
		}
		svc := newTestService(repo)

		user, err := svc.CreateUser("carol", "carol@example.com", "Carol", "", "", "moderator")
		require.NoError(t, err)
		assert.Equal(t, data.RoleModerator, user.Role)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("leaves nil fields unchanged", func(t *testing.T) {
		user := &data.User{ID: 1, Username: "alice", Email: "alice@example.com", Role: data.RoleUser, Bio: "Hi."}
		require.NoError(t, user.ConfirmationCode.Set("ABCDEF"))

		repo := &stubRepo{
			updateUser: func(user *data.User) error { return nil },
		}
		svc := newTestService(repo)

		firstName := "Alice"
		updated, err := svc.UpdateUser(user, nil, &firstName, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Alice", updated.FirstName)
		assert.Equal(t, "Hi.", updated.Bio)
	})

	t.Run("surfaces a duplicate email as a validation error", func(t *testing.T) {
		user := &data.User{ID: 1, Username: "alice", Email: "alice@example.com", Role: data.RoleUser}
		require.NoError(t, user.ConfirmationCode.Set("ABCDEF"))

		repo := &stubRepo{
			updateUser: func(user *data.User) error { return repository.ErrDuplicateRecord },
		}
		svc := newTestService(repo)

		email := "taken@example.com"
		_, err := svc.UpdateUser(user, &email, nil, nil, nil, nil)
		assert.ErrorIs(t, err, ErrFailedValidation)
	})
}
