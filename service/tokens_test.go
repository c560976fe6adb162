package service

import (
	"testing"
	"time"

	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAuthenticationToken(t *testing.T) {
	user := &data.User{ID: 5, Username: "alice", Email: "alice@example.com"}
	err := user.ConfirmationCode.Set("ABCDEF")
	require.NoError(t, err)

	t.Run("issues a token for a valid code", func(t *testing.T) {
		repo := &stubRepo{
			getUserByEmail: func(email string) (*data.User, error) {
				return user, nil
			},
			createNewToken: func(userID int64, ttl time.Duration, scope string) (*data.Token, error) {
				assert.Equal(t, user.ID, userID)
				assert.Equal(t, 24*time.Hour, ttl)
				assert.Equal(t, data.ScopeAuthentication, scope)
				return &data.Token{Plaintext: "Y3QMGX3PJ3WLRL2YRTQGQ6KRHU", UserID: userID, Expiry: time.Now().Add(ttl), Scope: scope}, nil
			},
		}
		svc := newTestService(repo)

		token, err := svc.CreateAuthenticationToken("alice@example.com", "ABCDEF")
		require.NoError(t, err)
		assert.Len(t, token.Plaintext, 26)
	})

	t.Run("returns invalid credentials for an unknown email", func(t *testing.T) {
		repo := &stubRepo{
			getUserByEmail: func(email string) (*data.User, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := newTestService(repo)

		_, err := svc.CreateAuthenticationToken("nobody@example.com", "ABCDEF")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("returns invalid credentials for a wrong code", func(t *testing.T) {
		repo := &stubRepo{
			getUserByEmail: func(email string) (*data.User, error) {
				return user, nil
			},
		}
		svc := newTestService(repo)

		_, err := svc.CreateAuthenticationToken("alice@example.com", "ZZZZZZ")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects a malformed code before hitting the repository", func(t *testing.T) {
		svc := newTestService(&stubRepo{})

		_, err := svc.CreateAuthenticationToken("alice@example.com", "AB")
		assert.ErrorIs(t, err, ErrFailedValidation)
	})
}
