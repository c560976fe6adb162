package service

import (
	"errors"
	"time"

	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/internal/validator"
	"github.com/emzola/kritika/repository"
)

type tokens interface {
	CreateAuthenticationToken(email string, code string) (*data.Token, error)
	DeleteAuthenticationTokensForUser(userID int64) error
}

// CreateAuthenticationToken exchanges an email and confirmation code pair for
// a new authentication token.
func (s *service) CreateAuthenticationToken(email string, code string) (*data.Token, error) {
	v := validator.New()
	data.ValidateEmail(v, email)
	data.ValidateConfirmationCodePlaintext(v, code)
	if !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrInvalidCredentials
		default:
			return nil, err
		}
	}
	match, err := user.ConfirmationCode.Matches(code)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}
	token, err := s.repo.CreateNewToken(user.ID, 24*time.Hour, data.ScopeAuthentication)
	if err != nil {
		return nil, err
	}
	return token, nil
}

// DeleteAuthenticationTokensForUser logs a user out everywhere by removing
// all of their authentication tokens.
func (s *service) DeleteAuthenticationTokensForUser(userID int64) error {
	return s.repo.DeleteAllTokensForUser(data.ScopeAuthentication, userID)
}
