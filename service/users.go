package service

import (
	"errors"
	"strings"

	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/internal/mailer"
	"github.com/emzola/kritika/internal/validator"
	"github.com/emzola/kritika/repository"
)

type users interface {
	RegisterByEmail(email string) (*data.User, error)
	CreateUser(username string, email string, firstName string, lastName string, bio string, role string) (*data.User, error)
	ShowUserByUsername(username string) (*data.User, error)
	UpdateUser(user *data.User, email *string, firstName *string, lastName *string, bio *string, role *string) (*data.User, error)
	DeleteUser(user *data.User) error
	ListUsers(search string, filters data.Filters) ([]*data.User, data.Metadata, error)
	GetUserForToken(tokenScope string, tokenPlaintext string) (*data.User, error)
}

// RegisterByEmail signs a user up with just an email address. The username is
// derived from the local part of the address and a fresh confirmation code is
// mailed out. Each email address registers exactly once.
func (s *service) RegisterByEmail(email string) (*data.User, error) {
	v := validator.New()
	if data.ValidateEmail(v, email); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	code, err := data.GenerateConfirmationCode()
	if err != nil {
		return nil, err
	}
	user := &data.User{
		Username: strings.Split(email, "@")[0],
		Email:    email,
		Role:     data.RoleUser,
	}
	err = user.ConfirmationCode.Set(code)
	if err != nil {
		return nil, err
	}
	if data.ValidateUser(v, user); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.RegisterUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("email", "a user with this email address or username already exists")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	// Send the confirmation code in a background goroutine to speed up response time
	s.background(func() {
		data := map[string]string{
			"username":         user.Username,
			"confirmationCode": code,
		}
		mailer := mailer.New(s.config.SMTP.Host, s.config.SMTP.Port, s.config.SMTP.Username, s.config.SMTP.Password, s.config.SMTP.Sender)
		err := mailer.Send(user.Email, "confirmation_code.tmpl", data)
		if err != nil {
			s.logger.PrintError(err, nil)
		}
	})
	return user, nil
}

// CreateUser creates a user record on behalf of an administrator. The role
// must be given explicitly. The new user receives a confirmation code by
// email so they can obtain a token.
func (s *service) CreateUser(username string, email string, firstName string, lastName string, bio string, role string) (*data.User, error) {
	user := &data.User{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Bio:       bio,
		Role:      data.Role(role),
	}
	code, err := data.GenerateConfirmationCode()
	if err != nil {
		return nil, err
	}
	err = user.ConfirmationCode.Set(code)
	if err != nil {
		return nil, err
	}
	v := validator.New()
	if data.ValidateUser(v, user); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.RegisterUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("email", "a user with this email address or username already exists")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	s.background(func() {
		data := map[string]string{
			"username":         user.Username,
			"confirmationCode": code,
		}
		mailer := mailer.New(s.config.SMTP.Host, s.config.SMTP.Port, s.config.SMTP.Username, s.config.SMTP.Password, s.config.SMTP.Sender)
		err := mailer.Send(user.Email, "confirmation_code.tmpl", data)
		if err != nil {
			s.logger.PrintError(err, nil)
		}
	})
	return user, nil
}

// ShowUserByUsername shows the details of a specific user.
func (s *service) ShowUserByUsername(username string) (*data.User, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return user, nil
}

// UpdateUser updates a user record. Nil fields are left unchanged. Role
// changes are only reachable through the admin endpoints, so the handler
// passes a nil role for profile edits.
func (s *service) UpdateUser(user *data.User, email *string, firstName *string, lastName *string, bio *string, role *string) (*data.User, error) {
	if email != nil {
		user.Email = *email
	}
	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}
	if bio != nil {
		user.Bio = *bio
	}
	if role != nil {
		user.Role = data.Role(*role)
	}
	v := validator.New()
	if data.ValidateUser(v, user); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.UpdateUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("email", "a user with this email address already exists")
			return nil, s.failedValidation(v.Errors)
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return user, nil
}

// DeleteUser deletes a user record.
func (s *service) DeleteUser(user *data.User) error {
	err := s.repo.DeleteUser(user.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// ListUsers lists user records, optionally filtered by a username search term.
func (s *service) ListUsers(search string, filters data.Filters) ([]*data.User, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	users, metadata, err := s.repo.GetAllUsers(search, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return users, metadata, nil
}

// GetUserForToken retrieves the user record associated with an
// authentication token.
func (s *service) GetUserForToken(tokenScope string, tokenPlaintext string) (*data.User, error) {
	user, err := s.repo.GetUserForToken(tokenScope, tokenPlaintext)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return user, nil
}
