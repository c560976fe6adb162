package service

import (
	"errors"

	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/internal/validator"
	"github.com/emzola/kritika/repository"
)

type comments interface {
	CreateComment(titleID int64, reviewID int64, user *data.User, text string) (*data.Comment, error)
	ShowComment(titleID int64, reviewID int64, commentID int64) (*data.Comment, error)
	UpdateComment(titleID int64, reviewID int64, commentID int64, text *string) (*data.Comment, error)
	DeleteComment(titleID int64, reviewID int64, commentID int64) error
	ListComments(titleID int64, reviewID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error)
}

// CreateComment creates a comment on a review. The review must belong to the
// given title.
func (s *service) CreateComment(titleID int64, reviewID int64, user *data.User, text string) (*data.Comment, error) {
	_, err := s.repo.GetReview(titleID, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	comment := &data.Comment{
		ReviewID: reviewID,
		UserID:   user.ID,
		Author:   user.Username,
		Text:     text,
	}
	v := validator.New()
	if data.ValidateComment(v, comment); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.CreateComment(comment)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ShowComment shows a comment on a review of a specific title.
func (s *service) ShowComment(titleID int64, reviewID int64, commentID int64) (*data.Comment, error) {
	comment, err := s.repo.GetComment(titleID, reviewID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return comment, nil
}

// UpdateComment updates a comment's text.
func (s *service) UpdateComment(titleID int64, reviewID int64, commentID int64, text *string) (*data.Comment, error) {
	comment, err := s.repo.GetComment(titleID, reviewID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if text != nil {
		comment.Text = *text
	}
	v := validator.New()
	if data.ValidateComment(v, comment); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateComment(comment)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return comment, nil
}

// DeleteComment deletes a comment.
func (s *service) DeleteComment(titleID int64, reviewID int64, commentID int64) error {
	err := s.repo.DeleteComment(titleID, reviewID, commentID)
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

// ListComments lists the comments on a review.
func (s *service) ListComments(titleID int64, reviewID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	_, err := s.repo.GetReview(titleID, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, data.Metadata{}, ErrRecordNotFound
		default:
			return nil, data.Metadata{}, err
		}
	}
	comments, metadata, err := s.repo.GetAllCommentsForReview(titleID, reviewID, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return comments, metadata, nil
}
