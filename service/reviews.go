package service

import (
	"errors"

	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/internal/validator"
	"github.com/emzola/kritika/repository"
)

type reviews interface {
	CreateReview(titleID int64, user *data.User, text string, score int8) (*data.Review, error)
	ShowReview(titleID int64, reviewID int64) (*data.Review, error)
	UpdateReview(titleID int64, reviewID int64, text *string, score *int8) (*data.Review, error)
	DeleteReview(titleID int64, reviewID int64) error
	ListReviews(titleID int64, filters data.Filters) ([]*data.Review, data.Metadata, error)
}

// CreateReview creates a review of a title. A user may only review each
// title once.
func (s *service) CreateReview(titleID int64, user *data.User, text string, score int8) (*data.Review, error) {
	_, err := s.repo.GetTitle(titleID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	review := &data.Review{
		TitleID: titleID,
		UserID:  user.ID,
		Author:  user.Username,
		Text:    text,
		Score:   score,
	}
	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.CreateReview(review)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateReview):
			return nil, ErrDuplicateReview
		default:
			return nil, err
		}
	}
	return review, nil
}

// ShowReview shows a review of a specific title.
func (s *service) ShowReview(titleID int64, reviewID int64) (*data.Review, error) {
	review, err := s.repo.GetReview(titleID, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return review, nil
}

// UpdateReview updates a review's text or score. Nil fields are left
// unchanged.
func (s *service) UpdateReview(titleID int64, reviewID int64, text *string, score *int8) (*data.Review, error) {
	review, err := s.repo.GetReview(titleID, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if text != nil {
		review.Text = *text
	}
	if score != nil {
		review.Score = *score
	}
	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateReview(review)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return review, nil
}

// DeleteReview deletes a review along with its comments.
func (s *service) DeleteReview(titleID int64, reviewID int64) error {
	err := s.repo.DeleteReview(titleID, reviewID)
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

// ListReviews lists the reviews of a title.
func (s *service) ListReviews(titleID int64, filters data.Filters) ([]*data.Review, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	_, err := s.repo.GetTitle(titleID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, data.Metadata{}, ErrRecordNotFound
		default:
			return nil, data.Metadata{}, err
		}
	}
	reviews, metadata, err := s.repo.GetAllReviewsForTitle(titleID, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return reviews, metadata, nil
}
