package service

import (
	"errors"

	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/internal/validator"
	"github.com/emzola/kritika/repository"
)

type genres interface {
	CreateGenre(name string, slug string) (*data.Genre, error)
	ShowGenre(slug string) (*data.Genre, error)
	DeleteGenre(slug string) error
	ListGenres(search string, filters data.Filters) ([]*data.Genre, data.Metadata, error)
}

// CreateGenre creates a new genre.
func (s *service) CreateGenre(name string, slug string) (*data.Genre, error) {
	genre := &data.Genre{
		Name: name,
		Slug: slug,
	}
	v := validator.New()
	if data.ValidateGenre(v, genre); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateGenre(genre)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("slug", "a genre with this slug already exists")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	return genre, nil
}

// ShowGenre shows the details of a specific genre.
func (s *service) ShowGenre(slug string) (*data.Genre, error) {
	genre, err := s.repo.GetGenreBySlug(slug)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return genre, nil
}

// DeleteGenre deletes a genre and unlinks it from any titles.
func (s *service) DeleteGenre(slug string) error {
	err := s.repo.DeleteGenre(slug)
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

// ListGenres lists genres, optionally filtered by a name search term.
func (s *service) ListGenres(search string, filters data.Filters) ([]*data.Genre, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	genres, metadata, err := s.repo.GetAllGenres(search, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return genres, metadata, nil
}
