package service

import (
	"errors"
	"net/http"

	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/internal/validator"
	"github.com/emzola/kritika/repository"
)

type titles interface {
	CreateTitle(name string, description string, year int32, categorySlug *string, genreSlugs []string) (*data.Title, error)
	ShowTitle(titleID int64) (*data.Title, error)
	UpdateTitle(titleID int64, name *string, description *string, year *int32, categorySlug *string, genreSlugs []string) (*data.Title, error)
	DeleteTitle(titleID int64) error
	ListTitles(search string, year int, genreSlug string, categorySlug string, filters data.Filters) ([]*data.Title, data.Metadata, error)
	UploadTitlePoster(titleID int64, r *http.Request) (*data.Title, error)
}

// resolveCategory looks up a category by slug. An unknown slug is recorded as
// a validation error rather than a server error.
func (s *service) resolveCategory(v *validator.Validator, slug string) *data.Category {
	category, err := s.repo.GetCategoryBySlug(slug)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			v.AddError("category", "unknown category slug")
		default:
			v.AddError("category", "could not be resolved")
		}
		return nil
	}
	return category
}

// resolveGenres looks up a set of genres by slug. Unknown slugs are recorded
// as validation errors.
func (s *service) resolveGenres(v *validator.Validator, slugs []string) []data.Genre {
	if !validator.Unique(slugs) {
		v.AddError("genre", "must not contain duplicate slugs")
		return nil
	}
	genres, err := s.repo.GetGenresBySlugs(slugs)
	if err != nil {
		v.AddError("genre", "could not be resolved")
		return nil
	}
	if len(genres) != len(slugs) {
		found := make(map[string]bool, len(genres))
		for _, genre := range genres {
			found[genre.Slug] = true
		}
		for _, slug := range slugs {
			if !found[slug] {
				v.AddError("genre", "unknown genre slug "+slug)
			}
		}
		return nil
	}
	return genres
}

// CreateTitle creates a new title. The category and genres are referenced by
// slug and must already exist.
func (s *service) CreateTitle(name string, description string, year int32, categorySlug *string, genreSlugs []string) (*data.Title, error) {
	title := &data.Title{
		Name:        name,
		Description: description,
		Year:        year,
	}
	v := validator.New()
	data.ValidateTitle(v, title)
	if categorySlug != nil && *categorySlug != "" {
		title.Category = s.resolveCategory(v, *categorySlug)
	}
	if len(genreSlugs) > 0 {
		title.Genres = s.resolveGenres(v, genreSlugs)
	}
	if !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateTitle(title)
	if err != nil {
		return nil, err
	}
	return title, nil
}

// ShowTitle shows the details of a specific title.
func (s *service) ShowTitle(titleID int64) (*data.Title, error) {
	title, err := s.repo.GetTitle(titleID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return title, nil
}

// UpdateTitle updates a title record. Nil fields are left unchanged. A nil
// genre slice keeps the existing genres while an empty one clears them, and
// an empty category slug clears the category.
func (s *service) UpdateTitle(titleID int64, name *string, description *string, year *int32, categorySlug *string, genreSlugs []string) (*data.Title, error) {
	title, err := s.repo.GetTitle(titleID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if name != nil {
		title.Name = *name
	}
	if description != nil {
		title.Description = *description
	}
	if year != nil {
		title.Year = *year
	}
	v := validator.New()
	data.ValidateTitle(v, title)
	if categorySlug != nil {
		if *categorySlug == "" {
			title.Category = nil
		} else {
			title.Category = s.resolveCategory(v, *categorySlug)
		}
	}
	replaceGenres := genreSlugs != nil
	if replaceGenres {
		title.Genres = s.resolveGenres(v, genreSlugs)
	}
	if !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateTitle(title, replaceGenres)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return title, nil
}

// DeleteTitle deletes a title along with its reviews and comments.
func (s *service) DeleteTitle(titleID int64) error {
	err := s.repo.DeleteTitle(titleID)
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

// ListTitles lists titles filtered by an optional search term, release year,
// genre slug and category slug.
func (s *service) ListTitles(search string, year int, genreSlug string, categorySlug string, filters data.Filters) ([]*data.Title, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	titles, metadata, err := s.repo.GetAllTitles(search, year, genreSlug, categorySlug, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return titles, metadata, nil
}

// UploadTitlePoster stores a poster image for a title in the s3 bucket and
// records its public URL.
func (s *service) UploadTitlePoster(titleID int64, r *http.Request) (*data.Title, error) {
	title, err := s.repo.GetTitle(titleID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	// Parse form data
	err = r.ParseMultipartForm(4096)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			return nil, ErrContentTooLarge
		default:
			return nil, ErrBadRequest
		}
	}
	file, fileHeader, err := r.FormFile("poster")
	if err != nil {
		return nil, ErrBadRequest
	}
	defer file.Close()
	buffer, mtype, err := s.detectMimeType(file, fileHeader)
	if err != nil {
		return nil, err
	}
	if !validator.Mime(mtype, "image/jpeg", "image/png") {
		return nil, ErrUnsupportedMediaType
	}
	url, err := s.uploadPosterToS3(buffer, mtype, fileHeader, title.ID)
	if err != nil {
		return nil, err
	}
	err = s.repo.SetTitlePoster(title.ID, url)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	title.PosterURL = url
	title.Version++
	return title, nil
}
