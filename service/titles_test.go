package service

import (
	"testing"

	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTitle(t *testing.T) {
	t.Run("resolves category and genres by slug", func(t *testing.T) {
		repo := &stubRepo{
			getCategory: func(slug string) (*data.Category, error) {
				return &data.Category{ID: 1, Name: "Movies", Slug: slug}, nil
			},
			getGenres: func(slugs []string) ([]data.Genre, error) {
				genres := make([]data.Genre, 0, len(slugs))
				for i, slug := range slugs {
					genres = append(genres, data.Genre{ID: int64(i + 1), Name: slug, Slug: slug})
				}
				return genres, nil
			},
			createTitle: func(title *data.Title) error {
				title.ID = 1
				title.Version = 1
				return nil
			},
		}
		svc := newTestService(repo)

		categorySlug := "movies"
		title, err := svc.CreateTitle("Dune", "Desert planet.", 2021, &categorySlug, []string{"sci-fi", "drama"})
		require.NoError(t, err)
		require.NotNil(t, title.Category)
		assert.Equal(t, "movies", title.Category.Slug)
		assert.Len(t, title.Genres, 2)
	})

	t.Run("rejects an unknown category slug", func(t *testing.T) {
		repo := &stubRepo{
			getCategory: func(slug string) (*data.Category, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := newTestService(repo)

		categorySlug := "nope"
		_, err := svc.CreateTitle("Dune", "", 2021, &categorySlug, nil)
		assert.ErrorIs(t, err, ErrFailedValidation)

		var fieldErr interface{ Fields() map[string]string }
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "category")
	})

	t.Run("rejects an unknown genre slug", func(t *testing.T) {
		repo := &stubRepo{
			getGenres: func(slugs []string) ([]data.Genre, error) {
				return []data.Genre{{ID: 1, Name: "Sci-Fi", Slug: "sci-fi"}}, nil
			},
		}
		svc := newTestService(repo)

		_, err := svc.CreateTitle("Dune", "", 2021, nil, []string{"sci-fi", "nope"})
		assert.ErrorIs(t, err, ErrFailedValidation)

		var fieldErr interface{ Fields() map[string]string }
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields()["genre"], "nope")
	})

	t.Run("rejects duplicate genre slugs", func(t *testing.T) {
		svc := newTestService(&stubRepo{})

		_, err := svc.CreateTitle("Dune", "", 2021, nil, []string{"sci-fi", "sci-fi"})
		assert.ErrorIs(t, err, ErrFailedValidation)
	})
}

func TestUpdateTitle(t *testing.T) {
	t.Run("nil genre slice keeps the existing genres", func(t *testing.T) {
		var replaced *bool
		repo := &stubRepo{
			getTitle: func(titleID int64) (*data.Title, error) {
				return &data.Title{ID: titleID, Name: "Dune", Year: 2021, Genres: []data.Genre{{ID: 1, Slug: "sci-fi"}}}, nil
			},
			updateTitle: func(title *data.Title, replaceGenres bool) error {
				replaced = &replaceGenres
				return nil
			},
		}
		svc := newTestService(repo)

		name := "Dune: Part One"
		title, err := svc.UpdateTitle(3, &name, nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Dune: Part One", title.Name)
		assert.Len(t, title.Genres, 1)
		require.NotNil(t, replaced)
		assert.False(t, *replaced)
	})

	t.Run("empty genre slice clears the genres", func(t *testing.T) {
		var replaced *bool
		repo := &stubRepo{
			getTitle: func(titleID int64) (*data.Title, error) {
				return &data.Title{ID: titleID, Name: "Dune", Year: 2021, Genres: []data.Genre{{ID: 1, Slug: "sci-fi"}}}, nil
			},
			getGenres: func(slugs []string) ([]data.Genre, error) {
				return nil, nil
			},
			updateTitle: func(title *data.Title, replaceGenres bool) error {
				replaced = &replaceGenres
				return nil
			},
		}
		svc := newTestService(repo)

		title, err := svc.UpdateTitle(3, nil, nil, nil, nil, []string{})
		require.NoError(t, err)
		assert.Empty(t, title.Genres)
		require.NotNil(t, replaced)
		assert.True(t, *replaced)
	})

	t.Run("returns an edit conflict from the repository", func(t *testing.T) {
		repo := &stubRepo{
			getTitle: func(titleID int64) (*data.Title, error) {
				return &data.Title{ID: titleID, Name: "Dune", Year: 2021}, nil
			},
			updateTitle: func(title *data.Title, replaceGenres bool) error {
				return repository.ErrEditConflict
			},
		}
		svc := newTestService(repo)

		name := "Dune"
		_, err := svc.UpdateTitle(3, &name, nil, nil, nil, nil)
		assert.ErrorIs(t, err, ErrEditConflict)
	})
}
