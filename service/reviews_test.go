package service

import (
	"testing"

	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	user := &data.User{ID: 7, Username: "frank"}

	t.Run("creates a review for an existing title", func(t *testing.T) {
		repo := &stubRepo{
			getTitle: func(titleID int64) (*data.Title, error) {
				return &data.Title{ID: titleID, Name: "Dune"}, nil
			},
			createReview: func(review *data.Review) error {
				review.ID = 1
				review.Version = 1
				return nil
			},
		}
		svc := newTestService(repo)

		review, err := svc.CreateReview(3, user, "A classic.", 9)
		require.NoError(t, err)
		assert.Equal(t, int64(3), review.TitleID)
		assert.Equal(t, user.ID, review.UserID)
		assert.Equal(t, user.Username, review.Author)
		assert.Equal(t, int8(9), review.Score)
	})

	t.Run("returns not found for an unknown title", func(t *testing.T) {
		repo := &stubRepo{
			getTitle: func(titleID int64) (*data.Title, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := newTestService(repo)

		_, err := svc.CreateReview(99, user, "Missing.", 5)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("rejects a second review by the same user", func(t *testing.T) {
		repo := &stubRepo{
			getTitle: func(titleID int64) (*data.Title, error) {
				return &data.Title{ID: titleID}, nil
			},
			createReview: func(review *data.Review) error {
				return repository.ErrDuplicateReview
			},
		}
		svc := newTestService(repo)

		_, err := svc.CreateReview(3, user, "Again.", 8)
		assert.ErrorIs(t, err, ErrDuplicateReview)
	})

	t.Run("rejects a score outside 1 to 10", func(t *testing.T) {
		repo := &stubRepo{
			getTitle: func(titleID int64) (*data.Title, error) {
				return &data.Title{ID: titleID}, nil
			},
		}
		svc := newTestService(repo)

		_, err := svc.CreateReview(3, user, "Off the scale.", 11)
		assert.ErrorIs(t, err, ErrFailedValidation)

		var fieldErr interface{ Fields() map[string]string }
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "score")
	})
}

func TestUpdateReview(t *testing.T) {
	t.Run("leaves nil fields unchanged", func(t *testing.T) {
		updated := false
		repo := &stubRepo{
			getReview: func(titleID, reviewID int64) (*data.Review, error) {
				return &data.Review{ID: reviewID, TitleID: titleID, Text: "Original", Score: 6}, nil
			},
			updateReview: func(review *data.Review) error {
				updated = true
				return nil
			},
		}
		svc := newTestService(repo)

		newScore := int8(9)
		review, err := svc.UpdateReview(3, 1, nil, &newScore)
		require.NoError(t, err)
		assert.Equal(t, "Original", review.Text)
		assert.Equal(t, int8(9), review.Score)
		assert.True(t, updated)
	})

	t.Run("returns not found when the review is not under the title", func(t *testing.T) {
		repo := &stubRepo{
			getReview: func(titleID, reviewID int64) (*data.Review, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := newTestService(repo)

		_, err := svc.UpdateReview(3, 99, nil, nil)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestListReviews(t *testing.T) {
	t.Run("rejects an unsafe sort value", func(t *testing.T) {
		svc := newTestService(&stubRepo{})

		filters := data.Filters{Page: 1, PageSize: 10, Sort: "score; DROP TABLE reviews", SortSafeList: []string{"id", "score"}}
		_, _, err := svc.ListReviews(3, filters)
		assert.ErrorIs(t, err, ErrFailedValidation)
	})

	t.Run("returns reviews with metadata", func(t *testing.T) {
		repo := &stubRepo{
			getTitle: func(titleID int64) (*data.Title, error) {
				return &data.Title{ID: titleID}, nil
			},
			getAllReviews: func(titleID int64, filters data.Filters) ([]*data.Review, data.Metadata, error) {
				return []*data.Review{{ID: 1, TitleID: titleID}}, data.Metadata{TotalRecords: 1}, nil
			},
		}
		svc := newTestService(repo)

		filters := data.Filters{Page: 1, PageSize: 10, Sort: "id", SortSafeList: []string{"id"}}
		reviews, metadata, err := svc.ListReviews(3, filters)
		require.NoError(t, err)
		assert.Len(t, reviews, 1)
		assert.Equal(t, 1, metadata.TotalRecords)
	})
}
