package service

import (
	"testing"

	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	user := &data.User{ID: 7, Username: "frank"}

	t.Run("creates a comment on an existing review", func(t *testing.T) {
		repo := &stubRepo{
			getReview: func(titleID, reviewID int64) (*data.Review, error) {
				return &data.Review{ID: reviewID, TitleID: titleID}, nil
			},
			createComment: func(comment *data.Comment) error {
				comment.ID = 1
				comment.Version = 1
				return nil
			},
		}
		svc := newTestService(repo)

		comment, err := svc.CreateComment(3, 1, user, "Agreed.")
		require.NoError(t, err)
		assert.Equal(t, int64(1), comment.ReviewID)
		assert.Equal(t, user.ID, comment.UserID)
		assert.Equal(t, user.Username, comment.Author)
	})

	t.Run("returns not found when the review is not under the title", func(t *testing.T) {
		repo := &stubRepo{
			getReview: func(titleID, reviewID int64) (*data.Review, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := newTestService(repo)

		_, err := svc.CreateComment(3, 99, user, "Lost.")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		repo := &stubRepo{
			getReview: func(titleID, reviewID int64) (*data.Review, error) {
				return &data.Review{ID: reviewID, TitleID: titleID}, nil
			},
		}
		svc := newTestService(repo)

		_, err := svc.CreateComment(3, 1, user, "")
		assert.ErrorIs(t, err, ErrFailedValidation)

		var fieldErr interface{ Fields() map[string]string }
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "text")
	})
}

func TestListComments(t *testing.T) {
	t.Run("returns comments with metadata", func(t *testing.T) {
		repo := &stubRepo{
			getReview: func(titleID, reviewID int64) (*data.Review, error) {
				return &data.Review{ID: reviewID, TitleID: titleID}, nil
			},
			getAllComments: func(titleID, reviewID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error) {
				return []*data.Comment{{ID: 1, ReviewID: reviewID}}, data.Metadata{TotalRecords: 1}, nil
			},
		}
		svc := newTestService(repo)

		filters := data.Filters{Page: 1, PageSize: 10, Sort: "id", SortSafeList: []string{"id"}}
		comments, metadata, err := svc.ListComments(3, 1, filters)
		require.NoError(t, err)
		assert.Len(t, comments, 1)
		assert.Equal(t, 1, metadata.TotalRecords)
	})

	t.Run("rejects an invalid page size", func(t *testing.T) {
		svc := newTestService(&stubRepo{})

		filters := data.Filters{Page: 1, PageSize: 0, Sort: "id", SortSafeList: []string{"id"}}
		_, _, err := svc.ListComments(3, 1, filters)
		assert.ErrorIs(t, err, ErrFailedValidation)
	})
}
