package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emzola/kritika/data"
)

type reviews interface {
	CreateReview(review *data.Review) error
	GetReview(titleID, reviewID int64) (*data.Review, error)
	UpdateReview(review *data.Review) error
	DeleteReview(titleID, reviewID int64) error
	GetAllReviewsForTitle(titleID int64, filters data.Filters) ([]*data.Review, data.Metadata, error)
}

// CreateReview creates a review record for a title. The composite unique key
// on (title_id, user_id) closes the check-then-insert race: a second review
// by the same author surfaces as ErrDuplicateReview no matter how the
// requests interleave.
func (r *repository) CreateReview(review *data.Review) error {
	query := `
		INSERT INTO reviews (title_id, user_id, text, score)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version`
	args := []interface{}{review.TitleID, review.UserID, review.Text, review.Score}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt, &review.Version)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "reviews_title_id_user_id_key"`:
			return ErrDuplicateReview
		default:
			return err
		}
	}
	return nil
}

// GetReview retrieves a review record scoped to a title. A review that exists
// but hangs off a different title is reported as not found.
func (r *repository) GetReview(titleID, reviewID int64) (*data.Review, error) {
	if titleID < 1 || reviewID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT reviews.id, reviews.title_id, reviews.user_id, users.username, reviews.text, reviews.score, reviews.created_at, reviews.version
		FROM reviews
		INNER JOIN users ON reviews.user_id = users.id
		WHERE reviews.id = $1 AND reviews.title_id = $2`
	var review data.Review
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, reviewID, titleID).Scan(
		&review.ID,
		&review.TitleID,
		&review.UserID,
		&review.Author,
		&review.Text,
		&review.Score,
		&review.CreatedAt,
		&review.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &review, nil
}

// UpdateReview updates a review record.
func (r *repository) UpdateReview(review *data.Review) error {
	query := `
		UPDATE reviews
		SET text = $1, score = $2, version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version`
	args := []interface{}{review.Text, review.Score, review.ID, review.Version}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&review.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}

// DeleteReview deletes a review record scoped to a title. The review's
// comments are removed by the schema's cascade rules.
func (r *repository) DeleteReview(titleID, reviewID int64) error {
	if titleID < 1 || reviewID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM reviews
		WHERE id = $1 AND title_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, reviewID, titleID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// GetAllReviewsForTitle retrieves a paginated list of all review records for
// a title, newest first by default.
func (r *repository) GetAllReviewsForTitle(titleID int64, filters data.Filters) ([]*data.Review, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), reviews.id, reviews.title_id, reviews.user_id, users.username, reviews.text, reviews.score, reviews.created_at, reviews.version
		FROM reviews
		INNER JOIN users ON reviews.user_id = users.id
		WHERE reviews.title_id = $1
		ORDER BY reviews.%s %s, reviews.id DESC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection())
	args := []interface{}{titleID, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	reviews := []*data.Review{}
	for rows.Next() {
		var review data.Review
		err := rows.Scan(
			&totalRecords,
			&review.ID,
			&review.TitleID,
			&review.UserID,
			&review.Author,
			&review.Text,
			&review.Score,
			&review.CreatedAt,
			&review.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		reviews = append(reviews, &review)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return reviews, metadata, nil
}
