package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emzola/kritika/data"
)

type comments interface {
	CreateComment(comment *data.Comment) error
	GetComment(titleID, reviewID, commentID int64) (*data.Comment, error)
	UpdateComment(comment *data.Comment) error
	DeleteComment(titleID, reviewID, commentID int64) error
	GetAllCommentsForReview(titleID, reviewID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error)
}

// CreateComment creates a comment record on a review.
func (r *repository) CreateComment(comment *data.Comment) error {
	query := `
		INSERT INTO comments (review_id, user_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version`
	args := []interface{}{comment.ReviewID, comment.UserID, comment.Text}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt, &comment.Version)
}

// GetComment retrieves a comment record scoped to a (title, review) pair.
// A comment that exists under a different review or title is reported as
// not found.
func (r *repository) GetComment(titleID, reviewID, commentID int64) (*data.Comment, error) {
	if titleID < 1 || reviewID < 1 || commentID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT comments.id, comments.review_id, comments.user_id, users.username, comments.text, comments.created_at, comments.version
		FROM comments
		INNER JOIN reviews ON comments.review_id = reviews.id
		INNER JOIN users ON comments.user_id = users.id
		WHERE comments.id = $1 AND comments.review_id = $2 AND reviews.title_id = $3`
	var comment data.Comment
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, commentID, reviewID, titleID).Scan(
		&comment.ID,
		&comment.ReviewID,
		&comment.UserID,
		&comment.Author,
		&comment.Text,
		&comment.CreatedAt,
		&comment.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &comment, nil
}

// UpdateComment updates a comment record.
func (r *repository) UpdateComment(comment *data.Comment) error {
	query := `
		UPDATE comments
		SET text = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version`
	args := []interface{}{comment.Text, comment.ID, comment.Version}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&comment.Version)
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

// DeleteComment deletes a comment record scoped to a (title, review) pair.
func (r *repository) DeleteComment(titleID, reviewID, commentID int64) error {
	if titleID < 1 || reviewID < 1 || commentID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM comments
		USING reviews
		WHERE comments.review_id = reviews.id
		AND comments.id = $1 AND comments.review_id = $2 AND reviews.title_id = $3`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, commentID, reviewID, titleID)
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

// GetAllCommentsForReview retrieves a paginated list of all comment records
// for a review, newest first by default.
func (r *repository) GetAllCommentsForReview(titleID, reviewID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), comments.id, comments.review_id, comments.user_id, users.username, comments.text, comments.created_at, comments.version
		FROM comments
		INNER JOIN reviews ON comments.review_id = reviews.id
		INNER JOIN users ON comments.user_id = users.id
		WHERE comments.review_id = $1 AND reviews.title_id = $2
		ORDER BY comments.%s %s, comments.id DESC
		LIMIT $3 OFFSET $4`,
		filters.SortColumn(), filters.SortDirection())
	args := []interface{}{reviewID, titleID, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	comments := []*data.Comment{}
	for rows.Next() {
		var comment data.Comment
		err := rows.Scan(
			&totalRecords,
			&comment.ID,
			&comment.ReviewID,
			&comment.UserID,
			&comment.Author,
			&comment.Text,
			&comment.CreatedAt,
			&comment.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		comments = append(comments, &comment)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return comments, metadata, nil
}
