package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emzola/kritika/data"
	"github.com/lib/pq"
)

type genres interface {
	CreateGenre(genre *data.Genre) error
	GetGenreBySlug(slug string) (*data.Genre, error)
	GetGenresBySlugs(slugs []string) ([]data.Genre, error)
	DeleteGenre(slug string) error
	GetAllGenres(search string, filters data.Filters) ([]*data.Genre, data.Metadata, error)
}

// CreateGenre creates a genre record.
func (r *repository) CreateGenre(genre *data.Genre) error {
	query := `
		INSERT INTO genres (name, slug)
		VALUES ($1, $2)
		RETURNING id`
	args := []interface{}{genre.Name, genre.Slug}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&genre.ID)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "genres_slug_key"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// GetGenreBySlug retrieves a genre record by its slug.
func (r *repository) GetGenreBySlug(slug string) (*data.Genre, error) {
	query := `
		SELECT id, name, slug
		FROM genres
		WHERE slug = $1`
	var genre data.Genre
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&genre.ID,
		&genre.Name,
		&genre.Slug,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &genre, nil
}

// GetGenresBySlugs retrieves the genre records matching any of the given
// slugs. Callers compare the result length against the input to detect
// unknown slugs.
func (r *repository) GetGenresBySlugs(slugs []string) ([]data.Genre, error) {
	query := `
		SELECT id, name, slug
		FROM genres
		WHERE slug = ANY($1)
		ORDER BY id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, pq.Array(slugs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	genres := []data.Genre{}
	for rows.Next() {
		var genre data.Genre
		err := rows.Scan(
			&genre.ID,
			&genre.Name,
			&genre.Slug,
		)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return genres, nil
}

// DeleteGenre deletes a genre record by its slug.
func (r *repository) DeleteGenre(slug string) error {
	query := `
		DELETE FROM genres
		WHERE slug = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, slug)
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

// GetAllGenres retrieves a paginated list of genre records, optionally
// narrowed to names containing the search term.
func (r *repository) GetAllGenres(search string, filters data.Filters) ([]*data.Genre, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), genres.id, genres.name, genres.slug, count(titles_genres.title_id)
		FROM genres
		LEFT JOIN titles_genres ON titles_genres.genre_id = genres.id
		WHERE (genres.name ILIKE '%%' || $1 || '%%' OR $1 = '')
		GROUP BY genres.id
		ORDER BY genres.%s %s, genres.id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection())
	args := []interface{}{search, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	genres := []*data.Genre{}
	for rows.Next() {
		var genre data.Genre
		err := rows.Scan(
			&totalRecords,
			&genre.ID,
			&genre.Name,
			&genre.Slug,
			&genre.TitleCount,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		genres = append(genres, &genre)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return genres, metadata, nil
}
