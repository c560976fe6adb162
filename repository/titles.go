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

type titles interface {
	CreateTitle(title *data.Title) error
	GetTitle(titleID int64) (*data.Title, error)
	UpdateTitle(title *data.Title, replaceGenres bool) error
	SetTitlePoster(titleID int64, posterURL string) error
	DeleteTitle(titleID int64) error
	GetAllTitles(search string, year int, genreSlug, categorySlug string, filters data.Filters) ([]*data.Title, data.Metadata, error)
}

// CreateTitle creates a title record along with its genre associations.
// The title's Category and Genres fields must already refer to existing
// catalog records.
func (r *repository) CreateTitle(title *data.Title) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	query := `
		INSERT INTO titles (name, description, year, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version`
	var categoryID interface{}
	if title.Category != nil {
		categoryID = title.Category.ID
	}
	args := []interface{}{title.Name, title.Description, title.Year, categoryID}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&title.ID, &title.CreatedAt, &title.Version)
	if err != nil {
		return err
	}
	for _, genre := range title.Genres {
		_, err = tx.ExecContext(ctx, `INSERT INTO titles_genres (title_id, genre_id) VALUES ($1, $2)`, title.ID, genre.ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetTitle retrieves a title record with its category, genres and computed rating.
func (r *repository) GetTitle(titleID int64) (*data.Title, error) {
	if titleID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT titles.id, titles.created_at, titles.name, titles.description, titles.year, titles.poster_url, titles.version,
			categories.id, categories.name, categories.slug,
			AVG(reviews.score), count(reviews.id)
		FROM titles
		LEFT JOIN categories ON titles.category_id = categories.id
		LEFT JOIN reviews ON reviews.title_id = titles.id
		WHERE titles.id = $1
		GROUP BY titles.id, categories.id`
	var title data.Title
	var categoryID sql.NullInt64
	var categoryName, categorySlug sql.NullString
	var avgScore sql.NullFloat64
	var reviewCount int64
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, titleID).Scan(
		&title.ID,
		&title.CreatedAt,
		&title.Name,
		&title.Description,
		&title.Year,
		&title.PosterURL,
		&title.Version,
		&categoryID,
		&categoryName,
		&categorySlug,
		&avgScore,
		&reviewCount,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if categoryID.Valid {
		title.Category = &data.Category{
			ID:   categoryID.Int64,
			Name: categoryName.String,
			Slug: categorySlug.String,
		}
	}
	title.SetRatingFromAverage(avgScore.Float64, reviewCount > 0)
	genres, err := r.getGenresForTitles([]int64{title.ID})
	if err != nil {
		return nil, err
	}
	title.Genres = genres[title.ID]
	return &title, nil
}

// UpdateTitle updates a title record. When replaceGenres is true, the genre
// associations are replaced with the title's Genres field.
func (r *repository) UpdateTitle(title *data.Title, replaceGenres bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	query := `
		UPDATE titles
		SET name = $1, description = $2, year = $3, category_id = $4, version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version`
	var categoryID interface{}
	if title.Category != nil {
		categoryID = title.Category.ID
	}
	args := []interface{}{title.Name, title.Description, title.Year, categoryID, title.ID, title.Version}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&title.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	if replaceGenres {
		_, err = tx.ExecContext(ctx, `DELETE FROM titles_genres WHERE title_id = $1`, title.ID)
		if err != nil {
			return err
		}
		for _, genre := range title.Genres {
			_, err = tx.ExecContext(ctx, `INSERT INTO titles_genres (title_id, genre_id) VALUES ($1, $2)`, title.ID, genre.ID)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// SetTitlePoster records the object storage URL of a title's poster image.
func (r *repository) SetTitlePoster(titleID int64, posterURL string) error {
	query := `
		UPDATE titles
		SET poster_url = $1, version = version + 1
		WHERE id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, posterURL, titleID)
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

// DeleteTitle deletes a title record. Its reviews, and transitively the
// comments on those reviews, are removed by the schema's cascade rules.
func (r *repository) DeleteTitle(titleID int64) error {
	if titleID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM titles
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, titleID)
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

// GetAllTitles retrieves a paginated list of title records with computed
// ratings. Records can be narrowed by name substring, year, genre slug and
// category slug.
func (r *repository) GetAllTitles(search string, year int, genreSlug, categorySlug string, filters data.Filters) ([]*data.Title, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), titles.id, titles.created_at, titles.name, titles.description, titles.year, titles.poster_url, titles.version,
			categories.id, categories.name, categories.slug,
			AVG(reviews.score), count(reviews.id)
		FROM titles
		LEFT JOIN categories ON titles.category_id = categories.id
		LEFT JOIN reviews ON reviews.title_id = titles.id
		WHERE (titles.name ILIKE '%%' || $1 || '%%' OR $1 = '')
		AND (titles.year = $2 OR $2 = 0)
		AND ($3 = '' OR EXISTS (
			SELECT 1 FROM titles_genres
			INNER JOIN genres ON titles_genres.genre_id = genres.id
			WHERE titles_genres.title_id = titles.id AND genres.slug = $3))
		AND ($4 = '' OR categories.slug = $4)
		GROUP BY titles.id, categories.id
		ORDER BY titles.%s %s, titles.id ASC
		LIMIT $5 OFFSET $6`,
		filters.SortColumn(), filters.SortDirection())
	args := []interface{}{search, year, genreSlug, categorySlug, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	titles := []*data.Title{}
	titleIDs := []int64{}
	for rows.Next() {
		var title data.Title
		var categoryID sql.NullInt64
		var categoryName, categorySlug sql.NullString
		var avgScore sql.NullFloat64
		var reviewCount int64
		err := rows.Scan(
			&totalRecords,
			&title.ID,
			&title.CreatedAt,
			&title.Name,
			&title.Description,
			&title.Year,
			&title.PosterURL,
			&title.Version,
			&categoryID,
			&categoryName,
			&categorySlug,
			&avgScore,
			&reviewCount,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		if categoryID.Valid {
			title.Category = &data.Category{
				ID:   categoryID.Int64,
				Name: categoryName.String,
				Slug: categorySlug.String,
			}
		}
		title.SetRatingFromAverage(avgScore.Float64, reviewCount > 0)
		titles = append(titles, &title)
		titleIDs = append(titleIDs, title.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	genres, err := r.getGenresForTitles(titleIDs)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	for _, title := range titles {
		title.Genres = genres[title.ID]
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return titles, metadata, nil
}

// getGenresForTitles retrieves the genres associated with a set of titles,
// keyed by title ID.
func (r *repository) getGenresForTitles(titleIDs []int64) (map[int64][]data.Genre, error) {
	genres := make(map[int64][]data.Genre)
	if len(titleIDs) == 0 {
		return genres, nil
	}
	query := `
		SELECT titles_genres.title_id, genres.id, genres.name, genres.slug
		FROM genres
		INNER JOIN titles_genres ON titles_genres.genre_id = genres.id
		WHERE titles_genres.title_id = ANY($1)
		ORDER BY genres.id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, pq.Array(titleIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var titleID int64
		var genre data.Genre
		err := rows.Scan(&titleID, &genre.ID, &genre.Name, &genre.Slug)
		if err != nil {
			return nil, err
		}
		genres[titleID] = append(genres[titleID], genre)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return genres, nil
}
