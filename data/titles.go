package data

import (
	"time"

	"github.com/emzola/kritika/internal/validator"
)

// Title defines a catalog item that can be reviewed.
//
// Rating is derived, never stored: the integer mean of all review scores for
// the title, truncated toward zero. It is nil (JSON null) when the title has
// no reviews, which is distinct from a rating of zero.
type Title struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Year        int32     `json:"year,omitempty"`
	Category    *Category `json:"category"`
	Genres      []Genre   `json:"genre"`
	Rating      *int32    `json:"rating"`
	PosterURL   string    `json:"poster_url,omitempty"`
	Version     int32     `json:"-"`
}

// SetRatingFromAverage fills in the derived rating from a mean score.
// A title with no reviews has no average, and keeps a nil rating.
func (t *Title) SetRatingFromAverage(avg float64, hasReviews bool) {
	if !hasReviews {
		t.Rating = nil
		return
	}
	rating := int32(avg)
	t.Rating = &rating
}

func ValidateTitle(v *validator.Validator, title *Title) {
	v.Check(title.Name != "", "name", "must be provided")
	v.Check(len(title.Name) <= 200, "name", "must not be more than 200 bytes long")
	v.Check(len(title.Description) <= 500, "description", "must not be more than 500 bytes long")
	if title.Year != 0 {
		v.Check(title.Year >= 1000, "year", "must be a four digit year")
		v.Check(title.Year <= int32(time.Now().Year()), "year", "must not be in the future")
	}
}
