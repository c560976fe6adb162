package data

import (
	"github.com/emzola/kritika/internal/validator"
)

// Genre defines a catalog genre. Titles and genres are many-to-many.
type Genre struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	TitleCount int64  `json:"title_count,omitempty"`
}

func ValidateGenre(v *validator.Validator, genre *Genre) {
	v.Check(genre.Name != "", "name", "must be provided")
	v.Check(len(genre.Name) <= 200, "name", "must not be more than 200 bytes long")
	ValidateSlug(v, genre.Slug)
}
