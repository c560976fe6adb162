package data

import (
	"github.com/emzola/kritika/internal/validator"
)

// Category defines a catalog category. A title belongs to at most one category.
type Category struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	TitleCount int64  `json:"title_count,omitempty"`
}

func ValidateSlug(v *validator.Validator, slug string) {
	v.Check(slug != "", "slug", "must be provided")
	v.Check(len(slug) <= 100, "slug", "must not be more than 100 bytes long")
	v.Check(validator.Matches(slug, validator.SlugRX), "slug", "must contain only lowercase letters, digits, hyphens and underscores")
}

func ValidateCategory(v *validator.Validator, category *Category) {
	v.Check(category.Name != "", "name", "must be provided")
	v.Check(len(category.Name) <= 200, "name", "must not be more than 200 bytes long")
	ValidateSlug(v, category.Slug)
}
