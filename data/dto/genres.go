package dto

import "github.com/emzola/kritika/data"

// CreateGenreRequestBody defines a request body for the CreateGenre service.
type CreateGenreRequestBody struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// QsListGenres defines the query strings used for listing genres.
type QsListGenres struct {
	Search  string
	Filters data.Filters
}
