package dto

import "github.com/emzola/kritika/data"

// CreateTitleRequestBody defines a request body for the CreateTitle service.
// Category is an existing category slug or absent; Genre is a set of existing
// genre slugs.
type CreateTitleRequestBody struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Year        int32    `json:"year"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

// UpdateTitleRequestBody defines a request body for the UpdateTitle service.
type UpdateTitleRequestBody struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Year        *int32   `json:"year"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

// QsListTitles defines the query strings used for listing titles.
type QsListTitles struct {
	Search   string
	Year     int
	Genre    string
	Category string
	Filters  data.Filters
}
