package dto

import "github.com/emzola/kritika/data"

// CreateCommentRequestBody defines a request body for the CreateComment service.
type CreateCommentRequestBody struct {
	Text string `json:"text"`
}

// UpdateCommentRequestBody defines a request body for the UpdateComment service.
type UpdateCommentRequestBody struct {
	Text *string `json:"text"`
}

// QsListComments defines the query strings used for listing comments.
type QsListComments struct {
	Filters data.Filters
}
