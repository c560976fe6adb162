package dto

import "github.com/emzola/kritika/data"

// CreateUserRequestBody defines a request body for the CreateUser service.
type CreateUserRequestBody struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

// UpdateUserRequestBody defines a request body for the UpdateUser service.
// Role may only be changed by an administrator.
type UpdateUserRequestBody struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
}

// QsListUsers defines the query strings used for listing users.
type QsListUsers struct {
	Search  string
	Filters data.Filters
}
