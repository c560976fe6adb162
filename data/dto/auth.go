package dto

// RegisterByEmailRequestBody defines a request body for the RegisterByEmail service.
type RegisterByEmailRequestBody struct {
	Email string `json:"email"`
}

// CreateAuthenticationTokenRequestBody defines a request body for the
// CreateAuthenticationToken service.
type CreateAuthenticationTokenRequestBody struct {
	Email            string `json:"email"`
	ConfirmationCode string `json:"confirmation_code"`
}
