package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/kritika/data/dto"
	"github.com/emzola/kritika/internal/authz"
	"github.com/emzola/kritika/internal/validator"
	"github.com/emzola/kritika/service"
)

// RegisterByEmail godoc
// @Summary Sign up with an email address
// @Description This endpoint registers a user by email and sends them a confirmation code
// @Tags auth
// @Accept  json
// @Produce json
// @Param body body dto.RegisterByEmailRequestBody true "JSON payload required to sign up"
// @Success 202 {object} data.User
// @Failure 400
// @Failure 422
// @Failure 500
// @Router /v1/auth/email [post]
func (h *Handler) registerByEmailHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.RegisterByEmailRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, err := h.service.RegisterByEmail(requestBody.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusAccepted, envelope{"user": user}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// usernameFromPath resolves the username url parameter. The literal value
// "me" is an alias for the authenticated caller, so /v1/users/me addresses
// the caller's own profile.
func (h *Handler) usernameFromPath(r *http.Request) (username string, isMe bool) {
	username = h.readSlugParam(r, "username")
	caller := h.contextGetUser(r)
	if username == "me" {
		return caller.Username, true
	}
	return username, false
}

// ListUsers godoc
// @Summary List users
// @Description This endpoint lists users. It is restricted to administrators
// @Tags users
// @Produce json
// @Param token header string true "Bearer token"
// @Param search query string false "Username search term"
// @Success 200 {array} data.User
// @Failure 401
// @Failure 403
// @Failure 422
// @Failure 500
// @Router /v1/users [get]
func (h *Handler) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListUsers
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Search = h.readString(qs, "search", "")
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "id")
	qsInput.Filters.SortSafeList = []string{"id", "username", "created_at", "-id", "-username", "-created_at"}
	users, metadata, err := h.service.ListUsers(qsInput.Search, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"users": users, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreateUser godoc
// @Summary Create a new user
// @Description This endpoint creates a user with an explicit role. It is restricted to administrators
// @Tags users
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body dto.CreateUserRequestBody true "JSON payload required to create a user"
// @Success 201 {object} data.User
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 422
// @Failure 500
// @Router /v1/users [post]
func (h *Handler) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateUserRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, err := h.service.CreateUser(requestBody.Username, requestBody.Email, requestBody.FirstName, requestBody.LastName, requestBody.Bio, requestBody.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/users/%s", user.Username))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"user": user}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowUser godoc
// @Summary Show details of a user
// @Description This endpoint shows a user. It is available to the user themselves or an administrator
// @Tags users
// @Produce json
// @Param token header string true "Bearer token"
// @Param username path string true "Username of user to show"
// @Success 200 {object} data.User
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/users/{username} [get]
func (h *Handler) showUserHandler(w http.ResponseWriter, r *http.Request) {
	username, _ := h.usernameFromPath(r)
	caller := h.contextGetUser(r)
	if !authz.Allowed(caller.Role, !caller.IsAnonymous(), caller.Username == username, authz.ActionRead, authz.ResourceUser) {
		h.notPermittedResponse(w, r)
		return
	}
	user, err := h.service.ShowUserByUsername(username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateUser godoc
// @Summary Update a user
// @Description This endpoint updates a user. Role changes are restricted to administrators
// @Tags users
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param username path string true "Username of user to update"
// @Param body body dto.UpdateUserRequestBody true "JSON payload with user fields to update"
// @Success 200 {object} data.User
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/users/{username} [patch]
func (h *Handler) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdateUserRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	username, isMe := h.usernameFromPath(r)
	caller := h.contextGetUser(r)
	if !authz.Allowed(caller.Role, !caller.IsAnonymous(), caller.Username == username, authz.ActionUpdate, authz.ResourceUser) {
		h.notPermittedResponse(w, r)
		return
	}
	// Role is read-only on the caller's own profile and admin-only elsewhere.
	if isMe {
		requestBody.Role = nil
	} else if requestBody.Role != nil && !caller.Role.IsAdmin() {
		h.notPermittedResponse(w, r)
		return
	}
	user, err := h.service.ShowUserByUsername(username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	user, err = h.service.UpdateUser(user, requestBody.Email, requestBody.FirstName, requestBody.LastName, requestBody.Bio, requestBody.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteUser godoc
// @Summary Delete a user
// @Description This endpoint deletes a user along with their reviews, comments and tokens
// @Tags users
// @Produce json
// @Param token header string true "Bearer token"
// @Param username path string true "Username of user to delete"
// @Success 200
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/users/{username} [delete]
func (h *Handler) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	username, _ := h.usernameFromPath(r)
	caller := h.contextGetUser(r)
	if !authz.Allowed(caller.Role, !caller.IsAnonymous(), caller.Username == username, authz.ActionDelete, authz.ResourceUser) {
		h.notPermittedResponse(w, r)
		return
	}
	user, err := h.service.ShowUserByUsername(username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.service.DeleteUser(user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "user successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
