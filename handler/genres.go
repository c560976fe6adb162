package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/kritika/data/dto"
	"github.com/emzola/kritika/internal/validator"
	"github.com/emzola/kritika/service"
)

// ListGenres godoc
// @Summary List genres
// @Description This endpoint lists genres together with the number of titles in each
// @Tags genres
// @Produce json
// @Param search query string false "Name search term"
// @Success 200 {array} data.Genre
// @Failure 422
// @Failure 500
// @Router /v1/genres [get]
func (h *Handler) listGenresHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListGenres
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Search = h.readString(qs, "search", "")
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "name")
	qsInput.Filters.SortSafeList = []string{"id", "name", "slug", "-id", "-name", "-slug"}
	genres, metadata, err := h.service.ListGenres(qsInput.Search, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"genres": genres, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreateGenre godoc
// @Summary Create a new genre
// @Description This endpoint creates a genre. It is restricted to administrators
// @Tags genres
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body dto.CreateGenreRequestBody true "JSON payload required to create a genre"
// @Success 201 {object} data.Genre
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 422
// @Failure 500
// @Router /v1/genres [post]
func (h *Handler) createGenreHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateGenreRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	genre, err := h.service.CreateGenre(requestBody.Name, requestBody.Slug)
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
	headers.Set("Location", fmt.Sprintf("/v1/genres/%s", genre.Slug))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"genre": genre}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowGenre godoc
// @Summary Show details of a genre
// @Tags genres
// @Produce json
// @Param slug path string true "Slug of genre to show"
// @Success 200 {object} data.Genre
// @Failure 404
// @Failure 500
// @Router /v1/genres/{slug} [get]
func (h *Handler) showGenreHandler(w http.ResponseWriter, r *http.Request) {
	slug := h.readSlugParam(r, "slug")
	genre, err := h.service.ShowGenre(slug)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"genre": genre}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteGenre godoc
// @Summary Delete a genre
// @Description This endpoint deletes a genre and unlinks it from any titles
// @Tags genres
// @Produce json
// @Param token header string true "Bearer token"
// @Param slug path string true "Slug of genre to delete"
// @Success 200
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/genres/{slug} [delete]
func (h *Handler) deleteGenreHandler(w http.ResponseWriter, r *http.Request) {
	slug := h.readSlugParam(r, "slug")
	err := h.service.DeleteGenre(slug)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "genre successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
