package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/kritika/data/dto"
	"github.com/emzola/kritika/internal/validator"
	"github.com/emzola/kritika/service"
)

// ListTitles godoc
// @Summary List titles
// @Description This endpoint lists titles with their computed ratings
// @Tags titles
// @Produce json
// @Param search query string false "Name search term"
// @Param year query int false "Release year"
// @Param genre query string false "Genre slug"
// @Param category query string false "Category slug"
// @Success 200 {array} data.Title
// @Failure 422
// @Failure 500
// @Router /v1/titles [get]
func (h *Handler) listTitlesHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListTitles
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Search = h.readString(qs, "search", "")
	qsInput.Year = h.readInt(qs, "year", 0, v)
	qsInput.Genre = h.readString(qs, "genre", "")
	qsInput.Category = h.readString(qs, "category", "")
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "name")
	qsInput.Filters.SortSafeList = []string{"id", "name", "year", "-id", "-name", "-year"}
	titles, metadata, err := h.service.ListTitles(qsInput.Search, qsInput.Year, qsInput.Genre, qsInput.Category, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"titles": titles, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreateTitle godoc
// @Summary Create a new title
// @Description This endpoint creates a title. It is restricted to administrators
// @Tags titles
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body dto.CreateTitleRequestBody true "JSON payload required to create a title"
// @Success 201 {object} data.Title
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 422
// @Failure 500
// @Router /v1/titles [post]
func (h *Handler) createTitleHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateTitleRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	title, err := h.service.CreateTitle(requestBody.Name, requestBody.Description, requestBody.Year, requestBody.Category, requestBody.Genre)
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
	headers.Set("Location", fmt.Sprintf("/v1/titles/%d", title.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"title": title}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowTitle godoc
// @Summary Show details of a title
// @Description This endpoint shows a title, including its computed rating
// @Tags titles
// @Produce json
// @Param titleId path int true "ID of title to show"
// @Success 200 {object} data.Title
// @Failure 404
// @Failure 500
// @Router /v1/titles/{titleId} [get]
func (h *Handler) showTitleHandler(w http.ResponseWriter, r *http.Request) {
	titleID, err := h.readIDParam(r, "titleId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	title, err := h.service.ShowTitle(titleID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"title": title}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateTitle godoc
// @Summary Update a title
// @Description This endpoint partially updates a title. It is restricted to administrators
// @Tags titles
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param titleId path int true "ID of title to update"
// @Param body body dto.UpdateTitleRequestBody true "JSON payload with title fields to update"
// @Success 200 {object} data.Title
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/titles/{titleId} [patch]
func (h *Handler) updateTitleHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdateTitleRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	titleID, err := h.readIDParam(r, "titleId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	title, err := h.service.UpdateTitle(titleID, requestBody.Name, requestBody.Description, requestBody.Year, requestBody.Category, requestBody.Genre)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"title": title}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteTitle godoc
// @Summary Delete a title
// @Description This endpoint deletes a title along with its reviews and comments
// @Tags titles
// @Produce json
// @Param token header string true "Bearer token"
// @Param titleId path int true "ID of title to delete"
// @Success 200
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/titles/{titleId} [delete]
func (h *Handler) deleteTitleHandler(w http.ResponseWriter, r *http.Request) {
	titleID, err := h.readIDParam(r, "titleId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteTitle(titleID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "title successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateTitlePoster godoc
// @Summary Upload a title poster
// @Description This endpoint uploads a jpeg or png poster image for a title. It is restricted to administrators
// @Tags titles
// @Accept  mpfd
// @Produce json
// @Param token header string true "Bearer token"
// @Param titleId path int true "ID of title whose poster is uploaded"
// @Param poster formData file true "Poster image file"
// @Success 200 {object} data.Title
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 413
// @Failure 415
// @Failure 500
// @Router /v1/titles/{titleId}/poster [patch]
func (h *Handler) updateTitlePosterHandler(w http.ResponseWriter, r *http.Request) {
	titleID, err := h.readIDParam(r, "titleId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	// Limit poster uploads to 5MB
	maxBytes := int64(5_242_880)
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	title, err := h.service.UploadTitlePoster(titleID, r)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrContentTooLarge):
			h.contentTooLargeResponse(w, r)
		case errors.Is(err, service.ErrBadRequest):
			h.badRequestResponse(w, r, err)
		case errors.Is(err, service.ErrUnsupportedMediaType):
			h.unsupportedMediaTypeResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"title": title}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
