package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/kritika/data/dto"
	"github.com/emzola/kritika/internal/validator"
	"github.com/emzola/kritika/service"
)

// ListCategories godoc
// @Summary List categories
// @Description This endpoint lists categories together with the number of titles in each
// @Tags categories
// @Produce json
// @Param search query string false "Name search term"
// @Success 200 {array} data.Category
// @Failure 422
// @Failure 500
// @Router /v1/categories [get]
func (h *Handler) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListCategories
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Search = h.readString(qs, "search", "")
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "name")
	qsInput.Filters.SortSafeList = []string{"id", "name", "slug", "-id", "-name", "-slug"}
	categories, metadata, err := h.service.ListCategories(qsInput.Search, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"categories": categories, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreateCategory godoc
// @Summary Create a new category
// @Description This endpoint creates a category. It is restricted to administrators
// @Tags categories
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body dto.CreateCategoryRequestBody true "JSON payload required to create a category"
// @Success 201 {object} data.Category
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 422
// @Failure 500
// @Router /v1/categories [post]
func (h *Handler) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateCategoryRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	category, err := h.service.CreateCategory(requestBody.Name, requestBody.Slug)
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
	headers.Set("Location", fmt.Sprintf("/v1/categories/%s", category.Slug))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"category": category}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowCategory godoc
// @Summary Show details of a category
// @Tags categories
// @Produce json
// @Param slug path string true "Slug of category to show"
// @Success 200 {object} data.Category
// @Failure 404
// @Failure 500
// @Router /v1/categories/{slug} [get]
func (h *Handler) showCategoryHandler(w http.ResponseWriter, r *http.Request) {
	slug := h.readSlugParam(r, "slug")
	category, err := h.service.ShowCategory(slug)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"category": category}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description This endpoint deletes a category. Titles keep their other fields and lose the category
// @Tags categories
// @Produce json
// @Param token header string true "Bearer token"
// @Param slug path string true "Slug of category to delete"
// @Success 200
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/categories/{slug} [delete]
func (h *Handler) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	slug := h.readSlugParam(r, "slug")
	err := h.service.DeleteCategory(slug)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "category successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
