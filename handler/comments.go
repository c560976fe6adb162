package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/kritika/data/dto"
	"github.com/emzola/kritika/internal/validator"
	"github.com/emzola/kritika/service"
)

// ListComments godoc
// @Summary List comments on a review
// @Tags comments
// @Produce json
// @Param titleId path int true "ID of title the review belongs to"
// @Param reviewId path int true "ID of review whose comments are listed"
// @Success 200 {array} data.Comment
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /v1/titles/{titleId}/reviews/{reviewId}/comments [get]
func (h *Handler) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	titleID, err := h.readIDParam(r, "titleId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var qsInput dto.QsListComments
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "-created_at")
	qsInput.Filters.SortSafeList = []string{"id", "created_at", "-id", "-created_at"}
	comments, metadata, err := h.service.ListComments(titleID, reviewID, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"comments": comments, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreateComment godoc
// @Summary Create a new comment
// @Description This endpoint creates a comment on a review
// @Tags comments
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param titleId path int true "ID of title the review belongs to"
// @Param reviewId path int true "ID of review to comment on"
// @Param body body dto.CreateCommentRequestBody true "JSON payload required to create a comment"
// @Success 201 {object} data.Comment
// @Failure 400
// @Failure 401
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /v1/titles/{titleId}/reviews/{reviewId}/comments [post]
func (h *Handler) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateCommentRequestBody
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
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	comment, err := h.service.CreateComment(titleID, reviewID, user, requestBody.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/titles/%d/reviews/%d/comments/%d", titleID, reviewID, comment.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"comment": comment}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowComment godoc
// @Summary Show details of a comment
// @Tags comments
// @Produce json
// @Param titleId path int true "ID of title the review belongs to"
// @Param reviewId path int true "ID of review the comment belongs to"
// @Param commentId path int true "ID of comment to show"
// @Success 200 {object} data.Comment
// @Failure 404
// @Failure 500
// @Router /v1/titles/{titleId}/reviews/{reviewId}/comments/{commentId} [get]
func (h *Handler) showCommentHandler(w http.ResponseWriter, r *http.Request) {
	titleID, err := h.readIDParam(r, "titleId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	commentID, err := h.readIDParam(r, "commentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	comment, err := h.service.ShowComment(titleID, reviewID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"comment": comment}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateComment godoc
// @Summary Update a comment
// @Description This endpoint updates a comment's text. It is restricted to the comment's author, moderators and administrators
// @Tags comments
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param titleId path int true "ID of title the review belongs to"
// @Param reviewId path int true "ID of review the comment belongs to"
// @Param commentId path int true "ID of comment to update"
// @Param body body dto.UpdateCommentRequestBody true "JSON payload with comment fields to update"
// @Success 200 {object} data.Comment
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/titles/{titleId}/reviews/{reviewId}/comments/{commentId} [patch]
func (h *Handler) updateCommentHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdateCommentRequestBody
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
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	commentID, err := h.readIDParam(r, "commentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	comment, err := h.service.UpdateComment(titleID, reviewID, commentID, requestBody.Text)
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
	err = h.encodeJSON(w, http.StatusOK, envelope{"comment": comment}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description This endpoint deletes a comment. It is restricted to the comment's author, moderators and administrators
// @Tags comments
// @Produce json
// @Param token header string true "Bearer token"
// @Param titleId path int true "ID of title the review belongs to"
// @Param reviewId path int true "ID of review the comment belongs to"
// @Param commentId path int true "ID of comment to delete"
// @Success 200
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/titles/{titleId}/reviews/{reviewId}/comments/{commentId} [delete]
func (h *Handler) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	titleID, err := h.readIDParam(r, "titleId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	commentID, err := h.readIDParam(r, "commentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteComment(titleID, reviewID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	h.cache.Delete(fmt.Sprintf("comment:%d:owner", commentID))
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "comment successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
