package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodPost, "/v1/auth/email", h.registerByEmailHandler)
	router.HandlerFunc(http.MethodPost, "/v1/auth/token", h.createAuthenticationTokenHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/tokens/authentication", h.requireAuthenticatedUser(h.deleteAuthenticationTokenHandler))

	// The literal path segment "me" is resolved to the caller inside the
	// :username handlers.
	router.HandlerFunc(http.MethodGet, "/v1/users", h.requireUserAdminPermission(h.listUsersHandler))
	router.HandlerFunc(http.MethodPost, "/v1/users", h.requireUserAdminPermission(h.createUserHandler))
	router.HandlerFunc(http.MethodGet, "/v1/users/:username", h.requireAuthenticatedUser(h.showUserHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/users/:username", h.requireAuthenticatedUser(h.updateUserHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/users/:username", h.requireAuthenticatedUser(h.deleteUserHandler))

	router.HandlerFunc(http.MethodGet, "/v1/categories", h.listCategoriesHandler)
	router.HandlerFunc(http.MethodPost, "/v1/categories", h.requireCatalogWritePermission(h.createCategoryHandler))
	router.HandlerFunc(http.MethodGet, "/v1/categories/:slug", h.showCategoryHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/categories/:slug", h.requireCatalogWritePermission(h.deleteCategoryHandler))

	router.HandlerFunc(http.MethodGet, "/v1/genres", h.listGenresHandler)
	router.HandlerFunc(http.MethodPost, "/v1/genres", h.requireCatalogWritePermission(h.createGenreHandler))
	router.HandlerFunc(http.MethodGet, "/v1/genres/:slug", h.showGenreHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/genres/:slug", h.requireCatalogWritePermission(h.deleteGenreHandler))

	router.HandlerFunc(http.MethodGet, "/v1/titles", h.listTitlesHandler)
	router.HandlerFunc(http.MethodPost, "/v1/titles", h.requireCatalogWritePermission(h.createTitleHandler))
	router.HandlerFunc(http.MethodGet, "/v1/titles/:titleId", h.showTitleHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/titles/:titleId", h.requireCatalogWritePermission(h.updateTitleHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/titles/:titleId", h.requireCatalogWritePermission(h.deleteTitleHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/titles/:titleId/poster", h.requireCatalogWritePermission(h.updateTitlePosterHandler))

	router.HandlerFunc(http.MethodGet, "/v1/titles/:titleId/reviews", h.listReviewsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/titles/:titleId/reviews", h.requireAuthenticatedUser(h.createReviewHandler))
	router.HandlerFunc(http.MethodGet, "/v1/titles/:titleId/reviews/:reviewId", h.showReviewHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/titles/:titleId/reviews/:reviewId", h.requireReviewWritePermission(h.updateReviewHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/titles/:titleId/reviews/:reviewId", h.requireReviewWritePermission(h.deleteReviewHandler))

	router.HandlerFunc(http.MethodGet, "/v1/titles/:titleId/reviews/:reviewId/comments", h.listCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/titles/:titleId/reviews/:reviewId/comments", h.requireAuthenticatedUser(h.createCommentHandler))
	router.HandlerFunc(http.MethodGet, "/v1/titles/:titleId/reviews/:reviewId/comments/:commentId", h.showCommentHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/titles/:titleId/reviews/:reviewId/comments/:commentId", h.requireCommentWritePermission(h.updateCommentHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/titles/:titleId/reviews/:reviewId/comments/:commentId", h.requireCommentWritePermission(h.deleteCommentHandler))

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.metrics(h.recoverPanic(h.enableCORS(h.rateLimit(h.authenticate(router)))))
}
