package service

import (
	"io"
	"sync"
	"time"

	"github.com/emzola/kritika/config"
	"github.com/emzola/kritika/data"
	"github.com/emzola/kritika/internal/jsonlog"
	"github.com/emzola/kritika/repository"
)

// stubRepo implements repository.Repository for tests. Methods a test does
// not stub out panic via the embedded nil interface, which surfaces
// unexpected repository calls immediately.
type stubRepo struct {
	repository.Repository

	getTitle       func(titleID int64) (*data.Title, error)
	createTitle    func(title *data.Title) error
	getCategory    func(slug string) (*data.Category, error)
	getGenres      func(slugs []string) ([]data.Genre, error)
	createReview   func(review *data.Review) error
	getReview      func(titleID, reviewID int64) (*data.Review, error)
	updateReview   func(review *data.Review) error
	createComment  func(comment *data.Comment) error
	getUserByEmail func(email string) (*data.User, error)
	registerUser   func(user *data.User) error
	updateUser     func(user *data.User) error
	createNewToken func(userID int64, ttl time.Duration, scope string) (*data.Token, error)
	getAllComments func(titleID, reviewID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error)
	getAllReviews  func(titleID int64, filters data.Filters) ([]*data.Review, data.Metadata, error)
	setTitlePoster func(titleID int64, posterURL string) error
	updateTitle    func(title *data.Title, replaceGenres bool) error
}

func (s *stubRepo) GetTitle(titleID int64) (*data.Title, error) { return s.getTitle(titleID) }
func (s *stubRepo) CreateTitle(title *data.Title) error         { return s.createTitle(title) }
func (s *stubRepo) GetCategoryBySlug(slug string) (*data.Category, error) {
	return s.getCategory(slug)
}
func (s *stubRepo) GetGenresBySlugs(slugs []string) ([]data.Genre, error) { return s.getGenres(slugs) }
func (s *stubRepo) CreateReview(review *data.Review) error                { return s.createReview(review) }
func (s *stubRepo) GetReview(titleID, reviewID int64) (*data.Review, error) {
	return s.getReview(titleID, reviewID)
}
func (s *stubRepo) UpdateReview(review *data.Review) error    { return s.updateReview(review) }
func (s *stubRepo) CreateComment(comment *data.Comment) error { return s.createComment(comment) }
func (s *stubRepo) GetUserByEmail(email string) (*data.User, error) {
	return s.getUserByEmail(email)
}
func (s *stubRepo) RegisterUser(user *data.User) error { return s.registerUser(user) }
func (s *stubRepo) UpdateUser(user *data.User) error   { return s.updateUser(user) }
func (s *stubRepo) CreateNewToken(userID int64, ttl time.Duration, scope string) (*data.Token, error) {
	return s.createNewToken(userID, ttl, scope)
}
func (s *stubRepo) GetAllCommentsForReview(titleID, reviewID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error) {
	return s.getAllComments(titleID, reviewID, filters)
}
func (s *stubRepo) GetAllReviewsForTitle(titleID int64, filters data.Filters) ([]*data.Review, data.Metadata, error) {
	return s.getAllReviews(titleID, filters)
}
func (s *stubRepo) SetTitlePoster(titleID int64, posterURL string) error {
	return s.setTitlePoster(titleID, posterURL)
}
func (s *stubRepo) UpdateTitle(title *data.Title, replaceGenres bool) error {
	return s.updateTitle(title, replaceGenres)
}

func newTestService(repo repository.Repository) *service {
	var wg sync.WaitGroup
	logger := jsonlog.New(io.Discard, jsonlog.LevelFatal)
	return New(config.Config{}, &wg, logger, repo, nil)
}
