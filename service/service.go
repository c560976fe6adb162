package service

import (
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/emzola/kritika/config"
	"github.com/emzola/kritika/internal/jsonlog"
	"github.com/emzola/kritika/repository"
)

type Service interface {
	users
	tokens
	categories
	genres
	titles
	reviews
	comments
}

// service defines the app's service layer.
type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	repo   repository.Repository
	s3     *s3.Client
}

// New creates a new instance of Service.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository, s3Client *s3.Client) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		repo:   repo,
		s3:     s3Client,
	}
}
