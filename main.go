package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/emzola/kritika/clients"
	"github.com/emzola/kritika/config"
	"github.com/emzola/kritika/handler"
	"github.com/emzola/kritika/internal/jsonlog"
	"github.com/emzola/kritika/repository"
	"github.com/emzola/kritika/repository/postgres"
	"github.com/emzola/kritika/service"
	"github.com/jellydator/ttlcache/v3"
	"github.com/joho/godotenv"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

// @title  Kritika API
// @version 1.0.0
// @description This is an API service for publishing and discussing reviews of creative works.
// @BasePath /
func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Load a .env file if one is present. Missing files are fine, the
	// environment may already be populated.
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.PrintError(err, nil)
	}

	// Initialize configuration
	var cfg config.Config
	var configFile string
	flag.StringVar(&configFile, "config", "", "Path to a YAML configuration file")
	flag.IntVar(&cfg.Server.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Server.Env, "env", "development", "Environment(development|staging|production)")

	// Read the database connection pool settings into the config
	flag.StringVar(&cfg.Database.DSN, "db-dsn", os.Getenv("DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.Database.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.IntVar(&cfg.Database.MaxIdleConns, "db-max-idle-conns", 25, "PostgreSQL max idle connections")
	flag.StringVar(&cfg.Database.MaxIdleTime, "db-max-idle-time", "15m", "PostgreSQL max connection idle time")

	// Read the SMTP server settings into the config
	smtpport, err := strconv.Atoi(os.Getenv("SMTPPORT"))
	if err != nil {
		logger.PrintError(err, nil)
	}
	flag.StringVar(&cfg.SMTP.Host, "smtp-host", os.Getenv("SMTPHOST"), "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", smtpport, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", os.Getenv("SMTPUSERNAME"), "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", os.Getenv("SMTPPASSWORD"), "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "Kritika <no-reply@kritika.net>", "SMTP sender")

	// Read AWS S3 settings into the config
	flag.StringVar(&cfg.S3.AccessKeyID, "s3-access-key", os.Getenv("AWSACCESSKEYID"), "S3 access key ID")
	flag.StringVar(&cfg.S3.SecretAccessKey, "s3-secret", os.Getenv("AWSSECRETACCESSKEY"), "S3 secret access key")
	flag.StringVar(&cfg.S3.Region, "s3-region", os.Getenv("AWSS3REGION"), "S3 Region")
	flag.StringVar(&cfg.S3.Bucket, "s3-bucket", os.Getenv("AWSS3BUCKET"), "S3 bucket")

	// Read the rate limiter settings into the config
	flag.Float64Var(&cfg.Limiter.RPS, "limiter-rps", 4, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.Limiter.Burst, "limiter-burst", 8, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.Limiter.Enabled, "limiter-enabled", true, "Enable rate limiter")

	// Read the metrics and basic auth settings into the config
	flag.BoolVar(&cfg.Metrics.Enabled, "metrics-enabled", true, "Enable request metrics")
	flag.StringVar(&cfg.BasicAuth.Username, "basic-auth-username", os.Getenv("BASICAUTHUSERNAME"), "Basic auth username for /debug/vars")
	flag.StringVar(&cfg.BasicAuth.Password, "basic-auth-password", os.Getenv("BASICAUTHPASSWORD"), "Basic auth password for /debug/vars")

	// Process the -cors-trusted-origin command line flag
	flag.Func("cors-trusted-origin", "Trusted CORS origin (space separated)", func(s string) error {
		cfg.Cors.TrustedOrigins = strings.Fields(s)
		return nil
	})

	flag.Parse()

	// A YAML config file, when given, overrides flag and environment values
	if configFile != "" {
		err := config.LoadFile(configFile, &cfg)
		if err != nil {
			logger.PrintFatal(err, nil)
		}
	}

	// Initialize database connection
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	// Object storage client for poster uploads
	s3Client, err := clients.NewS3Client(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Other shared resources: waitgroup and in-memory cache
	var wg sync.WaitGroup
	cache := ttlcache.New(ttlcache.WithTTL[string, int64](30 * time.Minute))
	go cache.Start()

	// Application layers
	repo := repository.New(db)
	service := service.New(cfg, &wg, logger, repo, s3Client)
	handler := handler.New(cfg, logger, cache, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(&wg, logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
