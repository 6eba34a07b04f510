package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers"
	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/api"
	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/config"
)

// S3Config covers the S3 knobs that do not fit the STORAGE_URL shorthand,
// mainly MinIO-style deployments with a custom endpoint.
type S3Config struct {
	Endpoint        string `env:"AWS_S3_ENDPOINT" env-default:""`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:""`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:""`
	Region          string `env:"AWS_S3_REGION" env-default:""`
	CreateBucket    bool   `env:"AWS_S3_CREATE_BUCKET" env-default:"false"`
}

func main() {
	var s3Cfg S3Config
	if err := cleanenv.ReadEnv(&s3Cfg); err != nil {
		slog.Error("Failed to read configuration", "err", err)
		os.Exit(1)
	}

	serverConfig, err := config.Load(
		config.WithEnv(""),
		withS3Overrides(s3Cfg),
	)
	if err != nil {
		slog.Error("Failed to load server configuration", "err", err)
		os.Exit(1)
	}

	svc, err := serverConfig.BuildService()
	if err != nil {
		slog.Error("Failed to build service", "err", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverConfig.Port),
		Handler: routes(svc),
	}

	go func() {
		slog.Info("Sticker catalog server starting",
			"port", serverConfig.Port,
			"env", serverConfig.Environment,
			"database", serverConfig.DatabaseType,
			"storage", serverConfig.StorageType,
			"manifest_key", serverConfig.ManifestKey)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "err", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "err", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}

func withS3Overrides(s3 S3Config) config.Option {
	return func(c *config.ServerConfig) error {
		if c.StorageType != "s3" {
			return nil
		}
		if s3.Endpoint != "" {
			c.S3.Endpoint = s3.Endpoint
			c.S3.UsePathStyle = true
		}
		if s3.AccessKeyID != "" {
			c.S3.AccessKeyID = s3.AccessKeyID
		}
		if s3.SecretAccessKey != "" {
			c.S3.SecretAccessKey = s3.SecretAccessKey
		}
		if s3.Region != "" {
			c.S3.Region = s3.Region
		}
		c.S3.CreateBucketIfNotExist = s3.CreateBucket
		return nil
	}
}

func routes(svc stickers.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, http.StatusText(http.StatusOK))
	})
	r.Get("/healthz/ready", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, http.StatusText(http.StatusOK))
	})

	handler := api.NewStickerHandler(svc)
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/stickers", handler.Routes())
	})

	return r
}
