package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers"
	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/catalog"
	repomemory "github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/repo/memory"
	repopg "github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/repo/postgres"
	fsstorage "github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/storage/fs"
	memorystorage "github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/storage/memory"
	s3storage "github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/storage/s3"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of
// library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:         "8080",
		Environment:  "development",
		DatabaseType: "memory",
		StorageType:  "memory",
		ManifestKey:  stickers.DefaultManifestKey,
	}
}

// ServerConfig represents server configuration for the sticker service.
// Connection details become explicit fields here instead of being read from
// process-wide settings inside the store constructors.
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Database configuration
	DatabaseURL  string
	DatabaseType string // "memory", "postgres"

	// Storage configuration
	StorageType string // "memory", "fs", "s3"
	FS          FSConfig
	S3          S3Config

	// Manifest blob key the publish pipeline writes to
	ManifestKey string
}

// FSConfig holds filesystem blob store settings
type FSConfig struct {
	BaseDir   string
	URLPrefix string
}

// S3Config holds S3 blob store settings
type S3Config struct {
	Region                 string
	Bucket                 string
	AccessKeyID            string
	SecretAccessKey        string
	Endpoint               string
	UsePathStyle           bool
	PublicBaseURL          string
	CreateBucketIfNotExist bool
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	if c.DatabaseType != "memory" && c.DatabaseType != "postgres" {
		return errors.New("database_type must be 'memory' or 'postgres'")
	}
	if c.DatabaseType == "postgres" && c.DatabaseURL == "" {
		return errors.New("database_url is required when using postgres")
	}

	switch c.StorageType {
	case "memory":
	case "fs":
		if c.FS.BaseDir == "" {
			return errors.New("fs base_dir is required when using fs storage")
		}
		if c.FS.URLPrefix == "" {
			return errors.New("fs url_prefix is required when using fs storage")
		}
	case "s3":
		if c.S3.Bucket == "" {
			return errors.New("s3 bucket is required when using s3 storage")
		}
	default:
		return fmt.Errorf("unsupported storage type: %s", c.StorageType)
	}

	if c.ManifestKey == "" {
		return errors.New("manifest key is required")
	}

	return nil
}

// BuildService creates a Service instance from the server configuration
func (c *ServerConfig) BuildService() (stickers.Service, error) {
	repo, err := c.buildRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}

	store, err := c.buildBlobStore()
	if err != nil {
		return nil, fmt.Errorf("failed to build blob store: %w", err)
	}

	return stickers.New(
		stickers.WithRepository(repo),
		stickers.WithBlobStore(store),
		stickers.WithCatalog(catalog.Entries()),
		stickers.WithManifestKey(c.ManifestKey),
		stickers.WithEventSink(stickers.NewNoopEventSink()),
	)
}

// buildRepository creates a Repository based on the configuration
func (c *ServerConfig) buildRepository() (stickers.Repository, error) {
	switch c.DatabaseType {
	case "memory":
		return repomemory.New(), nil
	case "postgres":
		pool, err := pgxpool.New(context.Background(), c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create pgx pool: %w", err)
		}
		return repopg.NewWithPool(pool), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", c.DatabaseType)
	}
}

// buildBlobStore creates a BlobStore based on the configuration
func (c *ServerConfig) buildBlobStore() (stickers.BlobStore, error) {
	switch c.StorageType {
	case "memory":
		return memorystorage.New(), nil

	case "fs":
		return fsstorage.New(fsstorage.Config{
			BaseDir:   c.FS.BaseDir,
			URLPrefix: c.FS.URLPrefix,
		})

	case "s3":
		return s3storage.New(s3storage.Config{
			Region:                 c.S3.Region,
			Bucket:                 c.S3.Bucket,
			AccessKeyID:            c.S3.AccessKeyID,
			SecretAccessKey:        c.S3.SecretAccessKey,
			Endpoint:               c.S3.Endpoint,
			UsePathStyle:           c.S3.UsePathStyle,
			PublicBaseURL:          c.S3.PublicBaseURL,
			CreateBucketIfNotExist: c.S3.CreateBucketIfNotExist,
		})

	default:
		return nil, fmt.Errorf("unsupported storage type: %s", c.StorageType)
	}
}
