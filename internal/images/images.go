// Package images stores gift display images. Two backends exist behind one
// interface: a MinIO bucket when an endpoint is configured, and a local
// uploads directory otherwise.
package images

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/lucasraugi/presentes-api/internal/config"
	"github.com/lucasraugi/presentes-api/internal/logger"
)

// Store saves an uploaded image and returns a URL under which it can be
// displayed.
type Store interface {
	Save(ctx context.Context, name, contentType string, size int64, r io.Reader) (string, error)
}

// NewStore selects the backend from configuration.
func NewStore(cfg *config.Config) (Store, error) {
	if cfg.Minio.Endpoint != "" {
		return NewMinioStore(cfg)
	}
	return NewLocalStore(cfg.Upload.Dir), nil
}

// MinioStore keeps images in a MinIO bucket.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	log       *log.Logger
}

// NewMinioStore connects to the configured MinIO endpoint and ensures the
// bucket exists.
func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Minio.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Minio.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	publicURL := cfg.Minio.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.Minio.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.Minio.Endpoint
	}

	store := &MinioStore{
		client:    client,
		bucket:    cfg.Minio.Bucket,
		publicURL: publicURL,
		log:       logger.WithContext("component", "images", "backend", "minio"),
	}

	store.log.Info("image store ready", "endpoint", cfg.Minio.Endpoint, "bucket", cfg.Minio.Bucket)
	return store, nil
}

func (s *MinioStore) Save(ctx context.Context, name, contentType string, size int64, r io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.log.Error("failed to store image", "object", name, "error", err)
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	s.log.Info("image stored", "object", name, "size", size)
	return s.publicURL + "/" + s.bucket + "/" + url.PathEscape(name), nil
}

// LocalStore keeps images in a directory served by the API under /uploads.
type LocalStore struct {
	dir string
	log *log.Logger
}

// NewLocalStore creates an image store backed by a local directory.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{
		dir: dir,
		log: logger.WithContext("component", "images", "backend", "local"),
	}
}

func (s *LocalStore) Save(ctx context.Context, name, contentType string, size int64, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	path := filepath.Join(s.dir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	s.log.Info("image stored", "path", path, "size", size)
	return "/uploads/" + filepath.Base(name), nil
}
