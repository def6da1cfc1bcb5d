// api/storage/blob_store.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/config"
	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
)

// BlobStore keeps the bytes of uploaded document files and returns a durable URL for them.
type BlobStore interface {
	Store(ctx context.Context, content io.Reader, size int64, filename, mimeType string) (string, error)
	// Remove deletes a file previously returned by Store.
	Remove(ctx context.Context, fileURL string) error
}

type MinioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	timeout       time.Duration
}

var _ BlobStore = &MinioStore{}

// NewMinioStore connects to the configured endpoint and makes sure the document bucket exists.
func NewMinioStore(ctx context.Context, cfg config.BlobStorageConfiguration) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}
	logger.Info("MinIO client initialized", zap.String("endpoint", cfg.Endpoint))

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	s := &MinioStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		timeout:       timeout,
	}
	if s.publicBaseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		s.publicBaseURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	if err := s.initBucket(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MinioStore) initBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("error checking if bucket exists: %w", err)
	}
	if exists {
		logger.Info("Bucket already exists", zap.String("bucket", s.bucket))
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("error creating bucket: %w", err)
	}
	logger.Info("Bucket created successfully", zap.String("bucket", s.bucket))
	return nil
}

// Store uploads content as "<unix millis>-<filename>".
func (s *MinioStore) Store(ctx context.Context, content io.Reader, size int64, filename, mimeType string) (string, error) {
	start := time.Now()
	objectName := ObjectName(filename, start)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, s.bucket, objectName, content, size, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to upload file",
			zap.String("object", objectName),
			zap.Int64("size", size),
			zap.Duration("duration", duration),
			zap.Error(err))
		return "", classifyError(err)
	}

	fileURL := s.publicBaseURL + "/" + s.bucket + "/" + url.PathEscape(objectName)
	logger.Info("File uploaded successfully",
		zap.String("object", objectName),
		zap.Int64("size", size),
		zap.Duration("duration", duration))
	return fileURL, nil
}

func (s *MinioStore) Remove(ctx context.Context, fileURL string) error {
	objectName, err := s.objectNameOf(fileURL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		logger.Error("Failed to remove file", zap.String("object", objectName), zap.Error(err))
		return classifyError(err)
	}
	logger.Info("File removed", zap.String("object", objectName))
	return nil
}

// objectNameOf reverses the URL built by Store.
func (s *MinioStore) objectNameOf(fileURL string) (string, error) {
	prefix := s.publicBaseURL + "/" + s.bucket + "/"
	if !strings.HasPrefix(fileURL, prefix) {
		return "", etmf_errors.Validation("file %s is not stored in bucket %s", fileURL, s.bucket)
	}
	return url.PathUnescape(strings.TrimPrefix(fileURL, prefix))
}

// ObjectName derives the stored object name for an uploaded file.
func ObjectName(filename string, at time.Time) string {
	name := strings.ReplaceAll(strings.TrimSpace(filename), "/", "_")
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("%d-%s", at.UnixMilli(), name)
}

func classifyError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return etmf_errors.Wrap(etmf_errors.ErrTimeout, err, "blob storage timed out")
	}
	return etmf_errors.Wrap(etmf_errors.ErrBlobStore, err, "blob storage request failed")
}
