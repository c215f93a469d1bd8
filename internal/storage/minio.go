package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/filedrop/service/internal/config"
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// Switching providers is a matter of changing STORAGE_ENDPOINT and credentials —
// no code changes are needed as long as the provider speaks S3.
type MinioStorage struct {
	client     *minio.Client
	bucket     string
	publicBase string
	logger     *zap.Logger
}

// NewMinioStorage creates a MinIO client, ensures the bucket exists with a
// public-read policy, and returns a ready-to-use MinioStorage.
func NewMinioStorage(cfg *config.Config, logger *zap.Logger) (*MinioStorage, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, cfg.StorageBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.StorageBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", cfg.StorageBucket, err)
		}
		logger.Info("created bucket", zap.String("bucket", cfg.StorageBucket))
	}

	if err := client.SetBucketPolicy(ctx, cfg.StorageBucket, publicReadPolicy(cfg.StorageBucket)); err != nil {
		return nil, fmt.Errorf("set bucket policy: %w", err)
	}

	return &MinioStorage{
		client:     client,
		bucket:     cfg.StorageBucket,
		publicBase: strings.TrimRight(cfg.StoragePublicBase, "/"),
		logger:     logger,
	}, nil
}

// Upload streams reader to MinIO under key. size must be the exact byte count
// (pass -1 only if the size is genuinely unknown — MinIO will buffer it).
// The call returns only after the store acknowledges the write.
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string, metadata map[string]string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: metadata,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Exists reports whether an object is stored under key.
func (s *MinioStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("stat object %q: %w", key, err)
	}
	return true, nil
}

// Stat fetches content type and user metadata for the object at key.
func (s *MinioStorage) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("stat object %q: %w", key, err)
	}
	return ObjectInfo{
		Key:         key,
		ContentType: info.ContentType,
		Metadata:    normalizeMetadata(info.UserMetadata),
	}, nil
}

// List enumerates all objects in the bucket with their user metadata.
func (s *MinioStorage) List(ctx context.Context) ([]ObjectInfo, error) {
	objects := []ObjectInfo{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{WithMetadata: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		objects = append(objects, ObjectInfo{
			Key:         obj.Key,
			ContentType: obj.ContentType,
			Metadata:    normalizeMetadata(obj.UserMetadata),
		})
	}
	return objects, nil
}

// SignedURL mints a presigned GET URL valid for expiry.
func (s *MinioStorage) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", key, err)
	}
	return u.String(), nil
}

// PublicURL returns the browser-accessible URL for the given key.
// For local MinIO: "http://localhost:9000/uploads/8a6f...-id"
// For a CDN-fronted bucket: "https://cdn.example.com/8a6f...-id"
func (s *MinioStorage) PublicURL(key string) string {
	return s.publicBase + "/" + key
}

// Delete removes the object at key from the bucket. Exposed for out-of-band
// administrative cleanup; no HTTP route reaches it.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// normalizeMetadata lowercases metadata keys and strips the X-Amz-Meta-
// prefix. StatObject reports user metadata in canonical header case while
// ListObjects keeps the full amz prefix; callers see one consistent shape.
func normalizeMetadata(raw map[string]string) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	meta := make(map[string]string, len(raw))
	for k, v := range raw {
		k = strings.ToLower(k)
		k = strings.TrimPrefix(k, "x-amz-meta-")
		meta[k] = v
	}
	return meta
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
