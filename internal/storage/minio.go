package storage

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Upload URLs are consumed immediately after presigning; view URLs back a
// page render and outlive it a little.
const (
	putExpiry = 5 * time.Minute
	getExpiry = time.Hour
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
type MinioStorage struct {
	client  *minio.Client
	bucket  string
	cdnBase string
}

// NewMinioStorage creates a MinIO client, ensures the bucket exists, and
// returns a ready-to-use MinioStorage. The bucket stays private; all access
// goes through presigned URLs or the optional CDN base.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket, region, cdnBase string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		log.Printf("storage: created bucket %q", bucket)
	}

	return &MinioStorage{
		client:  client,
		bucket:  bucket,
		cdnBase: strings.TrimRight(cdnBase, "/"),
	}, nil
}

// PresignPut signs a PUT URL for key that commits the uploader to contentType.
func (s *MinioStorage) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	headers := http.Header{"Content-Type": []string{contentType}}
	u, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, key, putExpiry, url.Values{}, headers)
	if err != nil {
		return "", fmt.Errorf("presign put %q: %w", key, err)
	}
	return u.String(), nil
}

// PresignGet signs a GET URL for key.
func (s *MinioStorage) PresignGet(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, getExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign get %q: %w", key, err)
	}
	return u.String(), nil
}

// PublicURL returns the CDN URL for key, or "" when no CDN base is configured.
func (s *MinioStorage) PublicURL(key string) string {
	if s.cdnBase == "" {
		return ""
	}
	return s.cdnBase + "/" + key
}
