package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PhotoStorage handles listing photos on S3-compatible storage
type PhotoStorage struct {
	client    *minio.Client
	bucket    string
	region    string
	publicURL string
	useSSL    bool
	endpoint  string
}

// NewPhotoStorage creates a new S3-backed photo store. publicURL, when set,
// overrides the endpoint-derived base for the URLs stored with listings
// (useful behind a CDN).
func NewPhotoStorage(endpoint, accessKey, secretKey, bucket, region, publicURL string, useSSL bool) (*PhotoStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	return &PhotoStorage{
		client:    client,
		bucket:    bucket,
		region:    region,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		useSSL:    useSSL,
		endpoint:  endpoint,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *PhotoStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{
			Region: s.region,
		})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// UploadPhoto stores a photo and returns the URL to persist with the listing
func (s *PhotoStorage) UploadPhoto(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return s.PhotoURL(key), nil
}

// PhotoURL returns the public URL for a stored photo key
func (s *PhotoStorage) PhotoURL(key string) string {
	return s.baseURL() + "/" + key
}

// PhotoKey recovers the object key from a URL this store produced.
// Returns the empty string for URLs outside this store.
func (s *PhotoStorage) PhotoKey(url string) string {
	prefix := s.baseURL() + "/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	return strings.TrimPrefix(url, prefix)
}

func (s *PhotoStorage) baseURL() string {
	if s.publicURL != "" {
		return s.publicURL
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, s.endpoint, s.bucket)
}

// DeletePhoto removes a photo from the bucket
func (s *PhotoStorage) DeletePhoto(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}
