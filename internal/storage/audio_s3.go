package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3AudioStore keeps synthesized replies in an S3-compatible bucket so
// several assistant instances can serve the same audio.
type S3AudioStore struct {
	client *minio.Client
	bucket string
	host   string
	now    func() time.Time
}

func NewS3AudioStore() (*S3AudioStore, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")
	region := os.Getenv("S3_REGION")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: true,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init S3 client: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", bucket)
	}

	return &S3AudioStore{
		client: client,
		bucket: bucket,
		host:   fmt.Sprintf("https://%s", endpoint),
		now:    time.Now,
	}, nil
}

func (s *S3AudioStore) SaveResponse(ctx context.Context, conversationID string, data []byte, extension string) (string, error) {
	filename := generateFilename(s.now(), "response", extension)
	key := fmt.Sprintf("responses/%s/%s", conversationID, filename)

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  MediaType(filename),
		UserMetadata: map[string]string{"uploaded-at": s.now().Format(time.RFC3339)},
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	return s.buildPublicURL(conversationID, filename), nil
}

// Cleanup drops objects under responses/ whose LastModified is older
// than maxAge.
func (s *S3AudioStore) Cleanup(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := s.now().Add(-maxAge)
	removed := 0

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    "responses/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return removed, fmt.Errorf("list objects: %w", obj.Err)
		}
		if !obj.LastModified.Before(cutoff) {
			continue
		}
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("remove object %s: %w", obj.Key, err)
		}
		removed++
	}
	return removed, nil
}

func (s *S3AudioStore) buildPublicURL(conversationID, filename string) string {
	return fmt.Sprintf("%s/%s/responses/%s/%s",
		s.host, s.bucket, url.PathEscape(conversationID), url.PathEscape(filename))
}
