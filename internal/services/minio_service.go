package services

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioService is the read side of the media bucket.
type MinioService interface {
	ListObjects(ctx context.Context, bucketName, prefix string) ([]string, error)
	GetPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
}

type minioClient struct {
	client *minio.Client
}

func NewMinioService(endpoint, accessKey, secretKey string, useSSL bool) (MinioService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioClient{client: client}, nil
}

// ListObjects returns the object keys directly under prefix, in the order the
// server lists them (lexicographic for S3-compatible stores).
func (m *minioClient) ListObjects(ctx context.Context, bucketName, prefix string) ([]string, error) {
	var keys []string
	for obj := range m.client.ListObjects(ctx, bucketName, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if obj.Size == 0 {
			continue // folder placeholders
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func (m *minioClient) GetPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, bucketName, objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}
