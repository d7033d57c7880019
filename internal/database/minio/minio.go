package minio

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/valvesss/weseg-replit/internal/config"
)

// MinioClient wraps the MinIO client used for uploaded broker documents.
type MinioClient struct {
	client *minio.Client
	config config.MinioConfig
}

// DocumentsBucket holds every uploaded document, keyed by the stored
// file name.
const DocumentsBucket = "broker-documents"

func NewMinioClient(cfg config.MinioConfig) (*MinioClient, error) {
	endpoint := strings.TrimPrefix(cfg.MinioURL, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	isSecure, err := strconv.ParseBool(cfg.MinioSecure)
	if err != nil {
		log.Printf("Invalid value for MinIO secure flag: %v. Defaulting to false.", err)
		isSecure = false
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: isSecure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := minioClient.ListBuckets(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO server: %w", err)
	}

	mc := &MinioClient{
		client: minioClient,
		config: cfg,
	}

	if err := mc.ensureBucket(context.Background(), DocumentsBucket); err != nil {
		return nil, fmt.Errorf("failed to ensure documents bucket: %w", err)
	}

	log.Printf("MinIO client initialized, bucket %q ready", DocumentsBucket)
	return mc, nil
}

func (mc *MinioClient) ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := mc.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("error checking bucket existence: %w", err)
	}
	if !exists {
		err := mc.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{
			Region: mc.config.MinioLocation,
		})
		if err != nil {
			return fmt.Errorf("error creating bucket %s: %w", bucketName, err)
		}
		log.Printf("Created bucket: %s", bucketName)
	}
	return nil
}

// UploadBytes stores file content under objectName in the documents bucket.
func (mc *MinioClient) UploadBytes(ctx context.Context, objectName string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)
	_, err := mc.client.PutObject(ctx, DocumentsBucket, objectName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}
	return nil
}

// DeleteFile removes a stored object.
func (mc *MinioClient) DeleteFile(ctx context.Context, objectName string) error {
	err := mc.client.RemoveObject(ctx, DocumentsBucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectName, err)
	}
	return nil
}

// GetPresignedURL returns a temporary download URL for a stored object.
func (mc *MinioClient) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := mc.client.PresignedGetObject(ctx, DocumentsBucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL for %s: %w", objectName, err)
	}
	return url.String(), nil
}
