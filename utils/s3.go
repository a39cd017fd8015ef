package utils

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader stores exported documents in a bucket and hands out presigned links.
type S3Uploader struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	expires time.Duration
}

// NewS3Uploader loads the default AWS credential chain for region.
func NewS3Uploader(ctx context.Context, region, bucket string) (*S3Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("AWS_BUCKET_NAME is not set")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3Uploader{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		expires: time.Hour,
	}, nil
}

// Upload puts body under objectKey and returns the key.
func (u *S3Uploader) Upload(ctx context.Context, body io.Reader, objectKey, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return objectKey, nil
}

// PresignedURL generates a time-limited GET link for objectKey.
func (u *S3Uploader) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	request, err := u.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(u.expires))
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %w", err)
	}
	return request.URL, nil
}
