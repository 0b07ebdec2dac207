package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// StorageService wraps object storage for reviewer documents and payment
// receipts. Uploads go through the server (files are small and the text
// extraction needs the bytes anyway); downloads use short-lived presigned
// GET URLs so file bytes never transit the API.
type StorageService interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PresignedGetURL(ctx context.Context, key string, expires time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type storageService struct {
	s3Client      *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
	storageLogger zerolog.Logger
}

func NewStorageService(s3Client *s3.Client, bucketName string, logger zerolog.Logger) StorageService {
	return &storageService{
		s3Client:      s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    bucketName,
		storageLogger: logger.With().Str("service", "StorageService").Logger(),
	}
}

func (s *storageService) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.storageLogger.Error().Err(err).Str("key", key).Msg("Failed to upload object")
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return nil
}

func (s *storageService) PresignedGetURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		s.storageLogger.Error().Err(err).Str("key", key).Msg("Failed to presign GET URL")
		return "", fmt.Errorf("failed to presign URL for %s: %w", key, err)
	}
	return req.URL, nil
}

func (s *storageService) Delete(ctx context.Context, key string) error {
	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		s.storageLogger.Error().Err(err).Str("key", key).Msg("Failed to delete object")
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}
