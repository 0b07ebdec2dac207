package service

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/lept-reviewer/backend/internal/config"
)

// SecretService resolves runtime secrets. Values are read from Secret
// Manager at call time so rotations take effect without a redeploy; env
// fallbacks exist for local development only.
type SecretService interface {
	GetOpenAIAPIKey(ctx context.Context) (string, error)
	GetAdminPassword(ctx context.Context) (string, error)
	Close() error
}

type secretService struct {
	client                *secretmanager.Client
	projectID             string
	openAIKeySecret       string
	adminPasswordSecret   string
	openAIKeyFallback     string
	adminPasswordFallback string
}

// NewSecretService builds a SecretService. When no GCP project is
// configured, the client is nil and only env fallbacks are served.
func NewSecretService(ctx context.Context, cfg *config.Config) (SecretService, error) {
	s := &secretService{
		projectID:             cfg.GCPProjectID,
		openAIKeySecret:       cfg.OpenAIAPIKeySecret,
		adminPasswordSecret:   cfg.AdminPasswordSecret,
		openAIKeyFallback:     cfg.OpenAIAPIKeyFallback,
		adminPasswordFallback: cfg.AdminPasswordFallback,
	}

	if cfg.GCPProjectID != "" {
		client, err := secretmanager.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
		}
		s.client = client
	}

	return s, nil
}

func (s *secretService) GetOpenAIAPIKey(ctx context.Context) (string, error) {
	return s.resolve(ctx, s.openAIKeySecret, s.openAIKeyFallback)
}

func (s *secretService) GetAdminPassword(ctx context.Context) (string, error) {
	return s.resolve(ctx, s.adminPasswordSecret, s.adminPasswordFallback)
}

func (s *secretService) resolve(ctx context.Context, secretName, fallback string) (string, error) {
	if s.client != nil {
		resourceName := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", s.projectID, secretName)
		result, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
			Name: resourceName,
		})
		if err == nil {
			return string(result.Payload.Data), nil
		}
		if fallback == "" {
			return "", fmt.Errorf("failed to access secret %s: %w", secretName, err)
		}
	}

	if fallback == "" {
		return "", fmt.Errorf("secret %s is not configured", secretName)
	}
	return fallback, nil
}

func (s *secretService) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
