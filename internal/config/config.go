package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`
	DBConnectTimeout   int    `envconfig:"DB_CONNECT_TIMEOUT_SEC" default:"30"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	S3URL       string `envconfig:"S3_URL" required:"true"`
	S3Bucket    string `envconfig:"S3_BUCKET" required:"true"`
	S3Region    string `envconfig:"S3_REGION" required:"true"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY" required:"true"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY" required:"true"`

	// Secrets are fetched from Secret Manager at call time; the env values
	// below are local-development fallbacks only.
	GCPProjectID          string `envconfig:"GCP_PROJECT_ID" default:""`
	OpenAIAPIKeySecret    string `envconfig:"OPENAI_API_KEY_SECRET" default:"openai-api-key"`
	AdminPasswordSecret   string `envconfig:"ADMIN_PASSWORD_SECRET" default:"admin-password"`
	OpenAIAPIKeyFallback  string `envconfig:"OPENAI_API_KEY" default:""`
	AdminPasswordFallback string `envconfig:"ADMIN_PASSWORD" default:""`

	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`

	MaxFileSizeMB int `envconfig:"MAX_FILE_SIZE_MB" default:"200"`

	// GCash details shown on the upgrade page.
	GCashNumber      string `envconfig:"GCASH_NUMBER" default:""`
	GCashAccountName string `envconfig:"GCASH_ACCOUNT_NAME" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
