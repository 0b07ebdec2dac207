package router

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsmiddleware "github.com/aws/smithy-go/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/api/v1/handler"
	"github.com/lept-reviewer/backend/internal/cache"
	"github.com/lept-reviewer/backend/internal/config"
	"github.com/lept-reviewer/backend/internal/middleware"
	"github.com/lept-reviewer/backend/internal/repository"
	"github.com/lept-reviewer/backend/internal/service"
)

// Resources holds everything the router owns that needs shutdown.
type Resources struct {
	Pool    *pgxpool.Pool
	Cache   *cache.Cache
	Secrets service.SecretService
}

func (r *Resources) Close() {
	r.Pool.Close()
	_ = r.Cache.Close()
	_ = r.Secrets.Close()
}

func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (http.Handler, *Resources, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initializing")

	pool, err := repository.Connect(ctx, cfg.DBConnectionString, time.Duration(cfg.DBConnectTimeout)*time.Second)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	redisCache, err := cache.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	logger.Info().Msg("Redis connection successful")

	s3Config, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
	)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	s3Client := s3.NewFromConfig(s3Config, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3URL)
		o.UsePathStyle = true
	})

	secrets, err := service.NewSecretService(ctx, cfg)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepo(pool)
	paymentRepo := repository.NewPaymentRepo(pool)
	documentRepo := repository.NewDocumentRepo(pool)
	usageRepo := repository.NewUsageRepo(pool)

	storageSvc := service.NewStorageService(s3Client, cfg.S3Bucket, logger)
	openAIClient := service.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIModel)

	userSvc := service.NewUserService(userRepo, usageRepo, redisCache, secrets, logger)
	questionSvc := service.NewQuestionService(userRepo, usageRepo, redisCache, secrets, openAIClient, logger)
	paymentSvc := service.NewPaymentService(paymentRepo, userRepo, usageRepo, storageSvc, redisCache, cfg.MaxFileSizeMB, logger)
	documentSvc := service.NewDocumentService(documentRepo, usageRepo, storageSvc, redisCache, cfg.MaxFileSizeMB, logger)

	authHandler := handler.NewAuthHandler(userSvc, validate, cfg.JWTSecret, logger)
	userHandler := handler.NewUserHandler(userSvc, paymentSvc, logger)
	questionHandler := handler.NewQuestionHandler(questionSvc, userSvc, documentSvc, validate, logger)
	documentHandler := handler.NewDocumentHandler(documentSvc, userSvc, cfg.MaxFileSizeMB, logger)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, cfg, logger)
	adminHandler := handler.NewAdminHandler(userSvc, paymentSvc, documentSvc, validate, cfg.MaxFileSizeMB, logger)

	authMw := middleware.AuthMiddleware(cfg.JWTSecret)
	adminMw := middleware.AdminMiddleware(cfg.JWTSecret)

	apiV1Mux := http.NewServeMux()
	authHandler.RegisterRoutes(apiV1Mux)
	userHandler.RegisterRoutes(apiV1Mux, authMw)
	questionHandler.RegisterRoutes(apiV1Mux, authMw)
	documentHandler.RegisterRoutes(apiV1Mux, authMw)
	paymentHandler.RegisterRoutes(apiV1Mux, authMw)
	adminHandler.RegisterRoutes(apiV1Mux, adminMw)

	mux := http.NewServeMux()
	mux.Handle("/v1/", http.StripPrefix("/v1", middleware.MetricsMiddleware(apiV1Mux)))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	resources := &Resources{Pool: pool, Cache: redisCache, Secrets: secrets}
	return middleware.LoggerMiddleware(c.Handler(mux)), resources, nil
}

// removeDisableGzip is a workaround for S3 signature errors with some
// S3-compatible services.
// See: https://github.com/supabase/storage/issues/577
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}
