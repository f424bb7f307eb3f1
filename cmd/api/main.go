package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"vakeel-api/internal/config"
	apihttp "vakeel-api/internal/http"
	"vakeel-api/internal/llm"
	"vakeel-api/internal/repository"
	"vakeel-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	store, closeStore, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer closeStore()

	var llmClient llm.LLMClient
	if cfg.MockLLM() {
		logger.Warn("LLM_API_KEY not set, serving mock responses")
	} else {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout, logger)
	}
	gateway := llm.NewGateway(llmClient, cfg.LLMTimeout, logger)

	engine, err := service.NewTemplateEngine(gateway)
	if err != nil {
		logger.Fatal("load templates", zap.Error(err))
	}
	sessionSvc := service.NewSessionService(store, store)
	contextSvc := service.NewBasicContextService(store)
	chatSvc := service.NewChatService(store, sessionSvc, contextSvc, gateway, logger)
	documentSvc := service.NewDocumentService(store, engine, gateway, logger)
	statsSvc := service.NewStatsService(store)

	limiter := service.NewMemoryRateLimiter(time.Minute, cfg.RateLimitPerMinute)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rate limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.RateLimitPerMinute)
			defer redisClient.Close()
		}
		cancel()
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret)
	if !jwtSvc.Enabled() {
		logger.Warn("jwt secret not configured, /api routes are unauthenticated")
	}

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Logger:    logger,
		Health:    apihttp.NewHealthHandler(store.Mode()),
		Chat:      apihttp.NewChatHandler(logger, chatSvc, sessionSvc),
		Documents: apihttp.NewDocumentHandler(logger, documentSvc),
		Users:     apihttp.NewUserHandler(logger, statsSvc),
		JWT:       jwtSvc,
		Limiter:   limiter,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("storage", store.Mode()),
		zap.Bool("mock_llm", gateway.Mock()),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
