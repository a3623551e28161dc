// @title Quiz Dump API
// @version 1.0
// @description Serves exam-dump questions parsed from markdown, session answers and AI explanations.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-dump/internal/adapter"
	"quiz-dump/internal/adapter/aicontent"
	"quiz-dump/internal/cache"
	"quiz-dump/internal/config"
	"quiz-dump/internal/database"
	"quiz-dump/internal/domain"
	"quiz-dump/internal/handler"
	"quiz-dump/internal/logger"
	"quiz-dump/internal/middleware"
	"quiz-dump/internal/parser"
	"quiz-dump/internal/repository"
	"quiz-dump/internal/service"

	_ "quiz-dump/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Question bank backed by the bundled dump
	source := adapter.NewFileDocumentSource(cfg.Document.Path)
	bank := service.NewQuestionBankService(source, parser.NewFromConfig(cfg.Document))
	if n, err := bank.Count(context.Background()); err != nil {
		appLogger.Warn("Bundled document not loaded, waiting for upload", zap.String("path", source.Path()), zap.Error(err))
	} else {
		appLogger.Info("Question bank loaded", zap.String("path", source.Path()), zap.Int("questions", n))
	}

	// Cache: Redis when configured, the JSON file otherwise
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	} else {
		fileCache, err := adapter.NewFileCacheAdapter(cfg.Cache.FilePath)
		if err != nil {
			appLogger.Fatal("Failed to open file cache", zap.String("path", cfg.Cache.FilePath), zap.Error(err))
		}
		appLogger.Info("Using file cache", zap.String("path", cfg.Cache.FilePath))
		cacheAdapter = fileCache
	}

	// Answers: Oracle when configured, the cache otherwise
	var answerRepository domain.AnswerRepository
	if cfg.DatabaseEnabled() {
		db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		answerRepository = repository.NewAnswerDatabaseAdapter(db)
		appLogger.Info("Answers are stored in the database", zap.String("driver", cfg.DB.Driver))
	} else {
		answerRepository = repository.NewAnswerCacheAdapter(cacheAdapter, cfg.Cache.AnswersTTL)
		appLogger.Info("Answers are stored in the cache", zap.Duration("ttl", cfg.Cache.AnswersTTL))
	}

	// AI content generator is optional
	var generator domain.ContentGenerator
	if llmGenerator, err := aicontent.NewFromConfig(cfg.LLM); err != nil {
		appLogger.Warn("AI content disabled", zap.Error(err))
	} else {
		generator = llmGenerator
	}

	// Initialize services
	answerService := service.NewAnswerService(bank, answerRepository)
	aiContentService := service.NewAIContentService(bank, generator, cacheAdapter, cfg.Cache.AIContentTTL)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept," + middleware.SessionHeader,
		ExposeHeaders: middleware.SessionHeader,
		MaxAge:        300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Health:    handler.NewHealthHandler(bank, cacheAdapter),
		Question:  handler.NewQuestionHandler(bank),
		Answer:    handler.NewAnswerHandler(answerService),
		AIContent: handler.NewAIContentHandler(aiContentService),
		Document:  handler.NewDocumentHandler(bank),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
