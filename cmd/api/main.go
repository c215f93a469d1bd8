//	@title			FileDrop API
//	@version		1.0
//	@description	Single-file upload service backed by S3-compatible object storage. Images are normalized to 300×300 PNG; PDFs are stored unchanged.
//
//	@host		localhost:8080
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/filedrop/service/internal/config"
	"github.com/filedrop/service/internal/file"
	"github.com/filedrop/service/internal/identifier"
	appMiddleware "github.com/filedrop/service/internal/middleware"
	"github.com/filedrop/service/internal/storage"

	_ "github.com/filedrop/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	store, err := storage.NewMinioStorage(cfg, logger)
	if err != nil {
		logger.Fatal("object storage init failed", zap.Error(err))
	}

	// Wire dependencies: storage → service → handler
	fileSvc := file.NewService(store, identifier.NewUUID(), cfg.SignedURLTTL)
	fileHandler := file.NewHandler(fileSvc, cfg.MaxUploadBytes)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", fileHandler.Health)
	r.Post("/upload", fileHandler.Upload)
	r.Get("/file/{fileId}", fileHandler.GetByID)
	r.Get("/file-by-name/{name}", fileHandler.GetByName)
	r.Get("/files", fileHandler.List)

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server listening",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.AppEnv),
			zap.String("bucket", cfg.StorageBucket),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	switch strings.ToLower(level) {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	return logger
}
