package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/imagery_catalog/internal/config"
	v1 "github.com/shenikar/imagery_catalog/internal/handler/http/v1"
	"github.com/shenikar/imagery_catalog/internal/repository"
	"github.com/shenikar/imagery_catalog/internal/service"
	"github.com/shenikar/imagery_catalog/pkg/logger"
	redisclient "github.com/shenikar/imagery_catalog/pkg/redis"

	_ "github.com/shenikar/imagery_catalog/docs"
)

// @title Imagery Catalog API
// @version 1.0
// @description Proximity search over satellite captures, the capture archive and future capture opportunities.
// @host localhost:4000
// @BasePath /
func newQueryCache(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.QueryCache, func(), error) {
	if !cfg.CacheEnabled() {
		log.Info("REDIS_ADDR is not set, query result cache disabled")
		return repository.NoopQueryCache{}, func() {}, nil
	}

	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Successfully connected to Redis")

	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Redis client")
		}
	}
	return repository.NewRedisQueryCache(redisClient, cfg.CacheTTL), closeFn, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Загрузка наборов данных до приема трафика
	catalogRepo, err := repository.NewCatalogRepository(cfg.FixturesDir)
	if err != nil {
		log.Fatalf("Failed to load imagery catalog: %v", err)
	}
	log.WithField("fixtures_dir", cfg.FixturesDir).Info("Imagery catalog loaded")

	// Инициализация кеша результатов
	queryCache, closeCache, err := newQueryCache(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize query cache: %v", err)
	}
	defer closeCache()

	// Инициализация сервисов
	imageryService := service.NewImageryService(catalogRepo, queryCache, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(imageryService, log, cfg)

	// Настройка Gin роутера
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := v1.NewRouter(handler, log)

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	log.Info("Server gracefully stopped")
}
