package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/manojbhatti001/Blood-Donation-sub000/internal/auth"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/config"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/geo"
	v1 "github.com/manojbhatti001/Blood-Donation-sub000/internal/handler/http/v1"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/notify"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/repository"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/service"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/storage"
	"github.com/manojbhatti001/Blood-Donation-sub000/pkg/logger"
	"github.com/manojbhatti001/Blood-Donation-sub000/pkg/postgres"
	redisclient "github.com/manojbhatti001/Blood-Donation-sub000/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/manojbhatti001/Blood-Donation-sub000/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Blood Donation Coordination API
// @version 1.0
// @description REST API for donor registration, blood requests and geospatial donor/facility lookup.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL (с PostGIS)
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Подключение к объектному хранилищу документов
	documentStore, err := storage.NewDocumentStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to document storage: %v", err)
	}
	log.Info("Successfully connected to document storage")

	// Клиенты внешних геопровайдеров создаются один раз и передаются явно
	geocoder := geo.NewGeocoder(cfg.GeocoderBaseURL, cfg.ProviderTimeout, cfg.GeocodeCacheTTL)
	distanceClient := geo.NewDistanceClient(cfg.RoutingBaseURL, cfg.ProviderTimeout, cfg.DistanceMaxRetries, cfg.DistanceBaseDelay)

	// Менеджер bearer-токенов
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	// Инициализация издателя уведомлений
	notifyPublisher := notify.NewRedisPublisher(redisClient)

	// Инициализация и запуск воркера уведомлений
	notifyWorker := notify.NewWorker(redisClient, log, cfg)
	notifyWorker.Start(ctx)

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	locationRepo := repository.NewLocationRepository(dbpool, redisClient)
	requestRepo := repository.NewRequestRepository(dbpool, redisClient)
	documentRepo := repository.NewDocumentRepository(dbpool)

	// Инициализация сервисов
	userService := service.NewUserService(userRepo, tokens, log)
	locationService := service.NewLocationService(locationRepo, geocoder, distanceClient, notifyPublisher, log, cfg)
	requestService := service.NewRequestService(requestRepo, geocoder, notifyPublisher, log)
	documentService := service.NewDocumentService(documentRepo, documentStore, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(userService, locationService, requestService, documentService, tokens, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()

	// CORS для браузерного клиента
	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
