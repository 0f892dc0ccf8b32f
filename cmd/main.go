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

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/wearable_alerts/internal/config"
	"github.com/shenikar/wearable_alerts/internal/device"
	v1 "github.com/shenikar/wearable_alerts/internal/handler/http/v1"
	"github.com/shenikar/wearable_alerts/internal/notify"
	"github.com/shenikar/wearable_alerts/internal/protocol"
	"github.com/shenikar/wearable_alerts/internal/repository"
	"github.com/shenikar/wearable_alerts/internal/service"
	"github.com/shenikar/wearable_alerts/internal/webhook"
	kafkawriter "github.com/shenikar/wearable_alerts/pkg/kafka"
	"github.com/shenikar/wearable_alerts/pkg/logger"
	mqttclient "github.com/shenikar/wearable_alerts/pkg/mqtt"
	"github.com/shenikar/wearable_alerts/pkg/postgres"
	redisclient "github.com/shenikar/wearable_alerts/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/wearable_alerts/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Wearable Alert Dispatcher API
// @version 1.0
// @description Builds SOS and non-critical alerts and executes protocol actions for them.
// @host localhost:8080
// @BasePath /api/v1
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
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// buildNotifier выбирает сток уведомлений: Kafka, если заданы брокеры, иначе лог
func buildNotifier(cfg *config.Config, log *logrus.Logger) (service.Notifier, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("KAFKA_BROKERS is not set, notifications are written to the log")
		return notify.NewLogNotifier(log), func() {}
	}

	writer := kafkawriter.NewWriter(cfg.KafkaBrokers, cfg.KafkaNotificationTopic)
	log.WithField("topic", cfg.KafkaNotificationTopic).Info("Notifications are published to Kafka")
	return notify.NewKafkaNotifier(writer, log), func() {
		if err := writer.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Kafka writer")
		}
	}
}

// buildDeviceCommander выбирает сток команд устройств: MQTT, если задан брокер, иначе лог
func buildDeviceCommander(cfg *config.Config, log *logrus.Logger) (service.DeviceCommander, func()) {
	if cfg.MQTTBrokerURL == "" {
		log.Info("MQTT_BROKER_URL is not set, device commands are written to the log")
		return device.NewLogCommander(log), func() {}
	}

	client, err := mqttclient.NewClient(mqttclient.Options{
		BrokerURL: cfg.MQTTBrokerURL,
		ClientID:  cfg.MQTTClientID,
		Username:  cfg.MQTTUsername,
		Password:  cfg.MQTTPassword,
	}, log)
	if err != nil {
		log.WithError(err).Warn("MQTT broker unavailable, device commands are written to the log")
		return device.NewLogCommander(log), func() {}
	}

	return device.NewMQTTCommander(client, cfg.MQTTTopicPrefix, cfg.MQTTQoS, log), func() {
		client.Disconnect(250)
	}
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

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Канал отправки тревог и воркер вебхуков
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)
	alertWorker := webhook.NewAlertWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	// Стоки действий протокола
	notifier, closeNotifier := buildNotifier(cfg, log)
	defer closeNotifier()
	commander, closeCommander := buildDeviceCommander(cfg, log)
	defer closeCommander()

	alertRepo := repository.NewAlertRepository(dbpool)
	protocolClient := protocol.NewClient(cfg.ProtocolAPIURL, cfg.ProtocolAPITimeout, log)
	executor := service.NewActionExecutor(notifier, commander, log)
	alertService := service.NewAlertService(alertRepo, alertPublisher, protocolClient, executor, log, cfg)

	handler := v1.NewHandler(alertService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
