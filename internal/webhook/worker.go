package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/wearable_alerts/internal/config"
	"github.com/shenikar/wearable_alerts/internal/models"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC подписью тела запроса
const SignatureHeader = "X-Webhook-Signature"

// ErrWebhookNotConfigured - WEBHOOK_URL не задан, доставка пропущена
var ErrWebhookNotConfigured = errors.New("webhook URL is not configured")

// AlertWorker забирает тревоги из очереди и пересылает их на вебхук
type AlertWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewAlertWorker создает новый AlertWorker
func NewAlertWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *AlertWorker {
	return &AlertWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди тревог
func (w *AlertWorker) Start(ctx context.Context) {
	w.logger.Info("Starting alert webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert webhook worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка, 0 - без таймаута
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop alert from Redis")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				w.handle(ctx, result[1])
			}
		}
	}()
}

// handle доставляет одну тревогу из очереди и пишет итог в лог
func (w *AlertWorker) handle(ctx context.Context, payload string) {
	var alert models.AlertRecord
	if err := json.Unmarshal([]byte(payload), &alert); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal alert from Redis")
		return
	}

	log := w.logger.WithFields(logrus.Fields{
		"alert_user_id":  alert.UserID,
		"alert_category": alert.Type,
		"alert_type":     alert.AlertType,
	})
	err := w.deliver(ctx, payload)
	switch {
	case errors.Is(err, ErrWebhookNotConfigured):
		log.Debug("Webhook URL is not configured. Skipping alert delivery.")
	case err != nil:
		log.WithError(err).Error("Failed to deliver alert webhook")
	default:
		log.Info("Alert webhook delivered successfully.")
	}
}

// deliver делает одну попытку доставки тела на вебхук
func (w *AlertWorker) deliver(ctx context.Context, rawPayload string) error {
	if w.cfg.WebhookURL == "" {
		return ErrWebhookNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
