package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/wearable_alerts/internal/models"
	"github.com/shenikar/wearable_alerts/internal/service"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{
		db: db,
	}
}

// SaveAlert сохраняет запись об отправленной тревоге в бд
func (r *AlertRepository) SaveAlert(ctx context.Context, entry *models.AlertHistoryEntry) error {
	query := `
		INSERT INTO alerts (user_id, category, alert_type, message, gps_location, payload)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		entry.UserID,
		string(entry.Category),
		entry.AlertType,
		entry.Message,
		entry.GPSLocation,
		entry.Payload,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}
	return nil
}

// GetAlertStats возвращает количество тревог по категориям за последние minutes минут
func (r *AlertRepository) GetAlertStats(ctx context.Context, minutes int) (*models.AlertStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE category = $2),
			COUNT(*) FILTER (WHERE category = $3)
		FROM alerts
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	stats := &models.AlertStats{}
	err := r.db.QueryRow(ctx, query,
		minutes,
		string(models.CategorySOS),
		string(models.CategoryNonCritical),
	).Scan(&stats.SOSCount, &stats.NonCriticalCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stats, nil
		}
		return nil, fmt.Errorf("failed to get alert stats: %w", err)
	}
	return stats, nil
}
