package protocol

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shenikar/wearable_alerts/internal/models"
	"github.com/sirupsen/logrus"
)

const actionsPath = "/protocolActions"

// StatusError - сервис протоколов ответил не 2xx
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch protocol actions: %s", e.Status)
}

// Client получает действия протокола по HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиента сервиса протоколов
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchActions выполняет один GET запрос. При любой ошибке возвращает
// пустой список вместе с ошибкой, повторов нет.
func (c *Client) FetchActions(ctx context.Context, userID string, category models.AlertCategory) ([]models.ProtocolAction, error) {
	log := c.logger.WithFields(logrus.Fields{
		"service":       "protocol",
		"method":        "FetchActions",
		"user_id":       userID,
		"protocol_type": category,
	})
	log.Infof("Fetching %s protocol actions for User %s...", category, userID)

	empty := []models.ProtocolAction{}

	query := url.Values{}
	query.Set("userId", userID)
	query.Set("protocolType", string(category))
	endpoint := c.baseURL + actionsPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return empty, fmt.Errorf("failed to create protocol request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return empty, fmt.Errorf("failed to fetch protocol actions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return empty, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return empty, fmt.Errorf("failed to decode protocol actions: %w", err)
	}

	actions := decodeActions(raw)
	log.WithField("count", len(actions)).Info("Protocol actions received")
	return actions, nil
}

// decodeActions разбирает элементы по одному. Сначала читается только
// actionType: элемент, который не является объектом, остаётся с пустым
// типом. Ошибка в остальных полях сохраняется в DecodeErr, вид действия
// не теряется, и исполнитель сообщит о ней для этого элемента.
func decodeActions(raw []json.RawMessage) []models.ProtocolAction {
	actions := make([]models.ProtocolAction, len(raw))
	for i, item := range raw {
		var head struct {
			ActionType models.ActionType `json:"actionType"`
		}
		if err := json.Unmarshal(item, &head); err != nil {
			continue
		}

		var action models.ProtocolAction
		if err := json.Unmarshal(item, &action); err != nil {
			action.DecodeErr = fmt.Errorf("failed to decode protocol action: %w", err)
		}
		action.ActionType = head.ActionType
		actions[i] = action
	}
	return actions
}
