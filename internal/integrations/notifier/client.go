package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для отправки событий в сервис уведомлений
type Client struct {
	baseURL    string
	httpClient *http.Client
	enabled    bool
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, enabled bool, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		enabled: enabled,
		log:     log,
	}
}

// Notify отправляет событие в сервис уведомлений.
// Ошибка отправки логируется и не возвращается наружу: уведомление
// не должно влиять на результат уже зафиксированной записи.
func (c *Client) Notify(ctx context.Context, event AppointmentEvent) {
	if !c.enabled {
		return
	}

	if err := c.send(ctx, event); err != nil {
		c.log.Error("Failed to send notification event=%s appointment_id=%d: %v",
			event.Event, event.AppointmentID, err)
		return
	}

	c.log.Info("Notification sent event=%s appointment_id=%d", event.Event, event.AppointmentID)
}

func (c *Client) send(ctx context.Context, event AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	return nil
}
