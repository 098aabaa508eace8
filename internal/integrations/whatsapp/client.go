package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент WhatsApp шлюза уведомлений
// Уведомления best-effort: ошибки доставки логируются и никогда не
// прерывают бизнес-операцию, которая их породила
type Client struct {
	baseURL    string
	enabled    bool
	maxRetries int
	httpClient *http.Client
	timeout    time.Duration
	log        Logger
}

// NewClient создает новый экземпляр клиента WhatsApp шлюза
func NewClient(baseURL string, enabled bool, timeout time.Duration, maxRetries int, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout:    timeout,
		maxRetries: maxRetries,
		log:        log,
	}
}

// Notify отправляет уведомление по шаблону
func (c *Client) Notify(ctx context.Context, phone string, template TemplateKind, data map[string]string) error {
	if !c.enabled {
		return ErrDisabled
	}

	body, err := json.Marshal(sendMessageRequest{
		Phone:    phone,
		Template: string(template),
		Data:     data,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1/messages", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// NotifyAsync отправляет уведомление в фоне, не блокируя вызывающую операцию
// Ответ бронирования никогда не ждет уведомления. Доставка повторяется
// не более maxRetries раз, итоговая неудача только логируется
func (c *Client) NotifyAsync(phone string, template TemplateKind, data map[string]string) {
	if !c.enabled {
		c.log.Info("WhatsApp notifications disabled, skipping template=%s phone=%s", template, phone)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout*time.Duration(c.maxRetries+1))
		defer cancel()

		var err error
		for attempt := 0; attempt <= c.maxRetries; attempt++ {
			if err = c.Notify(ctx, phone, template, data); err == nil {
				c.log.Info("WhatsApp notification sent: template=%s phone=%s", template, phone)
				return
			}
			c.log.Warn("WhatsApp notification attempt %d failed: template=%s phone=%s: %v",
				attempt+1, template, phone, err)
		}

		c.log.Error("WhatsApp notification dropped after %d attempts: template=%s phone=%s: %v",
			c.maxRetries+1, template, phone, err)
	}()
}
