package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"construtora_obraprima/internal/domain/entities"
)

var ErrMissingWebhookURL = errors.New("notification webhook url is not configured")

const deliverTimeout = 10 * time.Second

// WebhookChannel pushes notifications to an external relay (the service that
// actually sends email or WhatsApp messages). The relay owns templating and
// recipient lookup; we only hand over the notification record.
type WebhookChannel struct {
	url    string
	client *http.Client
}

func NewWebhookChannel(url string) (*WebhookChannel, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrMissingWebhookURL
	}
	return &WebhookChannel{
		url:    url,
		client: &http.Client{Timeout: deliverTimeout},
	}, nil
}

func (w *WebhookChannel) Deliver(ctx context.Context, n entities.Notification) error {
	body, err := json.Marshal(map[string]string{
		"id":      n.ID,
		"user_id": n.UserID,
		"title":   n.Title,
		"message": n.Message,
		"type":    string(n.Type),
		"link":    n.Link,
	})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("deliver notification: relay returned status %d", resp.StatusCode)
	}
	return nil
}
