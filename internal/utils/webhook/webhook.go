package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	EventExpiringItems = "EXPIRING_ITEMS"
	EventShareItem     = "SHARE_ITEM"
)

type (
	// Notifier delivers inventory events to the configured automation webhook.
	Notifier interface {
		NotifyExpiringItems(ctx context.Context, items []ItemPayload) error
		ShareItem(ctx context.Context, item ItemPayload, friendEmails []string) error
	}

	ItemPayload struct {
		Name       string `json:"name"`
		Quantity   int    `json:"quantity"`
		Unit       string `json:"unit"`
		ExpiryDate string `json:"expiryDate"`
	}

	notifier struct {
		webhookURL string
		client     *http.Client
	}
)

func NewNotifier(webhookURL string) Notifier {
	return &notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (n *notifier) NotifyExpiringItems(ctx context.Context, items []ItemPayload) error {
	payload := map[string]interface{}{
		"event": EventExpiringItems,
		"items": items,
	}
	return n.post(ctx, payload)
}

func (n *notifier) ShareItem(ctx context.Context, item ItemPayload, friendEmails []string) error {
	payload := map[string]interface{}{
		"event":        EventShareItem,
		"item":         item,
		"friendEmails": friendEmails,
	}
	return n.post(ctx, payload)
}

func (n *notifier) post(ctx context.Context, payload map[string]interface{}) error {
	if n.webhookURL == "" {
		return fmt.Errorf("webhook URL not configured")
	}

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.webhookURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook error: %s - %s", resp.Status, string(bodyBytes))
	}

	// Response bodies are informational only, a 2xx status is enough.
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
