package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alefmoda/alef-golang/internal/models"
)

// Notifier posts submitted orders to the n8n webhook. No response body
// is interpreted beyond the status code.
type Notifier struct {
	url        string
	httpClient *http.Client
}

func NewNotifier(url string) *Notifier {
	return &Notifier{
		url: url,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SendOrder delivers the order payload. An error means the order was not
// accepted and the caller must keep the cart so the shopper can retry.
func (n *Notifier) SendOrder(ctx context.Context, order models.WebhookOrder) error {
	if n.url == "" {
		return fmt.Errorf("order webhook URL is not configured")
	}

	body, err := json.Marshal(order)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook rejected order: %s", resp.Status)
	}
	return nil
}
