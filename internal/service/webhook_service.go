package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"delegated-treasury/internal/core/domain"

	"github.com/rs/zerolog"
)

// webhookRetryIntervals are the waits before each redelivery; the last one repeats.
var webhookRetryIntervals = []time.Duration{
	time.Second,
	5 * time.Second,
	30 * time.Second,
	2 * time.Minute,
}

// WebhookPayload is the JSON structure POSTed to the configured webhook URL.
// Signature is HMAC-SHA256 over the JSON encoding of Data.
type WebhookPayload struct {
	EventType domain.VaultEventType `json:"event_type"`
	Data      *domain.VaultEvent    `json:"data"`
	Signature string                `json:"signature"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookNotifier implements ports.EventPublisher by POSTing signed events.
// Delivery is asynchronous and never reports back to the publisher.
type WebhookNotifier struct {
	url        string
	secret     string
	maxRetries int
	httpClient HTTPClient
	sleep      func(time.Duration)
	wg         sync.WaitGroup
	log        zerolog.Logger
}

// NewWebhookNotifier creates a notifier. An empty url disables delivery.
func NewWebhookNotifier(url, secret string, maxRetries int, httpClient HTTPClient, log zerolog.Logger) *WebhookNotifier {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &WebhookNotifier{
		url:        url,
		secret:     secret,
		maxRetries: maxRetries,
		httpClient: httpClient,
		sleep:      time.Sleep,
		log:        log,
	}
}

// Publish signs event and delivers it in the background.
func (n *WebhookNotifier) Publish(_ context.Context, event *domain.VaultEvent) {
	if n.url == "" || event == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		n.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("webhook: failed to marshal event")
		return
	}

	payload := WebhookPayload{
		EventType: event.Type,
		Data:      event,
		Signature: HMACSign(n.secret, data),
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.deliverWithRetries(payload, event.ID.String())
	}()
}

// Wait blocks until in-flight deliveries finish.
func (n *WebhookNotifier) Wait() {
	n.wg.Wait()
}

func (n *WebhookNotifier) deliverWithRetries(payload WebhookPayload, eventID string) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		n.log.Error().Err(err).Str("event_id", eventID).Msg("webhook: failed to marshal payload")
		return
	}

	for attempt := 0; attempt <= n.maxRetries; attempt++ {
		if attempt > 0 {
			idx := attempt - 1
			if idx >= len(webhookRetryIntervals) {
				idx = len(webhookRetryIntervals) - 1
			}
			n.sleep(webhookRetryIntervals[idx])
		}

		req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(payloadBytes))
		if err != nil {
			n.log.Error().Err(err).Str("event_id", eventID).Msg("webhook: failed to create request")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Webhook-Signature", payload.Signature)

		resp, err := n.httpClient.Do(req)
		if err != nil {
			n.log.Warn().Err(err).Str("event_id", eventID).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			n.log.Info().Str("event_id", eventID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: delivered successfully")
			return
		}

		n.log.Warn().Str("event_id", eventID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: non-2xx response, retrying")
	}

	n.log.Error().Str("event_id", eventID).Msg("webhook: all retry attempts exhausted")
}
