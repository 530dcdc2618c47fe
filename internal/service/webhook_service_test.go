package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"delegated-treasury/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func httpResponse(status int) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(""))}
}

func testEvent(t *testing.T) *domain.VaultEvent {
	v := &domain.Vault{ID: "main", Balance: dec("90")}
	ev := domain.NewVaultEvent(domain.VaultEventExecution, v, testIdentity(t, 1))
	amount := dec("10")
	ev.Amount = &amount
	return ev
}

func TestWebhookNotifier_Publish_Signed(t *testing.T) {
	var captured *http.Request
	var body []byte
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			captured = req
			body, _ = io.ReadAll(req.Body)
			return httpResponse(http.StatusOK), nil
		},
	}

	n := NewWebhookNotifier("https://hooks.example.com/vault", "whsec", 3, httpClient, newTestLogger())
	n.Publish(context.Background(), testEvent(t))
	n.Wait()

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))

	var payload struct {
		EventType string          `json:"event_type"`
		Data      json.RawMessage `json:"data"`
		Signature string          `json:"signature"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "EXECUTION", payload.EventType)
	assert.True(t, HMACVerify("whsec", payload.Data, payload.Signature))
	assert.Equal(t, payload.Signature, captured.Header.Get("X-Webhook-Signature"))
}

func TestWebhookNotifier_NoURL(t *testing.T) {
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}

	n := NewWebhookNotifier("", "whsec", 3, httpClient, newTestLogger())
	n.Publish(context.Background(), testEvent(t))
	n.Wait()
}

func TestWebhookNotifier_RetriesUntilSuccess(t *testing.T) {
	var calls int32
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			switch atomic.AddInt32(&calls, 1) {
			case 1:
				return nil, errors.New("connection refused")
			case 2:
				return httpResponse(http.StatusBadGateway), nil
			default:
				return httpResponse(http.StatusNoContent), nil
			}
		},
	}

	var slept []time.Duration
	n := NewWebhookNotifier("https://hooks.example.com/vault", "whsec", 5, httpClient, newTestLogger())
	n.sleep = func(d time.Duration) { slept = append(slept, d) }

	n.Publish(context.Background(), testEvent(t))
	n.Wait()

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, webhookRetryIntervals[:2], slept)
}

func TestWebhookNotifier_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			atomic.AddInt32(&calls, 1)
			return httpResponse(http.StatusInternalServerError), nil
		},
	}

	n := NewWebhookNotifier("https://hooks.example.com/vault", "whsec", 6, httpClient, newTestLogger())
	var slept []time.Duration
	n.sleep = func(d time.Duration) { slept = append(slept, d) }

	n.Publish(context.Background(), testEvent(t))
	n.Wait()

	assert.Equal(t, int32(7), atomic.LoadInt32(&calls))
	require.Len(t, slept, 6)
	assert.Equal(t, webhookRetryIntervals[len(webhookRetryIntervals)-1], slept[5], "last interval repeats")
}
