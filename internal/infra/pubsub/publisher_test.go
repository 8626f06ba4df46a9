package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"perkpass/config"
	"perkpass/internal/domain/constants"
	"perkpass/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.DealReviewedEvent {
	return &service.DealReviewedEvent{
		RequestID:  "req-42",
		DealID:     "deal-1",
		BusinessID: "biz-1",
		ReviewerID: "admin-1",
		Decision:   "approved",
		ReviewedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var (
		received  PushEnvelope
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishDealReviewed(context.Background(), sampleEvent()))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, eventTypeDealReviewed, received.Message.Attributes[attrEventType])
	assert.Equal(t, "approved", received.Message.Attributes[attrDecision])
	assert.NotEmpty(t, received.Message.MessageID)

	assert.False(t, received.Message.PublishTime.IsZero())
	assert.Equal(t, "req-42", received.RequestID())

	event, err := received.DealReviewed()
	require.NoError(t, err)
	assert.Equal(t, sampleEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, testLogger()).PublishDealReviewed(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEncodeDealReviewed_OmitsEmptyRequestID(t *testing.T) {
	event := sampleEvent()
	event.RequestID = ""

	_, attributes, err := encodeDealReviewed(event)

	require.NoError(t, err)
	assert.NotContains(t, attributes, attrRequestID)
	assert.Equal(t, "deal-1", attributes[attrDealID])
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: testLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(nil))
	require.NoError(t, err)
	assert.IsType(t, &discardPublisher{}, publisher)
	assert.NoError(t, publisher.PublishDealReviewed(context.Background(), sampleEvent()))

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.Error(t, err)
}

func TestPushEnvelope_DealReviewed(t *testing.T) {
	var envelope PushEnvelope
	body := `{"message":{"data":"eyJkZWFsX2lkIjoiZC0xIn0=","messageId":"m"}}`
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))

	event, err := envelope.DealReviewed()
	require.NoError(t, err)
	assert.Equal(t, "d-1", event.DealID)
	assert.Empty(t, envelope.RequestID())

	_, err = (&PushEnvelope{}).DealReviewed()
	assert.Error(t, err)

	_, err = (&PushEnvelope{Message: PushedMessage{Data: []byte("not json")}}).DealReviewed()
	assert.Error(t, err)
}
