package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"perkpass/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/deal-reviews"
	localPushTimeout  = 10 * time.Second
)

// localHTTPPublisher delivers events straight to a push endpoint in the same
// envelope Pub/Sub uses, so cmd/perkworker runs locally without the emulator.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishDealReviewed(ctx context.Context, event *service.DealReviewedEvent) error {
	data, attributes, err := encodeDealReviewed(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushEnvelope{
		Subscription: localSubscription,
		Message: PushedMessage{
			Data:        data,
			Attributes:  attributes,
			MessageID:   uuid.NewString(),
			PublishTime: time.Now().UTC(),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push to %s: status %d", p.endpoint, resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Deal review pushed locally", slog.String("deal_id", event.DealID))

	return nil
}

func (p *localHTTPPublisher) Close() error { return nil }
