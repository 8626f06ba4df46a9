package pubsub

import (
	"encoding/json"
	"time"

	"perkpass/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every deal review message. Subscribers filter on decision.
const (
	attrEventType  = "event_type"
	attrDealID     = "deal_id"
	attrBusinessID = "business_id"
	attrDecision   = "decision"
	attrRequestID  = "request_id"

	eventTypeDealReviewed = "deal.reviewed"
)

// PushEnvelope is the JSON body Pub/Sub POSTs to a push subscription.
// Data is base64 on the wire, which encoding/json handles for []byte.
type PushEnvelope struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type PushedMessage struct {
	Data        []byte            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime time.Time         `json:"publishTime"`
}

// DealReviewed decodes the message payload.
func (e *PushEnvelope) DealReviewed() (*service.DealReviewedEvent, error) {
	if len(e.Message.Data) == 0 {
		return nil, errors.New("push message has no data")
	}

	var event service.DealReviewedEvent
	if err := json.Unmarshal(e.Message.Data, &event); err != nil {
		return nil, errors.Wrap(err, "decode deal review event")
	}

	return &event, nil
}

// RequestID returns the request_id attribute, or "".
func (e *PushEnvelope) RequestID() string {
	return e.Message.Attributes[attrRequestID]
}

// encodeDealReviewed returns the JSON payload and message attributes shared by all publishers.
func encodeDealReviewed(event *service.DealReviewedEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		attrEventType:  eventTypeDealReviewed,
		attrDealID:     event.DealID,
		attrBusinessID: event.BusinessID,
		attrDecision:   event.Decision,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
