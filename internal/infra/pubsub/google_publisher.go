package pubsub

import (
	"context"
	"log/slog"

	"perkpass/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewGooglePubSubPublisher connects to topicID in projectID. The topic must
// already exist; a missing topic fails startup rather than the first review.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub client")
	}

	name := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s", name)
	}

	return &googlePublisher{client: client, topic: client.Publisher(topicID), logger: logger}, nil
}

// PublishDealReviewed blocks until the server has accepted the message.
func (p *googlePublisher) PublishDealReviewed(ctx context.Context, event *service.DealReviewedEvent) error {
	data, attributes, err := encodeDealReviewed(event)
	if err != nil {
		return err
	}

	id, err := p.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish review of deal %s", event.DealID)
	}

	p.logger.DebugContext(ctx, "Deal review published",
		slog.String("deal_id", event.DealID),
		slog.String("message_id", id),
	)

	return nil
}

// Close flushes buffered messages before releasing the client.
func (p *googlePublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
