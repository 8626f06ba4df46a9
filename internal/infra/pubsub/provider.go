package pubsub

import (
	"context"
	"log/slog"

	"perkpass/config"
	"perkpass/internal/domain/constants"
	"perkpass/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discardPublisher drops deal review events. It backs deployments that have
// no audit worker; moderation itself never depends on delivery.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishDealReviewed(ctx context.Context, event *service.DealReviewedEvent) error {
	p.logger.DebugContext(ctx, "Deal review event discarded, no pubsub provider configured",
		slog.String("deal_id", event.DealID),
		slog.String("decision", event.Decision),
	)

	return nil
}

func (p *discardPublisher) Close() error { return nil }

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the deal review publisher named by pubsub.provider
// and closes it with the application.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := openPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Deal review events disabled")

		return &discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Deal review events pushed over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Deal review events published to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
}

//nolint:gochecknoglobals
var Module = fx.Provide(NewEventPublisher)
