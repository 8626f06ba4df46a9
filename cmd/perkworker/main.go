// Command perkworker consumes deal review events pushed by Pub/Sub and
// records them in the moderation audit log.
package main

import (
	"context"

	"perkpass/config"
	"perkpass/internal/delivery"
	"perkpass/internal/delivery/worker"
	"perkpass/internal/delivery/worker/handler"
	"perkpass/internal/infra/clock"
	logs "perkpass/internal/infra/log"
	"perkpass/internal/infra/metrics"
	"perkpass/internal/infra/persistence/postgres"
	"perkpass/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			clock.NewSystemClock,
		),
		metrics.Module,
		fx.Module("audit",
			fx.Provide(
				postgres.NewDealReviewRepository,
				impl.NewReviewAuditService,
				handler.NewPushHandler,
			),
		),
		delivery.Provide(worker.NewServer),
		fx.Invoke(delivery.Start),
	).Run()
}
