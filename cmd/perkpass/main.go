// Command perkpass serves the membership and deals site and runs its
// background jobs.
package main

import (
	"context"

	"perkpass/config"
	"perkpass/internal/delivery"
	"perkpass/internal/delivery/api"
	"perkpass/internal/delivery/api/router/handler"
	"perkpass/internal/delivery/api/view"
	"perkpass/internal/delivery/job"
	"perkpass/internal/delivery/middleware"
	"perkpass/internal/domain/policy"
	"perkpass/internal/infra/auth"
	"perkpass/internal/infra/clock"
	logs "perkpass/internal/infra/log"
	"perkpass/internal/infra/metrics"
	"perkpass/internal/infra/persistence/postgres"
	"perkpass/internal/infra/pubsub"
	"perkpass/internal/infra/qrcode"
	"perkpass/internal/infra/storage"
	"perkpass/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(delivery.Start),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			clock.NewSystemClock,
		),
		metrics.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewIdentityRepository,
			postgres.NewAuthRepository,
			postgres.NewProfileRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewBusinessRepository,
			postgres.NewDealRepository,
			postgres.NewDealReviewRepository,
			postgres.NewCampaignRepository,
			postgres.NewMembershipRepository,
			postgres.NewStatsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			storage.NewObjectStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccessService,
			impl.NewProfileService,
			impl.NewBusinessService,
			impl.NewDealService,
			impl.NewCampaignService,
			impl.NewMembershipService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			policy.DefaultTable,
			middleware.NewSessionCookies,
			middleware.NewSessionMiddleware,
			middleware.NewGuardMiddleware,
			view.NewRenderer,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPublicHandler,
			handler.NewMemberHandler,
			handler.NewMerchantHandler,
			handler.NewCampaignHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return delivery.Provide(
		api.NewServer,
		job.NewSessionPurge,
	)
}
