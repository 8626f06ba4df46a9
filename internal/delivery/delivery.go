// Package delivery holds the transports that expose the application.
package delivery

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
)

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}

const group = `group:"deliveries"`

// Provide registers constructors whose result joins the deliveries group.
func Provide(constructors ...any) fx.Option {
	opts := make([]fx.Option, 0, len(constructors))
	for _, c := range constructors {
		opts = append(opts, fx.Provide(fx.Annotate(c, fx.ResultTags(group))))
	}

	return fx.Options(opts...)
}

type StartParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Ctx        context.Context
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Start launches every delivery once the application has started. The first
// one to fail brings the whole application down so OnStop hooks still run.
func Start(params StartParams) {
	params.Append(fx.StartHook(func() {
		for _, d := range params.Deliveries {
			go func() {
				if err := d.Serve(params.Ctx); err != nil {
					params.Logger.Error("Delivery stopped", slog.Any("error", err))

					if err := params.Shutdown(fx.ExitCode(1)); err != nil {
						params.Logger.Error("Shutdown request failed", slog.Any("error", err))
					}
				}
			}()
		}
	}))
}
