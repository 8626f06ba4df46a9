package delivery

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type stubDelivery struct {
	err    error
	served chan struct{}
}

func (d *stubDelivery) Serve(context.Context) error {
	close(d.served)

	return d.err
}

func TestStart_ServesEveryDelivery(t *testing.T) {
	first := &stubDelivery{served: make(chan struct{})}
	second := &stubDelivery{served: make(chan struct{})}

	app := fxtest.New(t,
		fx.Supply(slog.New(slog.NewTextHandler(io.Discard, nil))),
		fx.Provide(context.Background),
		Provide(
			func() Delivery { return first },
			func() Delivery { return second },
		),
		fx.Invoke(Start),
	)
	app.RequireStart()
	defer app.RequireStop()

	for _, d := range []*stubDelivery{first, second} {
		select {
		case <-d.served:
		case <-time.After(time.Second):
			t.Fatal("delivery was not served")
		}
	}
}

func TestStart_FailureShutsDown(t *testing.T) {
	failing := &stubDelivery{err: errors.New("listen: address in use"), served: make(chan struct{})}

	app := fxtest.New(t,
		fx.Supply(slog.New(slog.NewTextHandler(io.Discard, nil))),
		fx.Provide(context.Background),
		Provide(func() Delivery { return failing }),
		fx.Invoke(Start),
	)
	app.RequireStart()
	defer app.RequireStop()

	select {
	case sig := <-app.Wait():
		assert.Equal(t, 1, sig.ExitCode)
	case <-time.After(time.Second):
		t.Fatal("application did not shut down")
	}
}
