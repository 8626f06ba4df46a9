package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"perkpass/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer runs an echo instance as a Delivery and drains it on stop.
type EchoServer struct {
	name   string
	addr   string
	echo   *echo.Echo
	h2c    *http2.Server
	logger *slog.Logger
}

// ServerOption tunes an EchoServer.
type ServerOption func(*EchoServer)

// WithH2C serves cleartext HTTP/2 alongside HTTP/1.1.
func WithH2C(h2 *http2.Server) ServerOption {
	return func(s *EchoServer) { s.h2c = h2 }
}

func NewEchoServer(lc fx.Lifecycle, name string, port int, e *echo.Echo, logger *slog.Logger, opts ...ServerOption) *EchoServer {
	s := &EchoServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		echo:   e,
		logger: logger.With(slog.String("server", name)),
	}
	for _, opt := range opts {
		opt(s)
	}

	lc.Append(fx.StopHook(s.stop))

	return s
}

func (s *EchoServer) Serve(context.Context) error {
	s.logger.Info("HTTP server listening", slog.String("addr", s.addr), slog.Bool("h2c", s.h2c != nil))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

func (s *EchoServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server draining")

	return errors.Wrapf(s.echo.Shutdown(ctx), "%s server shutdown", s.name)
}
