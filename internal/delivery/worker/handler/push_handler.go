package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"perkpass/config"
	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/domain/constants"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/service"
	"perkpass/internal/infra/pubsub"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed ID token for an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives deal.reviewed events pushed by Pub/Sub.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	reviewAuditUC  usecase.ReviewAuditUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	ReviewAuditUC usecase.ReviewAuditUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvLocal

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		reviewAuditUC:  params.ReviewAuditUC,
	}
}

// HandlePush acknowledges a message with 200 once it is stored or can never be stored.
// Storage failures answer 503 so Pub/Sub redelivers.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("Push body is not a Pub/Sub envelope", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DealReviewed()
	if err != nil {
		h.logger.Error("Push message is not a deal review", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	messageID := envelope.Message.MessageID

	requestID := extractRequestID(ctx, &envelope, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("Recording deal review",
		slog.String("message_id", messageID),
		slog.String("deal_id", event.DealID),
		slog.String("decision", event.Decision),
	)

	if err := h.reviewAuditUC.RecordDealReview(ctx, messageID, event); err != nil {
		retryable := !errors.Is(err, domainerrors.ErrValidationFailed)
		reqLogger.Error("Deal review not recorded",
			slog.String("message_id", messageID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID carries the publishing request's ID into the worker so one
// moderation action can be followed across both processes.
func extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.DealReviewedEvent) string {
	for _, id := range []string{
		envelope.RequestID(),
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// verifyPubSubToken checks the OIDC token Pub/Sub attaches to authenticated
// push requests. The expected audience is this endpoint's own URL.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}

	switch payload.Issuer {
	case "accounts.google.com", "https://accounts.google.com":
	default:
		return errors.Errorf("unexpected token issuer %q", payload.Issuer)
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email is not verified")
	}

	return nil
}
