package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"perkpass/config"
	deliverycontext "perkpass/internal/delivery/context"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/service"
	"perkpass/internal/infra/pubsub"
	mockUsecase "perkpass/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockReviewAuditUsecase) {
	reviewAuditUC := mockUsecase.NewMockReviewAuditUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:        cfg,
		Logger:        newTestLogger(),
		ReviewAuditUC: reviewAuditUC,
	}), reviewAuditUC
}

func pushBody(t *testing.T, messageID string, event *service.DealReviewedEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	body, err := json.Marshal(pubsub.PushEnvelope{Message: pubsub.PushedMessage{
		Data:       data,
		MessageID:  messageID,
		Attributes: map[string]string{"request_id": "req-7"},
	}})
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_RecordsReview(t *testing.T) {
	h, reviewAuditUC := createTestPushHandler(t, nil)
	event := &service.DealReviewedEvent{DealID: "d", Decision: "approved"}

	reviewAuditUC.EXPECT().
		RecordDealReview(mock.Anything, "msg-1", event).
		Run(func(ctx context.Context, _ string, _ *service.DealReviewedEvent) {
			assert.Equal(t, "req-7", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	rec := doPush(h, pushBody(t, "msg-1", event), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedEnvelope(t *testing.T) {
	h, _ := createTestPushHandler(t, nil)

	assert.Equal(t, http.StatusBadRequest, doPush(h, `{"message":{"data":"%%%"}}`, nil).Code)
	assert.Equal(t, http.StatusBadRequest, doPush(h, `{"message":{"data":"bm90IGpzb24="}}`, nil).Code)
}

func TestPushHandler_PermanentFailureIsAcknowledged(t *testing.T) {
	h, reviewAuditUC := createTestPushHandler(t, nil)

	reviewAuditUC.EXPECT().RecordDealReview(mock.Anything, "msg-1", mock.Anything).
		Return(errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown decision")))

	rec := doPush(h, pushBody(t, "msg-1", &service.DealReviewedEvent{}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StoreFailureAsksForRedelivery(t *testing.T) {
	h, reviewAuditUC := createTestPushHandler(t, nil)

	reviewAuditUC.EXPECT().RecordDealReview(mock.Anything, "msg-1", mock.Anything).
		Return(errors.New("connection reset"))

	rec := doPush(h, pushBody(t, "msg-1", &service.DealReviewedEvent{}), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"

	tests := []struct {
		name     string
		header   http.Header
		payload  *idtoken.Payload
		wantCode int
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "not bearer", header: http.Header{"Authorization": {"Basic abc"}}, wantCode: http.StatusUnauthorized},
		{
			name:     "wrong issuer",
			header:   http.Header{"Authorization": {"Bearer tok"}},
			payload:  &idtoken.Payload{Issuer: "evil.example.com"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "valid token",
			header:   http.Header{"Authorization": {"Bearer tok"}},
			payload:  &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, reviewAuditUC := createTestPushHandler(t, cfg)
			require.True(t, h.verifyPushAuth)
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "tok", token)
				assert.Equal(t, "http://example.com/push", audience)

				return tt.payload, nil
			}
			if tt.wantCode == http.StatusOK {
				reviewAuditUC.EXPECT().RecordDealReview(mock.Anything, "msg-1", mock.Anything).Return(nil)
			}

			rec := doPush(h, pushBody(t, "msg-1", &service.DealReviewedEvent{}), tt.header)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestNewPushHandler_LocalSkipsTokenCheck(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "local"

	h, _ := createTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
