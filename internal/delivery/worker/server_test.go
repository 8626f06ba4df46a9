package worker

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"perkpass/config"
	"perkpass/internal/delivery/worker/handler"
	"perkpass/internal/infra/metrics"
	mockUsecase "perkpass/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorkerServer_Routes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	reviewAuditUC := mockUsecase.NewMockReviewAuditUsecase(t)

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:        cfg,
			Logger:        logger,
			ReviewAuditUC: reviewAuditUC,
		}),
		Metrics: metrics.New(cfg),
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	reviewAuditUC.EXPECT().RecordDealReview(mock.Anything, "m-1", mock.Anything).Return(nil)
	data := base64.StdEncoding.EncodeToString([]byte(`{"deal_id":"d","decision":"approved"}`))
	req := httptest.NewRequest(http.MethodPost, "/push",
		strings.NewReader(`{"message":{"data":"`+data+`","messageId":"m-1"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `perkpass_http_requests_total{method="POST",path="/push",status="200"} 1`)
}
