package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"perkpass/config"
	"perkpass/internal/delivery/api/router"
	"perkpass/internal/delivery/api/router/handler"
	"perkpass/internal/delivery/api/view"
	"perkpass/internal/delivery/middleware"
	"perkpass/internal/domain/entity"
	"perkpass/internal/domain/policy"
	"perkpass/internal/infra/metrics"
	mockUsecase "perkpass/internal/mocks/usecase"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	e          *echo.Echo
	authUC     *mockUsecase.MockAuthUsecase
	accessUC   *mockUsecase.MockAccessUsecase
	dealUC     *mockUsecase.MockDealUsecase
	campaignUC *mockUsecase.MockCampaignUsecase
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Session: &config.SessionConfig{AccessCookie: "pp_access", RefreshCookie: "pp_refresh"},
	}
	cfg.HTTP.MaxRequestBodySize = "1M"

	return cfg
}

func createTestServer(t *testing.T) *serverFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := newTestConfig()
	renderer, err := view.NewRenderer(logger)
	require.NoError(t, err)
	m := metrics.New(cfg)
	cookies := middleware.NewSessionCookies(cfg)

	sf := &serverFixture{
		authUC:     mockUsecase.NewMockAuthUsecase(t),
		accessUC:   mockUsecase.NewMockAccessUsecase(t),
		dealUC:     mockUsecase.NewMockDealUsecase(t),
		campaignUC: mockUsecase.NewMockCampaignUsecase(t),
	}
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	membershipUC := mockUsecase.NewMockMembershipUsecase(t)
	businessUC := mockUsecase.NewMockBusinessUsecase(t)
	adminUC := mockUsecase.NewMockAdminUsecase(t)

	sf.e = newEcho(ServerParams{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: renderer,
		Metrics:  m,
		Session: middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{
			AuthUC:   sf.authUC,
			AccessUC: sf.accessUC,
			Cookies:  cookies,
			Logger:   logger,
		}),
		Guard: middleware.NewGuardMiddleware(middleware.GuardMiddlewareParams{
			Table:   policy.DefaultTable(),
			Metrics: m,
			Logger:  logger,
		}),
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: sf.authUC, Cookies: cookies, Logger: logger}),
			PublicHandler: handler.NewPublicHandler(handler.PublicHandlerParams{
				Config:       cfg,
				CampaignUC:   sf.campaignUC,
				MembershipUC: membershipUC,
			}),
			MemberHandler: handler.NewMemberHandler(handler.MemberHandlerParams{
				ProfileUC:    profileUC,
				MembershipUC: membershipUC,
				DealUC:       sf.dealUC,
			}),
			MerchantHandler: handler.NewMerchantHandler(handler.MerchantHandlerParams{
				BusinessUC:   businessUC,
				DealUC:       sf.dealUC,
				MembershipUC: membershipUC,
			}),
			CampaignHandler: handler.NewCampaignHandler(handler.CampaignHandlerParams{CampaignUC: sf.campaignUC}),
			AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: adminUC}),
			Metrics:         m,
		},
	})

	return sf
}

// signIn makes every request carrying the access cookie resolve to an identity with caps.
func (sf *serverFixture) signIn(caps entity.Capabilities) uuid.UUID {
	id := uuid.New()
	sf.authUC.EXPECT().ResolveSession(mock.Anything, &usecase.ResolveSessionInput{AccessToken: "token"}).
		Return(&usecase.ResolveSessionOutput{Identity: &entity.Identity{ID: id, Email: "someone@example.com"}}, nil)
	sf.accessUC.EXPECT().Classify(mock.Anything, id).
		Return(&entity.Profile{ID: id, FullName: "Someone", Role: caps.Role}, caps)

	return id
}

func (sf *serverFixture) get(target string, signedIn bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if signedIn {
		req.AddCookie(&http.Cookie{Name: "pp_access", Value: "token"})
	}
	rec := httptest.NewRecorder()
	sf.e.ServeHTTP(rec, req)

	return rec
}

func TestServer_AnonymousIsSentToLogin(t *testing.T) {
	sf := createTestServer(t)

	for _, path := range []string{"/dashboard", "/deals", "/merchant", "/campaigns", "/admin"} {
		rec := sf.get(path, false)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
}

func TestServer_SignedInSupporterSkipsLogin(t *testing.T) {
	sf := createTestServer(t)
	sf.signIn(entity.Capabilities{Role: entity.RoleSupporter})

	rec := sf.get("/login", true)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestServer_BusinessWithoutRowSeesSetupForm(t *testing.T) {
	sf := createTestServer(t)
	id := sf.signIn(entity.Capabilities{Role: entity.RoleBusiness})
	sf.dealUC.EXPECT().ListBusinessDeals(mock.Anything, id).Return(nil, nil)

	rec := sf.get("/merchant", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/merchant/business"`)
}

func TestServer_BusinessIsKeptOutOfCampaigns(t *testing.T) {
	sf := createTestServer(t)
	id := sf.signIn(entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true})
	sf.dealUC.EXPECT().ListBusinessDeals(mock.Anything, id).
		Return(&entity.Business{ID: uuid.New(), OwnerID: id, BusinessName: "Corner Cafe"}, nil)

	rec := sf.get("/merchant", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Corner Cafe")

	rec = sf.get("/campaigns", true)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestServer_NonAdminIsSentHome(t *testing.T) {
	sf := createTestServer(t)
	sf.signIn(entity.Capabilities{Role: entity.RoleFundraiser, IsFundraiser: true})

	rec := sf.get("/admin", true)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestServer_HealthSkipsSessionResolution(t *testing.T) {
	sf := createTestServer(t)

	rec := sf.get("/health", true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_FormPostWithoutCSRFTokenIsRejected(t *testing.T) {
	sf := createTestServer(t)

	form := url.Values{"email": {"a@example.com"}, "password": {"password1"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	sf.e.ServeHTTP(rec, req)

	assert.Contains(t, []int{http.StatusBadRequest, http.StatusForbidden}, rec.Code)
}

func TestServer_MetricsCountGuardDecisions(t *testing.T) {
	sf := createTestServer(t)
	sf.get("/dashboard", false)

	rec := sf.get("/metrics", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `perkpass_guard_decisions_total{allowed="false",reason="anonymous",requirement="authenticated"} 1`)
}
