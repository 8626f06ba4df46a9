package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	mockUsecase "perkpass/internal/mocks/usecase"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memberHandlerFixture struct {
	profileUC    *mockUsecase.MockProfileUsecase
	membershipUC *mockUsecase.MockMembershipUsecase
	dealUC       *mockUsecase.MockDealUsecase
	handler      *MemberHandler
}

func createTestMemberHandler(t *testing.T) *memberHandlerFixture {
	fx := &memberHandlerFixture{
		profileUC:    mockUsecase.NewMockProfileUsecase(t),
		membershipUC: mockUsecase.NewMockMembershipUsecase(t),
		dealUC:       mockUsecase.NewMockDealUsecase(t),
	}
	fx.handler = NewMemberHandler(MemberHandlerParams{
		ProfileUC:    fx.profileUC,
		MembershipUC: fx.membershipUC,
		DealUC:       fx.dealUC,
	})

	return fx
}

func TestMemberHandler_Deals_LockedForNonMembers(t *testing.T) {
	fx := createTestMemberHandler(t)
	e := newTestEcho(t)
	c, rec := newGet(e, "/deals")
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleSupporter})

	fx.dealUC.EXPECT().ListMemberDeals(mock.Anything, viewer).Return(&usecase.MemberDeals{Locked: true})

	require.NoError(t, fx.handler.Deals(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Deals are for members only")
}

func TestMemberHandler_Deals_ListsForMembers(t *testing.T) {
	fx := createTestMemberHandler(t)
	e := newTestEcho(t)
	c, rec := newGet(e, "/deals")
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleSupporter, IsMember: true})

	fx.dealUC.EXPECT().ListMemberDeals(mock.Anything, viewer).Return(&usecase.MemberDeals{
		Deals: []*entity.Deal{{
			Title:    "Free coffee",
			Business: &entity.Business{BusinessName: "Corner Cafe", Address: "1 Main St"},
		}},
	})

	require.NoError(t, fx.handler.Deals(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Free coffee")
	assert.Contains(t, body, "Corner Cafe")
	assert.NotContains(t, body, "Deals are for members only")
}

func TestMemberHandler_Dashboard(t *testing.T) {
	fx := createTestMemberHandler(t)
	e := newTestEcho(t)
	c, rec := newGet(e, "/dashboard")
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleSupporter, IsMember: true})
	membershipID := uuid.New()

	fx.membershipUC.EXPECT().ListMine(mock.Anything, viewer.ID()).Return([]*usecase.MembershipView{{
		Membership: &entity.Membership{
			ID:        membershipID,
			ExpiresAt: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			Campaign:  &entity.Campaign{Slug: "river", CampaignName: "River Cleanup"},
		},
		Active: true,
	}})

	require.NoError(t, fx.handler.Dashboard(c))

	body := rec.Body.String()
	assert.Contains(t, body, "River Cleanup")
	assert.Contains(t, body, "/dashboard/memberships/"+membershipID.String()+"/card.png")
	assert.Contains(t, body, "Mar 14, 2026")
}

func TestMemberHandler_UpdateProfile(t *testing.T) {
	t.Run("saves and redirects", func(t *testing.T) {
		fx := createTestMemberHandler(t)
		e := newTestEcho(t)
		c, rec := newFormPost(e, "/dashboard/profile", url.Values{"full_name": {"Ada L."}})
		viewer := withViewer(c, entity.Capabilities{Role: entity.RoleSupporter})

		fx.profileUC.EXPECT().UpdateProfile(mock.Anything, viewer.ID(), "Ada L.").Return(&entity.Profile{}, nil)

		require.NoError(t, fx.handler.UpdateProfile(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})

	t.Run("write error is shown inline", func(t *testing.T) {
		fx := createTestMemberHandler(t)
		e := newTestEcho(t)
		c, rec := newFormPost(e, "/dashboard/profile", url.Values{"full_name": {"Ada"}})
		viewer := withViewer(c, entity.Capabilities{Role: entity.RoleSupporter})

		fx.profileUC.EXPECT().UpdateProfile(mock.Anything, viewer.ID(), "Ada").
			Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "update profile"))
		fx.membershipUC.EXPECT().ListMine(mock.Anything, viewer.ID()).Return(nil)

		require.NoError(t, fx.handler.UpdateProfile(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "The database rejected the change")
	})
}

func TestMemberHandler_MembershipCard(t *testing.T) {
	fx := createTestMemberHandler(t)
	e := newTestEcho(t)
	membershipID := uuid.New()
	c, rec := newGet(e, "/dashboard/memberships/"+membershipID.String()+"/card.png")
	c.SetParamNames("id")
	c.SetParamValues(membershipID.String())
	viewer := withViewer(c, entity.Capabilities{Role: entity.RoleSupporter, IsMember: true})

	fx.membershipUC.EXPECT().MembershipCard(mock.Anything, viewer.ID(), membershipID).Return([]byte("png"), nil)

	require.NoError(t, fx.handler.MembershipCard(c))
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "png", rec.Body.String())
}

func TestMemberHandler_MembershipCard_BadID(t *testing.T) {
	fx := createTestMemberHandler(t)
	e := newTestEcho(t)
	c, _ := newGet(e, "/dashboard/memberships/nope/card.png")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	withViewer(c, entity.Capabilities{})

	assert.ErrorIs(t, fx.handler.MembershipCard(c), domainerrors.ErrNotFound)
}
