package handler

import (
	"net/http"
	"testing"
	"time"

	"perkpass/internal/delivery/api/response"
	"perkpass/internal/domain/entity"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPages_RenderEveryEmbeddedPage renders each embedded page through the real renderer
// with the data its handler passes, so a broken layout or page template fails here.
func TestPages_RenderEveryEmbeddedPage(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	campaign := &entity.Campaign{
		ID:              uuid.New(),
		Slug:            "lincoln-pta",
		CampaignName:    "Lincoln PTA",
		Description:     "New library books",
		GoalAmountCents: 500000,
		StartDate:       now.AddDate(0, -1, 0),
		Status:          entity.CampaignStatusActive,
	}
	business := &entity.Business{ID: uuid.New(), BusinessName: "Corner Cafe", Address: "1 Main St"}
	deal := &entity.Deal{
		ID:             uuid.New(),
		BusinessID:     business.ID,
		Title:          "Free coffee",
		Status:         entity.DealStatusActive,
		ApprovalStatus: entity.ApprovalPending,
		Business:       business,
	}
	membership := &entity.Membership{ID: uuid.New(), ExpiresAt: now.AddDate(1, 0, 0), Campaign: campaign}

	tests := []struct {
		name   string
		page   string
		caps   *entity.Capabilities
		data   any
		expect string
	}{
		{
			name:   "home",
			page:   "home",
			data:   &HomePage{Campaigns: []*entity.Campaign{campaign}},
			expect: "Lincoln PTA",
		},
		{
			name:   "campaign",
			page:   "campaign",
			data:   &CampaignPage{Progress: &entity.CampaignProgress{Campaign: campaign, Members: 3, RaisedCents: 6000}, Open: true, PriceCents: 2000},
			expect: "$60.00",
		},
		{
			name:   "login",
			page:   "login",
			data:   &LoginPage{Email: "a@example.com"},
			expect: "Sign in",
		},
		{
			name:   "signup",
			page:   "signup",
			data:   &SignupPage{Email: "a@example.com", Roles: []entity.Role{entity.RoleSupporter, entity.RoleBusiness}},
			expect: "Create an account",
		},
		{
			name:   "dashboard",
			page:   "dashboard",
			caps:   &entity.Capabilities{Role: entity.RoleSupporter, IsMember: true},
			data:   &DashboardPage{Memberships: []*usecase.MembershipView{{Membership: membership, Active: true}}},
			expect: "card.png",
		},
		{
			name:   "deals locked",
			page:   "deals",
			caps:   &entity.Capabilities{Role: entity.RoleSupporter},
			data:   &usecase.MemberDeals{Locked: true},
			expect: "Deals are for members only",
		},
		{
			name:   "deals unlocked",
			page:   "deals",
			caps:   &entity.Capabilities{Role: entity.RoleSupporter, IsMember: true},
			data:   &usecase.MemberDeals{Deals: []*entity.Deal{deal}},
			expect: "Free coffee",
		},
		{
			name:   "merchant setup",
			page:   "merchant_setup",
			caps:   &entity.Capabilities{Role: entity.RoleBusiness},
			data:   &BusinessForm{BusinessName: "Corner Cafe"},
			expect: "Set up your business",
		},
		{
			name:   "merchant",
			page:   "merchant",
			caps:   &entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true},
			data:   &MerchantPage{Business: business, Deals: []*entity.Deal{deal}},
			expect: "Corner Cafe",
		},
		{
			name:   "merchant verify",
			page:   "merchant_verify",
			caps:   &entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true},
			data:   &VerifyPage{Result: &usecase.CardVerification{MembershipID: membership.ID, CampaignName: "Lincoln PTA", ExpiresAt: membership.ExpiresAt, Valid: true}},
			expect: "Valid membership",
		},
		{
			name:   "campaigns",
			page:   "campaigns",
			caps:   &entity.Capabilities{Role: entity.RoleFundraiser, IsFundraiser: true},
			data:   &CampaignsPage{Campaigns: []*entity.CampaignProgress{{Campaign: campaign}}, Form: &CampaignForm{}},
			expect: "Start a campaign",
		},
		{
			name:   "admin",
			page:   "admin",
			caps:   &entity.Capabilities{Role: entity.RoleAdmin},
			data:   &AdminPage{Stats: &entity.PlatformStats{Profiles: 4}, Pending: []*entity.Deal{deal}, Reviews: []*entity.DealReview{{DealID: deal.ID, Decision: entity.ApprovalApproved, ReviewedAt: now}}},
			expect: "Pending deals",
		},
		{
			name:   "error",
			page:   "error",
			data:   &response.ErrorPage{Status: http.StatusNotFound, Message: "Page not found"},
			expect: "Page not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t)
			c, rec := newGet(e, "/")
			if tt.caps != nil {
				withViewer(c, *tt.caps)
			}

			require.NoError(t, response.Page(c, tt.page, "Title", tt.data))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "<!doctype html>")
			assert.Contains(t, rec.Body.String(), tt.expect)
		})
	}
}
