package policy

import (
	"testing"

	"perkpass/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func signedIn(caps entity.Capabilities) Subject {
	return Subject{Authenticated: true, Capabilities: caps}
}

func TestTable_Lookup(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		method string
		path   string
		want   Requirement
	}{
		{"GET", "/", Public},
		{"GET", "/health", Public},
		{"GET", "/login", GuestOnly},
		{"POST", "/signup", GuestOnly},
		{"GET", "/dashboard", Authenticated},
		{"POST", "/dashboard/profile", Authenticated},
		{"GET", "/deals", MemberContent},
		{"GET", "/merchant", BusinessArea},
		{"POST", "/merchant/deals/123/toggle", BusinessArea},
		{"GET", "/campaigns", FundraiserArea},
		{"GET", "/admin", AdminArea},
		{"POST", "/admin/deals/1/review", AdminArea},
		{"GET", "/c/spring-drive", Public},
		{"POST", "/c/spring-drive/join", Authenticated},
		{"GET", "/c/spring-drive/join", Public},
		{"GET", "/merchants", Public},
		{"GET", "/dealsx", Public},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Lookup(tt.method, tt.path))
		})
	}
}

func TestDecide_Anonymous(t *testing.T) {
	for _, req := range []Requirement{Authenticated, MemberContent, BusinessArea, FundraiserArea, AdminArea} {
		t.Run(req.String(), func(t *testing.T) {
			d := Decide(req, Anonymous)
			assert.False(t, d.Allow)
			assert.Equal(t, LoginPath, d.RedirectTo)
			assert.Equal(t, ReasonAnonymous, d.Reason)
		})
	}

	assert.True(t, Decide(GuestOnly, Anonymous).Allow)
	assert.True(t, Decide(Public, Anonymous).Allow)
}

func TestDecide_GuestOnlyRedirectsToLanding(t *testing.T) {
	tests := []struct {
		role entity.Role
		want string
	}{
		{entity.RoleSupporter, "/dashboard"},
		{entity.RoleFundraiser, "/campaigns"},
		{entity.RoleBusiness, "/merchant"},
		{entity.RoleAdmin, "/admin"},
		{"", "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			d := Decide(GuestOnly, signedIn(entity.Capabilities{Role: tt.role}))
			assert.False(t, d.Allow)
			assert.Equal(t, tt.want, d.RedirectTo)
		})
	}
}

func TestDecide_BusinessWithBusinessRow(t *testing.T) {
	caps := entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true}
	table := DefaultTable()

	_, merchant := table.Evaluate("GET", "/merchant", signedIn(caps))
	assert.True(t, merchant.Allow)

	_, campaigns := table.Evaluate("GET", "/campaigns", signedIn(caps))
	assert.False(t, campaigns.Allow)
	assert.Equal(t, LoginPath, campaigns.RedirectTo)
}

func TestDecide_DerivedCapabilitiesOpenAreas(t *testing.T) {
	supporterWithBusiness := signedIn(entity.Capabilities{Role: entity.RoleSupporter, IsMerchant: true})
	assert.True(t, Decide(BusinessArea, supporterWithBusiness).Allow)

	supporterWithCampaign := signedIn(entity.Capabilities{Role: entity.RoleSupporter, IsFundraiser: true})
	assert.True(t, Decide(FundraiserArea, supporterWithCampaign).Allow)

	fundraiserRole := signedIn(entity.Capabilities{Role: entity.RoleFundraiser})
	assert.True(t, Decide(FundraiserArea, fundraiserRole).Allow)
}

func TestDecide_Admin(t *testing.T) {
	d := Decide(AdminArea, signedIn(entity.Capabilities{Role: entity.RoleBusiness, IsMerchant: true, IsMember: true}))
	assert.False(t, d.Allow)
	assert.Equal(t, HomePath, d.RedirectTo)
	assert.Equal(t, ReasonRole, d.Reason)

	assert.True(t, Decide(AdminArea, signedIn(entity.Capabilities{Role: entity.RoleAdmin})).Allow)
}

func TestDecide_ProfileReadFailureFailsClosed(t *testing.T) {
	unknown := signedIn(entity.Capabilities{})

	assert.False(t, Decide(AdminArea, unknown).Allow)
	assert.False(t, Decide(BusinessArea, unknown).Allow)
	assert.False(t, Decide(FundraiserArea, unknown).Allow)
	assert.True(t, Decide(Authenticated, unknown).Allow)
}

func TestDecide_MemberContentAdmitsNonMembers(t *testing.T) {
	d := Decide(MemberContent, signedIn(entity.Capabilities{Role: entity.RoleSupporter}))
	assert.True(t, d.Allow)
}
