package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_LandingPath(t *testing.T) {
	assert.Equal(t, "/dashboard", RoleSupporter.LandingPath())
	assert.Equal(t, "/campaigns", RoleFundraiser.LandingPath())
	assert.Equal(t, "/merchant", RoleBusiness.LandingPath())
	assert.Equal(t, "/admin", RoleAdmin.LandingPath())
	assert.Equal(t, "/dashboard", Role("").LandingPath())
	assert.Equal(t, "/dashboard", Role("pirate").LandingPath())
}

func TestRole_IsSelfAssignable(t *testing.T) {
	assert.True(t, RoleSupporter.IsSelfAssignable())
	assert.True(t, RoleBusiness.IsSelfAssignable())
	assert.False(t, RoleAdmin.IsSelfAssignable())
	assert.False(t, Role("root").IsSelfAssignable())
}

func TestCapabilities(t *testing.T) {
	derivedMerchant := Capabilities{Role: RoleSupporter, IsMerchant: true}
	assert.True(t, derivedMerchant.CanManageBusiness())
	assert.False(t, derivedMerchant.CanManageCampaigns())

	declaredBusiness := Capabilities{Role: RoleBusiness}
	assert.True(t, declaredBusiness.CanManageBusiness())
	assert.False(t, declaredBusiness.IsAdmin())

	assert.True(t, Capabilities{Role: RoleAdmin}.IsAdmin())
}
