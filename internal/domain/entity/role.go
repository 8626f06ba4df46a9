// Package entity contains the core business objects of the project.
package entity

// Role is the role a profile declares at sign-up. It decides where a user lands
// after login; access to role areas is also granted by derived capabilities.
type Role string

const (
	RoleSupporter  Role = "supporter"
	RoleFundraiser Role = "fundraiser"
	RoleBusiness   Role = "business"
	RoleAdmin      Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSupporter, RoleFundraiser, RoleBusiness, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelfAssignable reports whether a user may pick this role when signing up.
// Admins are promoted out of band.
func (r Role) IsSelfAssignable() bool {
	return r.IsValid() && r != RoleAdmin
}

// LandingPath is the page a signed-in user is sent to from the login page.
// Unknown roles land on the dashboard.
func (r Role) LandingPath() string {
	switch r {
	case RoleFundraiser:
		return "/campaigns"
	case RoleBusiness:
		return "/merchant"
	case RoleAdmin:
		return "/admin"
	default:
		return "/dashboard"
	}
}

// Capabilities are the per-request authorization facts for one identity.
// The three flags are derived from existence checks and are independent of each other.
type Capabilities struct {
	Role         Role // Declared role on the profile; empty when the profile could not be read.
	IsMerchant   bool // Owns at least one business.
	IsFundraiser bool // Organizes at least one campaign.
	IsMember     bool // Holds at least one unexpired membership.
}

// CanManageBusiness reports whether the merchant area is open to this identity.
func (c Capabilities) CanManageBusiness() bool {
	return c.Role == RoleBusiness || c.IsMerchant
}

// CanManageCampaigns reports whether the fundraiser area is open to this identity.
func (c Capabilities) CanManageCampaigns() bool {
	return c.Role == RoleFundraiser || c.IsFundraiser
}

// IsAdmin reports whether moderation is open to this identity.
func (c Capabilities) IsAdmin() bool {
	return c.Role == RoleAdmin
}
