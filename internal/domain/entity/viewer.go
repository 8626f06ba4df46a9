package entity

import "github.com/google/uuid"

// Viewer is the resolved caller of one request: the identity plus its capabilities,
// computed once by the session middleware. A nil *Viewer is an anonymous caller.
type Viewer struct {
	Identity     *Identity
	Profile      *Profile // nil when the profile could not be read
	Capabilities Capabilities
}

// ID returns the identity id, or uuid.Nil for an anonymous viewer.
func (v *Viewer) ID() uuid.UUID {
	if v == nil || v.Identity == nil {
		return uuid.Nil
	}

	return v.Identity.ID
}

// IsAuthenticated reports whether the viewer carries a resolved identity.
func (v *Viewer) IsAuthenticated() bool {
	return v != nil && v.Identity != nil
}

// DisplayName prefers the profile's full name and falls back to the email.
func (v *Viewer) DisplayName() string {
	if v == nil {
		return ""
	}
	if v.Profile != nil && v.Profile.FullName != "" {
		return v.Profile.FullName
	}
	if v.Identity != nil {
		return v.Identity.Email
	}

	return ""
}
