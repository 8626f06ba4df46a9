// Package policy holds the route access table. It is evaluated once per request,
// before any handler fetches data.
package policy

import (
	"strings"

	"perkpass/internal/domain/entity"
)

// Requirement is what a route demands of the caller.
type Requirement int

const (
	Public Requirement = iota
	GuestOnly
	Authenticated
	MemberContent
	BusinessArea
	FundraiserArea
	AdminArea
)

var requirementNames = map[Requirement]string{
	Public:         "public",
	GuestOnly:      "guest_only",
	Authenticated:  "authenticated",
	MemberContent:  "member_content",
	BusinessArea:   "business",
	FundraiserArea: "fundraiser",
	AdminArea:      "admin",
}

func (r Requirement) String() string {
	if name, ok := requirementNames[r]; ok {
		return name
	}

	return "unknown"
}

// Paths the guard redirects to.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Rule binds a path pattern to a requirement. Pattern segments starting with ':' match any
// single segment; a pattern matches its own path and everything beneath it.
// An empty Method matches every method.
type Rule struct {
	Method      string
	Pattern     string
	Requirement Requirement
}

// Table is the ordered list of guarded routes. Paths no rule matches are public.
type Table []Rule

// DefaultTable is the access table of the web application.
func DefaultTable() Table {
	return Table{
		{Pattern: "/login", Requirement: GuestOnly},
		{Pattern: "/signup", Requirement: GuestOnly},
		{Pattern: "/dashboard", Requirement: Authenticated},
		{Method: "POST", Pattern: "/c/:slug/join", Requirement: Authenticated},
		{Pattern: "/deals", Requirement: MemberContent},
		{Pattern: "/merchant", Requirement: BusinessArea},
		{Pattern: "/campaigns", Requirement: FundraiserArea},
		{Pattern: "/admin", Requirement: AdminArea},
	}
}

// Lookup returns the requirement of the most specific rule matching the request.
func (t Table) Lookup(method, path string) Requirement {
	segments := splitPath(path)
	best, bestLen := Public, -1

	for _, rule := range t {
		if rule.Method != "" && !strings.EqualFold(rule.Method, method) {
			continue
		}

		pattern := splitPath(rule.Pattern)
		if !matchSegments(pattern, segments) {
			continue
		}

		if len(pattern) > bestLen {
			best, bestLen = rule.Requirement, len(pattern)
		}
	}

	return best
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "/")
}

func matchSegments(pattern, segments []string) bool {
	if len(pattern) == 0 || len(segments) < len(pattern) {
		return false
	}

	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			continue
		}
		if p != segments[i] {
			return false
		}
	}

	return true
}

// Subject is the caller as seen by the guard. Capabilities are only meaningful when
// Authenticated is true.
type Subject struct {
	Authenticated bool
	Capabilities  entity.Capabilities
}

// Anonymous is the subject of a request without a valid session.
var Anonymous = Subject{}

// Decision is the guard's verdict. RedirectTo is set when Allow is false.
type Decision struct {
	Allow      bool
	RedirectTo string
	Reason     string
}

// Decision reasons, also used as metric labels.
const (
	ReasonAllowed   = "allowed"
	ReasonAnonymous = "anonymous"
	ReasonSignedIn  = "signed_in"
	ReasonRole      = "role"
)

func allow() Decision {
	return Decision{Allow: true, Reason: ReasonAllowed}
}

func redirect(to, reason string) Decision {
	return Decision{RedirectTo: to, Reason: reason}
}

// Decide applies a requirement to a subject.
func Decide(req Requirement, subject Subject) Decision {
	if req == Public {
		return allow()
	}

	if req == GuestOnly {
		if subject.Authenticated {
			return redirect(subject.Capabilities.Role.LandingPath(), ReasonSignedIn)
		}

		return allow()
	}

	if !subject.Authenticated {
		return redirect(LoginPath, ReasonAnonymous)
	}

	caps := subject.Capabilities
	switch req {
	case BusinessArea:
		if !caps.CanManageBusiness() {
			return redirect(LoginPath, ReasonRole)
		}
	case FundraiserArea:
		if !caps.CanManageCampaigns() {
			return redirect(LoginPath, ReasonRole)
		}
	case AdminArea:
		if !caps.IsAdmin() {
			return redirect(HomePath, ReasonRole)
		}
	}

	// Authenticated and MemberContent let every signed-in user through; the deals page
	// renders its own call to action for non-members.
	return allow()
}

// Evaluate looks up the request in the table and decides it.
func (t Table) Evaluate(method, path string, subject Subject) (Requirement, Decision) {
	req := t.Lookup(method, path)

	return req, Decide(req, subject)
}
