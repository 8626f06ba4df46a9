package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusClosed CampaignStatus = "closed"
)

// Campaign is a fundraising drive that memberships are bought through.
type Campaign struct {
	ID              uuid.UUID
	OrganizerID     uuid.UUID
	Slug            string
	CampaignName    string
	Description     string
	GoalAmountCents int64
	StartDate       time.Time
	EndDate         time.Time
	Status          CampaignStatus
	LogoURL         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOpenAt reports whether memberships can be bought through the campaign at the given time.
// A zero EndDate means the campaign has no end.
func (c *Campaign) IsOpenAt(now time.Time) bool {
	if c.Status != CampaignStatusActive {
		return false
	}
	if !c.StartDate.IsZero() && now.Before(c.StartDate) {
		return false
	}
	if !c.EndDate.IsZero() && now.After(c.EndDate) {
		return false
	}

	return true
}

// CampaignProgress aggregates the memberships sold through a campaign.
type CampaignProgress struct {
	Campaign    *Campaign
	Members     int64
	RaisedCents int64
}

// PercentOfGoal is capped at 100.
func (p *CampaignProgress) PercentOfGoal() int {
	if p.Campaign == nil || p.Campaign.GoalAmountCents <= 0 {
		return 0
	}
	pct := p.RaisedCents * 100 / p.Campaign.GoalAmountCents
	if pct > 100 {
		return 100
	}

	return int(pct)
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a campaign name into a URL-safe slug.
func Slugify(name string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "campaign"
	}

	return slug
}
