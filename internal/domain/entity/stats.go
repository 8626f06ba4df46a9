package entity

// PlatformStats is the admin overview.
type PlatformStats struct {
	Profiles          int64
	Businesses        int64
	Campaigns         int64
	ActiveMemberships int64
	PendingDeals      int64
	ApprovedDeals     int64
}
