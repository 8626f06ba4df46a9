package repository

import "context"

// TransactionManager runs multi-step writes atomically, such as sign-up
// (identity, credentials and profile) or joining a campaign.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewIdentityRepository() IdentityRepository
	NewAuthRepository() AuthRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewProfileRepository() ProfileRepository
	NewCampaignRepository() CampaignRepository
	NewMembershipRepository() MembershipRepository
}
