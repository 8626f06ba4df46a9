// Package postgres implements the domain repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"perkpass/internal/domain/repository"

	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute hands fn repositories bound to one transaction. GORM commits when
// fn returns nil and rolls back on an error or a panic.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}

// txRepositories builds repositories that share one transaction handle.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewIdentityRepository() repository.IdentityRepository {
	return NewIdentityRepository(r.tx)
}

func (r txRepositories) NewAuthRepository() repository.AuthRepository {
	return NewAuthRepository(r.tx)
}

func (r txRepositories) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(r.tx)
}

func (r txRepositories) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(r.tx)
}

func (r txRepositories) NewCampaignRepository() repository.CampaignRepository {
	return NewCampaignRepository(r.tx)
}

func (r txRepositories) NewMembershipRepository() repository.MembershipRepository {
	return NewMembershipRepository(r.tx)
}
