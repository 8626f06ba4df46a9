package postgres

import (
	"context"
	"database/sql/driver"
	"time"

	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
	"perkpass/internal/infra/persistence/model"
	"perkpass/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type membershipRepository struct {
	q *query.Query
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{q: query.Use(db)}
}

func (repo *membershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	membershipM := &model.MembershipModel{
		UserID:               membership.UserID,
		CampaignID:           membership.CampaignID,
		ExpiresAt:            membership.ExpiresAt,
		FundraiserShareCents: membership.FundraiserShareCents,
	}

	if err := repo.q.MembershipModel.WithContext(ctx).Create(membershipM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCampaignNotFound.WrapMessage("membership references unknown campaign")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create membership")
	}

	membership.ID = membershipM.ID
	membership.CreatedAt = membershipM.CreatedAt

	return nil
}

func (repo *membershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error) {
	m := repo.q.MembershipModel

	membershipM, err := m.WithContext(ctx).Where(m.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toMembershipDomain(membershipM), nil
}

// HasActive looks for one membership with expires_at >= now.
func (repo *membershipRepository) HasActive(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error) {
	m := repo.q.MembershipModel

	_, err := m.WithContext(ctx).
		Select(m.ID).
		Where(m.UserID.Eq(userID), m.ExpiresAt.Gte(now)).
		Take()

	return rowFound(err)
}

func (repo *membershipRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	m := repo.q.MembershipModel

	membershipModels, err := m.WithContext(ctx).
		Preload(m.Campaign).
		Where(m.UserID.Eq(userID)).
		Order(m.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	memberships := make([]*entity.Membership, 0, len(membershipModels))
	for _, membershipM := range membershipModels {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships, nil
}

type campaignTotalsRow struct {
	CampaignID  uuid.UUID
	Members     int64
	RaisedCents int64
}

// TotalsByCampaign aggregates member counts and fundraiser shares in one grouped query.
func (repo *membershipRepository) TotalsByCampaign(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID]repository.CampaignTotals, error) {
	totals := make(map[uuid.UUID]repository.CampaignTotals, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return totals, nil
	}

	m := repo.q.MembershipModel

	ids := make([]driver.Valuer, 0, len(campaignIDs))
	for _, id := range campaignIDs {
		ids = append(ids, id)
	}

	var rows []campaignTotalsRow
	err := m.WithContext(ctx).
		Select(m.CampaignID, m.ID.Count().As("members"), m.FundraiserShareCents.Sum().As("raised_cents")).
		Where(m.CampaignID.In(ids...)).
		Group(m.CampaignID).
		Scan(&rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, row := range rows {
		totals[row.CampaignID] = repository.CampaignTotals{Members: row.Members, RaisedCents: row.RaisedCents}
	}

	return totals, nil
}

func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	return &entity.Membership{
		ID:                   data.ID,
		UserID:               data.UserID,
		CampaignID:           data.CampaignID,
		ExpiresAt:            data.ExpiresAt,
		FundraiserShareCents: data.FundraiserShareCents,
		CreatedAt:            data.CreatedAt,
		Campaign:             toCampaignDomain(data.Campaign),
	}
}
