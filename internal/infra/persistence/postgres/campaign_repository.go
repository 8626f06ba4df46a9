package postgres

import (
	"context"
	"time"

	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
	"perkpass/internal/infra/persistence/model"
	"perkpass/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

type campaignRepository struct {
	q *query.Query
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{q: query.Use(db)}
}

func (repo *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.q.CampaignModel.WithContext(ctx).Create(campaignM); err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrDuplicateSlug)
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid campaign record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

func (repo *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	return repo.findOne(ctx, repo.q.CampaignModel.ID.Eq(id))
}

func (repo *campaignRepository) FindBySlug(ctx context.Context, slug string) (*entity.Campaign, error) {
	return repo.findOne(ctx, repo.q.CampaignModel.Slug.Eq(slug))
}

func (repo *campaignRepository) findOne(ctx context.Context, cond gen.Condition) (*entity.Campaign, error) {
	campaignM, err := repo.q.CampaignModel.WithContext(ctx).Where(cond).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCampaignDomain(campaignM), nil
}

func (repo *campaignRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return repo.exists(ctx, repo.q.CampaignModel.Slug.Eq(slug))
}

func (repo *campaignRepository) ExistsByOrganizer(ctx context.Context, organizerID uuid.UUID) (bool, error) {
	return repo.exists(ctx, repo.q.CampaignModel.OrganizerID.Eq(organizerID))
}

func (repo *campaignRepository) exists(ctx context.Context, cond gen.Condition) (bool, error) {
	c := repo.q.CampaignModel

	_, err := c.WithContext(ctx).Select(c.ID).Where(cond).Take()

	return rowFound(err)
}

func (repo *campaignRepository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*entity.Campaign, error) {
	c := repo.q.CampaignModel

	return toCampaignList(c.WithContext(ctx).
		Where(c.OrganizerID.Eq(organizerID)).
		Order(c.CreatedAt.Desc()).
		Find())
}

// ListOpen returns active campaigns whose date window contains now.
func (repo *campaignRepository) ListOpen(ctx context.Context, now time.Time, limit int) ([]*entity.Campaign, error) {
	c := repo.q.CampaignModel

	return toCampaignList(c.WithContext(ctx).
		Where(
			c.Status.Eq(string(entity.CampaignStatusActive)),
			field.Or(c.StartDate.IsNull(), c.StartDate.Lte(now)),
			field.Or(c.EndDate.IsNull(), c.EndDate.Gte(now)),
		).
		Order(c.CreatedAt.Desc()).
		Limit(limit).
		Find())
}

func (repo *campaignRepository) UpdateLogo(ctx context.Context, id uuid.UUID, logoURL string) error {
	c := repo.q.CampaignModel

	result, err := c.WithContext(ctx).Where(c.ID.Eq(id)).Update(c.LogoURL, logoURL)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update campaign logo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCampaignList(campaignModels []*model.CampaignModel, err error) ([]*entity.Campaign, error) {
	if err != nil {
		return nil, errors.WithStack(err)
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		campaigns = append(campaigns, toCampaignDomain(campaignM))
	}

	return campaigns, nil
}

func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	campaign := &entity.Campaign{
		ID:              data.ID,
		OrganizerID:     data.OrganizerID,
		Slug:            data.Slug,
		CampaignName:    data.CampaignName,
		Description:     data.Description,
		GoalAmountCents: data.GoalAmountCents,
		Status:          entity.CampaignStatus(data.Status),
		LogoURL:         data.LogoURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.StartDate != nil {
		campaign.StartDate = *data.StartDate
	}
	if data.EndDate != nil {
		campaign.EndDate = *data.EndDate
	}

	return campaign
}

func fromCampaignDomain(data *entity.Campaign) *model.CampaignModel {
	return &model.CampaignModel{
		ID:              data.ID,
		OrganizerID:     data.OrganizerID,
		Slug:            data.Slug,
		CampaignName:    data.CampaignName,
		Description:     data.Description,
		GoalAmountCents: data.GoalAmountCents,
		StartDate:       optionalTime(data.StartDate),
		EndDate:         optionalTime(data.EndDate),
		Status:          string(data.Status),
		LogoURL:         data.LogoURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
