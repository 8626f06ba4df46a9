package postgres

import (
	"context"

	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
	"perkpass/internal/infra/persistence/model"
	"perkpass/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type businessRepository struct {
	q *query.Query
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{q: query.Use(db)}
}

// FindByOwner returns the owner's oldest business.
func (repo *businessRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	b := repo.q.BusinessModel

	businessM, err := b.WithContext(ctx).
		Where(b.OwnerID.Eq(ownerID)).
		Order(b.CreatedAt).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toBusinessDomain(businessM), nil
}

// ExistsByOwner reads at most one id.
func (repo *businessRepository) ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	b := repo.q.BusinessModel

	_, err := b.WithContext(ctx).Select(b.ID).Where(b.OwnerID.Eq(ownerID)).Take()

	return rowFound(err)
}

func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.q.BusinessModel.WithContext(ctx).Create(businessM); err != nil {
		if isForeignKeyConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid business record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Update writes the editable profile fields. Logo and owner are left alone.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	b := repo.q.BusinessModel

	result, err := b.WithContext(ctx).
		Where(b.ID.Eq(business.ID)).
		Updates(map[string]any{
			string(b.BusinessName.ColumnName()): business.BusinessName,
			string(b.Address.ColumnName()):      business.Address,
			string(b.Phone.ColumnName()):        business.Phone,
		})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

func (repo *businessRepository) UpdateLogo(ctx context.Context, id uuid.UUID, logoURL string) error {
	b := repo.q.BusinessModel

	result, err := b.WithContext(ctx).Where(b.ID.Eq(id)).Update(b.LogoURL, logoURL)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update business logo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		BusinessName: data.BusinessName,
		Address:      data.Address,
		Phone:        data.Phone,
		LogoURL:      data.LogoURL,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	return &model.BusinessModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		BusinessName: data.BusinessName,
		Address:      data.Address,
		Phone:        data.Phone,
		LogoURL:      data.LogoURL,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
