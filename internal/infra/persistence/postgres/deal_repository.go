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
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

type dealRepository struct {
	q *query.Query
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{q: query.Use(db)}
}

func (repo *dealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	dealM := fromDealDomain(deal)

	if err := repo.q.DealModel.WithContext(ctx).Create(dealM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("deal references unknown business")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid deal record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create deal")
	}

	deal.ID = dealM.ID
	deal.CreatedAt = dealM.CreatedAt
	deal.UpdatedAt = dealM.UpdatedAt

	return nil
}

func (repo *dealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	d := repo.q.DealModel

	dealM, err := d.WithContext(ctx).Where(d.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toDealDomain(dealM), nil
}

// ListListable returns active, approved deals newest first with their business.
func (repo *dealRepository) ListListable(ctx context.Context) ([]*entity.Deal, error) {
	d := repo.q.DealModel

	return toDealList(d.WithContext(ctx).
		Preload(d.Business).
		Where(
			d.Status.Eq(string(entity.DealStatusActive)),
			d.ApprovalStatus.Eq(string(entity.ApprovalApproved)),
		).
		Order(d.CreatedAt.Desc()).
		Find())
}

func (repo *dealRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Deal, error) {
	d := repo.q.DealModel

	return toDealList(d.WithContext(ctx).
		Where(d.BusinessID.Eq(businessID)).
		Order(d.CreatedAt.Desc()).
		Find())
}

// ListByApproval is the moderation queue: oldest first, business preloaded.
func (repo *dealRepository) ListByApproval(ctx context.Context, status entity.ApprovalStatus) ([]*entity.Deal, error) {
	d := repo.q.DealModel

	return toDealList(d.WithContext(ctx).
		Preload(d.Business).
		Where(d.ApprovalStatus.Eq(string(status))).
		Order(d.CreatedAt).
		Find())
}

// Update writes content fields and the approval status reset that comes with an edit.
func (repo *dealRepository) Update(ctx context.Context, deal *entity.Deal) error {
	d := repo.q.DealModel

	result, err := d.WithContext(ctx).
		Where(d.ID.Eq(deal.ID)).
		Updates(map[string]any{
			string(d.Title.ColumnName()):          deal.Title,
			string(d.Description.ColumnName()):    deal.Description,
			string(d.Category.ColumnName()):       deal.Category,
			string(d.Terms.ColumnName()):          deal.Terms,
			string(d.ApprovalStatus.ColumnName()): string(deal.ApprovalStatus),
		})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update deal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

func (repo *dealRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DealStatus) error {
	return repo.updateColumn(ctx, id, repo.q.DealModel.Status, string(status))
}

func (repo *dealRepository) UpdateApproval(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error {
	return repo.updateColumn(ctx, id, repo.q.DealModel.ApprovalStatus, string(status))
}

func (repo *dealRepository) updateColumn(ctx context.Context, id uuid.UUID, column field.String, value string) error {
	d := repo.q.DealModel

	result, err := d.WithContext(ctx).Where(d.ID.Eq(id)).Update(column, value)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update deal "+string(column.ColumnName()))
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDealList(dealModels []*model.DealModel, err error) ([]*entity.Deal, error) {
	if err != nil {
		return nil, errors.WithStack(err)
	}

	deals := make([]*entity.Deal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toDealDomain(dealM))
	}

	return deals, nil
}

func toDealDomain(data *model.DealModel) *entity.Deal {
	if data == nil {
		return nil
	}

	return &entity.Deal{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		Title:          data.Title,
		Description:    data.Description,
		Category:       data.Category,
		Terms:          data.Terms,
		Status:         entity.DealStatus(data.Status),
		ApprovalStatus: entity.ApprovalStatus(data.ApprovalStatus),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Business:       toBusinessDomain(data.Business),
	}
}

func fromDealDomain(data *entity.Deal) *model.DealModel {
	return &model.DealModel{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		Title:          data.Title,
		Description:    data.Description,
		Category:       data.Category,
		Terms:          data.Terms,
		Status:         string(data.Status),
		ApprovalStatus: string(data.ApprovalStatus),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
