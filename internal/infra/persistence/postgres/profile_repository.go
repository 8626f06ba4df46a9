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

type profileRepository struct {
	q *query.Query
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{q: query.Use(db)}
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := &model.ProfileModel{
		ID:       profile.ID,
		FullName: profile.FullName,
		Role:     profile.Role.String(),
	}

	if err := repo.q.ProfileModel.WithContext(ctx).Create(profileM); err != nil {
		if isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrSignUpFailed.WrapMessage("invalid profile record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profileM, err := repo.q.ProfileModel.WithContext(ctx).Where(repo.q.ProfileModel.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProfileDomain(profileM), nil
}

func (repo *profileRepository) UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error {
	result, err := repo.q.ProfileModel.WithContext(ctx).
		Where(repo.q.ProfileModel.ID.Eq(id)).
		Update(repo.q.ProfileModel.FullName, fullName)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:        data.ID,
		FullName:  data.FullName,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
