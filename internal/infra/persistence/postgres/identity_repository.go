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
	"gorm.io/gen"
	"gorm.io/gorm"
)

// identityRepository implements the domain.IdentityRepository interface.
type identityRepository struct {
	q *query.Query
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{q: query.Use(db)}
}

// Create inserts the account row; the database assigns the id.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := &model.IdentityModel{ID: identity.ID, Email: identity.Email}

	if err := repo.q.IdentityModel.WithContext(ctx).Create(identityM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrIdentityAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt

	return nil
}

func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	return repo.findOne(ctx, repo.q.IdentityModel.ID.Eq(id))
}

func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	return repo.findOne(ctx, repo.q.IdentityModel.Email.Eq(email))
}

func (repo *identityRepository) findOne(ctx context.Context, cond gen.Condition) (*entity.Identity, error) {
	identityM, err := repo.q.IdentityModel.WithContext(ctx).Where(cond).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.Identity{
		ID:        identityM.ID,
		Email:     identityM.Email,
		CreatedAt: identityM.CreatedAt,
	}, nil
}
