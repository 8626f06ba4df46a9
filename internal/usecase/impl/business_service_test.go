package impl

import (
	"context"
	"strings"
	"testing"

	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/repository"
	mockRepo "perkpass/internal/mocks/repository"
	mockSvc "perkpass/internal/mocks/service"
	"perkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	businessRepo *mockRepo.MockBusinessRepository
	storage      *mockSvc.MockObjectStorage
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	fx := businessServiceFixtures{
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		storage:      mockSvc.NewMockObjectStorage(t),
	}
	fx.service = NewBusinessService(BusinessServiceParams{
		BusinessRepo: fx.businessRepo,
		Storage:      fx.storage,
		Logger:       newTestLogger(),
	})

	return fx
}

func TestBusinessService_GetMyBusiness(t *testing.T) {
	ownerID := uuid.New()

	t.Run("found", func(t *testing.T) {
		fx := createTestBusinessService(t)
		fx.businessRepo.EXPECT().FindByOwner(mock.Anything, ownerID).Return(&entity.Business{OwnerID: ownerID, BusinessName: "Cafe"}, nil)

		business := fx.service.GetMyBusiness(context.Background(), ownerID)

		require.NotNil(t, business)
		assert.Equal(t, "Cafe", business.BusinessName)
	})

	t.Run("read error reads as none", func(t *testing.T) {
		fx := createTestBusinessService(t)
		fx.businessRepo.EXPECT().FindByOwner(mock.Anything, ownerID).Return(nil, errors.New("timeout"))

		assert.Nil(t, fx.service.GetMyBusiness(context.Background(), ownerID))
	})
}

func TestBusinessService_SaveBusiness_CreatesOnFirstSave(t *testing.T) {
	fx := createTestBusinessService(t)

	ownerID := uuid.New()
	fx.businessRepo.EXPECT().FindByOwner(mock.Anything, ownerID).Return(nil, repository.ErrBusinessNotFound)
	fx.businessRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(b *entity.Business) bool {
			return b.OwnerID == ownerID && b.BusinessName == "Corner Cafe" && b.Phone == "555-0100"
		})).
		Return(nil)

	business, err := fx.service.SaveBusiness(context.Background(), ownerID, &usecase.SaveBusinessInput{
		BusinessName: " Corner Cafe ",
		Phone:        "555-0100",
	})

	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe", business.BusinessName)
}

func TestBusinessService_SaveBusiness_UpdatesExisting(t *testing.T) {
	fx := createTestBusinessService(t)

	ownerID := uuid.New()
	existing := &entity.Business{ID: uuid.New(), OwnerID: ownerID, BusinessName: "Old"}
	fx.businessRepo.EXPECT().FindByOwner(mock.Anything, ownerID).Return(existing, nil)
	fx.businessRepo.EXPECT().Update(mock.Anything, existing).Return(nil)

	business, err := fx.service.SaveBusiness(context.Background(), ownerID, &usecase.SaveBusinessInput{BusinessName: "New"})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, business.ID)
	assert.Equal(t, "New", business.BusinessName)
}

func TestBusinessService_SaveBusiness_NameRequired(t *testing.T) {
	fx := createTestBusinessService(t)

	_, err := fx.service.SaveBusiness(context.Background(), uuid.New(), &usecase.SaveBusinessInput{BusinessName: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBusinessService_UploadLogo(t *testing.T) {
	fx := createTestBusinessService(t)

	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
	content := strings.NewReader("png-bytes")
	fx.businessRepo.EXPECT().FindByOwner(mock.Anything, ownerID).Return(business, nil)
	fx.storage.EXPECT().
		PutImage(mock.Anything, "business-logos/"+ownerID.String(), content).
		Return("/uploads/business-logos/x.png", nil)
	fx.businessRepo.EXPECT().UpdateLogo(mock.Anything, business.ID, "/uploads/business-logos/x.png").Return(nil)

	updated, err := fx.service.UploadLogo(context.Background(), ownerID, content)

	require.NoError(t, err)
	assert.Equal(t, "/uploads/business-logos/x.png", updated.LogoURL)
}

func TestBusinessService_UploadLogo_WithoutBusiness(t *testing.T) {
	fx := createTestBusinessService(t)

	ownerID := uuid.New()
	fx.businessRepo.EXPECT().FindByOwner(mock.Anything, ownerID).Return(nil, repository.ErrBusinessNotFound)

	_, err := fx.service.UploadLogo(context.Background(), ownerID, strings.NewReader("x"))

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}
