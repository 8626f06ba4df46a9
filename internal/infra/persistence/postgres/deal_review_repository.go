package postgres

import (
	"context"

	"perkpass/internal/domain/entity"
	"perkpass/internal/domain/repository"
	"perkpass/internal/infra/persistence/model"
	"perkpass/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dealReviewRepository struct {
	q *query.Query
}

// NewDealReviewRepository is the constructor for dealReviewRepository.
func NewDealReviewRepository(db *gorm.DB) repository.DealReviewRepository {
	return &dealReviewRepository{q: query.Use(db)}
}

// Record relies on the unique message_id index; a redelivered message affects no rows.
func (repo *dealReviewRepository) Record(ctx context.Context, review *entity.DealReview) (bool, error) {
	reviewM := fromDealReviewDomain(review)

	r := repo.q.DealReviewModel

	result := r.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: string(r.MessageID.ColumnName())}}, DoNothing: true}).
		UnderlyingDB().
		Create(reviewM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, errors.Wrap(repository.ErrDealNotFound, "record deal review")
		}

		return false, errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	review.ID = reviewM.ID

	return true, nil
}

func (repo *dealReviewRepository) ListRecent(ctx context.Context, limit int) ([]*entity.DealReview, error) {
	r := repo.q.DealReviewModel

	reviewsM, err := r.WithContext(ctx).
		Preload(r.Deal).
		Order(r.ReviewedAt.Desc()).
		Limit(limit).
		Find()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	reviews := make([]*entity.DealReview, 0, len(reviewsM))
	for _, reviewM := range reviewsM {
		reviews = append(reviews, toDealReviewDomain(reviewM))
	}

	return reviews, nil
}

func fromDealReviewDomain(review *entity.DealReview) *model.DealReviewModel {
	return &model.DealReviewModel{
		ID:         review.ID,
		MessageID:  review.MessageID,
		DealID:     review.DealID,
		BusinessID: review.BusinessID,
		ReviewerID: review.ReviewerID,
		Decision:   string(review.Decision),
		ReviewedAt: review.ReviewedAt,
		RecordedAt: review.RecordedAt,
	}
}

func toDealReviewDomain(reviewM *model.DealReviewModel) *entity.DealReview {
	review := &entity.DealReview{
		ID:         reviewM.ID,
		MessageID:  reviewM.MessageID,
		DealID:     reviewM.DealID,
		BusinessID: reviewM.BusinessID,
		ReviewerID: reviewM.ReviewerID,
		Decision:   entity.ApprovalStatus(reviewM.Decision),
		ReviewedAt: reviewM.ReviewedAt,
		RecordedAt: reviewM.RecordedAt,
	}
	if reviewM.Deal != nil {
		review.DealTitle = reviewM.Deal.Title
	}

	return review
}
