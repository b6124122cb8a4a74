package repository

import (
	"context"

	"github.com/jinzhu/gorm"
	"github.com/public-forge/go-gorm-unit-of-work/postgres"

	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
)

// promoRepository implements IPromoRepository over the promo_stats table.
type promoRepository struct{}

// NewPromoRepository initializes and returns a new instance of
// promoRepository implementing IPromoRepository.
func NewPromoRepository() interfaces.IPromoRepository {
	return &promoRepository{}
}

// GetActive returns the user's active promo offer, or nil when the user has
// none (the common case, not an error).
func (r *promoRepository) GetActive(ctx context.Context, userID uint) (*models.PromoStats, error) {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return nil, err
	}

	var stats models.PromoStats
	result := tr.Provider().Model(&models.PromoStats{}).
		Where("user_id = ? AND remaining > 0", userID).
		First(&stats)
	if result.Error != nil {
		_ = tr.Rollback()
		if gorm.IsRecordNotFoundError(result.Error) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &stats, tr.Commit(id)
}

// IncrementCount bumps the RICH-round counter on the user's promo record.
func (r *promoRepository) IncrementCount(ctx context.Context, userID uint) error {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return err
	}
	result := tr.Provider().Model(&models.PromoStats{}).
		Where("user_id = ?", userID).
		UpdateColumn("count", gorm.Expr("count + 1"))
	if result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	return tr.Commit(id)
}
