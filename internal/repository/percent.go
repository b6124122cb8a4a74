package repository

import (
	"context"

	"github.com/jinzhu/gorm"
	"github.com/public-forge/go-gorm-unit-of-work/postgres"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
)

// defaultPercent is used when no per-user percent row exists yet; a fresh
// demo player plays at the full table.
var defaultPercent = decimal.NewFromInt(100)

// percentRepository implements IPercentRepository over the fugaso_percent
// table.
type percentRepository struct{}

// NewPercentRepository initializes and returns a new instance of
// percentRepository implementing IPercentRepository.
func NewPercentRepository() interfaces.IPercentRepository {
	return &percentRepository{}
}

// GetByUserAndGame resolves the percent record Admin.Init loads. A missing
// row is not an error: the default record is returned
// so a never-seen player can still play.
func (r *percentRepository) GetByUserAndGame(ctx context.Context, userID uint, gameID string) (*models.FugasoPercent, error) {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return nil, err
	}

	var percent models.FugasoPercent
	result := tr.Provider().Model(&models.FugasoPercent{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&percent)
	if result.Error != nil {
		_ = tr.Rollback()
		if gorm.IsRecordNotFoundError(result.Error) {
			return &models.FugasoPercent{UserID: userID, GameID: gameID, Percent: defaultPercent}, nil
		}
		return nil, result.Error
	}
	return &percent, tr.Commit(id)
}
