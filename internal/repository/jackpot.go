package repository

import (
	"context"

	"github.com/public-forge/go-gorm-unit-of-work/postgres"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
)

// jackpotRepository implements IJackpotRepository over the jackpot_values
// table.
type jackpotRepository struct{}

// NewJackpotRepository initializes and returns a new instance of
// jackpotRepository implementing IJackpotRepository.
func NewJackpotRepository() interfaces.IJackpotRepository {
	return &jackpotRepository{}
}

// GetContributions returns the name->contribution map for the given jackpot
// ids, the backend query behind a coalescer cache miss.
func (r *jackpotRepository) GetContributions(ctx context.Context, ids []int64) (map[string]decimal.Decimal, error) {
	contributions := make(map[string]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return contributions, nil
	}

	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return nil, err
	}

	var values []*models.JackpotValue
	result := tr.Provider().Model(&models.JackpotValue{}).
		Where("jackpot_id IN (?)", ids).Find(&values)
	if result.Error != nil {
		_ = tr.Rollback()
		return nil, result.Error
	}
	for _, v := range values {
		contributions[v.Name] = v.Contribution
	}
	return contributions, tr.Commit(id)
}
