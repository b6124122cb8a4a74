package repository

import (
	"context"

	"github.com/jinzhu/gorm"
	"github.com/public-forge/go-gorm-unit-of-work/postgres"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
)

// rateRepository implements IRateRepository over the currency_rates table.
type rateRepository struct{}

// NewRateRepository initializes and returns a new instance of
// rateRepository implementing IRateRepository.
func NewRateRepository() interfaces.IRateRepository {
	return &rateRepository{}
}

// RateToEuro resolves currency's EUR exchange rate. EUR itself and any
// unknown currency resolve to 1, so a missing rate row degrades to a 1:1
// conversion rather than blocking the fan-out.
func (r *rateRepository) RateToEuro(ctx context.Context, currency string) (decimal.Decimal, error) {
	one := decimal.NewFromInt(1)
	if currency == "" || currency == "EUR" {
		return one, nil
	}

	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return one, err
	}

	var rate models.CurrencyRate
	result := tr.Provider().Model(&models.CurrencyRate{}).
		Where("currency = ?", currency).First(&rate)
	if result.Error != nil {
		_ = tr.Rollback()
		if gorm.IsRecordNotFoundError(result.Error) {
			return one, nil
		}
		return one, result.Error
	}
	return rate.RateEuro, tr.Commit(id)
}
