package models

import (
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// CurrencyRate maps an ISO currency code to its EUR exchange rate, used by
// the tournament fan-out to convert award amounts before persisting the
// AmountEuro column.
type CurrencyRate struct {
	gorm.Model
	Currency string          `gorm:"column:currency;unique;not null"`
	RateEuro decimal.Decimal `gorm:"column:rate_euro;type:numeric;not null"`
}

// TableName sets the table name for CurrencyRate explicitly.
func (CurrencyRate) TableName() string {
	return "currency_rates"
}
