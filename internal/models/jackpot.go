package models

import (
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// JackpotValue is one configured jackpot pool's running contribution, read
// by the jackpot coalescer on a cache miss. Rows are written by the
// wallet-side settlement process; this service only reads them.
type JackpotValue struct {
	gorm.Model
	JackpotID    int64           `gorm:"column:jackpot_id;unique;not null"`
	Name         string          `gorm:"column:name;not null"`
	Contribution decimal.Decimal `gorm:"column:contribution;type:numeric;not null"`
}

// TableName sets the table name for JackpotValue explicitly.
func (JackpotValue) TableName() string {
	return "jackpot_values"
}
