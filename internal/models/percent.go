package models

import (
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// FugasoPercent is the per-user, per-game bet/denomination percent record
// Admin.Init loads at login; the request validator is built from the
// engine's Settings, not from this record.
type FugasoPercent struct {
	gorm.Model
	UserID    uint            `gorm:"column:user_id;not null;index"`
	GameID    string          `gorm:"column:game_id;not null;index"`
	Percent   decimal.Decimal `gorm:"column:percent;type:numeric;not null"`
	MaxWin    decimal.Decimal `gorm:"column:max_win;type:numeric"`
	MaxStake  decimal.Decimal `gorm:"column:max_stake;type:numeric"`
}

// TableName sets the table name for FugasoPercent explicitly.
func (FugasoPercent) TableName() string {
	return "fugaso_percent"
}
