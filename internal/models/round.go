package models

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// RoundDetail classifies whether a round was funded normally or by a promo
// offer (a RICH round charges the wallet zero but still counts for promo
// bookkeeping).
type RoundDetail string

const (
	RoundDetailNormal RoundDetail = "NORMAL"
	RoundDetailRich   RoundDetail = "RICH"
)

// RoundStatus is the terminal disposition of a round once CloseTime is set.
type RoundStatus string

const (
	RoundStatusSuccess     RoundStatus = "SUCCESS"
	RoundStatusRemoteError RoundStatus = "REMOTE_ERROR"
	RoundStatusDecline     RoundStatus = "DECLINE"
	RoundStatusRollback    RoundStatus = "ROLLBACK"
)

// CommonRound is the cross-system round identifier row referenced by every
// Round; CommonID must be globally unique across the whole platform, not
// just within one game.
type CommonRound struct {
	gorm.Model
	GameID    string    `gorm:"column:game_id;not null"`
	UserID    uint      `gorm:"column:user_id;not null"`
	OpenTime  time.Time `gorm:"column:open_time;not null"`
}

// TableName sets the table name for CommonRound explicitly.
func (CommonRound) TableName() string {
	return "common_rounds"
}

// Round is one play of a game, open from the first BET action until its
// CloseTime is set. Exactly one terminal Status is set once CloseTime is
// non-nil; RoundDetailRich implies a promo transaction is linked via
// PromoStats bookkeeping.
type Round struct {
	gorm.Model
	CommonID   uint            `gorm:"column:common_id;unique;not null"`
	GameID     string          `gorm:"column:game_id;not null"`
	UserID     uint            `gorm:"column:user_id;not null;index"`
	OpenTime   time.Time       `gorm:"column:open_time;not null"`
	CloseTime  *time.Time      `gorm:"column:close_time"`
	Bet        decimal.Decimal `gorm:"column:bet;type:numeric;not null"`
	Line       int             `gorm:"column:line;not null"`
	Denom      decimal.Decimal `gorm:"column:denom;type:numeric;not null"`
	Reels      int             `gorm:"column:reels"`
	Multi      int             `gorm:"column:multi"`
	BetCounter int             `gorm:"column:bet_counter;not null"`
	Stake      decimal.Decimal `gorm:"column:stake;type:numeric;not null"`
	Win        decimal.Decimal `gorm:"column:win;type:numeric;not null"`
	Balance    decimal.Decimal `gorm:"column:balance;type:numeric"`
	Detail     RoundDetail     `gorm:"column:detail;not null"`
	Status     RoundStatus     `gorm:"column:status"`
}

// TableName sets the table name for Round explicitly.
func (Round) TableName() string {
	return "rounds"
}

// IsTerminal reports whether the round has reached a CloseTime with a
// terminal Status set.
func (r *Round) IsTerminal() bool {
	return r.CloseTime != nil && r.Status != ""
}
