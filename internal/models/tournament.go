package models

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// RCNotDone is the wallet remote-code value meaning "not yet settled",
// used both as the filter criterion for incoming awards and as the initial
// RemoteCode stamped on a freshly persisted TournamentGain.
const RCNotDone = -1

// TournamentAward is one line item of an ingested tournament batch, as
// received from the tournament server. Only awards whose IP equals this
// server's configured tournament IP are committed locally.
type TournamentAward struct {
	ID         uint
	Amount     decimal.Decimal
	User       uint
	RemoteID   string
	Tour       string
	Place      int
	Balance    decimal.Decimal
	EventID    string
	IP         string
	RemoteCode int
}

// TournamentGain is the persisted record of a committed tournament award.
// InboundID is unique so re-ingesting the same batch never duplicates a
// row; OptLock is a monotonic version used for optimistic concurrency when
// the gain is later marked done via commitWins.
type TournamentGain struct {
	gorm.Model
	UserID        uint            `gorm:"column:user_id;not null;index"`
	InboundID     string          `gorm:"column:inbound_id;unique;not null"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric;not null"`
	AmountEuro    decimal.Decimal `gorm:"column:amount_euro;type:numeric;not null"`
	Place         int             `gorm:"column:place"`
	RemoteCode    int             `gorm:"column:remote_code;not null"`
	Tour          string          `gorm:"column:tour"`
	TimeDone      *time.Time      `gorm:"column:time_done"`
	RoundID       *uint           `gorm:"column:round_id"`
	RemoteID      string          `gorm:"column:remote_id"`
	RemoteMessage string          `gorm:"column:remote_message"`
	OptLock       int             `gorm:"column:opt_lock;not null"`
}

// TableName sets the table name for TournamentGain explicitly.
func (TournamentGain) TableName() string {
	return "tournament_gains"
}

// Done reports whether the wallet has already settled this gain.
func (g *TournamentGain) Done() bool {
	return g.RemoteCode != RCNotDone
}
