package models

import (
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// PromoValue is the promo delta carried across a single wallet call; it is
// never persisted on its own, only folded into the Round/Action atomic
// write when a spin consumes a promo decrement.
type PromoValue struct {
	Out      decimal.Decimal
	OfferID  *uint
	ChargeID *uint
}

// IsActive reports whether this value represents an active promo offer
// consumption (as opposed to the zero-value "no promo" case).
func (p PromoValue) IsActive() bool {
	return p.OfferID != nil
}

// PromoStats is the per-user running bookkeeping for promo-funded (RICH)
// rounds: bet/line/denom overrides while the offer is active, and a count
// of RICH rounds played against it so far.
type PromoStats struct {
	gorm.Model
	UserID     uint            `gorm:"column:user_id;not null;unique_index"`
	OfferID    uint             `gorm:"column:offer_id;not null"`
	Bet        decimal.Decimal `gorm:"column:bet;type:numeric"`
	Line       int             `gorm:"column:line"`
	Denom      decimal.Decimal `gorm:"column:denom;type:numeric"`
	Count      int             `gorm:"column:count;not null"`
	Remaining  int             `gorm:"column:remaining;not null"`
}

// TableName sets the table name for PromoStats explicitly.
func (PromoStats) TableName() string {
	return "promo_stats"
}

// Exhausted reports whether the promo offer has no rounds left to fund.
func (p *PromoStats) Exhausted() bool {
	return p.Remaining <= 0
}
