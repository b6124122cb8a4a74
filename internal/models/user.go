package models

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// User represents a registered user in the system, storing essential
// account details such as login credentials, balance, and unique identifiers.
type User struct {
	gorm.Model
	ExternalID *uuid.UUID      `gorm:"column:external_id;type:uuid;default:uuid_generate_v4();unique;not null"` // Unique UUID for external identification
	Login      string          `gorm:"column:login;unique;not null"`                                           // Unique login name for the user
	Password   string          `gorm:"column:password;not null"`                                               // User's hashed password
	Balance    decimal.Decimal `gorm:"column:balance;type:numeric;default:0"`                                  // User's current wallet balance
	MaxWin     decimal.Decimal `gorm:"column:max_win;type:numeric"`                                            // Per-user payout ceiling, copied into engine Settings at login; not enforced
	MaxStake   decimal.Decimal `gorm:"column:max_stake;type:numeric"`                                          // Per-user stake ceiling honored by Admin.init
	Currency   string          `gorm:"column:currency;default:'EUR'"`                                          // ISO currency code resolved at login
}

// TableName sets the table name for the User model explicitly.
func (User) TableName() string {
	return "users"
}
