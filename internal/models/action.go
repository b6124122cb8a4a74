package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/fsm"
)

// ActionKindValue enumerates the persisted action kinds; it mirrors
// fsm.ActionKind plus the wire-only kinds (GAMBLE_*, BET_LINE*) that never
// drive the transition table themselves but are still recorded verbatim.
type ActionKindValue string

const (
	ActionBet          ActionKindValue = "BET"
	ActionSpin         ActionKindValue = "SPIN"
	ActionReSpin       ActionKindValue = "RESPIN"
	ActionFreeSpin     ActionKindValue = "FREE_SPIN"
	ActionCollect      ActionKindValue = "COLLECT"
	ActionFreeCollect  ActionKindValue = "FREE_COLLECT"
	ActionClose        ActionKindValue = "CLOSE"
	ActionBonus        ActionKindValue = "BONUS"
	ActionDrop         ActionKindValue = "DROP"
	ActionGamblePlay   ActionKindValue = "GAMBLE_PLAY"
	ActionGambleEnd    ActionKindValue = "GAMBLE_END"
	ActionBetLine      ActionKindValue = "BET_LINE"
	ActionBetLineDenom ActionKindValue = "BET_LINE_DENOM"
	ActionBetLineReels ActionKindValue = "BET_LINE_REELS"
)

// Action is a single step inside a round. Actions within a round are
// totally ordered by ID; the last action's NextAct is the state the round
// resumes in.
type Action struct {
	gorm.Model
	RoundID    uint              `gorm:"column:round_id;not null;index"`
	Amount     decimal.Decimal   `gorm:"column:amount;type:numeric;not null"`
	Kind       ActionKindValue   `gorm:"column:kind;not null"`
	NextAct    fsm.ActionKind    `gorm:"column:next_act;not null"`
	ExternalID uuid.UUID         `gorm:"column:external_id;type:uuid;not null"`
	TimeDone   *time.Time        `gorm:"column:time_done"`
	RemoteCode int               `gorm:"column:remote_code"`
	ErrorInfo  string            `gorm:"column:error_info"`
	Payload    string            `gorm:"column:payload;type:text"` // math-produced stops/grid/gains/special, JSON-encoded
}

// TableName sets the table name for Action explicitly.
func (Action) TableName() string {
	return "actions"
}

// IsRemoteError reports whether this action carries both a nonzero
// RemoteCode and an ErrorInfo. Admin.Init does not consult it when resuming
// a round.
func (a *Action) IsRemoteError() bool {
	return a.RemoteCode != 0 && a.ErrorInfo != ""
}
