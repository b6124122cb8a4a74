package interfaces

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/models"
)

// IUserService defines service-level methods for handling user-related
// actions: registration and the lookups/balance mutations the demo
// AccountService adapts into the wallet-RPC shape the slot proxy expects.
type IUserService interface {
	Register(ctx context.Context, login, password string) (*models.User, error)
	Login(ctx context.Context, login, password string) (*models.User, error)
	GetByExternalID(ctx context.Context, id *uuid.UUID) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Deposit(ctx context.Context, userID *uuid.UUID, amount decimal.Decimal) (*decimal.Decimal, error)
	Withdraw(ctx context.Context, userID *uuid.UUID, amount decimal.Decimal) (*decimal.Decimal, error)
}

// WagerOutcome classifies how a wager call against the wallet resolved.
type WagerOutcome string

const (
	WagerAccepted    WagerOutcome = "ACCEPTED"
	WagerOutOfMoney  WagerOutcome = "OUT_OF_MONEY"
	WagerRollback    WagerOutcome = "ROLLBACK"
	WagerRemoteError WagerOutcome = "REMOTE_ERROR"
)

// AccountError is the structured (rc, message) the wallet returns on
// failure. Rc codes IOError/HTTPError/FormatError are rollback-class;
// OutOfMoney declines; anything else is a remote error.
type AccountError struct {
	RC      string
	Message string
}

func (e *AccountError) Error() string {
	return e.RC + ": " + e.Message
}

// Wallet rc sentinels recognized by the proxy's failure classification.
const (
	RCOutOfMoney          = "OUT_OF_MONEY"
	RCOperationNotAllowed = "OPERATION_NOT_ALLOWED"
	RCIOError             = "IO_ERROR"
	RCHTTPError           = "HTTP_ERROR"
	RCFormatError         = "FORMAT_ERROR"
)

// IsRollbackClass reports whether rc requires the caller to issue a
// rollback and persist the round as ROLLBACK.
func IsRollbackClass(rc string) bool {
	switch rc {
	case RCIOError, RCHTTPError, RCFormatError:
		return true
	default:
		return false
	}
}

// WagerRequest carries everything an AccountService needs to debit a bet.
type WagerRequest struct {
	UserID uint
	Amount decimal.Decimal
	Round  *models.Round
	Action *models.Action
	Promo  *models.PromoValue
}

// ResultRequest carries everything an AccountService needs to credit a win.
type ResultRequest struct {
	UserID        uint
	Amount        decimal.Decimal
	Round         *models.Round
	Action        *models.Action
	Promo         *models.PromoValue
	GameSessionID string
}

// LoginRequest carries the inputs the proxy's login forwards to the account
// service to resolve a user and its settings.
type LoginRequest struct {
	Auth       string
	IP         string
	UserAgent  string
	DemoUserID *uuid.UUID
}

// LoginResult is what a successful account-service login resolves.
type LoginResult struct {
	UserID        uint
	ExternalID    *uuid.UUID
	Currency      string
	Balance       decimal.Decimal
	MaxWin        decimal.Decimal
	MaxStake      decimal.Decimal
	GameSessionID string
}

// JackpotHitRequest carries the inputs a jackpot check forwards to
// the account service to learn whether a stake triggered any configured
// jackpot.
type JackpotHitRequest struct {
	UserID  uint
	RoundID uint
	Stake   decimal.Decimal
}

// JackpotHitResult is what the wallet reports back for a check-jackpots
// call: the wire payload to echo to the client plus how many jackpots hit.
type JackpotHitResult struct {
	Payload map[string]interface{}
	Hits    int
}

// IAccountService is the external wallet/account client contract the proxy
// drives. Two implementations ship: a demo one adapting the local
// transactional user ledger, and an http one calling a real external
// service with retry.
type IAccountService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
	Wager(ctx context.Context, req WagerRequest) (decimal.Decimal, WagerOutcome, *AccountError, error)
	Result(ctx context.Context, req ResultRequest) (decimal.Decimal, error)
	Rollback(ctx context.Context, req WagerRequest) error
	CheckJackpots(ctx context.Context, req JackpotHitRequest) (JackpotHitResult, error)
	GetBalance(ctx context.Context, userID uint) (decimal.Decimal, error)
	TournamentWin(ctx context.Context, gain *models.TournamentGain) error
	Close(ctx context.Context, userID uint) error
}

// IRetryService defers an operation for later retry, used by Proxy.result
// when the wallet returns a retry-class error on credit.
type IRetryService interface {
	Submit(ctx context.Context, operation func(ctx context.Context) error) error
}
