// Package proxy implements the slot proxy: the single point of contact
// between a session's Admin and the external account (wallet) service. It
// owns the session's resolved user id, currency, game-session id and the
// last-known balance, and classifies every wallet failure into the rc
// sub-classification Admin.OnError persists against.
package proxy

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
)

// Proxy drives one AccountService on behalf of one session. It is not safe
// for concurrent use; a Session Actor owns exactly one instance for its
// whole lifetime, same as Admin.
type Proxy struct {
	account interfaces.IAccountService
	retry   interfaces.IRetryService

	userID        uint
	currency      string
	gameSessionID string
	balance       decimal.Decimal
}

// New constructs a Proxy bound to account, with retry optional (a nil retry
// service simply drops deferred Result retries on the floor, logged by the
// caller).
func New(account interfaces.IAccountService, retry interfaces.IRetryService) *Proxy {
	return &Proxy{account: account, retry: retry}
}

// Login resolves the user against the account service and caches the
// resolved identity/balance for every subsequent call this Proxy makes.
func (p *Proxy) Login(ctx context.Context, req interfaces.LoginRequest) (interfaces.LoginResult, error) {
	res, err := p.account.Login(ctx, req)
	if err != nil {
		return interfaces.LoginResult{}, err
	}
	p.userID = res.UserID
	p.currency = res.Currency
	p.gameSessionID = res.GameSessionID
	p.balance = res.Balance
	return res, nil
}

// Wager debits a bet from the wallet. On success it updates the cached
// balance and returns RoundStatusSuccess. On failure it classifies rc:
// OUT_OF_MONEY declines, IO_ERROR/HTTP_ERROR/FORMAT_ERROR issue a
// rollback and mark ROLLBACK, anything else marks REMOTE_ERROR. The caller
// (Session Dispatcher) is responsible for persisting the classification via
// Admin.OnError; Proxy only classifies and, for rollback-class failures,
// issues the compensating rollback call itself.
func (p *Proxy) Wager(ctx context.Context, round *models.Round, action *models.Action, promo *models.PromoValue) (decimal.Decimal, models.RoundStatus, *interfaces.AccountError, error) {
	req := interfaces.WagerRequest{UserID: p.userID, Amount: action.Amount, Round: round, Action: action, Promo: promo}

	balance, outcome, accErr, err := p.account.Wager(ctx, req)
	if err != nil {
		return p.balance, models.RoundStatusRemoteError, nil, err
	}

	switch outcome {
	case interfaces.WagerAccepted:
		p.balance = balance
		return balance, models.RoundStatusSuccess, nil, nil
	case interfaces.WagerOutOfMoney:
		return p.balance, models.RoundStatusDecline, accErr, nil
	default:
		if accErr != nil && interfaces.IsRollbackClass(accErr.RC) {
			_ = p.account.Rollback(ctx, req)
			return p.balance, models.RoundStatusRollback, accErr, nil
		}
		return p.balance, models.RoundStatusRemoteError, accErr, nil
	}
}

// Result credits a round's realized win. On OPERATION_NOT_ALLOWED it
// silently re-reads the balance instead of surfacing an error. On
// any other account error it submits a deferred retry via the RetryService
// (when one is configured) before returning the error to the caller.
func (p *Proxy) Result(ctx context.Context, round *models.Round, action *models.Action, win decimal.Decimal, promo *models.PromoValue) (decimal.Decimal, error) {
	req := interfaces.ResultRequest{UserID: p.userID, Amount: win, Round: round, Action: action, Promo: promo, GameSessionID: p.gameSessionID}

	balance, err := p.account.Result(ctx, req)
	if err == nil {
		p.balance = balance
		return balance, nil
	}

	var accErr *interfaces.AccountError
	if errors.As(err, &accErr) && accErr.RC == interfaces.RCOperationNotAllowed {
		if bal, bErr := p.account.GetBalance(ctx, p.userID); bErr == nil {
			p.balance = bal
		}
		return p.balance, nil
	}

	if p.retry != nil {
		_ = p.retry.Submit(ctx, func(rctx context.Context) error {
			_, rErr := p.account.Result(rctx, req)
			return rErr
		})
	}
	return p.balance, err
}

// CheckJackpots asks the wallet whether stake triggered any configured
// jackpot for roundID.
func (p *Proxy) CheckJackpots(ctx context.Context, roundID uint, stake decimal.Decimal) (interfaces.JackpotHitResult, error) {
	return p.account.CheckJackpots(ctx, interfaces.JackpotHitRequest{UserID: p.userID, RoundID: roundID, Stake: stake})
}

// TournamentWin issues an idempotent award commit against the wallet,
// guarded by the gain's OptLock at the repository layer (the account
// service itself is just told the amount to credit once).
func (p *Proxy) TournamentWin(ctx context.Context, gain *models.TournamentGain) error {
	return p.account.TournamentWin(ctx, gain)
}

// GetBalance re-reads and caches the wallet balance out of band (used by
// the Session Actor's Balance event and by test harnesses).
func (p *Proxy) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	balance, err := p.account.GetBalance(ctx, p.userID)
	if err != nil {
		return p.balance, err
	}
	p.balance = balance
	return balance, nil
}

// SetBalance overwrites the cached balance without a wallet round-trip,
// used when a wallet callback pushes a balance directly.
func (p *Proxy) SetBalance(balance decimal.Decimal) {
	p.balance = balance
}

// Balance returns the last-known balance without contacting the wallet.
func (p *Proxy) Balance() decimal.Decimal {
	return p.balance
}

// UserID returns the resolved user id from Login.
func (p *Proxy) UserID() uint {
	return p.userID
}

// Currency returns the resolved currency from Login.
func (p *Proxy) Currency() string {
	return p.currency
}

// GameSessionID returns the wallet-assigned game session id from Login, if
// any.
func (p *Proxy) GameSessionID() string {
	return p.gameSessionID
}

// Close releases the wallet-side session, called by the Session Actor when
// it tears down (displaced login, explicit disconnect, or idle sweep).
func (p *Proxy) Close(ctx context.Context) error {
	return p.account.Close(ctx, p.userID)
}
