// Package accountservice ships the two interfaces.IAccountService
// implementations the proxy selects between by alias: demo adapts the
// local transactional user ledger into the wallet-RPC shape the proxy
// expects; http is a real outbound client for an external account
// service. Demo is the default alias.
package accountservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	sloterror "github.com/fugaso-go/slot-core/internal/error"
	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
)

// demoPassword is the fixed credential the demo ledger registers new
// players under; the demo wallet never asks a real password, only an
// opaque auth token or a DemoUserID it uses as the login key.
const demoPassword = "fugaso-demo"

// Demo adapts interfaces.IUserService (the local Deposit/Withdraw/
// GetByExternalID ledger, backed by gorm via go-gorm-unit-of-work) into
// the wallet-RPC shape the proxy drives.
type Demo struct {
	users       interfaces.IUserService
	currency    string
	startAmount decimal.Decimal
}

// NewDemo constructs a Demo account service. currency overrides the
// resolved user's stored currency when non-empty (proxy_config.currency);
// startAmount seeds a freshly auto-registered demo player's balance
// (proxy_config.start_amount).
func NewDemo(users interfaces.IUserService, currency string, startAmount decimal.Decimal) *Demo {
	return &Demo{users: users, currency: currency, startAmount: startAmount}
}

// Login resolves (or, for a never-seen demo player, auto-registers and
// seeds) the local ledger user backing req.Auth / req.DemoUserID.
func (d *Demo) Login(ctx context.Context, req interfaces.LoginRequest) (interfaces.LoginResult, error) {
	login := req.Auth
	if req.DemoUserID != nil {
		login = req.DemoUserID.String()
	}

	user, err := d.users.Login(ctx, login, demoPassword)
	if err != nil {
		if !errors.Is(err, sloterror.ErrUserNotFound) {
			return interfaces.LoginResult{}, err
		}
		user, err = d.users.Register(ctx, login, demoPassword)
		if err != nil {
			return interfaces.LoginResult{}, err
		}
		if d.startAmount.IsPositive() {
			balance, depErr := d.users.Deposit(ctx, user.ExternalID, d.startAmount)
			if depErr != nil {
				return interfaces.LoginResult{}, depErr
			}
			user.Balance = *balance
		}
	}

	currency := d.currency
	if currency == "" {
		currency = user.Currency
	}
	return interfaces.LoginResult{
		UserID:        user.ID,
		ExternalID:    user.ExternalID,
		Currency:      currency,
		Balance:       user.Balance,
		MaxWin:        user.MaxWin,
		MaxStake:      user.MaxStake,
		GameSessionID: uuid.NewString(),
	}, nil
}

// Wager withdraws the wagered amount from the ledger, classifying
// insufficient funds as OUT_OF_MONEY and any other repository failure as a
// generic remote error (the in-process ledger has no IO/HTTP/FORMAT
// failure modes of its own).
func (d *Demo) Wager(ctx context.Context, req interfaces.WagerRequest) (decimal.Decimal, interfaces.WagerOutcome, *interfaces.AccountError, error) {
	user, err := d.users.GetByID(ctx, req.UserID)
	if err != nil {
		return decimal.Zero, "", nil, err
	}
	balance, err := d.users.Withdraw(ctx, user.ExternalID, req.Amount)
	if err != nil {
		if errors.Is(err, sloterror.ErrInsufficientFunds) {
			return user.Balance, interfaces.WagerOutOfMoney, &interfaces.AccountError{RC: interfaces.RCOutOfMoney, Message: err.Error()}, nil
		}
		return user.Balance, interfaces.WagerRemoteError, &interfaces.AccountError{RC: "LEDGER_ERROR", Message: err.Error()}, nil
	}
	return *balance, interfaces.WagerAccepted, nil, nil
}

// Result credits a win (amount may be zero, a no-op deposit).
func (d *Demo) Result(ctx context.Context, req interfaces.ResultRequest) (decimal.Decimal, error) {
	user, err := d.users.GetByID(ctx, req.UserID)
	if err != nil {
		return decimal.Zero, err
	}
	if !req.Amount.IsPositive() {
		return user.Balance, nil
	}
	balance, err := d.users.Deposit(ctx, user.ExternalID, req.Amount)
	if err != nil {
		return decimal.Zero, err
	}
	return *balance, nil
}

// Rollback reverses a wager that Proxy classified as rollback-class by
// crediting the wagered amount back.
func (d *Demo) Rollback(ctx context.Context, req interfaces.WagerRequest) error {
	user, err := d.users.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	_, err = d.users.Deposit(ctx, user.ExternalID, req.Amount)
	return err
}

// CheckJackpots reports no jackpot hits: the demo ledger carries no
// jackpot pool of its own. A real deployment wires an account service that
// actually tracks one.
func (d *Demo) CheckJackpots(ctx context.Context, req interfaces.JackpotHitRequest) (interfaces.JackpotHitResult, error) {
	return interfaces.JackpotHitResult{Payload: map[string]interface{}{}, Hits: 0}, nil
}

// GetBalance re-reads the ledger balance.
func (d *Demo) GetBalance(ctx context.Context, userID uint) (decimal.Decimal, error) {
	user, err := d.users.GetByID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return user.Balance, nil
}

// TournamentWin credits a tournament gain to the ledger.
func (d *Demo) TournamentWin(ctx context.Context, gain *models.TournamentGain) error {
	user, err := d.users.GetByID(ctx, gain.UserID)
	if err != nil {
		return err
	}
	_, err = d.users.Deposit(ctx, user.ExternalID, gain.Amount)
	return err
}

// Close is a no-op: the demo ledger holds no wallet-side session to tear
// down.
func (d *Demo) Close(ctx context.Context, userID uint) error {
	return nil
}
