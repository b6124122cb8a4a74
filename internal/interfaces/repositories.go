package interfaces

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/models"
)

// IUserRepository defines methods for user data operations in the repository layer.
type IUserRepository interface {
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByExternalID(ctx context.Context, id *uuid.UUID) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Deposit(ctx context.Context, userID uint, amount decimal.Decimal) (*decimal.Decimal, error)
	Withdraw(ctx context.Context, userID uint, amount decimal.Decimal) (*decimal.Decimal, error)
}

// IRoundRepository persists Round/Action/CommonRound rows. Every Store*
// method wraps a single transaction: implementations must preserve
// atomicity across the rows they touch.
type IRoundRepository interface {
	// StoreSpin atomically writes a new CommonRound, Round and BET Action,
	// along with any PromoStats delta when promo is active.
	StoreSpin(ctx context.Context, common *models.CommonRound, round *models.Round, action *models.Action, promo *models.PromoValue) error

	// StoreFollowupAction atomically writes a single new Action (RESPIN,
	// FREE_SPIN, or any non-closing, non-collecting step) on an existing
	// round.
	StoreFollowupAction(ctx context.Context, action *models.Action) error

	// StoreCollect atomically updates the round (win, optionally close
	// time) and writes the COLLECT/FREE_COLLECT action, plus a PromoStats
	// increment when the round is RICH.
	StoreCollect(ctx context.Context, round *models.Round, action *models.Action, promoIncrement bool) error

	// StoreClose atomically sets the round's CloseTime/Status and writes
	// the CLOSE action.
	StoreClose(ctx context.Context, round *models.Round, action *models.Action) error

	// UpdateBalance sets the open round's persisted Balance column after a
	// successful wallet call.
	UpdateBalance(ctx context.Context, roundID uint, balance decimal.Decimal) error

	// MarkActionError writes RemoteCode/ErrorInfo on an action and Status
	// on its round.
	MarkActionError(ctx context.Context, actionID, roundID uint, remoteCode int, errorInfo string, status models.RoundStatus) error

	// ClearActionError marks a REMOTE_ERROR action cleared and its round
	// SUCCESS, used at resume once the wallet confirms the outcome.
	ClearActionError(ctx context.Context, actionID, roundID uint) error

	// GetOpenRound returns the most recent round for userID that has no
	// CloseTime yet, with its actions ordered by ID ascending, for resume.
	GetOpenRound(ctx context.Context, userID uint) (*models.Round, []*models.Action, error)

	// GetHistory returns at most limit rounds for userID, newest open-time
	// first, each with its actions ordered by ID descending.
	GetHistory(ctx context.Context, userID uint, limit int) ([]*models.Round, map[uint][]*models.Action, error)
}

// IPercentRepository resolves the per-user bet/denomination percent record
// Admin.Init loads at login.
type IPercentRepository interface {
	GetByUserAndGame(ctx context.Context, userID uint, gameID string) (*models.FugasoPercent, error)
}

// IPromoRepository manages the active promo-offer bookkeeping consumed by
// spin/collect.
type IPromoRepository interface {
	GetActive(ctx context.Context, userID uint) (*models.PromoStats, error)
	IncrementCount(ctx context.Context, userID uint) error
}

// ITournamentRepository persists TournamentGain rows and answers the
// dedup/idempotence queries the fan-out needs.
type ITournamentRepository interface {
	// FindExistingByRemoteID returns the already-persisted gains whose
	// RemoteID is in ids, keyed by RemoteID.
	FindExistingByRemoteID(ctx context.Context, ids []string) (map[string]*models.TournamentGain, error)

	// StoreGains persists newly-resolved gains atomically.
	StoreGains(ctx context.Context, gains []*models.TournamentGain) error

	// MarkCommitted stamps a gain's RemoteCode/OptLock after a successful
	// outbound commit-wins call, using optimistic locking on OptLock.
	MarkCommitted(ctx context.Context, gainID uint, expectedOptLock int, remoteCode int) error
}

// ILaunchRepository lists the admissible launch hosts the host cache
// refreshes from.
type ILaunchRepository interface {
	ListHosts(ctx context.Context) ([]*models.LaunchInfo, error)
}

// IJackpotRepository answers the backend query the jackpot coalescer
// issues on a cache miss.
type IJackpotRepository interface {
	GetContributions(ctx context.Context, ids []int64) (map[string]decimal.Decimal, error)
}

// IRateRepository resolves a currency's EUR exchange rate, used by the
// tournament fan-out to fill TournamentGain.AmountEuro.
type IRateRepository interface {
	RateToEuro(ctx context.Context, currency string) (decimal.Decimal, error)
}

// ISequenceRepository hands out monotonically increasing IDs for newly
// persisted TournamentGain rows. Backed by Postgres by default, pluggable
// onto Redis INCR when a redis sequence backend is configured.
type ISequenceRepository interface {
	Next(ctx context.Context, sequenceName string) (int64, error)
}
