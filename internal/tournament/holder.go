// Package tournament implements the tournament fan-out: ingestion of a
// batch of awards from the tournament server, idempotent persistence of the
// local share as TournamentGain rows, commit-wins dispatch for gains the
// wallet has already settled, and delivery of per-user wins into live
// session actors through the registry.
package tournament

import (
	"context"
	"sort"

	log "github.com/public-forge/go-logger"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/config"
	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
	"github.com/fugaso-go/slot-core/internal/session"
)

// gainSequence names the id sequence new TournamentGain rows draw from.
const gainSequence = "tournament_gain_seq"

// BalanceUser is the per-remote-id balance snapshot built during ingestion.
type BalanceUser struct {
	EventID string
	Balance decimal.Decimal
	AwardID uint
}

// Summary is what Handle returns: the per-event podium, the merged
// saved+not-yet-performed gains, and the balance snapshot per remote id.
type Summary struct {
	Winners     map[string][]uint
	Gains       []*models.TournamentGain
	BalanceUser map[string]BalanceUser
}

// Holder drives one ingestion batch at a time. It is the only writer of
// tournament gains and the only holder of the outbound commit client, so
// batch processing is single-actor with respect to tournament state.
type Holder struct {
	cfg      *config.TourConfig
	gains    interfaces.ITournamentRepository
	rates    interfaces.IRateRepository
	sequence interfaces.ISequenceRepository
	users    interfaces.IUserService
	commit   *CommitClient
	registry *session.Registry

	batches chan batchRequest
	done    chan struct{}
}

type batchRequest struct {
	ctx    context.Context
	awards []models.TournamentAward
	reply  chan batchReply
}

type batchReply struct {
	summary *Summary
	err     error
}

// NewHolder constructs a Holder and starts its consumer loop.
func NewHolder(
	cfg *config.TourConfig,
	gains interfaces.ITournamentRepository,
	rates interfaces.IRateRepository,
	sequence interfaces.ISequenceRepository,
	users interfaces.IUserService,
	commit *CommitClient,
	registry *session.Registry,
) *Holder {
	h := &Holder{
		cfg:      cfg,
		gains:    gains,
		rates:    rates,
		sequence: sequence,
		users:    users,
		commit:   commit,
		registry: registry,
		batches:  make(chan batchRequest, 16),
		done:     make(chan struct{}),
	}
	go h.run()
	return h
}

// Shutdown stops the consumer loop.
func (h *Holder) Shutdown() {
	close(h.done)
}

func (h *Holder) run() {
	for {
		select {
		case b := <-h.batches:
			summary, err := h.process(b.ctx, b.awards)
			b.reply <- batchReply{summary: summary, err: err}
		case <-h.done:
			return
		}
	}
}

// Handle submits one award batch and blocks for its summary. Batches are
// processed strictly one at a time in arrival order.
func (h *Holder) Handle(ctx context.Context, awards []models.TournamentAward) (*Summary, error) {
	reply := make(chan batchReply, 1)
	select {
	case h.batches <- batchRequest{ctx: ctx, awards: awards, reply: reply}:
	case <-h.done:
		return nil, context.Canceled
	}
	select {
	case r := <-reply:
		return r.summary, r.err
	case <-h.done:
		return nil, context.Canceled
	}
}

func (h *Holder) process(ctx context.Context, awards []models.TournamentAward) (*Summary, error) {
	if h.cfg.Logged {
		log.FromContext(ctx).Infof("tournament batch: %d awards", len(awards))
	}

	winners := groupWinners(awards)
	balanceUser := make(map[string]BalanceUser, len(awards))
	for _, a := range awards {
		balanceUser[a.RemoteID] = BalanceUser{EventID: a.EventID, Balance: a.Balance, AwardID: a.ID}
	}

	var local []models.TournamentAward
	for _, a := range awards {
		if a.IP == h.cfg.IP {
			local = append(local, a)
		}
	}

	var pending []models.TournamentAward
	for _, a := range local {
		if a.RemoteCode == models.RCNotDone {
			pending = append(pending, a)
		}
	}

	remoteIDs := make([]string, 0, len(pending))
	for _, a := range pending {
		remoteIDs = append(remoteIDs, a.RemoteID)
	}
	existing, err := h.gains.FindExistingByRemoteID(ctx, remoteIDs)
	if err != nil {
		return nil, err
	}

	saved, err := h.persistFresh(ctx, pending, existing)
	if err != nil {
		return nil, err
	}

	h.dispatchDone(ctx, existing)

	merged := make([]*models.TournamentGain, 0, len(saved)+len(existing))
	merged = append(merged, saved...)
	for _, g := range existing {
		if !g.Done() {
			merged = append(merged, g)
		}
	}

	h.fanOut(saved)

	return &Summary{Winners: winners, Gains: merged, BalanceUser: balanceUser}, nil
}

// persistFresh converts and stores the awards with no persisted gain yet.
func (h *Holder) persistFresh(ctx context.Context, pending []models.TournamentAward, existing map[string]*models.TournamentGain) ([]*models.TournamentGain, error) {
	var fresh []*models.TournamentGain
	for _, a := range pending {
		if _, ok := existing[a.RemoteID]; ok {
			continue
		}

		rate, err := h.rateFor(ctx, a.User)
		if err != nil {
			return nil, err
		}
		next, err := h.sequence.Next(ctx, gainSequence)
		if err != nil {
			return nil, err
		}

		gain := &models.TournamentGain{
			UserID:     a.User,
			InboundID:  a.RemoteID,
			Amount:     a.Amount,
			AmountEuro: a.Amount.Mul(rate),
			Place:      a.Place,
			RemoteCode: models.RCNotDone,
			Tour:       a.Tour,
			RemoteID:   a.RemoteID,
			OptLock:    0,
		}
		gain.ID = uint(next)
		fresh = append(fresh, gain)
	}

	if err := h.gains.StoreGains(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// rateFor resolves the EUR conversion rate for the user's currency.
func (h *Holder) rateFor(ctx context.Context, userID uint) (decimal.Decimal, error) {
	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return h.rates.RateToEuro(ctx, user.Currency)
}

// dispatchDone fires the commit-wins call for already-persisted gains the
// wallet has settled, in a detached goroutine: the batch response never
// waits on the tournament server.
func (h *Holder) dispatchDone(ctx context.Context, existing map[string]*models.TournamentGain) {
	var done []*models.TournamentGain
	for _, g := range existing {
		if g.Done() {
			done = append(done, g)
		}
	}
	if len(done) == 0 {
		return
	}
	go func() {
		if err := h.commit.CommitWins(context.WithoutCancel(ctx), done); err != nil {
			log.FromContext(ctx).Error(err)
		}
	}()
}

// fanOut delivers each freshly saved gain into its user's live session, if
// one exists; users without a live session simply keep the persisted gain
// until their next login.
func (h *Holder) fanOut(saved []*models.TournamentGain) {
	for _, g := range saved {
		if actor, ok := h.registry.LookupByUser(g.UserID); ok {
			actor.EnqueueTournamentWin(g)
		}
	}
}

// groupWinners builds the per-event podium: users grouped by event id,
// ordered by place ascending.
func groupWinners(awards []models.TournamentAward) map[string][]uint {
	byEvent := make(map[string][]models.TournamentAward)
	for _, a := range awards {
		byEvent[a.EventID] = append(byEvent[a.EventID], a)
	}
	winners := make(map[string][]uint, len(byEvent))
	for event, entries := range byEvent {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Place < entries[j].Place })
		users := make([]uint, 0, len(entries))
		for _, e := range entries {
			users = append(users, e.User)
		}
		winners[event] = users
	}
	return winners
}
