// Package dispatcher implements the session dispatcher: a stateful wrapper
// around one session's Admin+Proxy pair enforcing request-id nonce
// correctness and translating Admin/Proxy errors into the wire Error
// response.
package dispatcher

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	log "github.com/public-forge/go-logger"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/admin"
	sloterror "github.com/fugaso-go/slot-core/internal/error"
	"github.com/fugaso-go/slot-core/internal/fsm"
	"github.com/fugaso-go/slot-core/internal/mathengine"
	"github.com/fugaso-go/slot-core/internal/models"
	"github.com/fugaso-go/slot-core/internal/proxy"
)

// Dispatcher binds one Admin+Proxy pair and drives the request-id
// contract: a mutating request is only processed if its request-id equals
// the dispatcher's current nextId; every processed mutating request
// (success or business error) regenerates nextId.
type Dispatcher struct {
	admin *admin.Admin
	proxy *proxy.Proxy

	nextID      uuid.UUID
	pendingWins []*models.TournamentGain
}

// New constructs a Dispatcher bound to ad/px. Call BeginSession once the
// session's Login+Join completes to mint the first nonce the client must
// echo.
func New(ad *admin.Admin, px *proxy.Proxy) *Dispatcher {
	return &Dispatcher{admin: ad, proxy: px}
}

// BeginSession mints the request-id nonce the client must submit on its
// first mutating call, returned to the HTTP layer as the Join response's
// request-id header.
func (d *Dispatcher) BeginSession() string {
	d.nextID = uuid.New()
	return d.nextID.String()
}

// EnqueueTournamentWin appends a fan-out-delivered award to the pending
// list, consumed on the next eligible (non-jackpot) spin close.
func (d *Dispatcher) EnqueueTournamentWin(gain *models.TournamentGain) {
	d.pendingWins = append(d.pendingWins, gain)
}

// Join emits the initial GameData packet off Admin's resolved state and
// mints the first nonce.
func (d *Dispatcher) Join(balance decimal.Decimal) (Response, error) {
	g, err := d.admin.Join(balance)
	if err != nil {
		return Response{}, err
	}
	return gameDataResponse(d.BeginSession(), g), nil
}

var mutatingKinds = map[RequestKind]struct{}{
	KindBetSpin: {}, KindReSpin: {}, KindFreeSpin: {}, KindCollect: {},
}

// Handle deserializes raw into a tagged Envelope and dispatches it,
// enforcing the request-id nonce for mutating kinds and regenerating the
// nonce after every processed mutating request regardless of outcome.
func (d *Dispatcher) Handle(ctx context.Context, requestID string, raw []byte) Response {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errorResponse(sloterror.ErrParseFormat.Error())
	}

	if env.Type == KindLogin {
		return errorResponse(sloterror.ErrNotLoggedOn.Error())
	}

	_, mutating := mutatingKinds[env.Type]
	if mutating && requestID != d.nextID.String() {
		return errorResponse(sloterror.ErrWrongRequestID.Error())
	}

	var resp Response
	switch env.Type {
	case KindBetSpin:
		resp = d.handleSpin(ctx, env)
	case KindReSpin:
		resp = d.handleReSpin(ctx, env)
	case KindFreeSpin:
		resp = d.handleFreeSpin(ctx, env)
	case KindCollect:
		resp = d.handleCollect(ctx, env)
	case KindHistory:
		resp = d.handleHistory(ctx, env)
	case KindTournamentInfo:
		resp = d.handleTournamentInfo()
	default:
		return errorResponse(sloterror.ErrParseFormat.Error())
	}

	if mutating {
		resp.ID = d.regenerateNonce()
	}
	return resp
}

func (d *Dispatcher) regenerateNonce() string {
	d.nextID = uuid.New()
	return d.nextID.String()
}

func (d *Dispatcher) handleSpin(ctx context.Context, env Envelope) Response {
	outcome, err := d.admin.Spin(ctx, env.Bet, env.Line, env.Denom, env.BetCounter, env.Input)
	if err != nil {
		return errorResponse(err.Error())
	}
	return d.settleWager(ctx, outcome)
}

func (d *Dispatcher) handleReSpin(ctx context.Context, env Envelope) Response {
	outcome, err := d.admin.ReSpin(ctx, env.Input)
	if err != nil {
		return errorResponse(err.Error())
	}
	return spinDataResponse("", outcome, d.proxy.Balance())
}

func (d *Dispatcher) handleFreeSpin(ctx context.Context, env Envelope) Response {
	outcome, err := d.admin.FreeSpin(ctx, env.Input)
	if err != nil {
		return errorResponse(err.Error())
	}
	return spinDataResponse("", outcome, d.proxy.Balance())
}

func (d *Dispatcher) handleCollect(ctx context.Context, env Envelope) Response {
	clientAct := env.CollectAct
	if clientAct == "" {
		clientAct = fsm.Collect
	}
	outcome, err := d.admin.Collect(ctx, clientAct, env.Input)
	if err != nil {
		return errorResponse(err.Error())
	}
	resp := d.settleResult(ctx, outcome)
	if outcome.NextAct == fsm.Bet {
		d.drainTournamentWin(ctx)
	}
	return resp
}

// settleWager runs the wallet debit for a freshly opened round's BET action
// and classifies any failure, persisting the classification via
// Admin.OnError.
func (d *Dispatcher) settleWager(ctx context.Context, outcome admin.SpinOutcome) Response {
	balance, status, accErr, err := d.proxy.Wager(ctx, outcome.Round, outcome.Action, outcome.Promo)
	if err != nil {
		d.persistError(ctx, outcome.Round.ID, outcome.Action.ID, err, models.RoundStatusRemoteError)
		return errorResponse(err.Error())
	}
	if accErr != nil {
		d.persistError(ctx, outcome.Round.ID, outcome.Action.ID, accErr, status)
		return errorResponse(accErr.Error())
	}
	_ = d.admin.RoundResult(ctx, balance)
	return spinDataResponse("", outcome, balance)
}

// settleResult credits the round's realized win once the FSM has a nonzero
// win ready to pay out; ReSpin/FreeSpin never reach here with a win because
// they never leave CLOSE-family states without going through Collect first.
func (d *Dispatcher) settleResult(ctx context.Context, outcome admin.SpinOutcome) Response {
	if !outcome.Win.IsPositive() {
		return spinDataResponse("", outcome, d.proxy.Balance())
	}
	balance, err := d.proxy.Result(ctx, outcome.Round, outcome.Action, outcome.Round.Win, outcome.Promo)
	if err != nil {
		d.persistError(ctx, outcome.Round.ID, outcome.Action.ID, err, models.RoundStatusRemoteError)
		return errorResponse(err.Error())
	}
	_ = d.admin.RoundResult(ctx, balance)
	return spinDataResponse("", outcome, balance)
}

func (d *Dispatcher) persistError(ctx context.Context, roundID, actionID uint, cause error, status models.RoundStatus) {
	_ = d.admin.OnError(ctx, actionID, roundID, &sloterror.AdminError{RoundID: roundID, ActionID: actionID, Cause: cause}, status)
}

// drainTournamentWin consumes at most one pending fan-out-delivered award
// once a spin is about to close on the non-jackpot path; delivery order is
// the order the tournament endpoint returned them.
func (d *Dispatcher) drainTournamentWin(ctx context.Context) {
	if len(d.pendingWins) == 0 {
		return
	}
	gain := d.pendingWins[0]
	d.pendingWins = d.pendingWins[1:]
	if err := d.proxy.TournamentWin(ctx, gain); err == nil {
		d.proxy.SetBalance(d.proxy.Balance().Add(gain.Amount))
	}
}

// Stop implements the session actor's Stop handling: if the round is
// sitting in COLLECT or GAMBLE_END it auto-collects so the round doesn't
// leak open, then forces the round closed regardless.
func (d *Dispatcher) Stop(ctx context.Context) error {
	switch d.admin.FSMState() {
	case fsm.Collect, fsm.GambleEnd:
		if _, err := d.admin.Collect(ctx, fsm.Collect, mathengine.Input{}); err != nil {
			log.FromContext(ctx).Error(err)
		}
	}
	_, err := d.admin.CloseRound(ctx)
	return err
}

func (d *Dispatcher) handleHistory(ctx context.Context, env Envelope) Response {
	entries, err := d.admin.History(ctx, env.Limit)
	if err != nil {
		return errorResponse(err.Error())
	}
	wire := make([]HistoryEntryWire, 0, len(entries))
	for _, e := range entries {
		ids := make([]uint, 0, len(e.Actions))
		for _, a := range e.Actions {
			ids = append(ids, a.ID)
		}
		wire = append(wire, HistoryEntryWire{
			RoundID:   e.Round.ID,
			CommonID:  e.Round.CommonID,
			Bet:       e.Round.Bet,
			Stake:     e.Round.Stake,
			Win:       e.Round.Win,
			Status:    string(e.Round.Status),
			ActionIDs: ids,
		})
	}
	return Response{Type: RespHistory, Cache: false, History: wire}
}

// handleTournamentInfo reports the session's still-pending fan-out awards;
// a real payload is a thin wrapper, so it borrows the History envelope
// shape rather than minting a fourth wire type.
func (d *Dispatcher) handleTournamentInfo() Response {
	wire := make([]HistoryEntryWire, 0, len(d.pendingWins))
	for _, w := range d.pendingWins {
		wire = append(wire, HistoryEntryWire{RoundID: w.UserID, Win: w.Amount, Status: "PENDING"})
	}
	return Response{Type: RespHistory, Cache: false, History: wire}
}

