// Package admin implements the slot admin: it owns the current round, the
// math engine, and a request validator built from the engine's Settings,
// and persists round/action state atomically through
// interfaces.IRoundRepository.
package admin

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	sloterror "github.com/fugaso-go/slot-core/internal/error"
	"github.com/fugaso-go/slot-core/internal/fsm"
	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/mathengine"
	"github.com/fugaso-go/slot-core/internal/models"
)

// GameData is the packet Join/init emit, describing the resumed or fresh
// round state to the client.
type GameData struct {
	GameID  string
	NextAct fsm.ActionKind
	Special mathengine.Special
	Balance decimal.Decimal
}

// SpinOutcome is what Spin/ReSpin/FreeSpin/Collect return to the Session
// Dispatcher: the realized result plus the round/action rows it persisted,
// so the dispatcher can hand them to the proxy for the wallet call.
type SpinOutcome struct {
	Special mathengine.Special
	NextAct fsm.ActionKind
	Win     decimal.Decimal
	Round   *models.Round
	Action  *models.Action
	Promo   *models.PromoValue
}

// Admin drives one round for one session. It is not safe for concurrent
// use; a Session Actor owns exactly one instance for its whole lifetime.
type Admin struct {
	gameID       string
	userID       uint
	currency     string
	historyLimit int

	fsm       *fsm.SlotFSM
	validator *betValidator
	engine    mathengine.Engine
	round     *models.Round
	actions   []*models.Action
	percent   *models.FugasoPercent
	promo     *models.PromoStats

	roundRepo   interfaces.IRoundRepository
	percentRepo interfaces.IPercentRepository
	promoRepo   interfaces.IPromoRepository
}

// Deps bundles the collaborators Admin needs, injected by the Session
// Dispatcher at construction (Admin never constructs its own repositories).
type Deps struct {
	RoundRepo    interfaces.IRoundRepository
	PercentRepo  interfaces.IPercentRepository
	PromoRepo    interfaces.IPromoRepository
	HistoryLimit int
}

// New constructs an Admin bound to a fresh BET-state FSM. Init must be
// called before any spin.
func New(engine mathengine.Engine, deps Deps) *Admin {
	return &Admin{
		engine:       engine,
		roundRepo:    deps.RoundRepo,
		percentRepo:  deps.PercentRepo,
		promoRepo:    deps.PromoRepo,
		historyLimit: deps.HistoryLimit,
	}
}

// Init resolves the per-user percent record, anchors the FSM, and, if a
// resumable round is present, replays its last action's NextAct to restore
// state instead of starting fresh.
func (a *Admin) Init(ctx context.Context, userID uint, gameID, currency string) error {
	a.userID = userID
	a.gameID = gameID
	a.currency = currency
	a.fsm = fsm.Default(gameID)
	a.validator = newBetValidator(a.engine.Settings())

	percent, err := a.percentRepo.GetByUserAndGame(ctx, userID, gameID)
	if err != nil {
		return err
	}
	a.percent = percent

	promo, err := a.promoRepo.GetActive(ctx, userID)
	if err != nil {
		return err
	}
	a.promo = promo

	round, actions, err := a.roundRepo.GetOpenRound(ctx, userID)
	if err != nil {
		return err
	}
	if round == nil {
		return nil
	}
	a.round = round
	a.actions = actions
	if len(actions) > 0 {
		a.fsm.Init(actions[len(actions)-1].NextAct)
	}
	return nil
}

// Join emits a GameData packet derived from the current FSM and engine
// state, used on session resume without consuming a bet.
func (a *Admin) Join(balance decimal.Decimal) (GameData, error) {
	special, err := a.engine.Join()
	if err != nil {
		return GameData{}, err
	}
	next := fsm.Bet
	if a.fsm != nil {
		next = a.fsm.Current()
	}
	return GameData{GameID: a.gameID, NextAct: next, Special: special, Balance: balance}, nil
}

// Spin executes the full BET->SPIN->CLOSE leg: it normalizes the stake,
// folds in any active promo override, calls the math engine, classifies the
// outcome into the next server event, and persists CommonRound+Round+BET
// Action atomically.
func (a *Admin) Spin(ctx context.Context, bet decimal.Decimal, line int, denom decimal.Decimal, betCounter int, input mathengine.Input) (SpinOutcome, error) {
	if err := a.validator.validate(bet, line, denom); err != nil {
		return SpinOutcome{}, err
	}
	if _, err := a.fsm.ClientAct(fsm.Bet); err != nil {
		return SpinOutcome{}, err
	}

	stake := bet.Mul(decimal.NewFromInt(int64(line))).Mul(denom)
	promo := resolvePromo(a.promo, &bet, &line, &denom)

	if input == nil {
		input = mathengine.Input{}
	}
	input["stake"] = stake
	result, err := a.engine.Spin(input)
	if err != nil {
		return SpinOutcome{}, err
	}

	if _, err := a.fsm.ClientAct(fsm.Spin); err != nil {
		return SpinOutcome{}, err
	}
	nextAct, err := a.classifyAndAdvance(result.Outcome)
	if err != nil {
		return SpinOutcome{}, err
	}

	round := &models.Round{
		GameID:     a.gameID,
		UserID:     a.userID,
		OpenTime:   time.Now(),
		Bet:        bet,
		Line:       line,
		Denom:      denom,
		BetCounter: betCounter,
		Stake:      stake,
		Win:        result.Win,
		Detail:     detailOf(promo),
	}
	action := &models.Action{
		Amount:     stake,
		Kind:       models.ActionBet,
		NextAct:    nextAct,
		ExternalID: uuid.New(),
		Payload:    encodePayload(result.Special),
	}

	common := &models.CommonRound{GameID: a.gameID, UserID: a.userID, OpenTime: round.OpenTime}
	if err := a.roundRepo.StoreSpin(ctx, common, round, action, promo); err != nil {
		return SpinOutcome{}, err
	}

	round.CommonID = common.ID
	a.round = round
	a.actions = []*models.Action{action}

	if nextAct == fsm.Bet {
		a.finishRound(ctx, round)
	}

	return SpinOutcome{Special: result.Special, NextAct: nextAct, Win: result.Win, Round: round, Action: action, Promo: promo}, nil
}

// ReSpin continues an already-open round after a RESPIN_START outcome; the
// FSM is already sitting in RESPIN from that prior classification.
func (a *Admin) ReSpin(ctx context.Context, input mathengine.Input) (SpinOutcome, error) {
	return a.followup(ctx, fsm.ReSpin, models.ActionReSpin, input, a.engine.ReSpin)
}

// FreeSpin consumes one free spin from a FREESPIN_START sequence; the FSM
// is already sitting in FREE_SPIN from that prior classification.
func (a *Admin) FreeSpin(ctx context.Context, input mathengine.Input) (SpinOutcome, error) {
	return a.followup(ctx, fsm.FreeSpin, models.ActionFreeSpin, input, a.engine.FreeSpin)
}

// followup runs the shared client-act -> close -> classify cycle for
// ReSpin and FreeSpin, which both behave like a second Spin off an
// already-open round.
func (a *Admin) followup(ctx context.Context, clientAct fsm.ActionKind, kind models.ActionKindValue, input mathengine.Input, call func(mathengine.Input) (mathengine.Result, error)) (SpinOutcome, error) {
	if _, err := a.fsm.ClientAct(clientAct); err != nil {
		return SpinOutcome{}, err
	}
	result, err := call(input)
	if err != nil {
		return SpinOutcome{}, err
	}
	nextAct, err := a.classifyAndAdvance(result.Outcome)
	if err != nil {
		return SpinOutcome{}, err
	}
	action := &models.Action{
		RoundID:    a.round.ID,
		Amount:     decimal.Zero,
		Kind:       kind,
		NextAct:    nextAct,
		ExternalID: uuid.New(),
		Payload:    encodePayload(result.Special),
	}
	if err := a.roundRepo.StoreFollowupAction(ctx, action); err != nil {
		return SpinOutcome{}, err
	}
	a.round.Win = a.round.Win.Add(result.Win)
	a.actions = append(a.actions, action)
	if nextAct == fsm.Bet {
		a.finishRound(ctx, a.round)
	}
	return SpinOutcome{Special: result.Special, NextAct: nextAct, Win: result.Win, Round: a.round, Action: action}, nil
}

// Collect consumes the player's COLLECT (or FREE_COLLECT / GAMBLE_PLAY)
// client action from whatever collect-family state the FSM is currently in.
// Reaching BET means the round is done; a RICH round increments its promo
// stats count at that point.
func (a *Admin) Collect(ctx context.Context, clientAct fsm.ActionKind, input mathengine.Input) (SpinOutcome, error) {
	nextAct, err := a.fsm.ClientAct(clientAct)
	if err != nil {
		return SpinOutcome{}, err
	}

	result, err := a.engine.Collect(input)
	if err != nil {
		return SpinOutcome{}, err
	}

	kind := models.ActionCollect
	if clientAct == fsm.FreeCollect {
		kind = models.ActionFreeCollect
	} else if clientAct == fsm.GamblePlay {
		kind = models.ActionGamblePlay
	}

	action := &models.Action{
		RoundID:    a.round.ID,
		Amount:     decimal.Zero,
		Kind:       kind,
		NextAct:    nextAct,
		ExternalID: uuid.New(),
		Payload:    encodePayload(result.Special),
	}
	a.round.Win = a.round.Win.Add(result.Win)

	isRich := a.round.Detail == models.RoundDetailRich
	if err := a.roundRepo.StoreCollect(ctx, a.round, action, isRich && nextAct == fsm.Bet); err != nil {
		return SpinOutcome{}, err
	}
	if isRich && nextAct == fsm.Bet {
		_ = a.promoRepo.IncrementCount(ctx, a.userID)
	}
	a.actions = append(a.actions, action)
	payout := result.Win
	if nextAct == fsm.Bet {
		// A collect that finishes the round pays out everything the round
		// accumulated, not just the collect step's own delta.
		payout = a.round.Win
		a.finishRound(ctx, a.round)
	}
	return SpinOutcome{Special: result.Special, NextAct: nextAct, Win: payout, Round: a.round, Action: action}, nil
}

// finishRound stamps CloseTime/Status in memory; the persisted row is
// already durable from the Store* call that produced this transition, so
// this only keeps in-memory state consistent for Join/History callers in
// the same session.
func (a *Admin) finishRound(_ context.Context, round *models.Round) {
	now := time.Now()
	round.CloseTime = &now
	if round.Status == "" {
		round.Status = models.RoundStatusSuccess
	}
}

// CloseRound forces ANY->CLOSE and persists the closing CLOSE action;
// used by the Session Actor when the client disconnects mid-round.
func (a *Admin) CloseRound(ctx context.Context) (GameData, error) {
	if a.round == nil || a.round.IsTerminal() {
		next := fsm.Bet
		if a.fsm != nil {
			next = a.fsm.Current()
		}
		return GameData{GameID: a.gameID, NextAct: next}, nil
	}
	next, err := a.fsm.ServerAct(fsm.Close)
	if err != nil {
		a.fsm.Reset(fsm.Bet)
		next = fsm.Bet
	}
	a.finishRound(ctx, a.round)
	action := &models.Action{
		RoundID:    a.round.ID,
		Kind:       models.ActionClose,
		NextAct:    next,
		ExternalID: uuid.New(),
	}
	if err := a.roundRepo.StoreClose(ctx, a.round, action); err != nil {
		return GameData{}, err
	}
	return GameData{GameID: a.gameID, NextAct: next, Balance: a.round.Balance}, nil
}

// RoundResult updates the open round's persisted Balance column once the
// wallet call that resulted from this round has succeeded.
func (a *Admin) RoundResult(ctx context.Context, balance decimal.Decimal) error {
	if a.round == nil {
		return nil
	}
	a.round.Balance = balance
	return a.roundRepo.UpdateBalance(ctx, a.round.ID, balance)
}

// Fix marks a REMOTE_ERROR action cleared and its round SUCCESS, used at
// resume when the wallet confirms the outcome actually landed.
func (a *Admin) Fix(ctx context.Context, actionID, roundID uint, balance decimal.Decimal) error {
	if err := a.roundRepo.ClearActionError(ctx, actionID, roundID); err != nil {
		return err
	}
	return a.RoundResult(ctx, balance)
}

// OnError writes ErrorInfo (the cause's message, which for an account error
// starts with its rc) on the action and status on the round, then resets
// the FSM back to BET so the session stays usable. RemoteCode is written as
// 0; the wallet rc is not stored in that column.
func (a *Admin) OnError(ctx context.Context, actionID, roundID uint, accErr *sloterror.AdminError, status models.RoundStatus) error {
	message := ""
	if accErr != nil && accErr.Cause != nil {
		message = accErr.Cause.Error()
	}
	if err := a.roundRepo.MarkActionError(ctx, actionID, roundID, 0, message, status); err != nil {
		return err
	}
	a.fsm.Reset(fsm.Bet)
	return nil
}

// HistoryEntry pairs a round with its actions for the history response.
type HistoryEntry struct {
	Round   *models.Round
	Actions []*models.Action
}

// History returns at most min(limit, configuredLimit) recent rounds with
// actions merged in, newest first.
func (a *Admin) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	effective := limit
	if effective > a.historyLimit {
		effective = a.historyLimit
	}
	rounds, actionsByRound, err := a.roundRepo.GetHistory(ctx, a.userID, effective)
	if err != nil {
		return nil, err
	}
	entries := make([]HistoryEntry, 0, len(rounds))
	for _, r := range rounds {
		entries = append(entries, HistoryEntry{Round: r, Actions: actionsByRound[r.ID]})
	}
	return entries, nil
}

// FSMState exposes the current state for diagnostics and tests.
func (a *Admin) FSMState() fsm.ActionKind {
	return a.fsm.Current()
}

// classifyAndAdvance raises the server event matching result's Outcome
// against the CLOSE state the prior client action left the FSM in.
// OutcomeNone raises a plain CLOSE, looping the round back to BET.
func (a *Admin) classifyAndAdvance(outcome mathengine.Outcome) (fsm.ActionKind, error) {
	if outcome == mathengine.OutcomeNone {
		return a.fsm.ServerAct(fsm.Close)
	}
	return a.fsm.ServerAct(fsm.ActionKind(outcome))
}

func resolvePromo(promo *models.PromoStats, bet *decimal.Decimal, line *int, denom *decimal.Decimal) *models.PromoValue {
	if promo == nil || promo.Exhausted() {
		return nil
	}
	if !promo.Bet.IsZero() {
		*bet = promo.Bet
	}
	if promo.Line > 0 {
		*line = promo.Line
	}
	if !promo.Denom.IsZero() {
		*denom = promo.Denom
	}
	offerID := promo.OfferID
	return &models.PromoValue{Out: decimal.Zero, OfferID: &offerID}
}

func detailOf(promo *models.PromoValue) models.RoundDetail {
	if promo != nil && promo.IsActive() {
		return models.RoundDetailRich
	}
	return models.RoundDetailNormal
}

// encodePayload serializes a math result's Special payload onto
// Action.Payload; the column is opaque to everything except the engine
// that produced it.
func encodePayload(special mathengine.Special) string {
	if len(special) == 0 {
		return ""
	}
	b, err := json.Marshal(special)
	if err != nil {
		return ""
	}
	return string(b)
}
