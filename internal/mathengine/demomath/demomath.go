// Package demomath is the reference mathengine.Engine implementation: a
// three-reel game paying on two- and three-symbol matches drawn against
// configured probabilities.
package demomath

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/mathengine"
)

// symbols are the reel faces this reference engine draws from.
var symbols = []string{"A", "B", "C", "D"}

// Config carries the multiplier/probability knobs, scoped per engine
// instance.
type Config struct {
	MultiplierThree       decimal.Decimal
	MultiplierTwo         decimal.Decimal
	ThreeMatchProbability float64
	TwoMatchProbability   float64
	MaxWin                decimal.Decimal
	MaxStake              decimal.Decimal
}

// Engine is a stateless three-reel match-probability game. It keeps no
// pending bonus/free-spin/drop state, so ReSpin/FreeSpin are not reachable
// outcomes of Spin and simply error if called; Collect settles a winning
// spin's COLLECT step with zero additional win.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// New constructs a demomath.Engine bound to cfg; SetRand must be called
// before any spin is drawn.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Settings implements mathengine.Engine.
func (e *Engine) Settings() mathengine.Settings {
	return mathengine.Settings{
		Bets:     []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(5), decimal.NewFromInt(25)},
		Lines:    []int{1, 3, 5},
		Denoms:   []decimal.Decimal{decimal.NewFromInt(1)},
		MaxWin:   e.cfg.MaxWin,
		MaxStake: e.cfg.MaxStake,
	}
}

// SetRand implements mathengine.Engine.
func (e *Engine) SetRand(r *rand.Rand) {
	e.rng = r
}

// Join implements mathengine.Engine; this engine carries no bonus state to
// report, so it returns an empty payload.
func (e *Engine) Join() (mathengine.Special, error) {
	return mathengine.Special{}, nil
}

// Spin draws three symbols, applies the three-match then two-match
// probability checks in that order, and reports the payout as a multiple
// of the stake carried in input["stake"]. A winning spin classifies as
// OutcomeCollectOpen so the round lands in COLLECT and the win is paid out
// on the player's collect; a losing spin closes straight back to BET.
func (e *Engine) Spin(input mathengine.Input) (mathengine.Result, error) {
	stake := stakeOf(input)

	result := []string{
		symbols[e.rng.Intn(len(symbols))],
		symbols[e.rng.Intn(len(symbols))],
		symbols[e.rng.Intn(len(symbols))],
	}

	win := decimal.Zero
	switch {
	case e.rng.Float64() <= e.cfg.ThreeMatchProbability:
		result[1] = result[0]
		result[2] = result[0]
		win = stake.Mul(e.cfg.MultiplierThree)
	case e.rng.Float64() <= e.cfg.TwoMatchProbability:
		result[1] = result[0]
		win = stake.Mul(e.cfg.MultiplierTwo)
	}

	outcome := mathengine.OutcomeNone
	if win.IsPositive() {
		outcome = mathengine.OutcomeCollectOpen
	}

	return mathengine.Result{
		Win:     win,
		Outcome: outcome,
		Special: mathengine.Special{"reels": result},
		Total:   win,
	}, nil
}

// ReSpin is unreachable for this engine: Spin never reports OutcomeRespin.
func (e *Engine) ReSpin(mathengine.Input) (mathengine.Result, error) {
	return mathengine.Result{}, errIllegalCall("respin")
}

// FreeSpin is unreachable for this engine: Spin never reports OutcomeFree.
func (e *Engine) FreeSpin(mathengine.Input) (mathengine.Result, error) {
	return mathengine.Result{}, errIllegalCall("free_spin")
}

// Collect closes the round with zero additional win: every Spin outcome
// already settles in one step.
func (e *Engine) Collect(mathengine.Input) (mathengine.Result, error) {
	return mathengine.Result{Win: decimal.Zero, Outcome: mathengine.OutcomeNone}, nil
}

// PostProcess is a no-op: this engine produces no derived fields that need
// recomputation after the take/win-ceiling policy selects a winner.
func (e *Engine) PostProcess(result mathengine.Result) (mathengine.Result, error) {
	return result, nil
}

// Close releases no resources for this engine.
func (e *Engine) Close() error {
	return nil
}

func stakeOf(input mathengine.Input) decimal.Decimal {
	if v, ok := input["stake"].(decimal.Decimal); ok {
		return v
	}
	return decimal.Zero
}

type illegalCallError string

func (e illegalCallError) Error() string {
	return "demomath: " + string(e) + " is not reachable for this engine's outcomes"
}

func errIllegalCall(op string) error {
	return illegalCallError(op)
}
