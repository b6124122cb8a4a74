package admin

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/mathengine"
)

// maxAttempts bounds the redraw loop the take/win-ceiling policy runs
// before it gives up and accepts the best draw it has.
const maxAttempts = 100

// TakePolicy wraps a mathengine.Engine and enforces a "take" step: before
// the redraw loop a single Bernoulli(take) trial sets the allowed win
// ceiling to maxWin, or to zero when the trial is lost, in which case any
// winning draw is redrawn. Draws above the allowed ceiling are repeated up
// to maxAttempts times; if none lands under it, the least escalating draw
// seen is kept. The policy may cap but never fabricates a higher-valued
// outcome than a draw it actually saw.
type TakePolicy struct {
	engine mathengine.Engine
	take   float64
	maxWin decimal.Decimal
	rng    *rand.Rand
}

// NewTakePolicy wraps engine with a take rate in [0,1] and an absolute
// win ceiling. A zero maxWin disables the policy entirely.
func NewTakePolicy(engine mathengine.Engine, take float64, maxWin decimal.Decimal) *TakePolicy {
	return &TakePolicy{engine: engine, take: take, maxWin: maxWin}
}

func (p *TakePolicy) Settings() mathengine.Settings { return p.engine.Settings() }

func (p *TakePolicy) SetRand(r *rand.Rand) {
	p.rng = r
	p.engine.SetRand(r)
}

func (p *TakePolicy) Join() (mathengine.Special, error) { return p.engine.Join() }

func (p *TakePolicy) Spin(input mathengine.Input) (mathengine.Result, error) {
	return p.draw(func() (mathengine.Result, error) { return p.engine.Spin(input) })
}

func (p *TakePolicy) ReSpin(input mathengine.Input) (mathengine.Result, error) {
	return p.draw(func() (mathengine.Result, error) { return p.engine.ReSpin(input) })
}

func (p *TakePolicy) FreeSpin(input mathengine.Input) (mathengine.Result, error) {
	return p.draw(func() (mathengine.Result, error) { return p.engine.FreeSpin(input) })
}

func (p *TakePolicy) Collect(input mathengine.Input) (mathengine.Result, error) {
	return p.engine.Collect(input)
}

func (p *TakePolicy) PostProcess(result mathengine.Result) (mathengine.Result, error) {
	return p.engine.PostProcess(result)
}

func (p *TakePolicy) Close() error { return p.engine.Close() }

// draw resolves the allowed ceiling with one Bernoulli(take) trial, then
// repeats call until a result lands at or under it, keeping the best
// rejected draw as the fallback once maxAttempts is exhausted.
func (p *TakePolicy) draw(call func() (mathengine.Result, error)) (mathengine.Result, error) {
	if p.maxWin.IsZero() {
		result, err := call()
		if err != nil {
			return mathengine.Result{}, err
		}
		return p.postProcess(result)
	}

	allowed := decimal.Zero
	if p.rng.Float64() < p.take {
		allowed = p.maxWin
	}

	var first, best mathengine.Result
	haveBest := false
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := call()
		if err != nil {
			return mathengine.Result{}, err
		}
		if !result.Total.GreaterThan(allowed) {
			return p.postProcess(result)
		}
		if !haveBest {
			first = result
			best = result
			haveBest = true
		} else if better(first, best, result) {
			best = result
		}
	}
	return p.postProcess(best)
}

// better reports whether candidate should replace current as the kept
// fallback: when the first draw started a respin prefer fewer respins, when
// it started free spins prefer a smaller initial count, otherwise prefer a
// draw that escalates into neither and carries the lower total.
func better(first, current, candidate mathengine.Result) bool {
	switch first.Outcome {
	case mathengine.OutcomeRespin:
		return candidate.Respins < current.Respins
	case mathengine.OutcomeFree:
		return candidate.Initial < current.Initial
	default:
		candEscalates := candidate.Outcome == mathengine.OutcomeRespin || candidate.Outcome == mathengine.OutcomeFree
		curEscalates := current.Outcome == mathengine.OutcomeRespin || current.Outcome == mathengine.OutcomeFree
		if candEscalates != curEscalates {
			return !candEscalates
		}
		return candidate.Total.LessThan(current.Total)
	}
}

func (p *TakePolicy) postProcess(result mathengine.Result) (mathengine.Result, error) {
	return p.engine.PostProcess(result)
}
