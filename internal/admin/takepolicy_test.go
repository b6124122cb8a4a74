package admin

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fugaso-go/slot-core/internal/mathengine"
)

// scriptedEngine replays a fixed sequence of wins, recording how many draws
// the policy consumed.
type scriptedEngine struct {
	wins  []int64
	calls int
}

func (s *scriptedEngine) Settings() mathengine.Settings { return mathengine.Settings{} }
func (s *scriptedEngine) SetRand(*rand.Rand)            {}
func (s *scriptedEngine) Join() (mathengine.Special, error) {
	return mathengine.Special{}, nil
}

func (s *scriptedEngine) Spin(mathengine.Input) (mathengine.Result, error) {
	win := s.wins[len(s.wins)-1]
	if s.calls < len(s.wins) {
		win = s.wins[s.calls]
	}
	s.calls++
	w := decimal.NewFromInt(win)
	return mathengine.Result{Win: w, Outcome: mathengine.OutcomeNone, Total: w}, nil
}

func (s *scriptedEngine) ReSpin(in mathengine.Input) (mathengine.Result, error)   { return s.Spin(in) }
func (s *scriptedEngine) FreeSpin(in mathengine.Input) (mathengine.Result, error) { return s.Spin(in) }
func (s *scriptedEngine) Collect(mathengine.Input) (mathengine.Result, error) {
	return mathengine.Result{}, nil
}
func (s *scriptedEngine) PostProcess(r mathengine.Result) (mathengine.Result, error) { return r, nil }
func (s *scriptedEngine) Close() error                                               { return nil }

func TestTakePolicy_FirstDrawUnderCeilingIsKept(t *testing.T) {
	// Arrange: seed 1's first draw wins the Bernoulli trial at take=0.8, so
	// the allowed ceiling is the configured cap.
	engine := &scriptedEngine{wins: []int64{50}}
	policy := NewTakePolicy(engine, 0.8, decimal.NewFromInt(100))
	policy.SetRand(rand.New(rand.NewSource(1)))

	// Act
	result, err := policy.Spin(mathengine.Input{})

	// Assert: one draw, untouched.
	assert.NoError(t, err)
	assert.Equal(t, 1, engine.calls)
	assert.True(t, decimal.NewFromInt(50).Equal(result.Win))
}

func TestTakePolicy_RedrawsUntilUnderCeiling(t *testing.T) {
	// Arrange: two draws above the ceiling, then one under it.
	engine := &scriptedEngine{wins: []int64{500, 300, 40}}
	policy := NewTakePolicy(engine, 0.8, decimal.NewFromInt(100))
	policy.SetRand(rand.New(rand.NewSource(1)))

	// Act
	result, err := policy.Spin(mathengine.Input{})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 3, engine.calls)
	assert.True(t, decimal.NewFromInt(40).Equal(result.Win))
}

func TestTakePolicy_NeverFabricatesAHigherWin(t *testing.T) {
	// Arrange: every draw exceeds the ceiling; the policy must keep the
	// lowest draw it saw, never anything above the first draw.
	engine := &scriptedEngine{wins: []int64{500, 900, 300}}
	policy := NewTakePolicy(engine, 0.8, decimal.NewFromInt(100))
	policy.SetRand(rand.New(rand.NewSource(1)))

	// Act
	result, err := policy.Spin(mathengine.Input{})

	// Assert: attempts are bounded and the kept win is the minimum seen.
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(result.Win))
	assert.LessOrEqual(t, engine.calls, 100)
}

func TestTakePolicy_LostTrialRedrawsAnyWin(t *testing.T) {
	// Arrange: take=0 always loses the trial, so the allowed ceiling is
	// zero and every winning draw is rejected.
	engine := &scriptedEngine{wins: []int64{50, 0}}
	policy := NewTakePolicy(engine, 0, decimal.NewFromInt(100))
	policy.SetRand(rand.New(rand.NewSource(1)))

	// Act
	result, err := policy.Spin(mathengine.Input{})

	// Assert: the winning first draw was redrawn into the zero-win second.
	assert.NoError(t, err)
	assert.Equal(t, 2, engine.calls)
	assert.True(t, result.Win.IsZero())
}

func TestTakePolicy_ZeroCeilingDisablesRedraw(t *testing.T) {
	// Arrange
	engine := &scriptedEngine{wins: []int64{1000000}}
	policy := NewTakePolicy(engine, 0.8, decimal.Zero)
	policy.SetRand(rand.New(rand.NewSource(1)))

	// Act
	result, err := policy.Spin(mathengine.Input{})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 1, engine.calls)
	assert.True(t, decimal.NewFromInt(1000000).Equal(result.Win))
}
