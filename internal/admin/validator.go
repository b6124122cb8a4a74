package admin

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/mathengine"
)

// betValidator normalizes and bounds-checks a spin's bet/line/denom request
// against the engine's supported grid and the per-user stake cap
// (Settings.MaxStake) resolved at login; Settings.MaxWin is not checked.
// Built once at Init; owned by the Admin like the FSM.
type betValidator struct {
	settings mathengine.Settings
}

func newBetValidator(settings mathengine.Settings) *betValidator {
	return &betValidator{settings: settings}
}

// validate rejects values outside the supported grid. An empty grid
// dimension means the engine accepts any value on that axis.
func (v *betValidator) validate(bet decimal.Decimal, line int, denom decimal.Decimal) error {
	if len(v.settings.Bets) > 0 && !containsDecimal(v.settings.Bets, bet) {
		return fmt.Errorf("bet %s is not in the supported bet grid", bet)
	}
	if len(v.settings.Lines) > 0 && !containsInt(v.settings.Lines, line) {
		return fmt.Errorf("line %d is not in the supported line grid", line)
	}
	if len(v.settings.Denoms) > 0 && !containsDecimal(v.settings.Denoms, denom) {
		return fmt.Errorf("denom %s is not in the supported denomination grid", denom)
	}
	stake := bet.Mul(decimal.NewFromInt(int64(line))).Mul(denom)
	if !v.settings.MaxStake.IsZero() && stake.GreaterThan(v.settings.MaxStake) {
		return fmt.Errorf("stake %s exceeds the allowed maximum %s", stake, v.settings.MaxStake)
	}
	return nil
}

func containsDecimal(grid []decimal.Decimal, value decimal.Decimal) bool {
	for _, g := range grid {
		if g.Equal(value) {
			return true
		}
	}
	return false
}

func containsInt(grid []int, value int) bool {
	for _, g := range grid {
		if g == value {
			return true
		}
	}
	return false
}
