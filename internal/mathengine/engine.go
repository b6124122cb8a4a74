// Package mathengine defines the contract the slot admin drives to produce a
// spin/respin/free-spin/collect outcome. The engine itself is treated as a
// pure, deterministic computation given an RNG and an input; concrete
// engines live in subpackages (see demomath) and are wired in by name, never
// depended on directly by Admin.
package mathengine

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// Outcome classifies a math result into the server-event kind Admin must
// raise against the round FSM next. OutcomeNone makes Admin raise a plain
// CLOSE server event, which returns the round to BET.
type Outcome string

const (
	OutcomeNone        Outcome = "NONE"
	OutcomeBonus       Outcome = "BONUS_START"
	OutcomeRespin      Outcome = "RESPIN_START"
	OutcomeDrop        Outcome = "DROP_START"
	OutcomeFree        Outcome = "FREESPIN_START"
	OutcomeGambleEnd   Outcome = "GAMBLE_END"
	OutcomeCollectOpen Outcome = "COLLECT_START"
)

// Input is the opaque, wire- and storage-serializable request blob a math
// call consumes (bet/line/denom/multi plus whatever a specific game needs).
// Admin never inspects its fields; it only forwards what the player sent
// (or what a replay restores) to the engine.
type Input map[string]interface{}

// Special is the opaque result payload a math call produces: stops, grid,
// gains, bonus data. It is serialized verbatim onto the Action.Payload
// column and echoed back to the client.
type Special map[string]interface{}

// Restore is the opaque blob an engine needs to resume mid-round math state
// (remaining free spins, pending gamble, drop progression) after a process
// restart. It round-trips through Action.Payload the same way Special does.
type Restore map[string]interface{}

// Settings describes the bet/line/denom grid and win/stake bounds a math
// engine supports for a given game, consulted by Admin.init's validator.
type Settings struct {
	Bets         []decimal.Decimal
	Lines        []int
	Denoms       []decimal.Decimal
	MaxWin       decimal.Decimal
	MaxStake     decimal.Decimal
}

// Result is what every mutating math call (Spin/ReSpin/FreeSpin/Collect)
// returns: the realized win, the classified outcome driving the next FSM
// event, and the opaque payloads to persist.
type Result struct {
	Win      decimal.Decimal
	Outcome  Outcome
	Special  Special
	Restore  Restore
	// Respins/Initial are comparator inputs for the take/win-ceiling
	// policy: Respins is meaningful when Outcome==OutcomeRespin, Initial
	// when Outcome==OutcomeFree.
	Respins int
	Initial int
	Total   decimal.Decimal
}

// Engine is the per-game math contract. One instance is bound to a round
// for its whole lifetime; SetRand is called once at construction so results
// are reproducible given a seeded source.
type Engine interface {
	// Settings reports this engine's supported bet/line/denom grid and caps.
	Settings() Settings

	// SetRand installs the random source the engine must draw from for
	// every subsequent call. Swapping sources mid-round is not supported.
	SetRand(r *rand.Rand)

	// Join produces the Special payload for a GameData packet without
	// consuming a bet, used on session resume/reconnect.
	Join() (Special, error)

	// Spin computes a fresh round outcome for the given stake input.
	Spin(input Input) (Result, error)

	// ReSpin continues an already-open round (outcome was OutcomeRespin).
	ReSpin(input Input) (Result, error)

	// FreeSpin consumes one free spin from a free-spin sequence (outcome
	// was OutcomeFree).
	FreeSpin(input Input) (Result, error)

	// Collect closes out any pending bonus/free-spin/drop accumulation and
	// reports the final win for the round.
	Collect(input Input) (Result, error)

	// PostProcess lets the engine adjust a Result after the take/win
	// ceiling policy has picked a winner among several draws (e.g. to
	// recompute a derived grid) before it is persisted.
	PostProcess(result Result) (Result, error)

	// Close releases any engine-held resources; called once the round's
	// Session Actor is tearing down.
	Close() error
}
