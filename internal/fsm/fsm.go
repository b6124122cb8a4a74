// Package fsm implements the round action-kind transition table that guards
// every legal move a session can make while a round is open.
package fsm

import (
	"fmt"
)

// ActionKind enumerates every action a round can be in or transition on.
// Client actions are the ones a player request may submit; server events are
// raised internally by Admin after a math result is classified.
type ActionKind string

// Client-submitted action kinds.
const (
	Bet            ActionKind = "BET"
	Spin           ActionKind = "SPIN"
	ReSpin         ActionKind = "RESPIN"
	FreeSpin       ActionKind = "FREE_SPIN"
	Collect        ActionKind = "COLLECT"
	FreeCollect    ActionKind = "FREE_COLLECT"
	BetLine        ActionKind = "BET_LINE"
	BetLineDenom   ActionKind = "BET_LINE_DENOM"
	BetLineReels   ActionKind = "BET_LINE_REELS"
	Drop           ActionKind = "DROP"
	Bonus          ActionKind = "BONUS"
	HalfCollect    ActionKind = "HALF_COLLECT"
	GamblePlay     ActionKind = "GAMBLE_PLAY"
)

// Server-raised event kinds.
const (
	Close           ActionKind = "CLOSE"
	CollectStart    ActionKind = "COLLECT_START"
	FreeCollectStart ActionKind = "FREE_COLLECT_START"
	RespinStart     ActionKind = "RESPIN_START"
	FreespinStart   ActionKind = "FREESPIN_START"
	DropStart       ActionKind = "DROP_START"
	BonusStart      ActionKind = "BONUS_START"
	GambleEnd       ActionKind = "GAMBLE_END"
	GambleFreeEnd   ActionKind = "GAMBLE_FREE_END"
)

// clientActs is the set of kinds a player request is allowed to submit via
// ClientAct. Anything else submitted as a client action is rejected before
// the transition table is even consulted.
var clientActs = map[ActionKind]struct{}{
	Bet: {}, Spin: {}, ReSpin: {}, Collect: {}, FreeCollect: {},
	GamblePlay: {}, HalfCollect: {}, FreeSpin: {}, BetLine: {},
	BetLineDenom: {}, BetLineReels: {}, Drop: {}, Bonus: {},
}

// transitions is the authoritative (currentState, inputKind) -> nextState
// table.
var transitions = map[ActionKind]map[ActionKind]ActionKind{
	Bet: {
		Bet:           Spin,
		BetLine:       Bet,
		BetLineDenom:  Bet,
		BetLineReels:  Bet,
		FreespinStart: FreeSpin,
		DropStart:     Drop,
	},
	Collect: {
		Collect:     Bet,
		GamblePlay:  Close,
		HalfCollect: Collect,
	},
	Spin: {
		Spin: Close,
	},
	FreeSpin: {
		FreeSpin: Close,
	},
	Drop: {
		Drop: Close,
	},
	ReSpin: {
		ReSpin: Close,
	},
	Bonus: {
		Bonus: Bonus,
	},
	FreeCollect: {
		FreeCollect: FreeSpin,
		GamblePlay:  Close,
	},
	GambleEnd: {
		Collect: Bet,
	},
	GambleFreeEnd: {
		FreeCollect: FreeSpin,
	},
	Close: {
		Close:            Bet,
		CollectStart:     Collect,
		FreeCollectStart: FreeCollect,
		RespinStart:      ReSpin,
		GambleEnd:        GambleEnd,
		GambleFreeEnd:    GambleFreeEnd,
		FreespinStart:    FreeSpin,
		DropStart:        Drop,
		BonusStart:       Bonus,
	},
}

// IllegalStateError reports a transition that the table does not define,
// either because the current state has no outgoing edges at all or because
// the specific input kind is not one of them.
type IllegalStateError struct {
	From, Input, GameName string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("illegal state from:%s input:%s game:%s", e.From, e.Input, e.GameName)
}

// SlotFSM is a per-round state machine. It is not safe for concurrent use;
// each Session Actor owns exactly one instance as part of its Admin state.
type SlotFSM struct {
	current  ActionKind
	input    ActionKind
	prev     ActionKind
	gameName string
}

// New creates a SlotFSM anchored at current, with game-name carried for
// diagnostics on illegal transitions.
func New(gameName string, current ActionKind) *SlotFSM {
	return &SlotFSM{current: current, input: current, prev: current, gameName: gameName}
}

// Default returns a fresh FSM anchored at BET, the state every new round
// starts from.
func Default(gameName string) *SlotFSM {
	return New(gameName, Bet)
}

// Current returns the state the machine is in right now.
func (f *SlotFSM) Current() ActionKind {
	return f.current
}

// Init forces the machine into a state without consulting the transition
// table, used when replaying a resumable round at Admin.init.
func (f *SlotFSM) Init(action ActionKind) {
	f.current = action
	f.input = action
	f.prev = action
}

// Reset re-anchors the machine to kind, bypassing the transition table.
// Admin.OnError uses it after a wallet error to return the round to BET.
func (f *SlotFSM) Reset(kind ActionKind) {
	f.current = kind
	f.input = kind
}

// ClientAct advances the machine on a player-submitted action kind. It
// rejects kinds that are not legal client actions before touching the table.
func (f *SlotFSM) ClientAct(action ActionKind) (ActionKind, error) {
	if _, ok := clientActs[action]; !ok {
		return f.current, &IllegalStateError{From: string(f.current), Input: string(action), GameName: f.gameName}
	}
	return f.advance(action)
}

// ServerAct advances the machine on a server-raised event kind (CLOSE,
// *_START, GAMBLE_END, GAMBLE_FREE_END).
func (f *SlotFSM) ServerAct(action ActionKind) (ActionKind, error) {
	return f.advance(action)
}

func (f *SlotFSM) advance(action ActionKind) (ActionKind, error) {
	row, ok := transitions[f.current]
	if !ok {
		return f.current, &IllegalStateError{From: string(f.current), Input: string(action), GameName: f.gameName}
	}
	next, ok := row[action]
	if !ok {
		return f.current, &IllegalStateError{From: string(f.current), Input: string(action), GameName: f.gameName}
	}
	f.prev = f.current
	f.input = action
	f.current = next
	return f.current, nil
}
