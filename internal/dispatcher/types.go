package dispatcher

import (
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/admin"
	"github.com/fugaso-go/slot-core/internal/fsm"
	"github.com/fugaso-go/slot-core/internal/mathengine"
)

// RequestKind tags a deserialized player request variant.
type RequestKind string

const (
	KindLogin           RequestKind = "LOGIN"
	KindBetSpin         RequestKind = "BET_SPIN"
	KindReSpin          RequestKind = "RE_SPIN"
	KindFreeSpin        RequestKind = "FREE_SPIN"
	KindCollect         RequestKind = "COLLECT"
	KindHistory         RequestKind = "HISTORY"
	KindTournamentInfo  RequestKind = "TOURNAMENT_INFO"
)

// Envelope is the flattened wire shape every PlayerRequest variant
// deserializes into; fields not meaningful to Type are left zero.
type Envelope struct {
	Type       RequestKind            `json:"type"`
	Bet        decimal.Decimal        `json:"bet,omitempty"`
	Line       int                    `json:"line,omitempty"`
	Denom      decimal.Decimal        `json:"denom,omitempty"`
	BetCounter int                    `json:"betCounter,omitempty"`
	CollectAct fsm.ActionKind         `json:"collectAct,omitempty"`
	Limit      int                    `json:"limit,omitempty"`
	Input      mathengine.Input       `json:"input,omitempty"`
}

// ResponseType tags the wire-encoded response variant.
type ResponseType string

const (
	RespGameData ResponseType = "GameData"
	RespSpinData ResponseType = "SpinData"
	RespHistory  ResponseType = "HistoryData"
	RespError    ResponseType = "Error"
)

// GameDataWire is the wire projection of admin.GameData.
type GameDataWire struct {
	GameID  string             `json:"gameId"`
	NextAct fsm.ActionKind     `json:"nextAct"`
	Special mathengine.Special `json:"special,omitempty"`
	Balance decimal.Decimal    `json:"balance"`
}

// SpinDataWire is the wire projection of a spin/respin/free-spin/collect
// outcome.
type SpinDataWire struct {
	GameID  string             `json:"gameId"`
	NextAct fsm.ActionKind     `json:"nextAct"`
	Special mathengine.Special `json:"special,omitempty"`
	Win     decimal.Decimal    `json:"win"`
	Balance decimal.Decimal    `json:"balance"`
}

// HistoryEntryWire is the wire projection of one admin.HistoryEntry.
type HistoryEntryWire struct {
	RoundID   uint            `json:"roundId"`
	CommonID  uint            `json:"commonId"`
	Bet       decimal.Decimal `json:"bet"`
	Stake     decimal.Decimal `json:"stake"`
	Win       decimal.Decimal `json:"win"`
	Status    string          `json:"status"`
	ActionIDs []uint          `json:"actionIds"`
}

// Response is the single reply shape every Handle call produces. Cache
// reports whether the HTTP layer's request-id cache should store this
// response under the presented request-id; it is never serialized.
type Response struct {
	Type     ResponseType       `json:"type"`
	ID       string             `json:"id,omitempty"`
	GameData *GameDataWire      `json:"gameData,omitempty"`
	SpinData *SpinDataWire      `json:"spinData,omitempty"`
	History  []HistoryEntryWire `json:"history,omitempty"`
	Error    string             `json:"error,omitempty"`
	Cache    bool               `json:"-"`
}

func errorResponse(message string) Response {
	return Response{Type: RespError, Error: message, Cache: false}
}

func gameDataResponse(id string, g admin.GameData) Response {
	return Response{Type: RespGameData, ID: id, Cache: false, GameData: &GameDataWire{
		GameID: g.GameID, NextAct: g.NextAct, Special: g.Special, Balance: g.Balance,
	}}
}

func spinDataResponse(id string, out admin.SpinOutcome, balance decimal.Decimal) Response {
	return Response{Type: RespSpinData, ID: id, Cache: true, SpinData: &SpinDataWire{
		GameID:  out.Round.GameID,
		NextAct: out.NextAct,
		Special: out.Special,
		Win:     out.Win,
		Balance: balance,
	}}
}
