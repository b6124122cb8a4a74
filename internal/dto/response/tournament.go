package response

import (
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/models"
)

// TournamentBalanceUser is the per-remote-id balance snapshot echoed back to
// the tournament server alongside the processed gains.
type TournamentBalanceUser struct {
	EventID string          `json:"eventId"`
	Balance decimal.Decimal `json:"balance"`
	AwardID uint            `json:"awardId"`
}

// TournamentGainWire is the wire projection of one processed gain.
type TournamentGainWire struct {
	UserID     uint            `json:"userId"`
	InboundID  string          `json:"inboundId"`
	Amount     decimal.Decimal `json:"amount"`
	AmountEuro decimal.Decimal `json:"amountEuro"`
	Place      int             `json:"place"`
	RemoteCode int             `json:"remoteCode"`
	Tour       string          `json:"tour"`
}

// TournamentHandleResponse is the merged {winners, gains, balanceUser}
// summary the tournament handle endpoint returns.
type TournamentHandleResponse struct {
	Winners     map[string][]uint                `json:"winners"`
	Gains       []TournamentGainWire             `json:"gains"`
	BalanceUser map[string]TournamentBalanceUser `json:"balanceUser"`
}

// TournamentGainFromModel projects a persisted gain onto the wire shape.
func TournamentGainFromModel(g *models.TournamentGain) TournamentGainWire {
	return TournamentGainWire{
		UserID:     g.UserID,
		InboundID:  g.InboundID,
		Amount:     g.Amount,
		AmountEuro: g.AmountEuro,
		Place:      g.Place,
		RemoteCode: g.RemoteCode,
		Tour:       g.Tour,
	}
}

// TournamentGainsFromModels projects a slice of persisted gains.
func TournamentGainsFromModels(gains []*models.TournamentGain) []TournamentGainWire {
	res := make([]TournamentGainWire, 0, len(gains))
	for _, g := range gains {
		res = append(res, TournamentGainFromModel(g))
	}
	return res
}
