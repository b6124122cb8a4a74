package request

import "github.com/shopspring/decimal"

// TournamentAwardWire is one line item of an ingested tournament batch, as
// the tournament server posts it.
type TournamentAwardWire struct {
	ID         uint            `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	User       uint            `json:"user"`
	RemoteID   string          `json:"remoteId"`
	Tour       string          `json:"tour"`
	Place      int             `json:"place"`
	Balance    decimal.Decimal `json:"balance"`
	EventID    string          `json:"eventId"`
	IP         string          `json:"ip"`
	RemoteCode int             `json:"remoteCode"`
}

// TournamentResult is the batch body POSTed to the tournament handle
// endpoint, bounded to 1 MiB before deserialization.
type TournamentResult struct {
	Awards []TournamentAwardWire `json:"awards" validate:"required"`
}
