package repository

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/public-forge/go-gorm-unit-of-work/postgres"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
)

// roundRepository implements IRoundRepository. Every Store* method opens one
// unit-of-work transaction and commits only after every row it touches has
// been written, preserving the atomicity contract Admin relies on.
type roundRepository struct{}

// NewRoundRepository initializes and returns a new instance of
// roundRepository implementing IRoundRepository.
func NewRoundRepository() interfaces.IRoundRepository {
	return &roundRepository{}
}

// StoreSpin atomically writes a new CommonRound, Round and BET Action, along
// with the promo decrement when the spin consumed a promo offer.
func (r *roundRepository) StoreSpin(ctx context.Context, common *models.CommonRound, round *models.Round, action *models.Action, promo *models.PromoValue) error {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return err
	}

	if result := tr.Provider().Create(common); result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	round.CommonID = common.ID
	if result := tr.Provider().Create(round); result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	action.RoundID = round.ID
	now := time.Now()
	action.TimeDone = &now
	if result := tr.Provider().Create(action); result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}

	if promo != nil && promo.IsActive() {
		result := tr.Provider().Model(&models.PromoStats{}).
			Where("offer_id = ? AND remaining > 0", *promo.OfferID).
			UpdateColumn("remaining", gorm.Expr("remaining - 1"))
		if result.Error != nil {
			_ = tr.Rollback()
			return result.Error
		}
	}
	return tr.Commit(id)
}

// StoreFollowupAction atomically writes a single new action (RESPIN,
// FREE_SPIN or any non-closing step) on an existing round.
func (r *roundRepository) StoreFollowupAction(ctx context.Context, action *models.Action) error {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return err
	}
	now := time.Now()
	action.TimeDone = &now
	if result := tr.Provider().Create(action); result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	return tr.Commit(id)
}

// StoreCollect atomically updates the round (win, close time when the round
// finished) and writes the collect action, plus a promo-stats count bump
// when the round was RICH.
func (r *roundRepository) StoreCollect(ctx context.Context, round *models.Round, action *models.Action, promoIncrement bool) error {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"win":    round.Win,
		"status": round.Status,
	}
	if round.CloseTime != nil {
		updates["close_time"] = *round.CloseTime
	}
	if result := tr.Provider().Model(&models.Round{}).Where("id = ?", round.ID).Updates(updates); result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}

	now := time.Now()
	action.TimeDone = &now
	if result := tr.Provider().Create(action); result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}

	if promoIncrement {
		result := tr.Provider().Model(&models.PromoStats{}).
			Where("user_id = ?", round.UserID).
			UpdateColumn("count", gorm.Expr("count + 1"))
		if result.Error != nil {
			_ = tr.Rollback()
			return result.Error
		}
	}
	return tr.Commit(id)
}

// StoreClose atomically sets the round's CloseTime/Status and writes the
// CLOSE action.
func (r *roundRepository) StoreClose(ctx context.Context, round *models.Round, action *models.Action) error {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"status": round.Status,
		"win":    round.Win,
	}
	if round.CloseTime != nil {
		updates["close_time"] = *round.CloseTime
	}
	if result := tr.Provider().Model(&models.Round{}).Where("id = ?", round.ID).Updates(updates); result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	now := time.Now()
	action.TimeDone = &now
	if result := tr.Provider().Create(action); result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	return tr.Commit(id)
}

// UpdateBalance sets the open round's persisted balance column after a
// successful wallet call.
func (r *roundRepository) UpdateBalance(ctx context.Context, roundID uint, balance decimal.Decimal) error {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return err
	}
	result := tr.Provider().Model(&models.Round{}).Where("id = ?", roundID).UpdateColumn("balance", balance)
	if result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	return tr.Commit(id)
}

// MarkActionError writes RemoteCode/ErrorInfo on an action and Status on its
// round in one transaction.
func (r *roundRepository) MarkActionError(ctx context.Context, actionID, roundID uint, remoteCode int, errorInfo string, status models.RoundStatus) error {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return err
	}
	result := tr.Provider().Model(&models.Action{}).Where("id = ?", actionID).
		Updates(map[string]interface{}{"remote_code": remoteCode, "error_info": errorInfo})
	if result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	result = tr.Provider().Model(&models.Round{}).Where("id = ?", roundID).UpdateColumn("status", status)
	if result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	return tr.Commit(id)
}

// ClearActionError marks a REMOTE_ERROR action cleared and its round
// SUCCESS, used at resume once the wallet confirms the outcome landed.
func (r *roundRepository) ClearActionError(ctx context.Context, actionID, roundID uint) error {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return err
	}
	result := tr.Provider().Model(&models.Action{}).Where("id = ?", actionID).
		Updates(map[string]interface{}{"remote_code": 0, "error_info": ""})
	if result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	result = tr.Provider().Model(&models.Round{}).Where("id = ?", roundID).UpdateColumn("status", models.RoundStatusSuccess)
	if result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	return tr.Commit(id)
}

// GetOpenRound returns the most recent round for userID with no close time
// yet, with its actions ordered by id ascending, for resume at Admin.init.
func (r *roundRepository) GetOpenRound(ctx context.Context, userID uint) (*models.Round, []*models.Action, error) {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return nil, nil, err
	}

	var rounds []*models.Round
	result := tr.Provider().Model(&models.Round{}).
		Where("user_id = ? AND close_time IS NULL", userID).
		Order("open_time desc").Limit(1).Find(&rounds)
	if result.Error != nil {
		_ = tr.Rollback()
		return nil, nil, result.Error
	}
	if len(rounds) == 0 {
		return nil, nil, tr.Commit(id)
	}

	var actions []*models.Action
	result = tr.Provider().Model(&models.Action{}).
		Where("round_id = ?", rounds[0].ID).
		Order("id asc").Find(&actions)
	if result.Error != nil {
		_ = tr.Rollback()
		return nil, nil, result.Error
	}
	return rounds[0], actions, tr.Commit(id)
}

// GetHistory returns at most limit rounds for userID, newest open-time
// first, each with its actions ordered by id descending.
func (r *roundRepository) GetHistory(ctx context.Context, userID uint, limit int) ([]*models.Round, map[uint][]*models.Action, error) {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return nil, nil, err
	}

	var rounds []*models.Round
	result := tr.Provider().Model(&models.Round{}).
		Where("user_id = ?", userID).
		Order("open_time desc").Limit(limit).Find(&rounds)
	if result.Error != nil {
		_ = tr.Rollback()
		return nil, nil, result.Error
	}

	roundIDs := make([]uint, 0, len(rounds))
	for _, round := range rounds {
		roundIDs = append(roundIDs, round.ID)
	}

	actionsByRound := make(map[uint][]*models.Action, len(rounds))
	if len(roundIDs) > 0 {
		var actions []*models.Action
		result = tr.Provider().Model(&models.Action{}).
			Where("round_id IN (?)", roundIDs).
			Order("id desc").Find(&actions)
		if result.Error != nil {
			_ = tr.Rollback()
			return nil, nil, result.Error
		}
		for _, a := range actions {
			actionsByRound[a.RoundID] = append(actionsByRound[a.RoundID], a)
		}
	}
	return rounds, actionsByRound, tr.Commit(id)
}
