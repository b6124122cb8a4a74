package repository

import (
	"context"

	"github.com/public-forge/go-gorm-unit-of-work/postgres"

	sloterror "github.com/fugaso-go/slot-core/internal/error"
	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
)

// tournamentRepository implements ITournamentRepository over the
// tournament_gains table.
type tournamentRepository struct{}

// NewTournamentRepository initializes and returns a new instance of
// tournamentRepository implementing ITournamentRepository.
func NewTournamentRepository() interfaces.ITournamentRepository {
	return &tournamentRepository{}
}

// FindExistingByRemoteID returns already-persisted gains whose RemoteID is
// in ids, keyed by RemoteID, for the fan-out's dedup step.
func (r *tournamentRepository) FindExistingByRemoteID(ctx context.Context, ids []string) (map[string]*models.TournamentGain, error) {
	existing := make(map[string]*models.TournamentGain, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return nil, err
	}

	var gains []*models.TournamentGain
	result := tr.Provider().Model(&models.TournamentGain{}).
		Where("remote_id IN (?)", ids).Find(&gains)
	if result.Error != nil {
		_ = tr.Rollback()
		return nil, result.Error
	}
	for _, g := range gains {
		existing[g.RemoteID] = g
	}
	return existing, tr.Commit(id)
}

// StoreGains persists newly-resolved gains atomically; the unique inbound_id
// column makes a replayed batch fail here rather than duplicate rows.
func (r *tournamentRepository) StoreGains(ctx context.Context, gains []*models.TournamentGain) error {
	if len(gains) == 0 {
		return nil
	}
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return err
	}
	for _, g := range gains {
		if result := tr.Provider().Create(g); result.Error != nil {
			_ = tr.Rollback()
			return result.Error
		}
	}
	return tr.Commit(id)
}

// MarkCommitted stamps a gain's RemoteCode after a successful commit-wins
// call, guarded by optimistic locking on opt_lock: a concurrent committer
// bumps opt_lock first and this update then matches zero rows.
func (r *tournamentRepository) MarkCommitted(ctx context.Context, gainID uint, expectedOptLock int, remoteCode int) error {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return err
	}
	result := tr.Provider().Model(&models.TournamentGain{}).
		Where("id = ? AND opt_lock = ?", gainID, expectedOptLock).
		Updates(map[string]interface{}{"remote_code": remoteCode, "opt_lock": expectedOptLock + 1})
	if result.Error != nil {
		_ = tr.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		_ = tr.Rollback()
		return sloterror.ErrOptLockConflict
	}
	return tr.Commit(id)
}
