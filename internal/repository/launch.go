package repository

import (
	"context"

	"github.com/public-forge/go-gorm-unit-of-work/postgres"

	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
)

// launchRepository implements ILaunchRepository over the launch_infos table.
type launchRepository struct{}

// NewLaunchRepository initializes and returns a new instance of
// launchRepository implementing ILaunchRepository.
func NewLaunchRepository() interfaces.ILaunchRepository {
	return &launchRepository{}
}

// ListHosts returns every admissible (non-blocked) launch host.
func (r *launchRepository) ListHosts(ctx context.Context) ([]*models.LaunchInfo, error) {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return nil, err
	}

	var hosts []*models.LaunchInfo
	result := tr.Provider().Model(&models.LaunchInfo{}).
		Where("block = ?", false).Find(&hosts)
	if result.Error != nil {
		_ = tr.Rollback()
		return nil, result.Error
	}
	return hosts, tr.Commit(id)
}
