package repository

import (
	"context"

	"github.com/public-forge/go-gorm-unit-of-work/postgres"
	libredis "github.com/redis/go-redis/v9"

	"github.com/fugaso-go/slot-core/internal/interfaces"
)

// pgSequenceRepository implements ISequenceRepository on native Postgres
// sequences; the sequence must exist (created by migration) before Next is
// called.
type pgSequenceRepository struct{}

// NewPgSequenceRepository initializes and returns a Postgres-backed
// ISequenceRepository.
func NewPgSequenceRepository() interfaces.ISequenceRepository {
	return &pgSequenceRepository{}
}

// Next advances and returns the named Postgres sequence.
func (r *pgSequenceRepository) Next(ctx context.Context, sequenceName string) (int64, error) {
	tr, _ := postgres.GetTransactionContext(ctx)
	id, err := tr.Begin()
	if err != nil {
		return 0, err
	}

	var next int64
	row := tr.Provider().Raw("SELECT nextval(?)", sequenceName).Row()
	if err := row.Scan(&next); err != nil {
		_ = tr.Rollback()
		return 0, err
	}
	return next, tr.Commit(id)
}

// redisSequenceRepository implements ISequenceRepository on Redis INCR,
// selected when redis_config names a sequence backend: ids are then
// monotonic across every node sharing the Redis instance.
type redisSequenceRepository struct {
	client *libredis.Client
}

// NewRedisSequenceRepository initializes and returns a Redis-backed
// ISequenceRepository.
func NewRedisSequenceRepository(client *libredis.Client) interfaces.ISequenceRepository {
	return &redisSequenceRepository{client: client}
}

// Next atomically increments and returns the named counter.
func (r *redisSequenceRepository) Next(ctx context.Context, sequenceName string) (int64, error) {
	return r.client.Incr(ctx, "seq:"+sequenceName).Result()
}
