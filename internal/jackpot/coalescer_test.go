package jackpot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fugaso-go/slot-core/internal/interfaces/mocks"
)

func TestGet_IdenticalIDListsShareOneQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange: exactly one repository hit is allowed inside the TTL.
	repo := mocks.NewMockIJackpotRepository(ctrl)
	contributions := map[string]decimal.Decimal{"mini": decimal.NewFromInt(10), "major": decimal.NewFromInt(250)}
	repo.EXPECT().GetContributions(gomock.Any(), gomock.Any()).Return(contributions, nil).Times(1)

	c := New(repo, time.Minute)
	defer c.Shutdown()

	// Act: concurrent lookups with the same ids in different orders.
	var wg sync.WaitGroup
	results := make([]map[string]decimal.Decimal, 4)
	orders := [][]int64{{1, 2, 3}, {3, 2, 1}, {2, 1, 3}, {1, 3, 2}}
	for i, ids := range orders {
		wg.Add(1)
		go func(i int, ids []int64) {
			defer wg.Done()
			results[i] = c.Get(context.Background(), ids)
		}(i, ids)
	}
	wg.Wait()

	// Assert: every caller saw the same map.
	for _, m := range results {
		assert.Equal(t, contributions, m)
	}
}

func TestGet_DistinctIDListsQuerySeparately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	repo := mocks.NewMockIJackpotRepository(ctrl)
	repo.EXPECT().GetContributions(gomock.Any(), []int64{1}).Return(map[string]decimal.Decimal{"mini": decimal.NewFromInt(1)}, nil)
	repo.EXPECT().GetContributions(gomock.Any(), []int64{2}).Return(map[string]decimal.Decimal{"major": decimal.NewFromInt(2)}, nil)

	c := New(repo, time.Minute)
	defer c.Shutdown()

	// Act
	first := c.Get(context.Background(), []int64{1})
	second := c.Get(context.Background(), []int64{2})

	// Assert
	assert.Contains(t, first, "mini")
	assert.Contains(t, second, "major")
}

func TestGet_ExpiredEntryRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange: two hits, one per TTL window.
	repo := mocks.NewMockIJackpotRepository(ctrl)
	repo.EXPECT().GetContributions(gomock.Any(), gomock.Any()).
		Return(map[string]decimal.Decimal{"mini": decimal.NewFromInt(1)}, nil).Times(2)

	c := New(repo, 30*time.Millisecond)
	defer c.Shutdown()

	// Act
	c.Get(context.Background(), []int64{1, 2})
	time.Sleep(60 * time.Millisecond)
	c.Get(context.Background(), []int64{1, 2})
}

func TestGet_RepositoryFailureYieldsEmptyMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	repo := mocks.NewMockIJackpotRepository(ctrl)
	repo.EXPECT().GetContributions(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	c := New(repo, time.Minute)
	defer c.Shutdown()

	// Act
	m := c.Get(context.Background(), []int64{9})

	// Assert
	assert.Empty(t, m)
}
