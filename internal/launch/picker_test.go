package launch

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fugaso-go/slot-core/internal/interfaces/mocks"
	"github.com/fugaso-go/slot-core/internal/models"
)

func TestPick_CachesHostListAcrossRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange: one storage hit feeds many picks inside the TTL.
	repo := mocks.NewMockILaunchRepository(ctrl)
	hosts := []*models.LaunchInfo{
		{HostName: "games-1.example.com"},
		{HostName: "games-2.example.com"},
	}
	repo.EXPECT().ListHosts(gomock.Any()).Return(hosts, nil).Times(1)

	p := New(repo, time.Minute)

	// Act + Assert
	admissible := map[string]bool{"games-1.example.com": true, "games-2.example.com": true}
	for i := 0; i < 20; i++ {
		picked := p.Pick(context.Background(), "fallback.example.com")
		assert.True(t, admissible[picked], "picked %q", picked)
	}
}

func TestPick_EmptyListFallsBackToForwardedHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	repo := mocks.NewMockILaunchRepository(ctrl)
	repo.EXPECT().ListHosts(gomock.Any()).Return(nil, nil)

	p := New(repo, time.Minute)

	// Act
	picked := p.Pick(context.Background(), "fallback.example.com")

	// Assert
	assert.Equal(t, "fallback.example.com", picked)
}

func TestPick_StorageFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	repo := mocks.NewMockILaunchRepository(ctrl)
	repo.EXPECT().ListHosts(gomock.Any()).Return(nil, assert.AnError)

	p := New(repo, time.Minute)

	// Act
	picked := p.Pick(context.Background(), "fallback.example.com")

	// Assert
	assert.Equal(t, "fallback.example.com", picked)
}

func TestPick_ExpiredCacheRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange: two storage hits, one per TTL window.
	repo := mocks.NewMockILaunchRepository(ctrl)
	repo.EXPECT().ListHosts(gomock.Any()).
		Return([]*models.LaunchInfo{{HostName: "games-1.example.com"}}, nil).Times(2)

	p := New(repo, 30*time.Millisecond)

	// Act
	p.Pick(context.Background(), "fallback.example.com")
	time.Sleep(60 * time.Millisecond)
	p.Pick(context.Background(), "fallback.example.com")
}
