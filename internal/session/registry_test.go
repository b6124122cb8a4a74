package session

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fugaso-go/slot-core/internal/admin"
	"github.com/fugaso-go/slot-core/internal/dispatcher"
	"github.com/fugaso-go/slot-core/internal/interfaces/mocks"
	"github.com/fugaso-go/slot-core/internal/mathengine/demomath"
	"github.com/fugaso-go/slot-core/internal/proxy"
)

// newTestActor builds an Actor over a fully initialized Admin+Proxy pair
// backed by permissive mocks, enough for lifecycle tests that never spin.
func newTestActor(t *testing.T, ctrl *gomock.Controller, userID uint) *Actor {
	t.Helper()

	rounds := mocks.NewMockIRoundRepository(ctrl)
	percents := mocks.NewMockIPercentRepository(ctrl)
	promos := mocks.NewMockIPromoRepository(ctrl)
	account := mocks.NewMockIAccountService(ctrl)

	percents.EXPECT().GetByUserAndGame(gomock.Any(), userID, gomock.Any()).Return(nil, nil).AnyTimes()
	promos.EXPECT().GetActive(gomock.Any(), userID).Return(nil, nil).AnyTimes()
	rounds.EXPECT().GetOpenRound(gomock.Any(), userID).Return(nil, nil, nil).AnyTimes()
	account.EXPECT().Close(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	engine := demomath.New(demomath.Config{})
	engine.SetRand(rand.New(rand.NewSource(1)))

	ad := admin.New(engine, admin.Deps{RoundRepo: rounds, PercentRepo: percents, PromoRepo: promos, HistoryLimit: 10})
	assert.NoError(t, ad.Init(context.Background(), userID, "thunderexpress", "EUR"))

	px := proxy.New(account, nil)
	px.SetBalance(decimal.NewFromInt(3000))
	return New(userID, dispatcher.New(ad, px), px)
}

func TestRegistry_RegisterDisplacesPreviousSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	reg := NewRegistry(time.Hour, time.Hour)
	defer reg.Shutdown()
	first := newTestActor(t, ctrl, 7)
	second := newTestActor(t, ctrl, 7)

	// Act
	reg.Register(context.Background(), 7, "token-1", first)
	reg.Register(context.Background(), 7, "token-2", second)

	// Assert: the old token no longer resolves, the new one does.
	_, ok := reg.Lookup("token-1")
	assert.False(t, ok)
	actor, ok := reg.Lookup("token-2")
	assert.True(t, ok)
	assert.Same(t, second, actor)

	sessions, clients := reg.State()
	assert.Equal(t, 1, sessions)
	assert.Equal(t, 1, clients)
}

func TestRegistry_DisconnectStopsAndEvicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	reg := NewRegistry(time.Hour, time.Hour)
	defer reg.Shutdown()
	actor := newTestActor(t, ctrl, 3)
	reg.Register(context.Background(), 3, "token-3", actor)

	// Act
	acked := reg.Disconnect(3, "")

	// Assert
	assert.True(t, acked)
	_, ok := reg.Lookup("token-3")
	assert.False(t, ok)
	assert.False(t, reg.Disconnect(3, ""))
}

func TestRegistry_IdleSweepReclaimsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange: aggressive sweep so the test finishes quickly.
	reg := NewRegistry(50*time.Millisecond, 25*time.Millisecond)
	defer reg.Shutdown()
	actor := newTestActor(t, ctrl, 11)
	reg.Register(context.Background(), 11, "token-11", actor)

	// Act: wait past cleanDuration plus one sweep period.
	assert.Eventually(t, func() bool {
		_, ok := reg.Lookup("token-11")
		return !ok
	}, time.Second, 10*time.Millisecond)

	// Assert: both indexes are empty.
	sessions, clients := reg.State()
	assert.Equal(t, 0, sessions)
	assert.Equal(t, 0, clients)
}

func TestRegistry_PingKeepsSessionLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	reg := NewRegistry(time.Hour, time.Hour)
	defer reg.Shutdown()
	actor := newTestActor(t, ctrl, 5)
	reg.Register(context.Background(), 5, "token-5", actor)

	// Act + Assert
	assert.True(t, reg.Ping("token-5"))
	assert.False(t, reg.Ping("unknown-token"))
	assert.Equal(t, 1, reg.Online())
}
