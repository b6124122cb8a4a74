package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fugaso-go/slot-core/internal/config"
	"github.com/fugaso-go/slot-core/internal/dispatcher"
	serviceError "github.com/fugaso-go/slot-core/internal/error"
	"github.com/fugaso-go/slot-core/internal/interfaces/mocks"
	"github.com/fugaso-go/slot-core/internal/models"
	"github.com/fugaso-go/slot-core/internal/server"
	"github.com/fugaso-go/slot-core/internal/session"
)

type sessionFixture struct {
	svc      *SessionService
	registry *session.Registry
	users    *mocks.MockIUserService
	rounds   *mocks.MockIRoundRepository
}

func newSessionFixture(t *testing.T, ctrl *gomock.Controller) *sessionFixture {
	t.Helper()

	users := mocks.NewMockIUserService(ctrl)
	rounds := mocks.NewMockIRoundRepository(ctrl)
	percents := mocks.NewMockIPercentRepository(ctrl)
	promos := mocks.NewMockIPromoRepository(ctrl)

	percents.EXPECT().GetByUserAndGame(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	promos.EXPECT().GetActive(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	rounds.EXPECT().GetOpenRound(gomock.Any(), gomock.Any()).Return(nil, nil, nil).AnyTimes()

	registry := session.NewRegistry(time.Hour, time.Hour)
	t.Cleanup(registry.Shutdown)

	svc := NewSessionService(
		&server.APIConfig{JWTSecret: "test-secret"},
		&config.AdminConfig{HistoryLimit: 20, TakePercent: 80},
		&config.ProxyConfig{Alias: "demo", StartAmount: 3000},
		&config.SlotConfig{},
		registry,
		users,
		rounds,
		percents,
		promos,
		nil,
	)
	return &sessionFixture{svc: svc, registry: registry, users: users, rounds: rounds}
}

// expectDemoLogin arranges the demo ledger to resolve userName into an
// existing user with the given id and balance.
func (f *sessionFixture) expectDemoLogin(userName string, userID uint, balance int64) {
	externalID := uuid.New()
	user := &models.User{
		Model:      gorm.Model{ID: userID},
		ExternalID: &externalID,
		Login:      userName,
		Balance:    decimal.NewFromInt(balance),
		Currency:   "EUR",
	}
	f.users.EXPECT().Login(gomock.Any(), userName, gomock.Any()).Return(user, nil)
}

func TestMintToken_IsDeterministicPerUserAndInstant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	f := newSessionFixture(t, ctrl)
	at := time.UnixMilli(1700000000000)

	// Act + Assert: same inputs, same token; any input change, new token.
	assert.Equal(t, f.svc.MintToken(1, at), f.svc.MintToken(1, at))
	assert.NotEqual(t, f.svc.MintToken(1, at), f.svc.MintToken(2, at))
	assert.NotEqual(t, f.svc.MintToken(1, at), f.svc.MintToken(1, at.Add(time.Millisecond)))
	assert.Len(t, f.svc.MintToken(1, at), 64)
}

func TestLogin_ProducesJoinPacketWithNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	f := newSessionFixture(t, ctrl)
	f.expectDemoLogin("u1", 9, 3000)

	// Act
	out, err := f.svc.Login(context.Background(), LoginInput{UserName: "u1", SessionID: "s1", GameName: "thunderexpress"})

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, dispatcher.RespGameData, out.Join.Type)
	assert.NotEmpty(t, out.Join.ID)
	assert.True(t, decimal.NewFromInt(3000).Equal(out.Join.GameData.Balance))

	// The minted token resolves to a live session.
	_, ok := f.registry.Lookup(out.Token)
	assert.True(t, ok)
	assert.Equal(t, 1, f.svc.Online())
}

func TestLogin_SecondLoginDisplacesFirstSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	f := newSessionFixture(t, ctrl)
	f.expectDemoLogin("u1", 9, 3000)
	f.expectDemoLogin("u1", 9, 3000)

	first, err := f.svc.Login(context.Background(), LoginInput{UserName: "u1", GameName: "thunderexpress"})
	assert.NoError(t, err)

	// The token embeds unix millis; step past the tick so the second login
	// cannot mint the same token.
	time.Sleep(2 * time.Millisecond)

	// Act
	second, err := f.svc.Login(context.Background(), LoginInput{UserName: "u1", GameName: "thunderexpress"})
	assert.NoError(t, err)

	// Assert: the displaced token is dead, the new one lives.
	_, err = f.svc.Handle(context.Background(), first.Token, "", []byte(`{"type":"HISTORY"}`))
	assert.ErrorIs(t, err, serviceError.ErrNotLoggedOn)
	_, ok := f.registry.Lookup(second.Token)
	assert.True(t, ok)
}

func TestHandle_UnknownTokenIsNotLoggedOn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	f := newSessionFixture(t, ctrl)

	// Act
	_, err := f.svc.Handle(context.Background(), "no-such-token", "", []byte(`{"type":"HISTORY"}`))

	// Assert
	assert.ErrorIs(t, err, serviceError.ErrNotLoggedOn)
}

func TestLogin_UnknownAliasIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	f := newSessionFixture(t, ctrl)

	// Act
	_, err := f.svc.Login(context.Background(), LoginInput{UserName: "u1", GameName: "thunderexpress", Mode: "carrier-pigeon"})

	// Assert
	assert.Error(t, err)
}
