package tournament

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fugaso-go/slot-core/internal/admin"
	"github.com/fugaso-go/slot-core/internal/config"
	"github.com/fugaso-go/slot-core/internal/dispatcher"
	"github.com/fugaso-go/slot-core/internal/interfaces/mocks"
	"github.com/fugaso-go/slot-core/internal/mathengine/demomath"
	"github.com/fugaso-go/slot-core/internal/models"
	"github.com/fugaso-go/slot-core/internal/proxy"
	"github.com/fugaso-go/slot-core/internal/session"
)

const localIP = "10.0.0.5"

// newLiveSession registers a live actor for userID so fan-out delivery has a
// target to hit.
func newLiveSession(t *testing.T, ctrl *gomock.Controller, reg *session.Registry, userID uint) *session.Actor {
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
	actor := session.New(userID, dispatcher.New(ad, px), px)
	reg.Register(context.Background(), userID, "tour-token", actor)
	return actor
}

func TestHandle_BatchIsFilteredPersistedAndFannedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange: a commit endpoint counting authenticated commit calls.
	var commits int64
	tourServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth":
			_, _ = w.Write([]byte(`{"token":"tok-1"}`))
		case "/commitWins":
			atomic.AddInt64(&commits, 1)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer tourServer.Close()

	cfg := &config.TourConfig{URL: tourServer.URL, IP: localIP, Name: "srv", Password: "pw"}
	gains := mocks.NewMockITournamentRepository(ctrl)
	rates := mocks.NewMockIRateRepository(ctrl)
	seq := mocks.NewMockISequenceRepository(ctrl)
	users := mocks.NewMockIUserService(ctrl)

	reg := session.NewRegistry(time.Hour, time.Hour)
	defer reg.Shutdown()
	actor := newLiveSession(t, ctrl, reg, 42)

	holder := NewHolder(cfg, gains, rates, seq, users, NewCommitClient(cfg), reg)
	defer holder.Shutdown()

	awards := []models.TournamentAward{
		{ID: 1, Amount: decimal.NewFromInt(500), User: 42, RemoteID: "r-1", Tour: "summer", Place: 1, EventID: "ev-1", IP: localIP, RemoteCode: models.RCNotDone},
		{ID: 2, Amount: decimal.NewFromInt(250), User: 43, RemoteID: "r-2", Tour: "summer", Place: 2, EventID: "ev-1", IP: localIP, RemoteCode: models.RCNotDone},
		{ID: 3, Amount: decimal.NewFromInt(100), User: 44, RemoteID: "r-3", Tour: "summer", Place: 3, EventID: "ev-1", IP: "192.168.9.9", RemoteCode: models.RCNotDone},
	}

	// r-2 is already persisted and settled: it must neither be re-stored
	// nor merged, only commit-dispatched.
	alreadyIn := &models.TournamentGain{Model: gorm.Model{ID: 2}, UserID: 43, InboundID: "r-2", RemoteID: "r-2", RemoteCode: 0}
	gains.EXPECT().FindExistingByRemoteID(gomock.Any(), []string{"r-1", "r-2"}).
		Return(map[string]*models.TournamentGain{"r-2": alreadyIn}, nil)

	users.EXPECT().GetByID(gomock.Any(), uint(42)).Return(&models.User{Currency: "USD"}, nil)
	rates.EXPECT().RateToEuro(gomock.Any(), "USD").Return(decimal.NewFromFloat(0.9), nil)
	seq.EXPECT().Next(gomock.Any(), gainSequence).Return(int64(1001), nil)

	var stored []*models.TournamentGain
	gains.EXPECT().StoreGains(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, gs []*models.TournamentGain) error {
			stored = gs
			return nil
		})

	// Act
	summary, err := holder.Handle(context.Background(), awards)

	// Assert
	assert.NoError(t, err)

	// The remote-IP award never reaches persistence: only r-1 was stored.
	assert.Len(t, stored, 1)
	assert.Equal(t, "r-1", stored[0].InboundID)
	assert.Equal(t, uint(1001), stored[0].ID)
	assert.Equal(t, models.RCNotDone, stored[0].RemoteCode)
	assert.True(t, decimal.NewFromInt(450).Equal(stored[0].AmountEuro))

	// The summary carries the full podium and balance snapshot.
	assert.Equal(t, []uint{42, 43, 44}, summary.Winners["ev-1"])
	assert.Len(t, summary.BalanceUser, 3)
	assert.Len(t, summary.Gains, 1)

	// The settled already-in gain was commit-dispatched exactly once.
	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&commits) == 1
	}, time.Second, 10*time.Millisecond)

	// The live user's session received exactly one TournamentWin, visible
	// through the tournament-info request.
	resp := actor.Submit(context.Background(), "", []byte(`{"type":"TOURNAMENT_INFO"}`))
	assert.Len(t, resp.History, 1)
	assert.Equal(t, "PENDING", resp.History[0].Status)
}

func TestHandle_ReplayedBatchPersistsNothingNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange: every award in the batch already has a persisted gain.
	cfg := &config.TourConfig{URL: "", IP: localIP}
	gains := mocks.NewMockITournamentRepository(ctrl)
	rates := mocks.NewMockIRateRepository(ctrl)
	seq := mocks.NewMockISequenceRepository(ctrl)
	users := mocks.NewMockIUserService(ctrl)

	reg := session.NewRegistry(time.Hour, time.Hour)
	defer reg.Shutdown()

	holder := NewHolder(cfg, gains, rates, seq, users, NewCommitClient(cfg), reg)
	defer holder.Shutdown()

	awards := []models.TournamentAward{
		{ID: 1, Amount: decimal.NewFromInt(500), User: 42, RemoteID: "r-1", EventID: "ev-1", IP: localIP, RemoteCode: models.RCNotDone},
	}
	existing := &models.TournamentGain{UserID: 42, InboundID: "r-1", RemoteID: "r-1", RemoteCode: models.RCNotDone}

	gains.EXPECT().FindExistingByRemoteID(gomock.Any(), []string{"r-1"}).
		Return(map[string]*models.TournamentGain{"r-1": existing}, nil)
	gains.EXPECT().StoreGains(gomock.Any(), gomock.Nil()).Return(nil)

	// Act
	summary, err := holder.Handle(context.Background(), awards)

	// Assert: nothing new, but the unsettled gain is still reported.
	assert.NoError(t, err)
	assert.Len(t, summary.Gains, 1)
	assert.Same(t, existing, summary.Gains[0])
}
